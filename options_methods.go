package xsdspace

import "github.com/sirupsen/logrus"

// NewOptions returns a default, valid options value.
func NewOptions() Options {
	return Options{}
}

// Validate validates option values.
func (o Options) Validate() error {
	_, err := o.withDefaults()
	return err
}

// WithLogger sets the logger used for query evaluation (nil discards logs).
func (o Options) WithLogger(logger logrus.FieldLogger) Options {
	o.logger = logger
	return o
}

// WithMaxEnumeration caps the values an enumerate query returns (0 uses default).
func (o Options) WithMaxEnumeration(value int) Options {
	o.maxEnumeration = intOption{value: value, set: true}
	return o
}

// WithWorkers sets how many queries EvaluateAll runs at once (0 uses GOMAXPROCS).
func (o Options) WithWorkers(value int) Options {
	o.workers = intOption{value: value, set: true}
	return o
}
