package xsdspace

import (
	"fmt"
	"io"
	"runtime"

	"github.com/sirupsen/logrus"
)

// DefaultMaxEnumeration is the enumerate cap used when none is set.
const DefaultMaxEnumeration = 4096

var discardLogger = func() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}()

func (o Options) withDefaults() (resolvedOptions, error) {
	if o.maxEnumeration.set && o.maxEnumeration.value < 0 {
		return resolvedOptions{}, fmt.Errorf("max enumeration must be non-negative, got %d", o.maxEnumeration.value)
	}
	if o.workers.set && o.workers.value < 0 {
		return resolvedOptions{}, fmt.Errorf("workers must be non-negative, got %d", o.workers.value)
	}
	logger := o.logger
	if logger == nil {
		logger = discardLogger
	}
	return resolvedOptions{
		logger:         logger,
		maxEnumeration: o.maxEnumeration.resolved(DefaultMaxEnumeration),
		workers:        o.workers.resolved(runtime.GOMAXPROCS(0)),
	}, nil
}
