package xsdspace

import "github.com/sirupsen/logrus"

type intOption struct {
	value int
	set   bool
}

func (o intOption) resolved(def int) int {
	if !o.set || o.value == 0 {
		return def
	}
	return o.value
}

// Options configures a Reasoner. The zero value is valid.
type Options struct {
	logger         logrus.FieldLogger
	maxEnumeration intOption
	workers        intOption
}

type resolvedOptions struct {
	logger         logrus.FieldLogger
	maxEnumeration int
	workers        int
}
