// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parsecomb

import (
	"github.com/tliron/commonlog"
)

// tracer is the part of commonlog.Logger that Traced needs.
type tracer interface {
	AllowLevel(level commonlog.Level) bool
	Debugf(format string, args ...any)
}

func defaultTracer() tracer {
	return commonlog.GetLogger("parsecomb")
}

// Traced wraps p with debug logging of every attempt. Nothing is written
// unless the application configured commonlog to allow debug messages.
func Traced[T any](name string, p Parser[T]) Parser[T] {
	return traced(defaultTracer, name, p)
}

// The logger is looked up on every call so that a backend configured after
// the grammar was built still takes effect.
func traced[T any](logger func() tracer, name string, p Parser[T]) Parser[T] {
	return func(c *Cursor) (T, error) {
		log := logger()
		if !log.AllowLevel(commonlog.Debug) {
			return p(c)
		}
		start := c.Offset()
		log.Debugf("%s: try at offset %d", name, start)
		v, err := p(c)
		if err != nil {
			log.Debugf("%s: failed at offset %d", name, start)
			return v, err
		}
		log.Debugf("%s: matched %d bytes at offset %d", name, c.Offset()-start, start)
		return v, nil
	}
}
