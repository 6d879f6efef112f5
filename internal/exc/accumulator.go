// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package exc

import "sync"

// Reporter accumulates exceptions across a run so that every failing
// document can be shown to the user, not only the first. Report returns the
// exception back when it is fatal and nil when processing may continue.
type Reporter interface {
	Report(Exception) Exception
	Reported() []Exception
}

// NewReporter returns a Reporter that is safe for concurrent use. Codes in
// nonFatal are added to the default non-fatal set.
func NewReporter(nonFatal []string) Reporter {
	nf := make(map[string]bool, len(defaultNonFatal)+len(nonFatal))
	for k := range defaultNonFatal {
		nf[k] = true
	}
	for _, k := range nonFatal {
		nf[k] = true
	}
	return &reporter{nonFatal: nf}
}

type reporter struct {
	lock     sync.Mutex
	reported []Exception
	nonFatal map[string]bool
}

func (r *reporter) Report(e Exception) Exception {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.reported = append(r.reported, e)
	if r.nonFatal[e.Code()] {
		return nil
	}
	return e
}

func (r *reporter) Reported() []Exception {
	r.lock.Lock()
	defer r.lock.Unlock()
	out := make([]Exception, len(r.reported))
	copy(out, r.reported)
	return out
}
