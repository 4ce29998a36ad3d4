// Copyright 2026 The Deckhand Authors
// SPDX-License-Identifier: Apache-2.0

package naming

import (
	"fmt"
	"sync"

	"github.com/deckhand-deploy/deckhand/lib/clock"
)

// timeBucketLayout renders the human-readable half of the descriptor
// key prefix. Always UTC, millisecond precision, trailing Z.
const timeBucketLayout = "2006-01-02T15:04:05.000Z"

// Override temporarily substitutes a Policy's descriptor key function
// for the duration of a single bracketed operation. The replacement
// prepends a time-bucketed prefix — "<epochMillis>-<ISO8601>/" — to
// whatever the captured original returns, so the descriptor stays
// discoverable under its original naming scheme while the bucketed
// copy exists.
//
// An Override moves through exactly one lifecycle:
// uninstalled → active (Begin) → restored (restore, terminal). It is
// single-use; create a fresh Override per bracketed operation.
type Override struct {
	policy *Policy
	clock  clock.Clock

	original KeyFunc
	began    bool
	restored bool
}

// NewOverride creates an Override for the given policy. The clock
// stamps the time bucket; production passes clock.Real().
func NewOverride(policy *Policy, clk clock.Clock) *Override {
	return &Override{policy: policy, clock: clk}
}

// Begin captures the policy's current key function, installs the
// time-bucketing replacement, and returns a single-use restore
// callback. The caller must invoke restore on every exit path of the
// bracketed operation — failing to restore leaves the policy
// permanently mutated and corrupts every later naming decision in
// the process. Prefer WithOverride, which enforces the discipline.
//
// Begin fails with an IncompatibleHostError when the policy lacks a
// key function, and with a plain error when an override is already
// active on the policy (nesting is unsupported) or this Override has
// already been used.
func (o *Override) Begin() (restore func(), err error) {
	if o.policy == nil || o.policy.key == nil {
		return nil, &IncompatibleHostError{Reason: "no descriptor key function to override"}
	}
	if o.began {
		return nil, fmt.Errorf("override already used (single-use; create a new one)")
	}
	if o.policy.active {
		return nil, fmt.Errorf("an override is already active on this policy (nesting is unsupported)")
	}

	o.began = true
	o.policy.active = true
	o.original = o.policy.key

	original := o.original
	clk := o.clock
	o.policy.key = func() string {
		now := clk.Now().UTC()
		return fmt.Sprintf("%d-%s/%s", now.UnixMilli(), now.Format(timeBucketLayout), original())
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			o.policy.key = o.original
			o.policy.active = false
			o.restored = true
		})
	}, nil
}

// WithOverride brackets fn with an override on policy: Begin, run fn,
// restore. Restoration happens on every exit path — fn returning an
// error, or fn panicking — so the policy's original key function is
// always back in place afterward.
func WithOverride(policy *Policy, clk clock.Clock, fn func() error) error {
	override := NewOverride(policy, clk)
	restore, err := override.Begin()
	if err != nil {
		return err
	}
	defer restore()
	return fn()
}
