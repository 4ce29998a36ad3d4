// Copyright 2026 The Deckhand Authors
// SPDX-License-Identifier: Apache-2.0

package naming

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/deckhand-deploy/deckhand/lib/clock"
)

func TestDirectoryName(t *testing.T) {
	t.Parallel()

	got := DirectoryName("deploy", "orders", "prod")
	if got != "deploy/orders/prod" {
		t.Errorf("DirectoryName = %q, want %q", got, "deploy/orders/prod")
	}
}

func TestOverrideTimeBucketedKey(t *testing.T) {
	t.Parallel()

	// 2026-03-01T12:00:00.000Z
	instant := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	fake := clock.Fake(instant)

	policy := NewPolicy(func() string { return "descriptor.json" })
	override := NewOverride(policy, fake)

	restore, err := override.Begin()
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	defer restore()

	want := fmt.Sprintf("%d-%s/descriptor.json", instant.UnixMilli(), "2026-03-01T12:00:00.000Z")
	if got := policy.DescriptorKey(); got != want {
		t.Errorf("DescriptorKey = %q, want %q", got, want)
	}
}

func TestOverrideDelegatesToCurrentOriginal(t *testing.T) {
	t.Parallel()

	// The replacement delegates to the captured original for the
	// suffix, so a key function reading mutable state still reflects
	// that state through the override.
	suffix := "a.json"
	policy := NewPolicy(func() string { return suffix })

	fake := clock.Fake(time.Unix(0, 0))
	restore, err := NewOverride(policy, fake).Begin()
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	defer restore()

	suffix = "b.json"
	got := policy.DescriptorKey()
	if got[len(got)-len("b.json"):] != "b.json" {
		t.Errorf("DescriptorKey = %q, want suffix %q", got, "b.json")
	}
}

func TestOverrideRestoresOriginalReference(t *testing.T) {
	t.Parallel()

	original := func() string { return "descriptor.json" }
	policy := NewPolicy(original)
	before := reflect.ValueOf(policy.key).Pointer()

	restore, err := NewOverride(policy, clock.Real()).Begin()
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if reflect.ValueOf(policy.key).Pointer() == before {
		t.Fatal("Begin did not install a replacement")
	}

	restore()
	if reflect.ValueOf(policy.key).Pointer() != before {
		t.Error("restore did not reinstate the exact original function reference")
	}

	// restore is single-use: calling it again is a no-op.
	restore()
	if reflect.ValueOf(policy.key).Pointer() != before {
		t.Error("second restore changed the policy")
	}
}

func TestOverrideNestingRejected(t *testing.T) {
	t.Parallel()

	policy := NewPolicy(func() string { return "x" })

	restore, err := NewOverride(policy, clock.Real()).Begin()
	if err != nil {
		t.Fatalf("first Begin: %v", err)
	}
	defer restore()

	if _, err := NewOverride(policy, clock.Real()).Begin(); err == nil {
		t.Error("second Begin on an active policy should fail")
	}
}

func TestOverrideSingleUse(t *testing.T) {
	t.Parallel()

	policy := NewPolicy(func() string { return "x" })
	override := NewOverride(policy, clock.Real())

	restore, err := override.Begin()
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	restore()

	if _, err := override.Begin(); err == nil {
		t.Error("reusing a restored override should fail")
	}
}

func TestOverrideIncompatibleHost(t *testing.T) {
	t.Parallel()

	var incompatibleErr *IncompatibleHostError

	_, err := NewOverride(nil, clock.Real()).Begin()
	if !errors.As(err, &incompatibleErr) {
		t.Errorf("nil policy: error = %v, want IncompatibleHostError", err)
	}

	_, err = NewOverride(&Policy{}, clock.Real()).Begin()
	if !errors.As(err, &incompatibleErr) {
		t.Errorf("policy without key function: error = %v, want IncompatibleHostError", err)
	}
}

func TestWithOverrideRestoresOnError(t *testing.T) {
	t.Parallel()

	original := func() string { return "descriptor.json" }
	policy := NewPolicy(original)
	before := reflect.ValueOf(policy.key).Pointer()

	wantErr := errors.New("upload failed")
	err := WithOverride(policy, clock.Real(), func() error {
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("WithOverride error = %v, want %v", err, wantErr)
	}
	if reflect.ValueOf(policy.key).Pointer() != before {
		t.Error("policy not restored after failing operation")
	}
}

func TestWithOverrideRestoresOnPanic(t *testing.T) {
	t.Parallel()

	policy := NewPolicy(func() string { return "descriptor.json" })
	before := reflect.ValueOf(policy.key).Pointer()

	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected panic to propagate")
			}
		}()
		_ = WithOverride(policy, clock.Real(), func() error {
			panic("boom")
		})
	}()

	if reflect.ValueOf(policy.key).Pointer() != before {
		t.Error("policy not restored after panicking operation")
	}
}

func TestWithOverrideSequentialScopes(t *testing.T) {
	t.Parallel()

	// Back-to-back scopes against the same policy are fine — only
	// overlap is forbidden.
	policy := NewPolicy(func() string { return "descriptor.json" })
	for i := 0; i < 3; i++ {
		if err := WithOverride(policy, clock.Real(), func() error { return nil }); err != nil {
			t.Fatalf("scope %d: %v", i, err)
		}
	}
	if got := policy.DescriptorKey(); got != "descriptor.json" {
		t.Errorf("DescriptorKey after scopes = %q", got)
	}
}
