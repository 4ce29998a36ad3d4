// Copyright 2026 The Deckhand Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"testing"
)

// sampleRecord is a representative machine-written state type using
// cbor struct tags (the convention for CBOR-only types).
type sampleRecord struct {
	Service string `cbor:"service"`
	Stage   string `cbor:"stage,omitempty"`
	Count   int    `cbor:"count"`
}

func TestMarshalUnmarshalRoundtrip(t *testing.T) {
	t.Parallel()

	original := sampleRecord{
		Service: "orders",
		Stage:   "prod",
		Count:   3,
	}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Marshal produced empty output")
	}

	var decoded sampleRecord
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded != original {
		t.Errorf("roundtrip mismatch: got %+v, want %+v", decoded, original)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	t.Parallel()

	record := sampleRecord{Service: "orders", Stage: "dev", Count: 7}

	first, err := Marshal(record)
	if err != nil {
		t.Fatalf("first Marshal: %v", err)
	}
	second, err := Marshal(record)
	if err != nil {
		t.Fatalf("second Marshal: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("deterministic encoding produced different bytes:\n%x\n%x", first, second)
	}
}

func TestStreamEncoderDecoder(t *testing.T) {
	t.Parallel()

	var buffer bytes.Buffer
	encoder := NewEncoder(&buffer)

	records := []sampleRecord{
		{Service: "orders", Count: 1},
		{Service: "billing", Count: 2},
	}
	for _, r := range records {
		if err := encoder.Encode(r); err != nil {
			t.Fatalf("Encode: %v", err)
		}
	}

	decoder := NewDecoder(&buffer)
	for i, want := range records {
		var got sampleRecord
		if err := decoder.Decode(&got); err != nil {
			t.Fatalf("Decode item %d: %v", i, err)
		}
		if got != want {
			t.Errorf("item %d: got %+v, want %+v", i, got, want)
		}
	}
}

func TestUnmarshalIgnoresUnknownFields(t *testing.T) {
	t.Parallel()

	// A record written by a newer deckhand with extra fields must
	// still load. Encode a superset, decode into the current type.
	superset := map[string]any{
		"service":     "orders",
		"stage":       "prod",
		"count":       9,
		"added_later": "ignored",
	}
	data, err := Marshal(superset)
	if err != nil {
		t.Fatalf("Marshal superset: %v", err)
	}

	var decoded sampleRecord
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Service != "orders" || decoded.Count != 9 {
		t.Errorf("decoded = %+v", decoded)
	}
}
