package models

import (
	"encoding/json"
	"testing"
)

func TestParseRemarksPlainArray(t *testing.T) {
	raw := json.RawMessage(`[{"user_id":1,"message":"please revise","read_by":[1]}]`)
	remarks := ParseRemarks(raw)
	if len(remarks) != 1 || remarks[0].Message != "please revise" {
		t.Fatalf("unexpected remarks: %+v", remarks)
	}
}

func TestParseRemarksStringWrapped(t *testing.T) {
	// The backend stores the thread as TEXT, so it usually arrives as a
	// JSON string containing JSON.
	raw := json.RawMessage(`"[{\"user_id\":2,\"message\":\"approved\"}]"`)
	remarks := ParseRemarks(raw)
	if len(remarks) != 1 || remarks[0].UserID != 2 {
		t.Fatalf("unexpected remarks: %+v", remarks)
	}
	// Missing read_by defaults to the author having read it.
	if len(remarks[0].ReadBy) != 1 || remarks[0].ReadBy[0] != 2 {
		t.Fatalf("expected author-only read_by, got %v", remarks[0].ReadBy)
	}
}

func TestParseRemarksGarbage(t *testing.T) {
	for _, raw := range []json.RawMessage{nil, json.RawMessage(`"oops"`), json.RawMessage(`123`)} {
		if remarks := ParseRemarks(raw); remarks != nil {
			t.Errorf("raw %s: expected nil, got %v", raw, remarks)
		}
	}
}

func TestReadByUser(t *testing.T) {
	r := Remark{UserID: 1, ReadBy: []int64{1, 3}}

	if !r.ReadByUser(1) {
		t.Fatal("author always counts as having read")
	}
	if !r.ReadByUser(3) {
		t.Fatal("listed reader must count as read")
	}
	if r.ReadByUser(2) {
		t.Fatal("unlisted user must count as unread")
	}
}

func TestMarkReadIsIdempotent(t *testing.T) {
	r := Remark{UserID: 1, ReadBy: []int64{1}}

	first := r.MarkRead(2)
	if !first.ReadByUser(2) {
		t.Fatal("mark read did not stick")
	}
	second := first.MarkRead(2)
	if len(second.ReadBy) != len(first.ReadBy) {
		t.Fatalf("marking twice grew read_by: %v", second.ReadBy)
	}
	// Original is untouched.
	if r.ReadByUser(2) {
		t.Fatal("MarkRead must not mutate the receiver")
	}
}

func TestEncodeRemarksRoundTrip(t *testing.T) {
	encoded, err := EncodeRemarks([]Remark{{UserID: 1, Message: "ok", ReadBy: []int64{1}}})
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	// The encoded form is the inner JSON; wrapped as a string it must parse
	// back through ParseRemarks.
	wrapped, _ := json.Marshal(encoded)
	remarks := ParseRemarks(wrapped)
	if len(remarks) != 1 || remarks[0].Message != "ok" {
		t.Fatalf("round trip failed: %+v", remarks)
	}
}

func TestEncodeRemarksNil(t *testing.T) {
	encoded, err := EncodeRemarks(nil)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if encoded != "[]" {
		t.Fatalf("nil thread must encode as empty array, got %q", encoded)
	}
}
