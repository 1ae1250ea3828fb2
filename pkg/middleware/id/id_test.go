package id_test

import (
	"encoding/hex"
	"testing"

	"github.com/franciscopereira987/taisteala/pkg/middleware/id"
)

func TestGenerate(t *testing.T) {
	value := id.Generate()
	raw, err := hex.DecodeString(value)
	if err != nil {
		t.Fatalf("failed with error: %s", err)
	}
	if len(raw) != id.Len {
		t.Fatalf("expected: %d bytes, got: %d", id.Len, len(raw))
	}
	if other := id.Generate(); other == value {
		t.Fatalf("expected different ids, got: %s twice", value)
	}
}
