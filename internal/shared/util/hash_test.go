package util

import "testing"

func TestNamespaceKeyPassthrough(t *testing.T) {
	if got := NamespaceKey("workbooks"); got != "workbooks" {
		t.Fatalf("expected passthrough, got %s", got)
	}
}

func TestNamespaceKeyHashesUnsafe(t *testing.T) {
	id := "Dept Finance/2026"
	got := NamespaceKey(id)
	if got != NamespaceKey(id) {
		t.Fatalf("expected stable hash, got %s", got)
	}
	for _, ch := range got {
		if !((ch >= 'a' && ch <= 'f') || (ch >= '0' && ch <= '9')) {
			t.Fatalf("hash contains non-hex character: %c", ch)
		}
	}
	if len(got) != 64 {
		t.Fatalf("expected 64 hex characters, got %d", len(got))
	}
}

func TestNamespaceKeyEmptyHashes(t *testing.T) {
	if got := NamespaceKey(""); len(got) != 64 {
		t.Fatalf("expected hashed empty namespace, got %q", got)
	}
}
