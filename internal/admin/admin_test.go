package admin

import "testing"

func TestSharedSecret(t *testing.T) {
	a := NewSharedSecret("hunter22")
	if !a.Authorize("hunter22") {
		t.Fatalf("expected exact secret to authorize")
	}
	for _, s := range []string{"", "hunter2", "Hunter22", "hunter22 "} {
		if a.Authorize(s) {
			t.Fatalf("expected %q to be rejected", s)
		}
	}
}

func TestEmptySecretDisablesAdmin(t *testing.T) {
	if NewSharedSecret("").Authorize("") {
		t.Fatalf("empty configured secret must never authorize")
	}
}
