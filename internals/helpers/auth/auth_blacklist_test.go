package helper

import "testing"

func TestTokenDigest(t *testing.T) {
	a := TokenDigest("token", "secret")
	if len(a) != 64 {
		t.Fatalf("digest length: %d", len(a))
	}
	if a != TokenDigest("token", "secret") {
		t.Fatal("digest must be deterministic")
	}
	if a == TokenDigest("token", "other") || a == TokenDigest("other", "secret") {
		t.Fatal("digest must depend on token and secret")
	}
}
