package auth

import (
	"testing"
	"time"
)

func TestParserRoundTrip(t *testing.T) {
	parser := NewParser("test-secret")

	token, err := parser.Issue(42, time.Minute)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	id, err := parser.ProfileID(token)
	if err != nil {
		t.Fatalf("ProfileID returned error: %v", err)
	}
	if id != 42 {
		t.Errorf("ProfileID = %d, want 42", id)
	}
}

func TestParserRejectsWrongSecret(t *testing.T) {
	token, err := NewParser("secret-a").Issue(7, time.Minute)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := NewParser("secret-b").ProfileID(token); err == nil {
		t.Fatal("expected error for token signed with a different secret")
	}
}

func TestParserRejectsExpiredToken(t *testing.T) {
	parser := NewParser("test-secret")
	token, err := parser.Issue(7, -time.Minute)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := parser.ProfileID(token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestParserRejectsGarbage(t *testing.T) {
	if _, err := NewParser("test-secret").ProfileID("not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
