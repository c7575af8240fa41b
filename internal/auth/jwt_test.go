package auth_test

import (
	"testing"
	"time"

	"campusevents/internal/auth"
)

func TestIssueAndParse(t *testing.T) {
	pair, err := auth.Issue("user-1", "teacher", "campus-events", "secret", time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := auth.Parse(pair.AccessToken, "secret", "campus-events")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Subject != "user-1" {
		t.Errorf("subject = %q, want user-1", claims.Subject)
	}
	if claims.Role != "teacher" {
		t.Errorf("role = %q, want teacher", claims.Role)
	}
}

func TestParseRejectsWrongKey(t *testing.T) {
	pair, err := auth.Issue("user-1", "student", "campus-events", "secret", time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := auth.Parse(pair.AccessToken, "other-secret", "campus-events"); err == nil {
		t.Fatal("expected error for wrong signing key")
	}
}

func TestParseRejectsWrongIssuer(t *testing.T) {
	pair, err := auth.Issue("user-1", "student", "someone-else", "secret", time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := auth.Parse(pair.AccessToken, "secret", "campus-events"); err == nil {
		t.Fatal("expected error for issuer mismatch")
	}
}

func TestParseRejectsExpired(t *testing.T) {
	pair, err := auth.Issue("user-1", "student", "campus-events", "secret", -time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := auth.Parse(pair.AccessToken, "secret", "campus-events"); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := auth.HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !auth.CheckPassword(hash, "correct horse battery") {
		t.Error("correct password rejected")
	}
	if auth.CheckPassword(hash, "wrong password") {
		t.Error("wrong password accepted")
	}
}
