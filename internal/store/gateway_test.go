package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestErrorFormat(t *testing.T) {
	err := &Error{Code: CodeQueryFailed, Message: "boom"}
	want := "store: [query_failed] boom"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIsConflict(t *testing.T) {
	if !IsConflict(&Error{Code: CodeUniqueViolation, Message: "dup"}) {
		t.Error("unique violation should be a conflict")
	}
	if IsConflict(&Error{Code: CodeExecFailed, Message: "boom"}) {
		t.Error("exec failure is not a conflict")
	}
	if IsConflict(errors.New("plain")) {
		t.Error("plain error is not a conflict")
	}
	// Wrapped store errors still classify.
	wrapped := fmt.Errorf("insert user: %w", &Error{Code: CodeUniqueViolation, Message: "dup"})
	if !IsConflict(wrapped) {
		t.Error("wrapped conflict should still be detected")
	}
}

func TestClassifyUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", Message: "duplicate key value"}

	got := classify(CodeExecFailed, pgErr)
	if got.Code != CodeUniqueViolation {
		t.Errorf("code = %q, want unique_violation", got.Code)
	}

	other := classify(CodeExecFailed, errors.New("connection reset"))
	if other.Code != CodeExecFailed {
		t.Errorf("code = %q, want exec_failed", other.Code)
	}
}

func TestPutSkipsNil(t *testing.T) {
	m := map[string]any{}
	name := "Asha"
	put(m, "name", &name)
	put[string](m, "bio", nil)

	if m["name"] != "Asha" {
		t.Errorf("name missing: %v", m)
	}
	if _, ok := m["bio"]; ok {
		t.Error("nil field must not produce a column change")
	}
}
