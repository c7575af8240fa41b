package model_test

import (
	"testing"

	"campusevents/internal/model"
)

func TestParseRole(t *testing.T) {
	cases := []struct {
		in   string
		want model.Role
		ok   bool
	}{
		{"student", model.RoleStudent, true},
		{"teacher", model.RoleTeacher, true},
		{"committee", model.RoleCommittee, true},
		{"admin", "", false},
		{"Student", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := model.ParseRole(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("ParseRole(%q) = (%q, %v), want (%q, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestRoleStaff(t *testing.T) {
	if model.RoleStudent.Staff() {
		t.Error("student should not be staff")
	}
	if !model.RoleTeacher.Staff() {
		t.Error("teacher should be staff")
	}
	if !model.RoleCommittee.Staff() {
		t.Error("committee should be staff")
	}
}

func TestRegistrationStatusTerminal(t *testing.T) {
	if model.RegistrationPending.Terminal() {
		t.Error("pending must allow transitions")
	}
	if !model.RegistrationApproved.Terminal() || !model.RegistrationRejected.Terminal() {
		t.Error("approved and rejected are terminal")
	}
}

func TestAttendanceStatusValid(t *testing.T) {
	if !model.AttendancePresent.Valid() || !model.AttendanceAbsent.Valid() {
		t.Error("present and absent are valid")
	}
	if model.AttendanceStatus("late").Valid() {
		t.Error("unknown status must be invalid")
	}
}
