package store

import (
	"context"
	"time"

	"campusevents/internal/model"
)

const (
	studentProfileColumns   = "id, roll_number, semester, year_of_study, department, cgpa, created_at, updated_at"
	teacherProfileColumns   = "id, department, designation, employee_id, specialization, joining_date, created_at, updated_at"
	committeeProfileColumns = "id, committee_name, position, term_start, term_end, responsibilities, created_at, updated_at"
)

func scanStudentProfile(r rowScanner) (model.StudentProfile, error) {
	var p model.StudentProfile
	err := r.Scan(&p.ID, &p.RollNumber, &p.Semester, &p.YearOfStudy, &p.Department,
		&p.CGPA, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func scanTeacherProfile(r rowScanner) (model.TeacherProfile, error) {
	var p model.TeacherProfile
	err := r.Scan(&p.ID, &p.Department, &p.Designation, &p.EmployeeID,
		&p.Specialization, &p.JoiningDate, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func scanCommitteeProfile(r rowScanner) (model.CommitteeProfile, error) {
	var p model.CommitteeProfile
	err := r.Scan(&p.ID, &p.CommitteeName, &p.Position, &p.TermStart, &p.TermEnd,
		&p.Responsibilities, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// StudentProfile returns the student profile row keyed by the user id, or
// nil when absent.
func (s *Store) StudentProfile(ctx context.Context, userID string) (*model.StudentProfile, error) {
	return fetchOne(ctx, s.db, tableStudentProfiles, studentProfileColumns, Filter{"id", userID}, scanStudentProfile)
}

// TeacherProfile returns the teacher profile row keyed by the user id, or
// nil when absent.
func (s *Store) TeacherProfile(ctx context.Context, userID string) (*model.TeacherProfile, error) {
	return fetchOne(ctx, s.db, tableTeacherProfiles, teacherProfileColumns, Filter{"id", userID}, scanTeacherProfile)
}

// CommitteeProfile returns the committee profile row keyed by the user id,
// or nil when absent.
func (s *Store) CommitteeProfile(ctx context.Context, userID string) (*model.CommitteeProfile, error) {
	return fetchOne(ctx, s.db, tableCommitteeProfiles, committeeProfileColumns, Filter{"id", userID}, scanCommitteeProfile)
}

// InsertStudentProfile creates the 1:1 profile row for a student user.
func (s *Store) InsertStudentProfile(ctx context.Context, p *model.StudentProfile) error {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return insertRow(ctx, s.db, tableStudentProfiles,
		[]string{"id", "roll_number", "semester", "year_of_study", "department", "cgpa", "created_at", "updated_at"},
		[]any{p.ID, p.RollNumber, p.Semester, p.YearOfStudy, p.Department, p.CGPA, p.CreatedAt, p.UpdatedAt})
}

// InsertTeacherProfile creates the 1:1 profile row for a teacher user.
func (s *Store) InsertTeacherProfile(ctx context.Context, p *model.TeacherProfile) error {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return insertRow(ctx, s.db, tableTeacherProfiles,
		[]string{"id", "department", "designation", "employee_id", "specialization", "joining_date", "created_at", "updated_at"},
		[]any{p.ID, p.Department, p.Designation, p.EmployeeID, p.Specialization, p.JoiningDate, p.CreatedAt, p.UpdatedAt})
}

// InsertCommitteeProfile creates the 1:1 profile row for a committee user.
func (s *Store) InsertCommitteeProfile(ctx context.Context, p *model.CommitteeProfile) error {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return insertRow(ctx, s.db, tableCommitteeProfiles,
		[]string{"id", "committee_name", "position", "term_start", "term_end", "responsibilities", "created_at", "updated_at"},
		[]any{p.ID, p.CommitteeName, p.Position, p.TermStart, p.TermEnd, p.Responsibilities, p.CreatedAt, p.UpdatedAt})
}

// UpdateStudentProfile applies a partial update and reports whether the row
// existed. A missing row is not an error; callers needing create semantics
// must insert explicitly.
func (s *Store) UpdateStudentProfile(ctx context.Context, userID string, changes model.StudentProfileUpdate) (bool, error) {
	m := map[string]any{}
	put(m, "roll_number", changes.RollNumber)
	put(m, "semester", changes.Semester)
	put(m, "year_of_study", changes.YearOfStudy)
	put(m, "department", changes.Department)
	put(m, "cgpa", changes.CGPA)
	m["updated_at"] = time.Now().UTC()
	n, err := updateRows(ctx, s.db, tableStudentProfiles, Filter{"id", userID}, m)
	return n > 0, err
}

// UpdateTeacherProfile applies a partial update and reports whether the row
// existed.
func (s *Store) UpdateTeacherProfile(ctx context.Context, userID string, changes model.TeacherProfileUpdate) (bool, error) {
	m := map[string]any{}
	put(m, "department", changes.Department)
	put(m, "designation", changes.Designation)
	put(m, "employee_id", changes.EmployeeID)
	put(m, "specialization", changes.Specialization)
	put(m, "joining_date", changes.JoiningDate)
	m["updated_at"] = time.Now().UTC()
	n, err := updateRows(ctx, s.db, tableTeacherProfiles, Filter{"id", userID}, m)
	return n > 0, err
}

// UpdateCommitteeProfile applies a partial update and reports whether the
// row existed.
func (s *Store) UpdateCommitteeProfile(ctx context.Context, userID string, changes model.CommitteeProfileUpdate) (bool, error) {
	m := map[string]any{}
	put(m, "committee_name", changes.CommitteeName)
	put(m, "position", changes.Position)
	put(m, "term_start", changes.TermStart)
	put(m, "term_end", changes.TermEnd)
	put(m, "responsibilities", changes.Responsibilities)
	m["updated_at"] = time.Now().UTC()
	n, err := updateRows(ctx, s.db, tableCommitteeProfiles, Filter{"id", userID}, m)
	return n > 0, err
}
