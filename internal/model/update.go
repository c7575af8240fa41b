package model

import "time"

// UserUpdate is a partial update of the users row. Nil fields are left
// untouched. Email and role are deliberately not updatable here.
type UserUpdate struct {
	Name       *string `json:"name"`
	Bio        *string `json:"bio"`
	Branch     *string `json:"branch"`
	Phone      *string `json:"phone"`
	RollNumber *string `json:"roll_number"`
	Year       *string `json:"year"`
}

// StudentProfileUpdate is a partial update of a student profile row.
type StudentProfileUpdate struct {
	RollNumber  *string  `json:"roll_number"`
	Semester    *int     `json:"semester"`
	YearOfStudy *int     `json:"year_of_study"`
	Department  *string  `json:"department"`
	CGPA        *float64 `json:"cgpa"`
}

// TeacherProfileUpdate is a partial update of a teacher profile row.
type TeacherProfileUpdate struct {
	Department     *string    `json:"department"`
	Designation    *string    `json:"designation"`
	EmployeeID     *string    `json:"employee_id"`
	Specialization *string    `json:"specialization"`
	JoiningDate    *time.Time `json:"joining_date"`
}

// CommitteeProfileUpdate is a partial update of a committee profile row.
type CommitteeProfileUpdate struct {
	CommitteeName    *string    `json:"committee_name"`
	Position         *string    `json:"position"`
	TermStart        *time.Time `json:"term_start"`
	TermEnd          *time.Time `json:"term_end"`
	Responsibilities *string    `json:"responsibilities"`
}

// ProfileChanges is the superset of fields accepted by the profile update
// entry point. The resolver picks the subset matching the supplied role.
type ProfileChanges struct {
	RollNumber       *string    `json:"roll_number"`
	Semester         *int       `json:"semester"`
	YearOfStudy      *int       `json:"year_of_study"`
	Department       *string    `json:"department"`
	CGPA             *float64   `json:"cgpa"`
	Designation      *string    `json:"designation"`
	EmployeeID       *string    `json:"employee_id"`
	Specialization   *string    `json:"specialization"`
	JoiningDate      *time.Time `json:"joining_date"`
	CommitteeName    *string    `json:"committee_name"`
	Position         *string    `json:"position"`
	TermStart        *time.Time `json:"term_start"`
	TermEnd          *time.Time `json:"term_end"`
	Responsibilities *string    `json:"responsibilities"`
}
