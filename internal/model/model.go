package model

import "time"

// User is an account holder. Optional descriptive fields default to the
// empty string; role never changes after creation.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	Name         string    `json:"name,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	Branch       string    `json:"branch,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	RollNumber   string    `json:"roll_number,omitempty"`
	Year         string    `json:"year,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// StudentProfile shares its primary key with the owning user.
type StudentProfile struct {
	ID          string    `json:"id"`
	RollNumber  string    `json:"roll_number,omitempty"`
	Semester    *int      `json:"semester,omitempty"`
	YearOfStudy *int      `json:"year_of_study,omitempty"`
	Department  string    `json:"department,omitempty"`
	CGPA        *float64  `json:"cgpa,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TeacherProfile shares its primary key with the owning user.
type TeacherProfile struct {
	ID             string     `json:"id"`
	Department     string     `json:"department,omitempty"`
	Designation    string     `json:"designation,omitempty"`
	EmployeeID     string     `json:"employee_id,omitempty"`
	Specialization string     `json:"specialization,omitempty"`
	JoiningDate    *time.Time `json:"joining_date,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// CommitteeProfile shares its primary key with the owning user.
type CommitteeProfile struct {
	ID               string     `json:"id"`
	CommitteeName    string     `json:"committee_name,omitempty"`
	Position         string     `json:"position,omitempty"`
	TermStart        *time.Time `json:"term_start,omitempty"`
	TermEnd          *time.Time `json:"term_end,omitempty"`
	Responsibilities string     `json:"responsibilities,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// Event is immutable once created; there is no update operation.
// Date and Time are kept as display strings (YYYY-MM-DD / HH:MM).
type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Location    string    `json:"location"`
	OrganizerID string    `json:"organizer_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// RegistrationStatus is the approval state of a registration.
type RegistrationStatus string

const (
	RegistrationPending  RegistrationStatus = "pending"
	RegistrationApproved RegistrationStatus = "approved"
	RegistrationRejected RegistrationStatus = "rejected"
)

// Terminal reports whether no further transition is allowed.
func (s RegistrationStatus) Terminal() bool {
	return s == RegistrationApproved || s == RegistrationRejected
}

// Registration tracks a user's request to attend an event. Created as
// pending; moves exactly once to approved or rejected.
type Registration struct {
	ID        string             `json:"id"`
	UserID    string             `json:"user_id"`
	EventID   string             `json:"event_id"`
	Status    RegistrationStatus `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// RegistrationWithEvent joins a registration with its referenced event
// for display.
type RegistrationWithEvent struct {
	Registration
	Event Event `json:"event"`
}

// AttendanceStatus marks presence at an event.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
)

// Valid reports whether the status is present or absent.
func (s AttendanceStatus) Valid() bool {
	return s == AttendancePresent || s == AttendanceAbsent
}

// Attendance is recorded independently of registration state.
type Attendance struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	EventID   string           `json:"event_id"`
	Status    AttendanceStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
}

// PaymentStatus is the settlement state of a payment.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// Payment records a fee for a (user, event) pair.
type Payment struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id"`
	EventID       string        `json:"event_id"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	Amount        float64       `json:"amount"`
	TransactionID string        `json:"transaction_id,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

// Notification is a message shown to one user.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// Preferences is an open mapping of preference keys to values.
type Preferences map[string]any

// Settings holds one preferences row per user.
type Settings struct {
	ID          string      `json:"id"`
	UserID      string      `json:"user_id"`
	Preferences Preferences `json:"preferences"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
