package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"campusevents/internal/model"
)

// Memory is a map-backed store for dev and tests, selected with
// STORE_BACKEND=memory. It mirrors the Postgres semantics: nil for absent
// single-row lookups, conflict errors for unique violations, and
// rows-matched reporting on updates.
type Memory struct {
	mu sync.Mutex

	users             map[string]model.User
	studentProfiles   map[string]model.StudentProfile
	teacherProfiles   map[string]model.TeacherProfile
	committeeProfiles map[string]model.CommitteeProfile
	events            map[string]model.Event
	registrations     map[string]model.Registration
	attendance        map[string]model.Attendance
	payments          map[string]model.Payment
	notifications     map[string]model.Notification
	settings          map[string]model.Settings
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		users:             make(map[string]model.User),
		studentProfiles:   make(map[string]model.StudentProfile),
		teacherProfiles:   make(map[string]model.TeacherProfile),
		committeeProfiles: make(map[string]model.CommitteeProfile),
		events:            make(map[string]model.Event),
		registrations:     make(map[string]model.Registration),
		attendance:        make(map[string]model.Attendance),
		payments:          make(map[string]model.Payment),
		notifications:     make(map[string]model.Notification),
		settings:          make(map[string]model.Settings),
	}
}

// -------- Users --------

func (m *Memory) UserByID(ctx context.Context, id string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (m *Memory) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (m *Memory) AllUsers(ctx context.Context) ([]model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	res := make([]model.User, 0, len(m.users))
	for _, u := range m.users {
		res = append(res, u)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.Before(res[j].CreatedAt) })
	return res, nil
}

func (m *Memory) InsertUser(ctx context.Context, u *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return model.ErrEmailTaken
		}
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	m.users[u.ID] = *u
	return nil
}

func (m *Memory) UpdateUser(ctx context.Context, id string, changes model.UserUpdate) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return false, nil
	}
	setStr(&u.Name, changes.Name)
	setStr(&u.Bio, changes.Bio)
	setStr(&u.Branch, changes.Branch)
	setStr(&u.Phone, changes.Phone)
	setStr(&u.RollNumber, changes.RollNumber)
	setStr(&u.Year, changes.Year)
	u.UpdatedAt = time.Now().UTC()
	m.users[id] = u
	return true, nil
}

// -------- Profiles --------

func (m *Memory) StudentProfile(ctx context.Context, userID string) (*model.StudentProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.studentProfiles[userID]; ok {
		return &p, nil
	}
	return nil, nil
}

func (m *Memory) TeacherProfile(ctx context.Context, userID string) (*model.TeacherProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.teacherProfiles[userID]; ok {
		return &p, nil
	}
	return nil, nil
}

func (m *Memory) CommitteeProfile(ctx context.Context, userID string) (*model.CommitteeProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.committeeProfiles[userID]; ok {
		return &p, nil
	}
	return nil, nil
}

func (m *Memory) InsertStudentProfile(ctx context.Context, p *model.StudentProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.studentProfiles[p.ID]; ok {
		return &Error{Code: CodeUniqueViolation, Message: "student profile exists"}
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	m.studentProfiles[p.ID] = *p
	return nil
}

func (m *Memory) InsertTeacherProfile(ctx context.Context, p *model.TeacherProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.teacherProfiles[p.ID]; ok {
		return &Error{Code: CodeUniqueViolation, Message: "teacher profile exists"}
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	m.teacherProfiles[p.ID] = *p
	return nil
}

func (m *Memory) InsertCommitteeProfile(ctx context.Context, p *model.CommitteeProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.committeeProfiles[p.ID]; ok {
		return &Error{Code: CodeUniqueViolation, Message: "committee profile exists"}
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	m.committeeProfiles[p.ID] = *p
	return nil
}

func (m *Memory) UpdateStudentProfile(ctx context.Context, userID string, changes model.StudentProfileUpdate) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.studentProfiles[userID]
	if !ok {
		return false, nil
	}
	setStr(&p.RollNumber, changes.RollNumber)
	if changes.Semester != nil {
		v := *changes.Semester
		p.Semester = &v
	}
	if changes.YearOfStudy != nil {
		v := *changes.YearOfStudy
		p.YearOfStudy = &v
	}
	setStr(&p.Department, changes.Department)
	if changes.CGPA != nil {
		v := *changes.CGPA
		p.CGPA = &v
	}
	p.UpdatedAt = time.Now().UTC()
	m.studentProfiles[userID] = p
	return true, nil
}

func (m *Memory) UpdateTeacherProfile(ctx context.Context, userID string, changes model.TeacherProfileUpdate) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.teacherProfiles[userID]
	if !ok {
		return false, nil
	}
	setStr(&p.Department, changes.Department)
	setStr(&p.Designation, changes.Designation)
	setStr(&p.EmployeeID, changes.EmployeeID)
	setStr(&p.Specialization, changes.Specialization)
	if changes.JoiningDate != nil {
		v := *changes.JoiningDate
		p.JoiningDate = &v
	}
	p.UpdatedAt = time.Now().UTC()
	m.teacherProfiles[userID] = p
	return true, nil
}

func (m *Memory) UpdateCommitteeProfile(ctx context.Context, userID string, changes model.CommitteeProfileUpdate) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.committeeProfiles[userID]
	if !ok {
		return false, nil
	}
	setStr(&p.CommitteeName, changes.CommitteeName)
	setStr(&p.Position, changes.Position)
	if changes.TermStart != nil {
		v := *changes.TermStart
		p.TermStart = &v
	}
	if changes.TermEnd != nil {
		v := *changes.TermEnd
		p.TermEnd = &v
	}
	setStr(&p.Responsibilities, changes.Responsibilities)
	p.UpdatedAt = time.Now().UTC()
	m.committeeProfiles[userID] = p
	return true, nil
}

// -------- Events --------

func (m *Memory) AllEvents(ctx context.Context) ([]model.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	res := make([]model.Event, 0, len(m.events))
	for _, e := range m.events {
		res = append(res, e)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.Before(res[j].CreatedAt) })
	return res, nil
}

func (m *Memory) EventByID(ctx context.Context, id string) (*model.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.events[id]; ok {
		return &e, nil
	}
	return nil, nil
}

func (m *Memory) InsertEvent(ctx context.Context, e *model.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	e.CreatedAt = time.Now().UTC()
	m.events[e.ID] = *e
	return nil
}

// -------- Registrations --------

func (m *Memory) RegistrationByID(ctx context.Context, id string) (*model.Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.registrations[id]; ok {
		return &r, nil
	}
	return nil, nil
}

func (m *Memory) RegistrationByUserAndEvent(ctx context.Context, userID, eventID string) (*model.Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.registrations {
		if r.UserID == userID && r.EventID == eventID {
			r := r
			return &r, nil
		}
	}
	return nil, nil
}

func (m *Memory) InsertRegistration(ctx context.Context, reg *model.Registration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.registrations {
		if r.UserID == reg.UserID && r.EventID == reg.EventID {
			return model.ErrDuplicateRegistration
		}
	}
	if reg.ID == "" {
		reg.ID = uuid.NewString()
	}
	if reg.Status == "" {
		reg.Status = model.RegistrationPending
	}
	now := time.Now().UTC()
	reg.CreatedAt = now
	reg.UpdatedAt = now
	m.registrations[reg.ID] = *reg
	return nil
}

func (m *Memory) UpdateRegistrationStatus(ctx context.Context, id string, status model.RegistrationStatus) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.registrations[id]
	if !ok {
		return false, nil
	}
	r.Status = status
	r.UpdatedAt = time.Now().UTC()
	m.registrations[id] = r
	return true, nil
}

func (m *Memory) RegistrationsWithEvents(ctx context.Context, userID string) ([]model.RegistrationWithEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []model.RegistrationWithEvent
	for _, r := range m.registrations {
		if r.UserID != userID {
			continue
		}
		rw := model.RegistrationWithEvent{Registration: r}
		if e, ok := m.events[r.EventID]; ok {
			rw.Event = e
		}
		res = append(res, rw)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })
	return res, nil
}

// -------- Attendance --------

func (m *Memory) InsertAttendance(ctx context.Context, a *model.Attendance) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	a.CreatedAt = time.Now().UTC()
	m.attendance[a.ID] = *a
	return nil
}

func (m *Memory) AttendanceForEvent(ctx context.Context, eventID string) ([]model.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []model.Attendance
	for _, a := range m.attendance {
		if a.EventID == eventID {
			res = append(res, a)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })
	return res, nil
}

// -------- Payments --------

func (m *Memory) InsertPayment(ctx context.Context, p *model.Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.PaymentStatus == "" {
		p.PaymentStatus = model.PaymentPending
	}
	p.CreatedAt = time.Now().UTC()
	m.payments[p.ID] = *p
	return nil
}

func (m *Memory) PaymentByID(ctx context.Context, id string) (*model.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.payments[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (m *Memory) PaymentsForUser(ctx context.Context, userID string) ([]model.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []model.Payment
	for _, p := range m.payments {
		if p.UserID == userID {
			res = append(res, p)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })
	return res, nil
}

func (m *Memory) UpdatePaymentStatus(ctx context.Context, id string, status model.PaymentStatus, transactionID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.payments[id]
	if !ok {
		return false, nil
	}
	p.PaymentStatus = status
	if transactionID != "" {
		p.TransactionID = transactionID
	}
	m.payments[id] = p
	return true, nil
}

// -------- Notifications --------

func (m *Memory) NotificationsForUser(ctx context.Context, userID string) ([]model.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []model.Notification
	for _, n := range m.notifications {
		if n.UserID == userID {
			res = append(res, n)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })
	return res, nil
}

func (m *Memory) InsertNotification(ctx context.Context, n *model.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	n.CreatedAt = time.Now().UTC()
	m.notifications[n.ID] = *n
	return nil
}

func (m *Memory) MarkNotificationRead(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.notifications[id]
	if !ok {
		return false, nil
	}
	n.IsRead = true
	m.notifications[id] = n
	return true, nil
}

// -------- Settings --------

func (m *Memory) SettingsByUser(ctx context.Context, userID string) (*model.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, st := range m.settings {
		if st.UserID == userID {
			st := st
			st.Preferences = copyPrefs(st.Preferences)
			return &st, nil
		}
	}
	return nil, nil
}

func (m *Memory) InsertSettings(ctx context.Context, st *model.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.settings {
		if existing.UserID == st.UserID {
			return &Error{Code: CodeUniqueViolation, Message: "settings row exists for user"}
		}
	}
	if st.ID == "" {
		st.ID = uuid.NewString()
	}
	if st.Preferences == nil {
		st.Preferences = model.Preferences{}
	}
	now := time.Now().UTC()
	st.CreatedAt = now
	st.UpdatedAt = now
	stored := *st
	stored.Preferences = copyPrefs(st.Preferences)
	m.settings[st.ID] = stored
	return nil
}

func (m *Memory) UpdateSettingsPreferences(ctx context.Context, userID string, prefs model.Preferences) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, st := range m.settings {
		if st.UserID == userID {
			st.Preferences = copyPrefs(prefs)
			st.UpdatedAt = time.Now().UTC()
			m.settings[id] = st
			return true, nil
		}
	}
	return false, nil
}

func setStr(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func copyPrefs(p model.Preferences) model.Preferences {
	out := make(model.Preferences, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
