// Package profile resolves role-specific profile records. Each role maps
// to exactly one profile table; the dispatch is on the supplied role tag,
// not on the user's stored role, so a mismatched tag looks in the wrong
// table and comes back absent.
package profile

import (
	"context"

	"campusevents/internal/model"
)

// Store is the persistence surface the resolver needs.
type Store interface {
	StudentProfile(ctx context.Context, userID string) (*model.StudentProfile, error)
	TeacherProfile(ctx context.Context, userID string) (*model.TeacherProfile, error)
	CommitteeProfile(ctx context.Context, userID string) (*model.CommitteeProfile, error)
	InsertStudentProfile(ctx context.Context, p *model.StudentProfile) error
	InsertTeacherProfile(ctx context.Context, p *model.TeacherProfile) error
	InsertCommitteeProfile(ctx context.Context, p *model.CommitteeProfile) error
	UpdateStudentProfile(ctx context.Context, userID string, changes model.StudentProfileUpdate) (bool, error)
	UpdateTeacherProfile(ctx context.Context, userID string, changes model.TeacherProfileUpdate) (bool, error)
	UpdateCommitteeProfile(ctx context.Context, userID string, changes model.CommitteeProfileUpdate) (bool, error)
}

// Profile is a tagged union over the three role variants. Exactly one of
// the variant pointers is set, matching Role.
type Profile struct {
	Role      model.Role              `json:"role"`
	Student   *model.StudentProfile   `json:"student,omitempty"`
	Teacher   *model.TeacherProfile   `json:"teacher,omitempty"`
	Committee *model.CommitteeProfile `json:"committee,omitempty"`
}

// Resolver loads and edits the profile variant matching a role.
type Resolver struct {
	store Store
}

// NewResolver creates a resolver backed by a store.
func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// Resolve loads the profile row for (userID, role). An unknown role or a
// missing row yields (nil, nil), never an error.
func (r *Resolver) Resolve(ctx context.Context, userID string, role model.Role) (*Profile, error) {
	switch role {
	case model.RoleStudent:
		p, err := r.store.StudentProfile(ctx, userID)
		if err != nil || p == nil {
			return nil, err
		}
		return &Profile{Role: role, Student: p}, nil
	case model.RoleTeacher:
		p, err := r.store.TeacherProfile(ctx, userID)
		if err != nil || p == nil {
			return nil, err
		}
		return &Profile{Role: role, Teacher: p}, nil
	case model.RoleCommittee:
		p, err := r.store.CommitteeProfile(ctx, userID)
		if err != nil || p == nil {
			return nil, err
		}
		return &Profile{Role: role, Committee: p}, nil
	default:
		return nil, nil
	}
}

// Create inserts an empty profile row of the variant matching the role.
// Called once at signup so later partial updates have a row to land on.
func (r *Resolver) Create(ctx context.Context, userID string, role model.Role) error {
	switch role {
	case model.RoleStudent:
		return r.store.InsertStudentProfile(ctx, &model.StudentProfile{ID: userID})
	case model.RoleTeacher:
		return r.store.InsertTeacherProfile(ctx, &model.TeacherProfile{ID: userID})
	case model.RoleCommittee:
		return r.store.InsertCommitteeProfile(ctx, &model.CommitteeProfile{ID: userID})
	default:
		return nil
	}
}

// Update applies the role-relevant subset of changes to the resolved table
// and reports whether a row existed. A missing row means no effect; this
// is distinct from an update that landed.
func (r *Resolver) Update(ctx context.Context, userID string, role model.Role, c model.ProfileChanges) (bool, error) {
	switch role {
	case model.RoleStudent:
		return r.store.UpdateStudentProfile(ctx, userID, model.StudentProfileUpdate{
			RollNumber:  c.RollNumber,
			Semester:    c.Semester,
			YearOfStudy: c.YearOfStudy,
			Department:  c.Department,
			CGPA:        c.CGPA,
		})
	case model.RoleTeacher:
		return r.store.UpdateTeacherProfile(ctx, userID, model.TeacherProfileUpdate{
			Department:     c.Department,
			Designation:    c.Designation,
			EmployeeID:     c.EmployeeID,
			Specialization: c.Specialization,
			JoiningDate:    c.JoiningDate,
		})
	case model.RoleCommittee:
		return r.store.UpdateCommitteeProfile(ctx, userID, model.CommitteeProfileUpdate{
			CommitteeName:    c.CommitteeName,
			Position:         c.Position,
			TermStart:        c.TermStart,
			TermEnd:          c.TermEnd,
			Responsibilities: c.Responsibilities,
		})
	default:
		return false, nil
	}
}
