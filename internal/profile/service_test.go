package profile_test

import (
	"context"
	"testing"

	"campusevents/internal/model"
	"campusevents/internal/profile"
	"campusevents/internal/store"
)

func newResolver() *profile.Resolver {
	return profile.NewResolver(store.NewMemory())
}

func TestResolveDispatchesOnRole(t *testing.T) {
	ctx := context.Background()
	r := newResolver()

	if err := r.Create(ctx, "u1", model.RoleStudent); err != nil {
		t.Fatalf("create: %v", err)
	}

	p, err := r.Resolve(ctx, "u1", model.RoleStudent)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if p == nil || p.Role != model.RoleStudent || p.Student == nil {
		t.Fatalf("expected student variant, got %+v", p)
	}
	if p.Teacher != nil || p.Committee != nil {
		t.Fatal("only the matching variant may be set")
	}
}

func TestResolveMismatchedRoleIsAbsent(t *testing.T) {
	ctx := context.Background()
	r := newResolver()

	if err := r.Create(ctx, "u1", model.RoleStudent); err != nil {
		t.Fatalf("create: %v", err)
	}

	// The dispatch follows the supplied role tag, so asking for a teacher
	// profile for a student looks in the wrong table and finds nothing.
	p, err := r.Resolve(ctx, "u1", model.RoleTeacher)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if p != nil {
		t.Fatalf("expected absent profile, got %+v", p)
	}
}

func TestResolveUnknownRoleIsAbsent(t *testing.T) {
	ctx := context.Background()
	r := newResolver()

	p, err := r.Resolve(ctx, "u1", model.Role("admin"))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if p != nil {
		t.Fatalf("unknown role must resolve to nothing, got %+v", p)
	}
}

func TestUpdateReportsMissingRow(t *testing.T) {
	ctx := context.Background()
	r := newResolver()

	dept := "Physics"
	ok, err := r.Update(ctx, "ghost", model.RoleStudent, model.ProfileChanges{Department: &dept})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if ok {
		t.Fatal("update with no row must report false")
	}
}

func TestUpdateAppliesRoleSubset(t *testing.T) {
	ctx := context.Background()
	r := newResolver()

	if err := r.Create(ctx, "u1", model.RoleTeacher); err != nil {
		t.Fatalf("create: %v", err)
	}

	dept := "Mathematics"
	desig := "Professor"
	ok, err := r.Update(ctx, "u1", model.RoleTeacher, model.ProfileChanges{
		Department:  &dept,
		Designation: &desig,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !ok {
		t.Fatal("update should have found the seeded row")
	}

	p, err := r.Resolve(ctx, "u1", model.RoleTeacher)
	if err != nil || p == nil || p.Teacher == nil {
		t.Fatalf("resolve after update: %+v, %v", p, err)
	}
	if p.Teacher.Department != dept || p.Teacher.Designation != desig {
		t.Fatalf("changes not applied: %+v", p.Teacher)
	}
}

func TestUpdateUnknownRoleNoEffect(t *testing.T) {
	ctx := context.Background()
	r := newResolver()

	if err := r.Create(ctx, "u1", model.RoleCommittee); err != nil {
		t.Fatalf("create: %v", err)
	}

	name := "Cultural"
	ok, err := r.Update(ctx, "u1", model.Role("admin"), model.ProfileChanges{CommitteeName: &name})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if ok {
		t.Fatal("unknown role must touch nothing")
	}
}
