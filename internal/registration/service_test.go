package registration_test

import (
	"context"
	"errors"
	"testing"

	"campusevents/internal/model"
	"campusevents/internal/registration"
	"campusevents/internal/store"
)

func newService(t *testing.T) (*registration.Service, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	return registration.NewService(mem), mem
}

func TestRegisterCreatesPending(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	reg, err := svc.Register(ctx, "u1", "e1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if reg.Status != model.RegistrationPending {
		t.Fatalf("new registration status = %q, want pending", reg.Status)
	}
	if reg.ID == "" {
		t.Fatal("registration should get an id")
	}
}

func TestRegisterDuplicateConflicts(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	if _, err := svc.Register(ctx, "u1", "e1"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.Register(ctx, "u1", "e1")
	if !errors.Is(err, model.ErrDuplicateRegistration) {
		t.Fatalf("second register err = %v, want ErrDuplicateRegistration", err)
	}

	// A different event for the same user is fine.
	if _, err := svc.Register(ctx, "u1", "e2"); err != nil {
		t.Fatalf("register for other event: %v", err)
	}
	// And a different user for the same event.
	if _, err := svc.Register(ctx, "u2", "e1"); err != nil {
		t.Fatalf("register by other user: %v", err)
	}
}

func TestApproveAndReject(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	a, err := svc.Register(ctx, "u1", "e1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	r, err := svc.Register(ctx, "u2", "e1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	got, err := svc.Approve(ctx, a.ID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if got.Status != model.RegistrationApproved {
		t.Fatalf("status = %q, want approved", got.Status)
	}

	got, err = svc.Reject(ctx, r.ID)
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if got.Status != model.RegistrationRejected {
		t.Fatalf("status = %q, want rejected", got.Status)
	}
}

func TestDecisionOnTerminalFails(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	reg, err := svc.Register(ctx, "u1", "e1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Approve(ctx, reg.ID); err != nil {
		t.Fatalf("approve: %v", err)
	}

	// Once decided, every further decision is rejected, including
	// re-approving with the same status.
	if _, err := svc.Approve(ctx, reg.ID); !errors.Is(err, model.ErrInvalidTransition) {
		t.Fatalf("re-approve err = %v, want ErrInvalidTransition", err)
	}
	if _, err := svc.Reject(ctx, reg.ID); !errors.Is(err, model.ErrInvalidTransition) {
		t.Fatalf("reject after approve err = %v, want ErrInvalidTransition", err)
	}
}

func TestDecisionOnMissingRegistration(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	if _, err := svc.Approve(ctx, "nope"); !errors.Is(err, model.ErrRegistrationNotFound) {
		t.Fatalf("approve missing err = %v, want ErrRegistrationNotFound", err)
	}
}

func TestListForUserEmbedsEvent(t *testing.T) {
	ctx := context.Background()
	svc, mem := newService(t)

	e := &model.Event{Name: "Tech Fest", Date: "2026-09-12", OrganizerID: "t1"}
	if err := mem.InsertEvent(ctx, e); err != nil {
		t.Fatalf("insert event: %v", err)
	}
	if _, err := svc.Register(ctx, "u1", e.ID); err != nil {
		t.Fatalf("register: %v", err)
	}

	regs, err := svc.ListForUser(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(regs) != 1 {
		t.Fatalf("got %d registrations, want 1", len(regs))
	}
	if regs[0].Event.Name != "Tech Fest" {
		t.Fatalf("event not embedded: %+v", regs[0].Event)
	}
}

func TestAttendanceIndependentOfRegistration(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	// No registration exists; attendance still records.
	a, err := svc.MarkAttendance(ctx, "u1", "e1", model.AttendancePresent)
	if err != nil {
		t.Fatalf("mark attendance: %v", err)
	}
	if a.Status != model.AttendancePresent {
		t.Fatalf("status = %q, want present", a.Status)
	}

	records, err := svc.AttendanceForEvent(ctx, "e1")
	if err != nil {
		t.Fatalf("list attendance: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
}

func TestMarkAttendanceRejectsBadStatus(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	if _, err := svc.MarkAttendance(ctx, "u1", "e1", model.AttendanceStatus("late")); err == nil {
		t.Fatal("expected error for unknown attendance status")
	}
}

func TestPaymentLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	p, err := svc.RecordPayment(ctx, "u1", "e1", 250)
	if err != nil {
		t.Fatalf("record payment: %v", err)
	}
	if p.PaymentStatus != model.PaymentPending {
		t.Fatalf("new payment status = %q, want pending", p.PaymentStatus)
	}

	settled, err := svc.SettlePayment(ctx, p.ID, model.PaymentCompleted, "txn-42")
	if err != nil {
		t.Fatalf("settle: %v", err)
	}
	if settled == nil || settled.PaymentStatus != model.PaymentCompleted || settled.TransactionID != "txn-42" {
		t.Fatalf("settled payment = %+v", settled)
	}

	payments, err := svc.PaymentsForUser(ctx, "u1")
	if err != nil {
		t.Fatalf("list payments: %v", err)
	}
	if len(payments) != 1 {
		t.Fatalf("got %d payments, want 1", len(payments))
	}
}

func TestSettlePaymentValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	if _, err := svc.SettlePayment(ctx, "p1", model.PaymentPending, ""); err == nil {
		t.Fatal("settling back to pending must fail")
	}

	settled, err := svc.SettlePayment(ctx, "missing", model.PaymentCompleted, "")
	if err != nil {
		t.Fatalf("settle missing: %v", err)
	}
	if settled != nil {
		t.Fatalf("missing payment should settle to nil, got %+v", settled)
	}
}

func TestRecordPaymentRejectsNegativeAmount(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	if _, err := svc.RecordPayment(ctx, "u1", "e1", -1); err == nil {
		t.Fatal("expected error for negative amount")
	}
}
