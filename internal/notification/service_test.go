package notification_test

import (
	"context"
	"strings"
	"testing"

	"campusevents/internal/notification"
	"campusevents/internal/store"
)

func TestDecisionJobRoundTrip(t *testing.T) {
	job := notification.DecisionJob{UserID: "u1", EventName: "Tech Fest", Status: "approved"}
	got, err := notification.DecodeDecisionJob(job.Encode())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != job {
		t.Fatalf("round trip changed job: %+v", got)
	}
}

func TestDecodeDecisionJobRejectsMissingUser(t *testing.T) {
	if _, err := notification.DecodeDecisionJob([]byte(`{"status":"approved"}`)); err == nil {
		t.Fatal("expected error for missing user id")
	}
	if _, err := notification.DecodeDecisionJob([]byte("not json")); err == nil {
		t.Fatal("expected error for bad payload")
	}
}

func TestNotifyDecisionWritesRow(t *testing.T) {
	ctx := context.Background()
	svc := notification.NewService(store.NewMemory())

	n, err := svc.NotifyDecision(ctx, notification.DecisionJob{
		UserID: "u1", EventName: "Tech Fest", Status: "rejected",
	})
	if err != nil {
		t.Fatalf("notify: %v", err)
	}
	if n.Title != "Registration rejected" {
		t.Errorf("title = %q", n.Title)
	}
	if !strings.Contains(n.Message, "Tech Fest") || !strings.Contains(n.Message, "rejected") {
		t.Errorf("message = %q", n.Message)
	}
	if n.IsRead {
		t.Error("new notification must be unread")
	}

	list, err := svc.ListForUser(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("got %d notifications, want 1", len(list))
	}
}

func TestMarkRead(t *testing.T) {
	ctx := context.Background()
	svc := notification.NewService(store.NewMemory())

	n, err := svc.Create(ctx, "u1", "Hello", "welcome")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	ok, err := svc.MarkRead(ctx, n.ID)
	if err != nil || !ok {
		t.Fatalf("mark read = (%v, %v)", ok, err)
	}

	ok, err = svc.MarkRead(ctx, "missing")
	if err != nil {
		t.Fatalf("mark read missing: %v", err)
	}
	if ok {
		t.Fatal("missing notification must report false")
	}
}
