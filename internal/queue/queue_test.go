package queue

import (
	"context"
	"testing"
	"time"
)

func TestInMemoryPublishConsume(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q := NewInMemory(4)
	messages, err := q.Consume(ctx)
	if err != nil {
		t.Fatalf("consume: %v", err)
	}

	want := Message{Type: "registration_decision", Body: []byte(`{"user_id":"u1"}`)}
	if err := q.Publish(ctx, want); err != nil {
		t.Fatalf("publish: %v", err)
	}

	select {
	case got := <-messages:
		if got.Type != want.Type || string(got.Body) != string(want.Body) {
			t.Fatalf("got %+v, want %+v", got, want)
		}
	case <-time.After(time.Second):
		t.Fatal("message not delivered")
	}
}

func TestInMemoryConsumeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	q := NewInMemory(1)
	messages, err := q.Consume(ctx)
	if err != nil {
		t.Fatalf("consume: %v", err)
	}

	cancel()

	select {
	case _, open := <-messages:
		if open {
			t.Fatal("expected closed channel after cancel")
		}
	case <-time.After(time.Second):
		t.Fatal("channel did not close after cancel")
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	msg := Message{Type: "registration_decision", Body: []byte("body|with|pipes")}
	got, err := deserialize(serialize(msg))
	if err != nil {
		t.Fatalf("deserialize: %v", err)
	}
	if got.Type != msg.Type || string(got.Body) != string(msg.Body) {
		t.Fatalf("round trip changed message: %+v", got)
	}
}

func TestDeserializeWithoutType(t *testing.T) {
	got, err := deserialize("no separator here")
	if err != nil {
		t.Fatalf("deserialize: %v", err)
	}
	if got.Type != "" || string(got.Body) != "no separator here" {
		t.Fatalf("got %+v", got)
	}
}
