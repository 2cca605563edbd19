package events

import (
	"context"
	"errors"
	"testing"
)

func TestDispatcherInvokesSubscribersInOrder(t *testing.T) {
	d := NewInMemoryDispatcher()

	var order []string
	d.Subscribe(EventUserCreated, func(ctx context.Context, e Event) error {
		order = append(order, "first")
		return nil
	})
	d.Subscribe(EventUserCreated, func(ctx context.Context, e Event) error {
		order = append(order, "second")
		return nil
	})
	d.Subscribe(EventUserDeleted, func(ctx context.Context, e Event) error {
		order = append(order, "other")
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventUserCreated, UserID: "u-1"}); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("unexpected handler order: %v", order)
	}
}

func TestDispatcherContinuesPastHandlerErrors(t *testing.T) {
	d := NewInMemoryDispatcher()

	secondCalled := false
	d.Subscribe(EventUserPasswordChanged, func(ctx context.Context, e Event) error {
		return errors.New("boom")
	})
	d.Subscribe(EventUserPasswordChanged, func(ctx context.Context, e Event) error {
		secondCalled = true
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventUserPasswordChanged}); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if !secondCalled {
		t.Fatal("a failing handler must not block later handlers")
	}
}

func TestDispatcherNoSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()
	if err := d.Publish(context.Background(), Event{Type: EventUserUpdated}); err != nil {
		t.Fatalf("publish without subscribers: %v", err)
	}
}
