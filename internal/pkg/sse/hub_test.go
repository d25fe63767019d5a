package sse

import (
	"testing"
)

func TestHub_SubscribePublish(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("op-1")
	defer cleanup()

	if got := hub.SubscriberCount("op-1"); got != 1 {
		t.Fatalf("SubscriberCount = %d, want 1", got)
	}

	hub.Publish("op-1", Event{Event: "notification", Data: "hello"})

	select {
	case ev := <-ch:
		if ev.Event != "notification" {
			t.Errorf("event = %q, want %q", ev.Event, "notification")
		}
	default:
		t.Fatal("expected an event on the channel")
	}
}

func TestHub_PublishToOtherOperator(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("op-1")
	defer cleanup()

	hub.Publish("op-2", Event{Event: "notification"})

	select {
	case <-ch:
		t.Fatal("op-1 should not receive op-2 events")
	default:
	}
}

func TestHub_PublishToMany(t *testing.T) {
	hub := NewHub()

	ch1, cleanup1 := hub.Subscribe("op-1")
	defer cleanup1()
	ch2, cleanup2 := hub.Subscribe("op-2")
	defer cleanup2()

	hub.PublishToMany([]string{"op-1", "op-2"}, Event{Event: "notification"})

	ev1 := <-ch1
	if ev1.OperatorID != "op-1" {
		t.Errorf("ev1.OperatorID = %q, want op-1", ev1.OperatorID)
	}
	ev2 := <-ch2
	if ev2.OperatorID != "op-2" {
		t.Errorf("ev2.OperatorID = %q, want op-2", ev2.OperatorID)
	}
}

func TestHub_CleanupRemovesSubscriber(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe("op-1")
	cleanup()

	if got := hub.SubscriberCount("op-1"); got != 0 {
		t.Errorf("SubscriberCount after cleanup = %d, want 0", got)
	}
	if got := hub.TotalSubscribers(); got != 0 {
		t.Errorf("TotalSubscribers = %d, want 0", got)
	}
}

func TestHub_FullChannelDoesNotBlock(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe("op-1")
	defer cleanup()

	// Channel buffer is 10; publishing more must not block.
	for i := 0; i < 20; i++ {
		hub.Publish("op-1", Event{Event: "notification"})
	}
}
