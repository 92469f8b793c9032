package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docnav/internal/domain"
)

func TestPublishReachesSubscriber(t *testing.T) {
	bus := New()
	defer bus.Close()

	received := make(chan DomainEvent, 1)
	bus.Subscribe(EventScanStarted, func(e DomainEvent) {
		received <- e
	})

	bus.Publish(ScanStartedEvent{Path: "doc.md"})

	select {
	case e := <-received:
		event, ok := e.(ScanStartedEvent)
		require.True(t, ok)
		assert.Equal(t, "doc.md", event.Path)
	case <-time.After(time.Second):
		t.Fatal("event never delivered")
	}
}

func TestSubscriberOnlySeesItsEventType(t *testing.T) {
	bus := New()
	defer bus.Close()

	scans := make(chan DomainEvent, 2)
	bus.Subscribe(EventScanCompleted, func(e DomainEvent) {
		scans <- e
	})

	bus.Publish(ScanStartedEvent{Path: "a.md"})
	bus.Publish(ScanCompletedEvent{Path: "a.md", ElementsFound: 3})

	select {
	case e := <-scans:
		event, ok := e.(ScanCompletedEvent)
		require.True(t, ok)
		assert.Equal(t, 3, event.ElementsFound)
	case <-time.After(time.Second):
		t.Fatal("event never delivered")
	}

	select {
	case e := <-scans:
		t.Fatalf("unexpected extra event: %v", e.Type())
	case <-time.After(50 * time.Millisecond):
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := New()
	defer bus.Close()

	received := make(chan DomainEvent, 2)
	unsubscribe := bus.Subscribe(EventError, func(e DomainEvent) {
		received <- e
	})

	unsubscribe()
	bus.Publish(ErrorEvent{Message: "dropped"})

	select {
	case <-received:
		t.Fatal("handler ran after unsubscribe")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHandlerPanicDoesNotKillDispatcher(t *testing.T) {
	bus := New()
	defer bus.Close()

	bus.Subscribe(EventScanStarted, func(DomainEvent) {
		panic("boom")
	})

	received := make(chan DomainEvent, 1)
	bus.Subscribe(EventScanCompleted, func(e DomainEvent) {
		received <- e
	})

	bus.Publish(ScanStartedEvent{Path: "x"})
	bus.Publish(ScanCompletedEvent{Path: "x"})

	select {
	case <-received:
	case <-time.After(time.Second):
		t.Fatal("dispatcher died after handler panic")
	}
}

func TestReexportedTypesMatchDomain(t *testing.T) {
	var e DomainEvent = domain.ScanStartedEvent{Path: "p"}
	assert.Equal(t, domain.EventScanStarted, e.Type())
}
