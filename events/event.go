package events

import (
	"conjure/collections"

	"github.com/google/uuid"
)

// Event is an in-process notification. Subscribers are keyed by uuid so they
// can be dropped again; publishing runs every subscriber synchronously on the
// publishing goroutine.
type Event[T any] struct {
	subs *collections.Dictionary[uuid.UUID, func(data T)]
}

func New[T any]() *Event[T] {
	return &Event[T]{
		subs: collections.NewDictionary[uuid.UUID, func(data T)](),
	}
}

func (ev *Event[T]) Subscribe(raised func(data T)) uuid.UUID {
	if raised == nil {
		panic("subscriber is nil")
	}
	id := uuid.New()
	ev.subs.Set(id, raised)
	return id
}

func (ev *Event[T]) Unsubscribe(id uuid.UUID) bool {
	return ev.subs.Delete(id)
}

func (ev *Event[T]) Publish(data T) {
	for _, raised := range ev.subs.Values() {
		raised(data)
	}
}

func (ev *Event[T]) Len() int {
	return ev.subs.Len()
}
