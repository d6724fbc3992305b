package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventPublishReachesSubscribers(test *testing.T) {
	ev := New[string]()
	var got []string
	ev.Subscribe(func(data string) { got = append(got, data) })
	ev.Publish("hello")
	ev.Publish("world")
	assert.Equal(test, []string{"hello", "world"}, got)
}

func TestEventUnsubscribeStopsDelivery(test *testing.T) {
	ev := New[int]()
	raised := 0
	id := ev.Subscribe(func(int) { raised++ })
	ev.Publish(1)
	assert.True(test, ev.Unsubscribe(id))
	assert.False(test, ev.Unsubscribe(id))
	ev.Publish(2)
	assert.Equal(test, 1, raised)
	assert.Equal(test, 0, ev.Len())
}

func TestEventNilSubscriberPanics(test *testing.T) {
	defer func() {
		if recover() == nil {
			test.Errorf("the code did not panic")
		}
	}()
	New[int]().Subscribe(nil)
}
