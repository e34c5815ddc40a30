package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotifierDeliversToAllSubscribers(t *testing.T) {
	n := NewNotifier()

	a, b := 0, 0
	n.Subscribe(func() { a++ })
	n.Subscribe(func() { b++ })

	n.Emit()
	n.Emit()

	assert.Equal(t, 2, a)
	assert.Equal(t, 2, b)
}

func TestNotifierUnsubscribeStopsDelivery(t *testing.T) {
	n := NewNotifier()

	calls := 0
	unsubscribe := n.Subscribe(func() { calls++ })

	n.Emit()
	unsubscribe()
	n.Emit()
	unsubscribe() // second call is harmless

	assert.Equal(t, 1, calls)
}

func TestNotifierLateSubscriberMissesEarlierEmission(t *testing.T) {
	n := NewNotifier()

	n.Emit()

	calls := 0
	n.Subscribe(func() { calls++ })
	assert.Zero(t, calls)
}
