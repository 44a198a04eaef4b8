// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
)

// Listener receives dispatched events.
type Listener func(Event)

// Subscription is the handle returned by [Emitter.On] and
// [Emitter.Once]. Pass it to [Emitter.Off] to unsubscribe.
type Subscription struct {
	name     Name
	listener Listener
	once     bool
}

// Name returns the event name the subscription listens for.
func (s *Subscription) Name() Name { return s.name }

// Emitter dispatches events to listeners registered by event name.
// Listeners run synchronously in the goroutine that calls Emit, in
// registration order. Registration state is guarded by a mutex and no
// lock is held while a listener runs, so listeners may register and
// unregister freely. Safe for concurrent use.
type Emitter struct {
	logger *slog.Logger

	mu            sync.Mutex
	subscriptions map[Name][]*Subscription
}

// NewEmitter returns an empty Emitter. A nil logger discards log
// output.
func NewEmitter(logger *slog.Logger) *Emitter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Emitter{
		logger:        logger,
		subscriptions: make(map[Name][]*Subscription),
	}
}

// On registers listener for every event named name.
func (e *Emitter) On(name Name, listener Listener) *Subscription {
	return e.add(name, listener, false)
}

// Once registers listener for the next event named name only. The
// subscription is removed before the listener runs.
func (e *Emitter) Once(name Name, listener Listener) *Subscription {
	return e.add(name, listener, true)
}

func (e *Emitter) add(name Name, listener Listener, once bool) *Subscription {
	if listener == nil {
		panic("event: nil listener")
	}
	subscription := &Subscription{name: name, listener: listener, once: once}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.subscriptions[name] = append(e.subscriptions[name], subscription)
	return subscription
}

// Off removes a subscription. Returns false if it was not registered
// (already removed, or a Once subscription that has fired).
func (e *Emitter) Off(subscription *Subscription) bool {
	if subscription == nil {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.removeLocked(subscription)
}

func (e *Emitter) removeLocked(subscription *Subscription) bool {
	list := e.subscriptions[subscription.name]
	index := slices.Index(list, subscription)
	if index < 0 {
		return false
	}
	// Clone so that snapshots taken by in-flight Emit calls are not
	// disturbed.
	list = slices.Delete(slices.Clone(list), index, index+1)
	if len(list) == 0 {
		delete(e.subscriptions, subscription.name)
	} else {
		e.subscriptions[subscription.name] = list
	}
	return true
}

// Emit dispatches event to the listeners registered for event.Name at
// the moment of the call. Returns true if there was at least one.
//
// A panicking listener is recovered and logged; the remaining
// listeners still run.
func (e *Emitter) Emit(event Event) bool {
	e.mu.Lock()
	snapshot := e.subscriptions[event.Name]
	for _, subscription := range snapshot {
		if subscription.once {
			e.removeLocked(subscription)
		}
	}
	e.mu.Unlock()

	if len(snapshot) == 0 {
		return false
	}
	e.logger.Debug("dispatching event",
		"event", event.Name,
		"source", event.Source,
		"listeners", len(snapshot),
	)
	for _, subscription := range snapshot {
		e.invoke(subscription, event)
	}
	return true
}

func (e *Emitter) invoke(subscription *Subscription, event Event) {
	defer func() {
		if recovered := recover(); recovered != nil {
			e.logger.Error("event listener panicked",
				"event", event.Name,
				"panic", fmt.Sprint(recovered),
			)
		}
	}()
	subscription.listener(event)
}

// RemoveAllListeners removes every subscription for the given names,
// or for all names when none are given.
func (e *Emitter) RemoveAllListeners(names ...Name) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(names) == 0 {
		clear(e.subscriptions)
		return
	}
	for _, name := range names {
		delete(e.subscriptions, name)
	}
}

// Listeners returns the listeners registered for name, in registration
// order.
func (e *Emitter) Listeners(name Name) []Listener {
	e.mu.Lock()
	defer e.mu.Unlock()
	list := e.subscriptions[name]
	listeners := make([]Listener, len(list))
	for i, subscription := range list {
		listeners[i] = subscription.listener
	}
	return listeners
}

// ListenerCount returns the number of listeners registered for name.
func (e *Emitter) ListenerCount(name Name) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.subscriptions[name])
}

// OnPayload registers a listener typed by its payload. The event name
// comes from P. Events carrying a different payload type (which
// [Factory.Create] never produces) are skipped.
func OnPayload[P Payload](e *Emitter, listener func(P, Envelope)) *Subscription {
	var zero P
	return e.On(zero.EventName(), func(event Event) {
		if payload, ok := event.Payload.(P); ok {
			listener(payload, event.Envelope)
		}
	})
}
