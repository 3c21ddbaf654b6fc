// Copyright 2026 The medview Authors
// SPDX-License-Identifier: MIT

package scene

import "testing"

// counter is a minimal observable node for tests.
type counter struct {
	Base
	n int
}

func newCounter(tag, name string) *counter {
	return &counter{Base: NewBase(tag, name)}
}

func (c *counter) Inc() {
	c.n++
	c.Modified()
}

func TestSceneLookup(t *testing.T) {
	s := New()
	a := newCounter("Counter", "a")
	b := newCounter("Counter", "b")
	other := newCounter("Other", "a")
	s.Add(a)
	s.Add(b)
	s.Add(other)

	if got := len(s.NodesByTag("Counter")); got != 2 {
		t.Errorf("NodesByTag(Counter) len = %d, want 2", got)
	}
	if got := s.FirstByName("Counter", "b"); got != Node(b) {
		t.Errorf("FirstByName(Counter, b) = %v, want b", got)
	}
	if got := s.FirstByName("Counter", "missing"); got != nil {
		t.Errorf("FirstByName(Counter, missing) = %v, want nil", got)
	}
	if got := s.FirstByName("Other", "a"); got != Node(other) {
		t.Error("FirstByName must match tag and name together")
	}
}

func TestSceneAddDuplicate(t *testing.T) {
	s := New()
	a := newCounter("Counter", "a")
	s.Add(a)
	s.Add(a)
	if s.Len() != 1 {
		t.Errorf("Len() = %d after duplicate add, want 1", s.Len())
	}
}

func TestModifiedSilentBeforeAdd(t *testing.T) {
	a := newCounter("Counter", "a")
	// Must not panic and must not deliver anywhere.
	a.Inc()

	s := New()
	got := 0
	s.Add(a)
	s.Registry().Subscribe(a, func(Event) { got++ })
	a.Inc()
	if got != 1 {
		t.Errorf("deliveries = %d, want 1", got)
	}
}

func TestRemoveSilences(t *testing.T) {
	s := New()
	a := newCounter("Counter", "a")
	s.Add(a)

	got := 0
	s.Registry().Subscribe(a, func(Event) { got++ })
	s.Remove(a)
	a.Inc()
	if got != 0 {
		t.Errorf("deliveries after Remove = %d, want 0", got)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d after Remove, want 0", s.Len())
	}
}

func TestImportPublishesSceneLoaded(t *testing.T) {
	s := New()
	var events []Event
	s.Registry().SubscribeScene(func(ev Event) { events = append(events, ev) })

	a := newCounter("Counter", "a")
	b := newCounter("Counter", "b")
	s.Import(a, b)

	if len(events) != 1 {
		t.Fatalf("scene events = %d, want 1", len(events))
	}
	if events[0].Kind != KindSceneLoaded || events[0].Node != nil {
		t.Errorf("event = %+v, want KindSceneLoaded with nil node", events[0])
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d after import, want 2", s.Len())
	}
}
