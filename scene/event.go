// Copyright 2026 The medview Authors
// SPDX-License-Identifier: MIT

package scene

import "github.com/google/uuid"

// Kind discriminates the closed set of events a Registry delivers.
// Handlers match on Kind instead of inspecting the dynamic type of the
// source object.
type Kind int

const (
	// KindModified reports that a node's fields changed.
	// Event.Node carries the source node.
	KindModified Kind = iota

	// KindSceneLoaded reports that a batch of nodes was imported into the
	// scene (see Scene.Import). Event.Node is nil; observers typically
	// re-resolve their bindings.
	KindSceneLoaded
)

// String returns the event kind name.
func (k Kind) String() string {
	switch k {
	case KindModified:
		return "Modified"
	case KindSceneLoaded:
		return "SceneLoaded"
	default:
		return "Unknown"
	}
}

// Event is one tagged notification. Node is nil for scene-lifecycle kinds.
type Event struct {
	Kind Kind
	Node Node
}

// Handler receives events synchronously on the publishing thread.
type Handler func(Event)

// Subscription identifies one registered handler. The zero value is not a
// valid subscription; Unsubscribe ignores it.
type Subscription struct {
	id    uint64
	node  uuid.UUID
	scene bool
}

type entry struct {
	id uint64
	fn Handler
}

// Registry maps subject identity to handler lists. Publish invokes the
// handlers for the event's subject synchronously, in registration order,
// and returns once every handler has run. Publishing from inside a handler
// is allowed (the nested event is fully dispatched before the outer
// Publish continues); a handler added or removed during dispatch takes
// effect from the next Publish.
type Registry struct {
	nextID    uint64
	nodeSubs  map[uuid.UUID][]entry
	sceneSubs []entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{nodeSubs: make(map[uuid.UUID][]entry)}
}

// Subscribe registers fn for modification events published by node n.
func (r *Registry) Subscribe(n Node, fn Handler) Subscription {
	r.nextID++
	id := n.ID()
	r.nodeSubs[id] = append(r.nodeSubs[id], entry{id: r.nextID, fn: fn})
	return Subscription{id: r.nextID, node: id}
}

// SubscribeScene registers fn for scene-lifecycle events (KindSceneLoaded).
func (r *Registry) SubscribeScene(fn Handler) Subscription {
	r.nextID++
	r.sceneSubs = append(r.sceneSubs, entry{id: r.nextID, fn: fn})
	return Subscription{id: r.nextID, scene: true}
}

// Unsubscribe removes a previously registered handler. Required before
// rebinding a handler to a different node, so no subject delivers twice.
// The zero Subscription is ignored.
func (r *Registry) Unsubscribe(s Subscription) {
	if s.id == 0 {
		return
	}
	if s.scene {
		r.sceneSubs = removeEntry(r.sceneSubs, s.id)
		return
	}
	subs := removeEntry(r.nodeSubs[s.node], s.id)
	if len(subs) == 0 {
		delete(r.nodeSubs, s.node)
	} else {
		r.nodeSubs[s.node] = subs
	}
}

// Publish delivers ev to its subscribers and returns when all have run.
// Events with a source node go to that node's subscribers; scene-lifecycle
// events go to scene subscribers.
func (r *Registry) Publish(ev Event) {
	var subs []entry
	if ev.Node != nil {
		subs = r.nodeSubs[ev.Node.ID()]
	} else {
		subs = r.sceneSubs
	}
	// Iterate over a snapshot so handlers may (un)subscribe mid-dispatch.
	for _, e := range append([]entry(nil), subs...) {
		e.fn(ev)
	}
}

func removeEntry(subs []entry, id uint64) []entry {
	out := subs[:0]
	for _, e := range subs {
		if e.id != id {
			out = append(out, e)
		}
	}
	return out
}
