// Copyright 2026 The medview Authors
// SPDX-License-Identifier: MIT

// Package scene provides a minimal observable node registry for
// view-synchronization components.
//
// A Scene holds named, tagged nodes and owns the event Registry through
// which node modifications are delivered. Nodes embed Base, which supplies
// identity and a Modified method that publishes a change event once the
// node has been added to a scene.
//
// All scene operations are single-threaded by contract: they run on the
// one control thread that also drives event dispatch. The package performs
// no internal locking.
package scene

import "github.com/google/uuid"

// Node is an object that can live in a Scene and be looked up by its
// type tag and name.
type Node interface {
	// ID returns the node's unique identity within the process.
	ID() uuid.UUID

	// TypeTag returns the node kind used for scene lookup
	// (e.g. "Crosshair", "SliceComposite").
	TypeTag() string

	// Name returns the node's name. Names are only unique per convention;
	// the scene does not enforce uniqueness.
	Name() string
}

// Base supplies identity and change publication for concrete node types.
// Embed it by value and call Modified after each field mutation:
//
//	type Crosshair struct {
//	    scene.Base
//	    position Vec3
//	}
//
//	func (c *Crosshair) SetPosition(p Vec3) {
//	    c.position = p
//	    c.Modified()
//	}
//
// Modified is a no-op until the node is added to a Scene.
type Base struct {
	id      uuid.UUID
	typeTag string
	name    string

	reg  *Registry
	self Node
}

// NewBase creates node identity with a fresh unique ID.
func NewBase(typeTag, name string) Base {
	return Base{
		id:      uuid.New(),
		typeTag: typeTag,
		name:    name,
	}
}

// ID returns the node's unique identity.
func (b *Base) ID() uuid.UUID { return b.id }

// TypeTag returns the node kind.
func (b *Base) TypeTag() string { return b.typeTag }

// Name returns the node's name.
func (b *Base) Name() string { return b.name }

// Modified publishes a KindModified event for this node to the scene's
// registry, synchronously. Nodes not yet added to a scene stay silent.
func (b *Base) Modified() {
	if b.reg == nil || b.self == nil {
		return
	}
	b.reg.Publish(Event{Kind: KindModified, Node: b.self})
}

// attach wires the node to its scene's registry. Called by Scene.Add;
// self is the outer node so published events carry the concrete type.
func (b *Base) attach(reg *Registry, self Node) {
	b.reg = reg
	b.self = self
}

// detach severs the node from its scene. Called by Scene.Remove.
func (b *Base) detach() {
	b.reg = nil
	b.self = nil
}

// attacher is satisfied by any node embedding Base.
type attacher interface {
	attach(*Registry, Node)
	detach()
}
