// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package world holds the bodies and shape-pairs of a scene and turns
// them into contact equations by running dispatch.Dispatch over every
// registered pair.
package world

import (
	"github.com/google/uuid"

	"github.com/convexcore/narrowphase/dispatch"
	"github.com/convexcore/narrowphase/internal/tracelog"
	"github.com/convexcore/narrowphase/shape"
	"github.com/convexcore/narrowphase/vecmath"
)

// BodyId opaquely and stably identifies a body. BodyId values are
// totally ordered by Go's native string comparison, which is sufficient
// to build a canonical, order-independent key for a body pair even
// though the ordering itself carries no meaning beyond that.
type BodyId string

// NewBodyId mints a fresh, globally unique BodyId.
func NewBodyId() BodyId {
	return BodyId(uuid.NewString())
}

// Body is a rigid body: a world position and orientation, plus the
// shapes attached to it, each with its own transform relative to the
// body frame. ShapeOrder records the order shapes were attached in,
// since GetContacts must iterate a body's shapes in a stable order and
// a Go map gives none.
type Body struct {
	Position        vecmath.Vec3
	Quaternion      vecmath.Quaternion
	Shapes          map[shape.Id]shape.Shape
	ShapeTransforms map[shape.Id]vecmath.Transform
	ShapeOrder      []shape.Id
}

// newBody returns an empty body at the given world transform.
func newBody(t vecmath.Transform) *Body {
	return &Body{
		Position:        t.Position,
		Quaternion:      t.Quaternion,
		Shapes:          make(map[shape.Id]shape.Shape),
		ShapeTransforms: make(map[shape.Id]vecmath.Transform),
	}
}

// Transform returns the body's own world transform.
func (b *Body) Transform() vecmath.Transform {
	return vecmath.Transform{Position: b.Position, Quaternion: b.Quaternion}
}

// WorldTransform returns the world transform of the shape with the
// given id, composing the body's transform with the shape's body-local
// one.
func (b *Body) WorldTransform(id shape.Id) vecmath.Transform {
	return vecmath.Compose(b.Transform(), b.ShapeTransforms[id])
}

// Pair identifies two bodies whose shapes should be tested against each
// other.
type Pair struct {
	BodyA BodyId
	BodyB BodyId
}

// World holds the bodies and candidate pairs of a scene.
type World struct {
	Bodies map[BodyId]*Body
	Pairs  []Pair

	logger *tracelog.Logger
}

// Option configures a World at construction time.
type Option func(*World)

// WithTracing attaches a logger that receives DEBUG-level diagnostics
// for every pair processed by GetContacts: which pairs were skipped for
// a missing body and how many contacts each pair produced, plus the SAT
// search and clipping trace of every Convex/Convex shape pair. It is never
// required for correct operation; a World with no tracing option does
// no logging I/O at all.
func WithTracing(logger *tracelog.Logger) Option {
	return func(w *World) {
		w.logger = logger
	}
}

// NewWorld returns an empty world.
func NewWorld(opts ...Option) *World {
	w := &World{
		Bodies: make(map[BodyId]*Body),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// AddBody registers a new body at the given world transform and returns
// its id.
func (w *World) AddBody(t vecmath.Transform) BodyId {
	id := NewBodyId()
	w.Bodies[id] = newBody(t)
	return id
}

// AddShape attaches s to the body identified by bodyId, at the given
// body-local transform, and returns the shape's id. It panics if bodyId
// does not name a body in w, since that is a programming error in the
// caller rather than a runtime data condition.
func (w *World) AddShape(bodyId BodyId, s shape.Shape, localTransform vecmath.Transform) shape.Id {
	b, ok := w.Bodies[bodyId]
	if !ok {
		panic("world: unknown body id")
	}
	id := shape.Id(uuid.NewString())
	b.Shapes[id] = s
	b.ShapeTransforms[id] = localTransform
	b.ShapeOrder = append(b.ShapeOrder, id)
	return id
}

// AddPair registers bodyA and bodyB as a candidate pair to be tested for
// contacts by GetContacts.
func (w *World) AddPair(bodyA, bodyB BodyId) {
	w.Pairs = append(w.Pairs, Pair{BodyA: bodyA, BodyB: bodyB})
}

// ContactEquation is a single contact point attributed to a body pair,
// ready for a constraint solver to consume.
type ContactEquation struct {
	BodyId1     BodyId
	BodyId2     BodyId
	Ni          vecmath.Vec3
	Ri          vecmath.Vec3
	Rj          vecmath.Vec3
	Restitution float64
}

// GetContacts runs dispatch.Dispatch over every shape pair across every
// registered body pair and returns the resulting contact equations.
// A pair naming a body id no longer in w.Bodies is silently skipped: the
// narrow-phase here is a pure, synchronous computation over whatever
// state the caller has built, not a source of errors for the caller to
// handle.
func (w *World) GetContacts() []ContactEquation {

	var out []ContactEquation

	for _, pair := range w.Pairs {
		bodyA, okA := w.Bodies[pair.BodyA]
		bodyB, okB := w.Bodies[pair.BodyB]
		if !okA || !okB {
			w.trace("world: skipping pair %s/%s, missing body", pair.BodyA, pair.BodyB)
			continue
		}

		pairContacts := 0
		for _, idA := range bodyA.ShapeOrder {
			shapeA := bodyA.Shapes[idA]
			worldA := bodyA.WorldTransform(idA)
			for _, idB := range bodyB.ShapeOrder {
				shapeB := bodyB.Shapes[idB]
				worldB := bodyB.WorldTransform(idB)

				points := dispatch.Dispatch(shapeA, worldA, bodyA.Position, shapeB, worldB, bodyB.Position, w.logger)
				for _, p := range points {
					out = append(out, ContactEquation{
						BodyId1:     pair.BodyA,
						BodyId2:     pair.BodyB,
						Ni:          p.Ni,
						Ri:          p.Ri,
						Rj:          p.Rj,
						Restitution: 0,
					})
				}
				pairContacts += len(points)
			}
		}
		w.trace("world: pair %s/%s produced %d contacts", pair.BodyA, pair.BodyB, pairContacts)
	}

	return out
}

func (w *World) trace(format string, v ...interface{}) {
	if w.logger == nil {
		return
	}
	w.logger.Debug(format, v...)
}
