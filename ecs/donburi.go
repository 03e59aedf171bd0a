// Package ecs provides ECS adapters for streak.
package ecs

import (
	"github.com/phanxgames/streak"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ProjectileData is the component a tracked entity carries. The tracker reads
// Position and Orientation and writes Offset and the beam widths.
type ProjectileData struct {
	Position    r3.Vec
	Orientation r3.Rotation

	// Offset is the attachment point's local offset, relative to Position.
	Offset r3.Vec
	// Width0 and Width1 are the beam widths at the head and tail.
	Width0, Width1 float64
}

// Projectile is the component type for tracked projectiles.
var Projectile = donburi.NewComponentType[ProjectileData]()

// SpawnedEventType and DespawnedEventType announce projectile entities
// entering and leaving the world. Bind subscribes a tracker to both.
var (
	SpawnedEventType   = events.NewEventType[donburi.Entity]()
	DespawnedEventType = events.NewEventType[donburi.Entity]()
)

// EntryObject adapts a projectile entity to streak.Object. It is comparable,
// so two EntryObjects for the same entity in the same world are the same
// registry key. It also serves as the entity's Attachment and Beam.
type EntryObject struct {
	world  donburi.World
	entity donburi.Entity
}

// Object wraps entity as a streak.Object.
func Object(world donburi.World, entity donburi.Entity) EntryObject {
	return EntryObject{world: world, entity: entity}
}

// Entity returns the wrapped entity.
func (o EntryObject) Entity() donburi.Entity {
	return o.entity
}

func (o EntryObject) data() *ProjectileData {
	return Projectile.Get(o.world.Entry(o.entity))
}

// Valid reports whether the entity still exists and carries a Projectile.
func (o EntryObject) Valid() bool {
	if o.world == nil || !o.world.Valid(o.entity) {
		return false
	}
	return o.world.Entry(o.entity).HasComponent(Projectile)
}

func (o EntryObject) WorldPosition() r3.Vec         { return o.data().Position }
func (o EntryObject) Orientation() r3.Rotation      { return o.data().Orientation }
func (o EntryObject) Attachment() streak.Attachment { return o }
func (o EntryObject) Beam() streak.Beam             { return o }

func (o EntryObject) SetLocalOffset(offset r3.Vec) {
	o.data().Offset = offset
}

func (o EntryObject) SetWidths(w0, w1 float64) {
	d := o.data()
	d.Width0, d.Width1 = w0, w1
}

// WorldContainer reports membership of projectile entities in a donburi
// world. Pass it as streak.Frame.Container so entities removed without a
// DespawnedEventType are swept.
type WorldContainer struct {
	World donburi.World
}

// Contains reports whether obj is a live projectile entity of c.World.
func (c WorldContainer) Contains(obj streak.Object) bool {
	o, ok := obj.(EntryObject)
	return ok && o.world == c.World && o.Valid()
}

// Spawn creates a projectile entity and publishes SpawnedEventType.
func Spawn(world donburi.World, data ProjectileData) donburi.Entity {
	e := world.Create(Projectile)
	Projectile.SetValue(world.Entry(e), data)
	SpawnedEventType.Publish(world, e)
	return e
}

// Despawn publishes DespawnedEventType and removes the entity.
func Despawn(world donburi.World, e donburi.Entity) {
	DespawnedEventType.Publish(world, e)
	world.Remove(e)
}

// Bind subscribes tracker to projectile spawn and despawn events in world and
// registers every projectile already present. Events are delivered when the
// caller processes them, e.g. with events.ProcessAllEvents.
func Bind(world donburi.World, tracker *streak.Tracker) {
	SpawnedEventType.Subscribe(world, func(w donburi.World, e donburi.Entity) {
		tracker.OnChildAdded(Object(w, e))
	})
	DespawnedEventType.Subscribe(world, func(w donburi.World, e donburi.Entity) {
		tracker.OnChildRemoved(Object(w, e))
	})
	Projectile.Each(world, func(entry *donburi.Entry) {
		tracker.Register(Object(world, entry.Entity()))
	})
}
