// Package ecs provides ECS adapters for streak's trail tracker.
//
// Entities carrying the [Projectile] component are exposed to the tracker
// through [EntryObject], which implements streak.Object, streak.Attachment
// and streak.Beam on top of a [Donburi] world. [Bind] keeps a tracker's
// registry in sync with [SpawnedEventType] and [DespawnedEventType].
//
// Usage:
//
//	ecs.Bind(world, tracker)
//	e := ecs.Spawn(world, ecs.ProjectileData{Position: pos})
//	events.ProcessAllEvents(world)
//	frame.Container = ecs.WorldContainer{World: world}
//	tracker.Update(frame)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
