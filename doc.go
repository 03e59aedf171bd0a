// Package streak computes per-frame motion-trail geometry for fast-moving
// projectiles in a 3D scene.
//
// Every frame, each tracked object is projected onto the screen. Its screen
// displacement since last frame is compensated for distance and combined
// with camera movement into a trail length. The trail endpoint is then
// reprojected into world space at the object's depth. Finally it is
// converted into a local-space offset for the object's attachment point,
// plus a pair of tapering widths for its beam.
//
// # Quick start
//
// Create a [Tracker], register objects, and call [Tracker.Update] once per
// frame with a [Frame] built from your camera:
//
//	tracker, err := streak.NewTracker(streak.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	tracker.Watch(projectiles) // a *streak.Node container
//
//	var history streak.CameraHistory
//	// each frame:
//	frame := history.NewFrame(camera, camera.Position, dt)
//	frame.Container = projectiles
//	tracker.Update(frame)
//
// The host engine supplies projection through [Projector] and objects
// through [Object]. [PerspectiveCamera] and [Node] are small reference
// implementations of both, used by the bundled example and by tests.
//
// # Strategies
//
// By default the tracker writes attachment offsets and beam widths
// ([AttachmentStrategy]). With [Config.EnableVisualizerUI] set it instead
// drives a spring-smoothed screen-space widget per object
// ([OverlayStrategy]). The overlay draws with [Ebitengine] and fades in with
// [gween].
//
// # Threading
//
// streak is single-threaded. All tracker calls must happen on the goroutine
// that drives the frame loop.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package streak
