package streak

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"gonum.org/v1/gonum/spatial/r3"
)

func overlayConfig() Config {
	cfg := testConfig()
	cfg.EnableVisualizerUI = true
	cfg.SpringDamping = 1
	cfg.SpringFrequency = 4
	return cfg
}

func TestOverlayAllocatesAndReleasesWidgets(t *testing.T) {
	tr, _ := newTestTracker(t, overlayConfig())
	o := tr.Overlay()
	a := newFakeObject(r3.Vec{Z: 1})
	b := newFakeObject(r3.Vec{Z: 1})

	tr.Register(a)
	tr.Register(a)
	tr.Register(b)
	if len(o.Widgets()) != 2 {
		t.Fatalf("widgets = %d, want 2", len(o.Widgets()))
	}
	w := tr.Registry().Get(a).Widget
	if w == nil {
		t.Fatal("no widget allocated for a")
	}

	tr.Unregister(a)
	if !w.Released() {
		t.Error("widget not released on Unregister")
	}
	if len(o.Widgets()) != 1 || o.Widgets()[0] == w {
		t.Error("released widget still listed")
	}
}

func TestOverlayDoesNotWriteAttachment(t *testing.T) {
	tr, _ := newTestTracker(t, overlayConfig())
	obj := newFakeObject(r3.Vec{X: 10, Y: 10, Z: 1})
	tr.Register(obj)
	tr.Update(Frame{Projector: newFakeProjector(), DT: 1.0 / 60})

	if obj.att.calls != 0 || obj.beam.calls != 0 {
		t.Errorf("attachment calls %d, beam calls %d, want 0", obj.att.calls, obj.beam.calls)
	}
}

func TestOverlayWidgetSnapsThenSprings(t *testing.T) {
	tr, _ := newTestTracker(t, overlayConfig())
	p := newFakeProjector()
	obj := newFakeObject(r3.Vec{X: 10, Y: 20, Z: 1})
	tr.Register(obj)

	tr.Update(Frame{Projector: p, DT: 1.0 / 60})
	w := tr.Registry().Get(obj).Widget
	if !w.Visible {
		t.Fatal("widget not visible after on-screen frame")
	}
	if w.Head() != (Vec2{10, 20}) {
		t.Errorf("Head = %v, want snapped to (10, 20)", w.Head())
	}

	obj.pos = r3.Vec{X: 110, Y: 20, Z: 1}
	tr.Update(Frame{Projector: p, DT: 1.0 / 60})
	if w.X.Pos <= 10 || w.X.Pos >= 110 {
		t.Errorf("X = %v, want between 10 and 110 while springing", w.X.Pos)
	}
	if w.Alpha <= 0 {
		t.Errorf("Alpha = %v, want fading in", w.Alpha)
	}
}

func colorApprox(a, b Color, eps float64) bool {
	return approxEqual(a.R, b.R, eps) && approxEqual(a.G, b.G, eps) &&
		approxEqual(a.B, b.B, eps) && approxEqual(a.A, b.A, eps)
}

func TestOverlayWidgetTintFollowsMotion(t *testing.T) {
	tr, _ := newTestTracker(t, overlayConfig())
	o := tr.Overlay()
	p := newFakeProjector()
	obj := newFakeObject(r3.Vec{X: 10, Y: 20, Z: 1})
	tr.Register(obj)

	tr.Update(Frame{Projector: p, DT: 1.0 / 60})
	w := tr.Registry().Get(obj).Widget
	if w.Color != o.Color {
		t.Fatalf("Color = %v on appearance, want %v", w.Color, o.Color)
	}

	tr.Update(Frame{Projector: p, DT: 1.0 / 60})
	if colorApprox(w.Color, o.Color, 1e-6) || colorApprox(w.Color, o.StallColor, 1e-6) {
		t.Errorf("Color = %v, want between %v and %v while tinting", w.Color, o.Color, o.StallColor)
	}
	for i := 0; i < 30; i++ {
		tr.Update(Frame{Projector: p, DT: 1.0 / 60})
	}
	if !colorApprox(w.Color, o.StallColor, 1e-6) {
		t.Errorf("Color = %v after stalling, want %v", w.Color, o.StallColor)
	}

	for i := 0; i < 30; i++ {
		obj.pos.X += 20
		tr.Update(Frame{Projector: p, DT: 1.0 / 60})
	}
	if !colorApprox(w.Color, o.Color, 1e-6) {
		t.Errorf("Color = %v after moving, want %v", w.Color, o.Color)
	}
}

func TestOverlayOffScreenHidesWidget(t *testing.T) {
	tr, _ := newTestTracker(t, overlayConfig())
	p := newFakeProjector()
	obj := newFakeObject(r3.Vec{Z: 1})
	tr.Register(obj)
	tr.Update(Frame{Projector: p, DT: 1.0 / 60})

	obj.pos = r3.Vec{Z: -1}
	tr.Update(Frame{Projector: p, DT: 1.0 / 60})
	w := tr.Registry().Get(obj).Widget
	if w.Visible || w.Alpha != 0 {
		t.Errorf("Visible %v Alpha %v, want hidden", w.Visible, w.Alpha)
	}
	if w.X.Vel != 0 || w.Y.Vel != 0 {
		t.Error("widget motion not reset")
	}
}

func TestOverlayRotationTakesShortWay(t *testing.T) {
	if got := angleDelta(350, 10); !approxEqual(got, 20, 1e-9) {
		t.Errorf("angleDelta(350, 10) = %v, want 20", got)
	}
	if got := angleDelta(10, 350); !approxEqual(got, -20, 1e-9) {
		t.Errorf("angleDelta(10, 350) = %v, want -20", got)
	}
	if got := angleDelta(0, 180); !approxEqual(got, 180, 1e-9) {
		t.Errorf("angleDelta(0, 180) = %v, want 180", got)
	}
}

func TestOverlayWidgetTail(t *testing.T) {
	w := newWidget(ColorWhite)
	w.snap(Vec2{50, 50}, 10, 90)
	// Heading right; tail trails to the left.
	tail := w.Tail()
	if !approxEqual(tail.X, 40, 1e-9) || !approxEqual(tail.Y, 50, 1e-9) {
		t.Errorf("Tail = %v, want (40, 50)", tail)
	}
}

func TestOverlayDraw(t *testing.T) {
	tr, _ := newTestTracker(t, overlayConfig())
	obj := newFakeObject(r3.Vec{X: 8, Y: 8, Z: 1})
	tr.Register(obj)
	tr.Update(Frame{Projector: newFakeProjector(), DT: 1.0 / 60})
	tr.Registry().Get(obj).Widget.Alpha = 1

	screen := ebiten.NewImage(32, 32)
	tr.Overlay().Draw(screen)
	tr.Overlay().DrawStats(screen, tr.LastStats())
}
