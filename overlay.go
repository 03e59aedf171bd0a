package streak

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween/ease"
)

const (
	defaultFadeDuration = 0.15
	defaultTintDuration = 0.25
	overlayStrokeWidth  = 2.0
	overlayHeadRadius   = 3.0
)

// widgetIDCounter is a plain counter; streak is single-threaded.
var widgetIDCounter uint32

func nextWidgetID() uint32 {
	widgetIDCounter++
	return widgetIDCounter
}

// Widget is the screen-space debug marker drawn for one tracked object in
// overlay mode. Position, length and rotation chase their targets with
// damped springs.
type Widget struct {
	ID uint32

	X, Y   Spring
	Length Spring
	// Rotation is the heading in degrees, unwrapped so the spring always
	// takes the short way round.
	Rotation Spring

	Alpha   float64
	Color   Color
	Visible bool

	fade       *TweenGroup
	tint       *TweenGroup
	tintTarget Color
	released   bool
}

func newWidget(c Color) *Widget {
	return &Widget{ID: nextWidgetID(), Color: c}
}

// Released reports whether the widget's object has stopped being tracked.
func (w *Widget) Released() bool {
	return w.released
}

// Head returns the widget's current screen position.
func (w *Widget) Head() Vec2 {
	return Vec2{w.X.Pos, w.Y.Pos}
}

// Tail returns the far end of the trail, drawn behind the direction of travel.
func (w *Widget) Tail() Vec2 {
	return TrailEndpoint(w.Head(), w.Rotation.Pos+180, w.Length.Pos)
}

// snap places every spring at rest on the target.
func (w *Widget) snap(pos Vec2, length, rotation float64) {
	w.X.Snap(pos.X)
	w.Y.Snap(pos.Y)
	w.Length.Snap(length)
	w.Rotation.Snap(rotation)
}

// reset hides the widget and stops all motion.
func (w *Widget) reset() {
	w.Visible = false
	w.Alpha = 0
	w.fade = nil
	w.tint = nil
	w.X.Vel, w.Y.Vel, w.Length.Vel, w.Rotation.Vel = 0, 0, 0, 0
}

// OverlayStrategy draws a spring-smoothed widget per tracked object instead
// of writing attachment offsets. It is a debugging aid; call Draw from the
// host's draw pass.
type OverlayStrategy struct {
	cfg     *Config
	widgets []*Widget

	// Color is the tint of widgets whose object is moving on screen.
	Color Color
	// StallColor is the tint a widget eases toward while its object holds
	// still on screen.
	StallColor Color
	// FadeDuration is how long, in seconds, a reappearing widget fades in.
	FadeDuration float32
	// TintDuration is how long, in seconds, a widget takes to change tint.
	TintDuration float32

	coefs   springCoefs
	coefsDT float64
}

// NewOverlayStrategy creates an OverlayStrategy reading cfg.
func NewOverlayStrategy(cfg *Config) *OverlayStrategy {
	return &OverlayStrategy{
		cfg:          cfg,
		Color:        Color{R: 1, G: 0.85, B: 0.3, A: 1},
		StallColor:   Color{R: 0.45, G: 0.5, B: 0.65, A: 1},
		FadeDuration: defaultFadeDuration,
		TintDuration: defaultTintDuration,
		coefs:        identitySpring,
	}
}

// Widgets returns the live widgets. The returned slice MUST NOT be mutated.
func (o *OverlayStrategy) Widgets() []*Widget {
	return o.widgets
}

// Attach allocates a hidden widget for obj.
func (o *OverlayStrategy) Attach(_ Object, st *State) {
	w := newWidget(o.Color)
	st.Widget = w
	o.widgets = append(o.widgets, w)
}

// Detach releases the widget owned by st.
func (o *OverlayStrategy) Detach(_ Object, st *State) {
	w := st.Widget
	if w == nil {
		return
	}
	st.Widget = nil
	w.released = true
	w.reset()
	for i, cur := range o.widgets {
		if cur == w {
			last := len(o.widgets) - 1
			o.widgets[i] = o.widgets[last]
			o.widgets[last] = nil
			o.widgets = o.widgets[:last]
			break
		}
	}
}

// ApplyOnScreen moves the widget toward the object's screen position. A
// widget that was hidden snaps into place and fades in. A visible widget eases
// toward StallColor while its object holds still and back to Color once it
// moves again.
func (o *OverlayStrategy) ApplyOnScreen(f *Frame, s Sample) error {
	w := s.State.Widget
	if w == nil {
		return nil
	}
	pos := s.Projection.Screen
	est := s.Estimate

	if !w.Visible {
		w.snap(pos, est.Length, est.Direction)
		w.Visible = true
		w.Alpha = 0
		w.fade = TweenWidgetAlpha(w, 1, o.FadeDuration, ease.OutQuad)
		w.Color, w.tintTarget = o.Color, o.Color
		return nil
	}

	c := o.springCoefs(f.DT)
	w.X.step(pos.X, c)
	w.Y.step(pos.Y, c)
	w.Length.step(est.Length, c)
	w.Rotation.step(w.Rotation.Pos+angleDelta(w.Rotation.Pos, est.Direction), c)

	want := o.StallColor
	if est.Moved {
		want = o.Color
	}
	if want != w.tintTarget {
		w.tintTarget = want
		w.tint = TweenWidgetColor(w, want, o.TintDuration, ease.InOutQuad)
	}

	dt := float32(f.DT)
	if w.fade != nil {
		w.fade.Update(dt)
		if w.fade.Done {
			w.fade = nil
		}
	}
	if w.tint != nil {
		w.tint.Update(dt)
		if w.tint.Done {
			w.tint = nil
		}
	}
	return nil
}

// ApplyOffScreen hides the widget and stops its motion.
func (o *OverlayStrategy) ApplyOffScreen(_ Object, st *State) {
	if st.Widget != nil {
		st.Widget.reset()
	}
}

// springCoefs returns the spring coefficients for dt, reusing the previous
// result when dt is unchanged (the common fixed-timestep case).
func (o *OverlayStrategy) springCoefs(dt float64) springCoefs {
	if dt != o.coefsDT {
		omega := 2 * math.Pi * o.cfg.SpringFrequency
		o.coefs = newSpringCoefs(dt, omega, o.cfg.SpringDamping)
		o.coefsDT = dt
	}
	return o.coefs
}

// Draw renders every visible widget as a tapered line with a head dot.
func (o *OverlayStrategy) Draw(screen *ebiten.Image) {
	for _, w := range o.widgets {
		if !w.Visible || w.Alpha <= 0 {
			continue
		}
		c := w.Color
		c.A *= w.Alpha
		clr := c.toRGBA()

		head := w.Head()
		tail := w.Tail()
		stroke := float32(overlayStrokeWidth * WidthMultiplier(o.cfg, w.Length.Pos))
		vector.StrokeLine(screen,
			float32(head.X), float32(head.Y), float32(tail.X), float32(tail.Y),
			stroke, clr, true)
		vector.DrawFilledCircle(screen, float32(head.X), float32(head.Y), overlayHeadRadius, clr, true)
	}
}

// DrawStats prints frame stats in the top-left corner of screen.
func (o *OverlayStrategy) DrawStats(screen *ebiten.Image, stats FrameStats) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"tracked: %d  on: %d  off: %d\nremoved: %d  proj err: %d  reproj err: %d",
		stats.Tracked, stats.OnScreen, stats.OffScreen,
		stats.Removed, stats.ProjectionFailures, stats.ReprojectionFailures), 4, 4)
}

// angleDelta returns the signed difference to - from in degrees, wrapped to
// (-180, 180].
func angleDelta(from, to float64) float64 {
	d := math.Mod(to-from, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}
