package streak

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on a Widget simultaneously.
// Create one via the convenience constructors (TweenWidgetAlpha,
// TweenWidgetColor) and call Update(dt) each frame. If the target widget is
// released, the group stops immediately.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Widget
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. If the target widget has been released, Done is set to true and no
// writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.released {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenWidgetAlpha creates a TweenGroup that animates w.Alpha to the target
// value over the specified duration using the easing function.
func TweenWidgetAlpha(w *Widget, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: w}
	g.tweens[0] = gween.New(float32(w.Alpha), float32(to), duration, fn)
	g.fields[0] = &w.Alpha
	return g
}

// TweenWidgetColor creates a TweenGroup that animates all four components of
// w.Color to the target color over the specified duration.
func TweenWidgetColor(w *Widget, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 4, target: w}
	g.tweens[0] = gween.New(float32(w.Color.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(w.Color.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(w.Color.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(w.Color.A), float32(to.A), duration, fn)
	g.fields[0] = &w.Color.R
	g.fields[1] = &w.Color.G
	g.fields[2] = &w.Color.B
	g.fields[3] = &w.Color.A
	return g
}
