package streak

import (
	"math"
	"testing"
)

func TestSpringZeroDTIsIdentity(t *testing.T) {
	for _, zeta := range []float64{0.3, 1, 2} {
		c := newSpringCoefs(0, 2*math.Pi*4, zeta)
		if c != identitySpring {
			t.Errorf("zeta %v: coefs = %+v, want identity", zeta, c)
		}
	}
}

func TestSpringConvergesToTarget(t *testing.T) {
	for _, zeta := range []float64{0.5, 1, 1.8} {
		c := newSpringCoefs(1.0/60, 2*math.Pi*4, zeta)
		s := Spring{Pos: 0}
		for i := 0; i < 600; i++ {
			s.step(100, c)
		}
		if !approxEqual(s.Pos, 100, 1e-3) || !approxEqual(s.Vel, 0, 1e-3) {
			t.Errorf("zeta %v: pos %v vel %v, want rest at 100", zeta, s.Pos, s.Vel)
		}
	}
}

func TestSpringCriticallyDampedDoesNotOvershoot(t *testing.T) {
	c := newSpringCoefs(1.0/60, 2*math.Pi*3, 1)
	s := Spring{}
	for i := 0; i < 300; i++ {
		s.step(10, c)
		if s.Pos > 10+1e-9 {
			t.Fatalf("step %d: pos %v overshot target 10", i, s.Pos)
		}
	}
}

func TestSpringUnderDampedOvershoots(t *testing.T) {
	c := newSpringCoefs(1.0/60, 2*math.Pi*3, 0.2)
	s := Spring{}
	maxPos := 0.0
	for i := 0; i < 300; i++ {
		s.step(10, c)
		maxPos = math.Max(maxPos, s.Pos)
	}
	if maxPos <= 10 {
		t.Errorf("max pos = %v, want overshoot past 10", maxPos)
	}
}

func TestSpringSnap(t *testing.T) {
	s := Spring{Pos: 3, Vel: 9}
	s.Snap(7)
	if s.Pos != 7 || s.Vel != 0 {
		t.Errorf("Snap: %+v, want {7 0}", s)
	}
}
