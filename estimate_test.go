package streak

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestEstimateTrailScenarioNearObject(t *testing.T) {
	cfg := testConfig()
	cfg.DistanceCompensation = true
	cfg.DistanceScaleStart = 100
	cfg.DistanceScaleMaxEffect = 200
	cfg.MaxDistanceMultiplier = 10

	est := EstimateTrail(&cfg, TrailInput{
		Screen:     Vec2{13, 24},
		PrevScreen: SomeVec2(Vec2{10, 20}),
		Distance:   50,
	})
	if est.ScreenMagnitude != 5 {
		t.Errorf("ScreenMagnitude = %v, want 5", est.ScreenMagnitude)
	}
	if est.Length != 5 {
		t.Errorf("Length = %v, want 5", est.Length)
	}
	if !est.Moved {
		t.Error("Moved = false, want true")
	}
}

func TestEstimateTrailDistanceCompensated(t *testing.T) {
	cfg := testConfig()
	cfg.DistanceCompensation = true
	cfg.DistanceScaleStart = 100
	cfg.DistanceScaleMaxEffect = 200
	cfg.MaxDistanceMultiplier = 10

	est := EstimateTrail(&cfg, TrailInput{
		Screen:     Vec2{6, 8},
		PrevScreen: SomeVec2(Vec2{0, 0}),
		Distance:   150,
	})
	// 10 px * 5.5
	if !approxEqual(est.Length, 55, epsilon) {
		t.Errorf("Length = %v, want 55", est.Length)
	}
}

func TestEstimateTrailAbsentPreviousIsZeroDisplacement(t *testing.T) {
	cfg := testConfig()
	est := EstimateTrail(&cfg, TrailInput{
		Screen:        Vec2{500, 500},
		PrevScreen:    NoVec2(),
		LastDirection: 42,
	})
	if est.ScreenMagnitude != 0 {
		t.Errorf("ScreenMagnitude = %v, want 0", est.ScreenMagnitude)
	}
	if est.Length != cfg.MinTrailLength {
		t.Errorf("Length = %v, want min %v", est.Length, cfg.MinTrailLength)
	}
	if est.Direction != 42 || est.Moved {
		t.Errorf("Direction = %v (moved %v), want carried 42", est.Direction, est.Moved)
	}
}

func TestEstimateTrailCameraTerm(t *testing.T) {
	cfg := testConfig()
	cfg.ScreenMovementModifier = 0
	cfg.CameraMovementModifier = 2

	est := EstimateTrail(&cfg, TrailInput{
		Camera:     r3.Vec{X: 3, Y: 4},
		PrevCamera: r3.Vec{},
	})
	if est.Length != 10 {
		t.Errorf("Length = %v, want 10", est.Length)
	}
}

func TestEstimateTrailClampsToMax(t *testing.T) {
	cfg := testConfig()
	cfg.MaxTrailLength = 50
	est := EstimateTrail(&cfg, TrailInput{
		Screen:     Vec2{1000, 0},
		PrevScreen: SomeVec2(Vec2{}),
	})
	if est.Length != 50 {
		t.Errorf("Length = %v, want 50", est.Length)
	}
}

func TestEstimateTrailLengthAlwaysInRange(t *testing.T) {
	cfg := testConfig()
	cfg.MinTrailLength = 3
	cfg.MaxTrailLength = 40
	cfg.CameraMovementModifier = 0.7
	cfg.DistanceCompensation = true

	for i := 0; i < 200; i++ {
		f := float64(i)
		est := EstimateTrail(&cfg, TrailInput{
			Screen:     Vec2{math.Sin(f) * f, math.Cos(f) * f * 2},
			PrevScreen: SomeVec2(Vec2{f, -f}),
			Distance:   f * 10,
			Camera:     r3.Vec{X: f, Y: math.Sin(f)},
			PrevCamera: r3.Vec{X: f / 2},
		})
		if est.Length < cfg.MinTrailLength || est.Length > cfg.MaxTrailLength {
			t.Fatalf("iteration %d: Length = %v, outside [%v, %v]", i, est.Length, cfg.MinTrailLength, cfg.MaxTrailLength)
		}
	}
}

func TestEstimateTrailDirection(t *testing.T) {
	cfg := testConfig()
	cases := []struct {
		name string
		disp Vec2
		want float64
	}{
		{"up", Vec2{0, -10}, 0},
		{"right", Vec2{10, 0}, 90},
		{"down", Vec2{0, 10}, 180},
		{"left", Vec2{-10, 0}, 270},
	}
	for _, c := range cases {
		est := EstimateTrail(&cfg, TrailInput{
			Screen:     Vec2{100, 100}.Add(c.disp),
			PrevScreen: SomeVec2(Vec2{100, 100}),
		})
		if !approxEqual(est.Direction, c.want, 1e-9) {
			t.Errorf("%s: Direction = %v, want %v", c.name, est.Direction, c.want)
		}
	}
}

func TestEstimateTrailJitterHoldsDirection(t *testing.T) {
	cfg := testConfig()
	est := EstimateTrail(&cfg, TrailInput{
		Screen:        Vec2{100.05, 100},
		PrevScreen:    SomeVec2(Vec2{100, 100}),
		LastDirection: 135,
	})
	if est.Moved {
		t.Error("Moved = true for sub-threshold displacement")
	}
	if est.Direction != 135 {
		t.Errorf("Direction = %v, want held 135", est.Direction)
	}
}
