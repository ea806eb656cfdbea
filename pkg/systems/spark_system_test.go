package systems

import (
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/decker502/fireworks/pkg/config"
)

func defaultSparkConfig() config.SparkConfig {
	return config.DefaultFireworksConfig().Spark
}

func TestNewSpark(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	cfg := defaultSparkConfig()

	for i := 0; i < 200; i++ {
		s := NewSpark(rng, cfg, 300, 200, 120)

		if s.X != 300 || s.Y != 200 {
			t.Fatalf("position = (%v, %v), want (300, 200)", s.X, s.Y)
		}
		if s.Angle < 0 || s.Angle >= 2*math.Pi {
			t.Fatalf("Angle = %v, want [0, 2π)", s.Angle)
		}
		if s.Speed < 1 || s.Speed >= 10 {
			t.Fatalf("Speed = %v, want [1, 10)", s.Speed)
		}
		if s.Hue < 100 || s.Hue >= 140 {
			t.Fatalf("Hue = %v, want [100, 140)", s.Hue)
		}
		if s.Brightness < 50 || s.Brightness >= 80 {
			t.Fatalf("Brightness = %v, want [50, 80)", s.Brightness)
		}
		if s.Decay < 0.015 || s.Decay >= 0.03 {
			t.Fatalf("Decay = %v, want [0.015, 0.03)", s.Decay)
		}
		if s.Alpha != 1 || s.Friction != 0.95 || s.Gravity != 1 {
			t.Fatalf("alpha/friction/gravity = %v/%v/%v, want 1/0.95/1", s.Alpha, s.Friction, s.Gravity)
		}
		if s.Trail.Len() != 5 {
			t.Fatalf("Trail.Len() = %d, want 5", s.Trail.Len())
		}
	}
}

// TestSparkAlphaDecay 每次推进透明度恰好减少 Decay，并在 Alpha <= Decay 时过期
func TestSparkAlphaDecay(t *testing.T) {
	s := NewSpark(rand.New(rand.NewSource(9)), defaultSparkConfig(), 0, 0, 0)

	for i := 0; i < 1000; i++ {
		before := s.Alpha
		expired := AdvanceSpark(s)

		if math.Abs((before-s.Alpha)-s.Decay) > 1e-12 {
			t.Fatalf("tick %d: alpha dropped by %v, want %v", i, before-s.Alpha, s.Decay)
		}
		if expired != (s.Alpha <= s.Decay) {
			t.Fatalf("tick %d: expired=%v but alpha=%v decay=%v", i, expired, s.Alpha, s.Decay)
		}
		if expired {
			if s.Alpha <= 0 {
				t.Errorf("spark should expire one tick before alpha reaches 0, alpha=%v", s.Alpha)
			}
			return
		}
	}
	t.Fatal("spark never expired")
}

// TestSparkKinematics 摩擦与重力
func TestSparkKinematics(t *testing.T) {
	s := NewSpark(rand.New(rand.NewSource(1)), defaultSparkConfig(), 50, 50, 0)
	s.Angle = 0
	s.Speed = 10

	AdvanceSpark(s)

	if math.Abs(s.Speed-9.5) > 1e-9 {
		t.Errorf("Speed = %v, want 9.5", s.Speed)
	}
	if math.Abs(s.X-59.5) > 1e-9 {
		t.Errorf("X = %v, want 59.5", s.X)
	}
	if math.Abs(s.Y-51) > 1e-9 {
		t.Errorf("Y = %v, want 51 (gravity only)", s.Y)
	}
	if p := s.Trail.At(0); p.X != 50 || p.Y != 50 {
		t.Errorf("Trail[0] = %+v, want previous position (50, 50)", p)
	}
}

// TestSparkDeterministic 固定种子下，新建并推进一次的结果可复现
func TestSparkDeterministic(t *testing.T) {
	cfg := defaultSparkConfig()

	run := func() (float64, float64, float64) {
		s := NewSpark(rand.New(rand.NewSource(2024)), cfg, 200, 100, 180)
		AdvanceSpark(s)
		return s.X, s.Y, s.Alpha
	}

	x1, y1, a1 := run()
	x2, y2, a2 := run()
	if x1 != x2 || y1 != y2 || a1 != a2 {
		t.Errorf("runs differ: (%v, %v, %v) vs (%v, %v, %v)", x1, y1, a1, x2, y2, a2)
	}
}

func TestRenderSpark(t *testing.T) {
	s := NewSpark(rand.New(rand.NewSource(1)), defaultSparkConfig(), 10, 20, 0)
	AdvanceSpark(s)

	surface := newRecordingSurface(100, 100)
	RenderSpark(surface, s)

	if len(surface.lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(surface.lines))
	}
	line := surface.lines[0]
	if line.x0 != 10 || line.y0 != 20 || line.x1 != s.X || line.y1 != s.Y {
		t.Errorf("line = %+v, want from (10, 20) to current", line)
	}

	c := line.clr.(color.NRGBA)
	want := uint8(math.Round(s.Alpha * 255))
	if c.A != want {
		t.Errorf("alpha = %d, want %d", c.A, want)
	}
}
