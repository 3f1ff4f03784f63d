package sunburst

import (
	"math"
	"strings"
	"testing"
)

func pointApprox(p Point, x, y float64) bool {
	return math.Abs(p.X-x) < 1e-6 && math.Abs(p.Y-y) < 1e-6
}

func TestPolarToCartesian(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		x, y  float64
	}{
		{"12 o'clock", 0, 300, 260},
		{"3 o'clock", 90, 340, 300},
		{"6 o'clock", 180, 300, 340},
		{"9 o'clock", 270, 260, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := polarToCartesian(300, 300, 40, tt.angle)
			if !pointApprox(p, tt.x, tt.y) {
				t.Errorf("polarToCartesian(%v°) = (%v, %v), want (%v, %v)", tt.angle, p.X, p.Y, tt.x, tt.y)
			}
		})
	}
}

func TestBuildArcPath(t *testing.T) {
	t.Run("quarter sector", func(t *testing.T) {
		d := BuildArcPath(300, 300, 40, 20, 0, 90)

		if d.Span != 90 {
			t.Errorf("span = %v, want 90", d.Span)
		}
		if d.FullCircle {
			t.Error("quarter sector flagged as full circle")
		}
		if !pointApprox(d.OuterStart, 300, 260) {
			t.Errorf("outer start = %+v, want (300, 260)", d.OuterStart)
		}
		if !pointApprox(d.OuterEnd, 340, 300) {
			t.Errorf("outer end = %+v, want (340, 300)", d.OuterEnd)
		}
		// Path starts at the outer end and sweeps back to the start.
		if !strings.HasPrefix(d.D, "M 340.000 300.000 A 40.000 40.000 0 0 0 300.000 260.000") {
			t.Errorf("unexpected path head: %s", d.D)
		}
		if !strings.HasSuffix(d.D, "Z") {
			t.Errorf("path not closed: %s", d.D)
		}
	})

	t.Run("large-arc flag", func(t *testing.T) {
		small := BuildArcPath(300, 300, 40, 20, 0, 180)
		if strings.Contains(small.D, " 1 0 ") {
			t.Errorf("180° span must not set the large-arc flag: %s", small.D)
		}

		large := BuildArcPath(300, 300, 40, 20, 0, 181)
		if !strings.Contains(large.D, " 1 0 ") {
			t.Errorf("181° span must set the large-arc flag: %s", large.D)
		}
	})

	t.Run("zero span does not panic", func(t *testing.T) {
		d := BuildArcPath(300, 300, 40, 20, 90, 90)

		if d.Span != 0 {
			t.Errorf("span = %v, want 0", d.Span)
		}
		if !pointApprox(d.OuterStart, d.OuterEnd.X, d.OuterEnd.Y) {
			t.Error("zero span should collapse outer endpoints")
		}
		if d.D == "" {
			t.Error("zero span should still emit a (degenerate) path")
		}
	})

	t.Run("full circle is flagged, not repaired", func(t *testing.T) {
		d := BuildArcPath(300, 300, 40, 20, 0, 360)

		if !d.FullCircle {
			t.Error("360° span must set FullCircle")
		}
		// Endpoints coincide; the flag is the only signal.
		if !pointApprox(d.OuterStart, d.OuterEnd.X, d.OuterEnd.Y) {
			t.Error("360° sweep endpoints should coincide")
		}
	})
}

func TestBuildFullCirclePath(t *testing.T) {
	d := BuildFullCirclePath(300, 300, 40, 20, 0)

	if !d.FullCircle {
		t.Error("FullCircle not set")
	}
	if d.Span != FullCircle {
		t.Errorf("span = %v, want %v", d.Span, FullCircle)
	}
	// Two outer halves and two inner halves.
	if got := strings.Count(d.D, "A "); got != 4 {
		t.Errorf("path has %d arc segments, want 4: %s", got, d.D)
	}
	if !pointApprox(d.OuterStart, 300, 260) {
		t.Errorf("outer start = %+v, want (300, 260)", d.OuterStart)
	}
}

func TestCentroid(t *testing.T) {
	a := Arc{InnerRadius: 0, OuterRadius: 40, StartAngle: 0, EndAngle: 120}
	p := Centroid(a, 300, 300)

	// Bisector at 60°, radius 20.
	wantX := 300 + 20*math.Cos(-30*math.Pi/180)
	wantY := 300 + 20*math.Sin(-30*math.Pi/180)
	if !pointApprox(p, wantX, wantY) {
		t.Errorf("centroid = (%v, %v), want (%v, %v)", p.X, p.Y, wantX, wantY)
	}
}

func TestArcPath(t *testing.T) {
	a := Arc{InnerRadius: 20, OuterRadius: 40, StartAngle: 0, EndAngle: 90}
	got := ArcPath(a, 300, 300)
	want := BuildArcPath(300, 300, 40, 20, 0, 90)
	if got.D != want.D {
		t.Errorf("ArcPath = %s, want %s", got.D, want.D)
	}
}
