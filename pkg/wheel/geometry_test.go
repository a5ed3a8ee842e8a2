package wheel

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testGeometry() Geometry {
	return Geometry{CenterX: 400, CenterY: 300, Radius: 120, PackingFactor: 0.66}
}

func TestSlotAnglesEquallySpaced(t *testing.T) {
	for n := 2; n <= 12; n++ {
		angles := make([]float64, n)
		for i := 0; i < n; i++ {
			angles[i] = ComputeSlot(i, n, 0, testGeometry()).Angle
		}

		assert.True(t, sort.Float64sAreSorted(angles), "n=%d angles ascend clockwise", n)
		step := 2 * math.Pi / float64(n)
		span := 0.0
		for i := 0; i < n; i++ {
			next := angles[(i+1)%n]
			if i == n-1 {
				next += 2 * math.Pi
			}
			gap := next - angles[i]
			assert.InDelta(t, step, gap, 1e-9, "n=%d gap %d", n, i)
			span += gap
		}
		assert.InDelta(t, 2*math.Pi, span, 1e-9, "n=%d spans a full turn", n)
	}
}

func TestSingleSlotAtCenter(t *testing.T) {
	s := ComputeSlot(0, 1, 1, testGeometry())
	assert.Zero(t, s.Angle)
	assert.Equal(t, 400.0, s.X)
	assert.Equal(t, 300.0, s.Y)
	// 2R * 0.5，单个元素不做悬停放大
	assert.InDelta(t, 120, s.Diameter, 1e-9)
}

func TestFirstSlotAtTwelveOClock(t *testing.T) {
	g := testGeometry()

	top := ComputeSlot(0, 4, 0, g)
	assert.InDelta(t, 400, top.X, 1e-9)
	assert.InDelta(t, 180, top.Y, 1e-9)

	right := ComputeSlot(1, 4, 0, g)
	assert.InDelta(t, 520, right.X, 1e-9, "second slot is clockwise, on the right")
	assert.InDelta(t, 300, right.Y, 1e-9)
}

func TestSlotDiameterTable(t *testing.T) {
	g := testGeometry()
	tests := []struct {
		total int
		scale float64
	}{
		{2, 0.7},
		{3, 0.9},
		{4, 0.95},
		{5, 1},
		{8, 1},
	}

	for _, tt := range tests {
		want := math.Sin(math.Pi/float64(tt.total)) * 2 * g.Radius * g.PackingFactor * tt.scale
		assert.InDelta(t, want, ComputeSlot(0, tt.total, 0, g).Diameter, 1e-9, "total=%d", tt.total)
	}
}

func TestHoverGrowth(t *testing.T) {
	g := testGeometry()
	base := ComputeSlot(2, 6, 0, g).Diameter
	full := ComputeSlot(2, 6, 1, g).Diameter
	half := ComputeSlot(2, 6, 0.5, g).Diameter

	assert.InDelta(t, base*1.1, full, 1e-9)
	assert.InDelta(t, base*1.05, half, 1e-9, "smoothstep(0.5) = 0.5")
	assert.InDelta(t, base*1.1, ComputeSlot(2, 6, 3, g).Diameter, 1e-9, "fade is clamped")
}

func TestSlotsNeverOverlap(t *testing.T) {
	g := testGeometry()
	for n := 2; n <= 24; n++ {
		a := ComputeSlot(0, n, 1, g)
		b := ComputeSlot(1, n, 1, g)
		centerDist := math.Hypot(a.X-b.X, a.Y-b.Y)
		assert.Less(t, a.Diameter, centerDist, "n=%d fully hovered neighbours stay apart", n)
	}
}

func TestComputeSlotEmpty(t *testing.T) {
	assert.Equal(t, Slot{}, ComputeSlot(0, 0, 0, testGeometry()))
}
