package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, Clamp(5, 0, 10))
	assert.Equal(t, 0, Clamp(-3, 0, 10))
	assert.Equal(t, 10, Clamp(42, 0, 10))
	assert.Equal(t, 0.5, Clamp(0.5, 0.0, 1.0))
	assert.Equal(t, uint8(255), Clamp[uint8](255, 0, 255))
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, 1, Min(1, 2))
	assert.Equal(t, 1, Min(2, 1))
	assert.Equal(t, 2, Max(1, 2))
	assert.Equal(t, 2, Max(2, 1))
	assert.Equal(t, "a", Min("a", "b"))
}

func TestLerp(t *testing.T) {
	assert.Equal(t, 0.0, Lerp(0.0, 10.0, 0))
	assert.Equal(t, 2.5, Lerp(0.0, 10.0, 0.25))
	assert.Equal(t, 10.0, Lerp(0.0, 10.0, 1))
	assert.Equal(t, -10.0, Lerp(0.0, 10.0, -1))
	assert.Equal(t, float32(15), Lerp[float32](10, 20, 0.5))
}

func TestAngleConversion(t *testing.T) {
	assert.InDelta(t, K_PI, DegToRad(180), 1e-15)
	assert.InDelta(t, K_HALF_PI, DegToRad(90), 1e-15)
	assert.InDelta(t, 90.0, RadToDeg(K_HALF_PI), 1e-12)
	assert.InDelta(t, 33.0, RadToDeg(DegToRad(33)), 1e-12)
}

func TestRandom(t *testing.T) {
	for i := 0; i < 1000; i++ {
		r := Random()
		assert.True(t, r >= 0 && r < 1, "Random() = %v", r)

		n := RandomInRange(-3, 3)
		assert.True(t, n >= -3 && n <= 3, "RandomInRange(-3, 3) = %d", n)
	}

	assert.Equal(t, 4, RandomInRange(4, 4))

	swapped := RandomInRange(10, 1)
	assert.True(t, swapped >= 1 && swapped <= 10)
}
