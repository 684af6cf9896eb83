package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector2Distance(t *testing.T) {
	tests := []struct {
		name string
		a, b Vector2
		want float64
	}{
		{"3-4-5", NewVector2(0, 0), NewVector2(3, 4), 5},
		{"y only", NewVector2(0, 0), NewVector2(0, 7), 7},
		{"x only", NewVector2(-2, 1), NewVector2(4, 1), 6},
		{"same point", NewVector2(1, 1), NewVector2(1, 1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Distance(tt.b))
			assert.Equal(t, tt.want, Vector2Distance(tt.b, tt.a))
		})
	}
}

func TestVector2Arithmetic(t *testing.T) {
	a := NewVector2(6, -3)
	b := NewVector2(2, 3)

	assert.Equal(t, Vector2{8, 0}, a.Add(b))
	assert.Equal(t, Vector2{4, -6}, a.Subtract(b))
	assert.Equal(t, Vector2{12, -9}, a.Multiply(b))
	assert.Equal(t, Vector2{3, -1}, a.Divide(b))
	assert.Equal(t, Vector2{-12, 6}, a.Scale(-2))
	assert.Equal(t, Vector2{2, -1}, a.Compress(3))
	assert.Equal(t, 3.0, Vector2Dot(a, b))

	v := a
	v.AddInPlace(b)
	v.SubtractInPlace(b)
	assert.Equal(t, a, v)

	v.MultiplyInPlace(b)
	v.DivideInPlace(b)
	assert.Equal(t, a, v)

	v.ScaleInPlace(2)
	v.CompressInPlace(2)
	assert.Equal(t, a, v)
}

func TestVector2Normalize(t *testing.T) {
	v := NewVector2(0, -9)
	assert.Equal(t, Vector2{0, -1}, v.Normalize())

	zero := NewVector2Zero()
	zero.NormalizeInPlace()
	assert.Equal(t, Vector2{}, zero)
	assert.Equal(t, 0.0, zero.Magnitude())
}

func TestVector2Rounding(t *testing.T) {
	tests := []struct {
		in      Vector2
		rounded Vector2
	}{
		{Vector2{0.5, -0.5}, Vector2{1, 0}},
		{Vector2{2.5, -2.5}, Vector2{3, -2}},
		{Vector2{1.49, -1.51}, Vector2{1, -2}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.rounded, tt.in.Rounded(), "round %s", tt.in)
	}

	v := NewVector2(1.2, -1.2)
	v.Floor()
	assert.Equal(t, Vector2{1, -2}, v)
	v = NewVector2(1.2, -1.2)
	v.Ceil()
	assert.Equal(t, Vector2{2, -1}, v)
}

func TestVector2Lerp(t *testing.T) {
	start := NewVector2Left()
	end := NewVector2Right()

	assert.Equal(t, Vector2{0, 0}, Vector2Lerp(start, end, 0.5))
	assert.Equal(t, Vector2{3, 0}, Vector2Lerp(start, end, 2))
}

func TestVector2MinMaxClamp(t *testing.T) {
	a := NewVector2(1, 4)
	b := NewVector2(2, 3)

	assert.Equal(t, Vector2{1, 3}, Vector2Min(a, b))
	assert.Equal(t, Vector2{2, 4}, Vector2Max(a, b))
	assert.Equal(t, Vector2{1, 3.5}, Vector2Clamp(NewVector2(-1, 9), NewVector2(1, 1), NewVector2(2, 3.5)))
}

func TestVector2Helpers(t *testing.T) {
	assert.Equal(t, Vector2{1, 1}, NewVector2One())
	assert.Equal(t, Vector2{0, 1}, NewVector2Up())
	assert.Equal(t, Vector2{0, -1}, NewVector2Down())
	assert.Equal(t, Vector2{7, 0}, NewVector2FromArray([]float64{7}))
	assert.Equal(t, Vector2{7, 8}, NewVector2FromArray([]float64{7, 8, 9}))

	v := NewVector2(3, -4)
	assert.Equal(t, Vector2{-3, 4}, v.Negated())
	assert.Equal(t, []float64{3, -4}, v.AsArray())
	assert.Equal(t, "{x: 3, y: -4}", v.String())

	var w Vector2
	w.Copy(v)
	assert.True(t, w.Equals(v))
	w.SetAll(2)
	assert.Equal(t, Vector2{2, 2}, w)
	w.Set(1, 0)
	assert.True(t, w.Compare(Vector2{1, 1e-12}, 1e-9))

	r := NewVector2Random(5)
	assert.True(t, r.X >= 0 && r.X < 5 && r.Y >= 0 && r.Y < 5, "random %s", r)
}
