package math

import (
	m "math"
)

/**
 * @brief Creates and returns a new 2-element vector using the supplied values.
 */
func NewVector2(x, y float64) Vector2 {
	return Vector2{
		X: x,
		Y: y,
	}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 0.
 */
func NewVector2Zero() Vector2 {
	return Vector2{X: 0.0, Y: 0.0}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 1.
 */
func NewVector2One() Vector2 {
	return Vector2{1.0, 1.0}
}

/**
 * @brief Creates and returns a 2-component vector pointing up (0, 1).
 */
func NewVector2Up() Vector2 {
	return Vector2{0.0, 1.0}
}

/**
 * @brief Creates and returns a 2-component vector pointing down (0, -1).
 */
func NewVector2Down() Vector2 {
	return Vector2{0.0, -1.0}
}

/**
 * @brief Creates and returns a 2-component vector pointing left (-1, 0).
 */
func NewVector2Left() Vector2 {
	return Vector2{-1.0, 0.0}
}

/**
 * @brief Creates and returns a 2-component vector pointing right (1, 0).
 */
func NewVector2Right() Vector2 {
	return Vector2{1.0, 0.0}
}

/**
 * @brief Returns a vector whose components are uniform in [0, max).
 * A max of 0 is treated as 1.
 */
func NewVector2Random(max float64) Vector2 {
	if max == 0 {
		max = 1
	}
	return Vector2{Random() * max, Random() * max}
}

/**
 * @brief Creates a vector from the first two values; missing values are 0.
 */
func NewVector2FromArray(values []float64) Vector2 {
	v := Vector2{}
	v.SetFromArray(values)
	return v
}

// Vector2Min returns the component-wise minimum of a and b.
func Vector2Min(a, b Vector2) Vector2 {
	return Vector2{m.Min(a.X, b.X), m.Min(a.Y, b.Y)}
}

// Vector2Max returns the component-wise maximum of a and b.
func Vector2Max(a, b Vector2) Vector2 {
	return Vector2{m.Max(a.X, b.X), m.Max(a.Y, b.Y)}
}

// Vector2Clamp clamps each component of v to [low, high].
func Vector2Clamp(v, low, high Vector2) Vector2 {
	return Vector2{
		m.Min(m.Max(v.X, low.X), high.X),
		m.Min(m.Max(v.Y, low.Y), high.Y),
	}
}

func Vector2Distance(a, b Vector2) float64 {
	return a.Distance(b)
}

func Vector2Dot(a, b Vector2) float64 {
	return a.Dot(b)
}

// Vector2Lerp interpolates between start and end. t is not clamped.
func Vector2Lerp(start, end Vector2, t float64) Vector2 {
	return Vector2{
		Lerp(start.X, end.X, t),
		Lerp(start.Y, end.Y, t),
	}
}

/**
 *  Adds other to v and returns a copy of the result.
 */
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{v.X + other.X, v.Y + other.Y}
}

func (v *Vector2) AddInPlace(other Vector2) {
	v.X += other.X
	v.Y += other.Y
}

/**
 * Subtracts other from v and returns a copy of the result.
 */
func (v Vector2) Subtract(other Vector2) Vector2 {
	return Vector2{v.X - other.X, v.Y - other.Y}
}

func (v *Vector2) SubtractInPlace(other Vector2) {
	v.X -= other.X
	v.Y -= other.Y
}

/**
 *  Multiplies v by other component-wise and returns a copy of the result.
 */
func (v Vector2) Multiply(other Vector2) Vector2 {
	return Vector2{v.X * other.X, v.Y * other.Y}
}

func (v *Vector2) MultiplyInPlace(other Vector2) {
	v.X *= other.X
	v.Y *= other.Y
}

/**
 * Divides v by other component-wise and returns a copy of the result.
 */
func (v Vector2) Divide(other Vector2) Vector2 {
	return Vector2{v.X / other.X, v.Y / other.Y}
}

func (v *Vector2) DivideInPlace(other Vector2) {
	v.X /= other.X
	v.Y /= other.Y
}

func (v Vector2) Scale(factor float64) Vector2 {
	return Vector2{v.X * factor, v.Y * factor}
}

func (v *Vector2) ScaleInPlace(factor float64) {
	v.X *= factor
	v.Y *= factor
}

// Compress divides both components by factor.
func (v Vector2) Compress(factor float64) Vector2 {
	return Vector2{v.X / factor, v.Y / factor}
}

func (v *Vector2) CompressInPlace(factor float64) {
	v.X /= factor
	v.Y /= factor
}

func (v *Vector2) Floor() {
	v.X = m.Floor(v.X)
	v.Y = m.Floor(v.Y)
}

func (v *Vector2) Ceil() {
	v.X = m.Ceil(v.X)
	v.Y = m.Ceil(v.Y)
}

// Round rounds both components, halves going towards +Inf.
func (v *Vector2) Round() {
	v.X = roundHalfUp(v.X)
	v.Y = roundHalfUp(v.Y)
}

func (v Vector2) Floored() Vector2 {
	v.Floor()
	return v
}

func (v Vector2) Ceiled() Vector2 {
	v.Ceil()
	return v
}

func (v Vector2) Rounded() Vector2 {
	v.Round()
	return v
}

/**
 * Returns the squared length of the provided vector.
 */
func (v Vector2) MagnitudeSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

/**
 * @brief Returns the length of the provided vector.
 */
func (v Vector2) Magnitude() float64 {
	return m.Sqrt(v.MagnitudeSquared())
}

/**
 * @brief Returns a unit-length copy of v. The zero vector is returned as is.
 */
func (v Vector2) Normalize() Vector2 {
	v.NormalizeInPlace()
	return v
}

/**
 * @brief Normalizes v in place. Does nothing when the magnitude is zero.
 */
func (v *Vector2) NormalizeInPlace() {
	magnitude := v.Magnitude()
	if magnitude == 0 {
		return
	}
	v.CompressInPlace(magnitude)
}

// Negate flips the sign of both components in place.
func (v *Vector2) Negate() {
	v.X = -v.X
	v.Y = -v.Y
}

func (v Vector2) Negated() Vector2 {
	v.Negate()
	return v
}

func (v Vector2) Clone() Vector2 {
	return v
}

func (v *Vector2) Copy(other Vector2) {
	*v = other
}

func (v Vector2) Equals(other Vector2) bool {
	return v.X == other.X && v.Y == other.Y
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 */
func (v Vector2) Compare(other Vector2, tolerance float64) bool {
	if m.Abs(v.X-other.X) > tolerance {
		return false
	}
	if m.Abs(v.Y-other.Y) > tolerance {
		return false
	}
	return true
}

func (v *Vector2) Set(x, y float64) {
	v.X = x
	v.Y = y
}

func (v *Vector2) SetAll(value float64) {
	v.X = value
	v.Y = value
}

// SetFromArray assigns the components in order; missing values become 0.
func (v *Vector2) SetFromArray(values []float64) {
	var c [2]float64
	copy(c[:], values)
	v.X, v.Y = c[0], c[1]
}

func (v Vector2) AsArray() []float64 {
	return []float64{v.X, v.Y}
}

/**
 * @brief Returns the distance between v and other.
 */
func (v Vector2) Distance(other Vector2) float64 {
	d := Vector2{
		other.X - v.X,
		other.Y - v.Y}
	return d.Magnitude()
}

func (v Vector2) Dot(other Vector2) float64 {
	return v.X*other.X + v.Y*other.Y
}

func (v Vector2) String() string {
	return "{x: " + formatFloat(v.X) + ", y: " + formatFloat(v.Y) + "}"
}

func roundHalfUp(x float64) float64 {
	return m.Floor(x + 0.5)
}
