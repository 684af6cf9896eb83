package math

import (
	m "math"
)

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @return A new 3-element vector.
 */
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{x, y, z}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 0.
 */
func NewVector3Zero() Vector3 {
	return Vector3{0.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 1.
 */
func NewVector3One() Vector3 {
	return Vector3{1.0, 1.0, 1.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing up (0, 1, 0).
 */
func NewVector3Up() Vector3 {
	return Vector3{0.0, 1.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing down (0, -1, 0).
 */
func NewVector3Down() Vector3 {
	return Vector3{0.0, -1.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing left (-1, 0, 0).
 */
func NewVector3Left() Vector3 {
	return Vector3{-1.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing right (1, 0, 0).
 */
func NewVector3Right() Vector3 {
	return Vector3{1.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing forward (0, 0, -1).
 */
func NewVector3Forward() Vector3 {
	return Vector3{0.0, 0.0, -1.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing backward (0, 0, 1).
 */
func NewVector3Back() Vector3 {
	return Vector3{0.0, 0.0, 1.0}
}

/**
 * @brief Returns a vector whose components are uniform in [0, max).
 * A max of 0 is treated as 1.
 */
func NewVector3Random(max float64) Vector3 {
	if max == 0 {
		max = 1
	}
	return Vector3{Random() * max, Random() * max, Random() * max}
}

/**
 * @brief Creates a vector from the first three values; missing values are 0.
 */
func NewVector3FromArray(values []float64) Vector3 {
	v := Vector3{}
	v.SetFromArray(values)
	return v
}

func Vector3Min(a, b Vector3) Vector3 {
	return Vector3{m.Min(a.X, b.X), m.Min(a.Y, b.Y), m.Min(a.Z, b.Z)}
}

func Vector3Max(a, b Vector3) Vector3 {
	return Vector3{m.Max(a.X, b.X), m.Max(a.Y, b.Y), m.Max(a.Z, b.Z)}
}

// Vector3Clamp clamps each component of v to [low, high].
func Vector3Clamp(v, low, high Vector3) Vector3 {
	return Vector3{
		m.Min(m.Max(v.X, low.X), high.X),
		m.Min(m.Max(v.Y, low.Y), high.Y),
		m.Min(m.Max(v.Z, low.Z), high.Z),
	}
}

func Vector3Distance(a, b Vector3) float64 {
	return a.Distance(b)
}

func Vector3Dot(a, b Vector3) float64 {
	return a.Dot(b)
}

// Vector3Lerp interpolates between start and end. t is not clamped.
func Vector3Lerp(start, end Vector3, t float64) Vector3 {
	return Vector3{
		Lerp(start.X, end.X, t),
		Lerp(start.Y, end.Y, t),
		Lerp(start.Z, end.Z, t),
	}
}

/**
 * @brief Adds other to v and returns a copy of the result.
 */
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{
		v.X + other.X,
		v.Y + other.Y,
		v.Z + other.Z}
}

func (v *Vector3) AddInPlace(other Vector3) {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
}

/**
 * @brief Subtracts other from v and returns a copy of the result.
 */
func (v Vector3) Subtract(other Vector3) Vector3 {
	return Vector3{
		v.X - other.X,
		v.Y - other.Y,
		v.Z - other.Z}
}

func (v *Vector3) SubtractInPlace(other Vector3) {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
}

/**
 * @brief Multiplies v by other component-wise and returns a copy of the result.
 */
func (v Vector3) Multiply(other Vector3) Vector3 {
	return Vector3{
		v.X * other.X,
		v.Y * other.Y,
		v.Z * other.Z}
}

func (v *Vector3) MultiplyInPlace(other Vector3) {
	v.X *= other.X
	v.Y *= other.Y
	v.Z *= other.Z
}

/**
 * @brief Divides v by other component-wise and returns a copy of the result.
 */
func (v Vector3) Divide(other Vector3) Vector3 {
	return Vector3{
		v.X / other.X,
		v.Y / other.Y,
		v.Z / other.Z}
}

func (v *Vector3) DivideInPlace(other Vector3) {
	v.X /= other.X
	v.Y /= other.Y
	v.Z /= other.Z
}

/**
 * @brief Multiplies all elements of v by factor and returns a copy of the result.
 */
func (v Vector3) Scale(factor float64) Vector3 {
	return Vector3{
		v.X * factor,
		v.Y * factor,
		v.Z * factor}
}

func (v *Vector3) ScaleInPlace(factor float64) {
	v.X *= factor
	v.Y *= factor
	v.Z *= factor
}

/**
 * @brief Divides all elements of v by factor and returns a copy of the result.
 */
func (v Vector3) Compress(factor float64) Vector3 {
	return Vector3{
		v.X / factor,
		v.Y / factor,
		v.Z / factor}
}

func (v *Vector3) CompressInPlace(factor float64) {
	v.X /= factor
	v.Y /= factor
	v.Z /= factor
}

func (v *Vector3) Floor() {
	v.X = m.Floor(v.X)
	v.Y = m.Floor(v.Y)
	v.Z = m.Floor(v.Z)
}

func (v *Vector3) Ceil() {
	v.X = m.Ceil(v.X)
	v.Y = m.Ceil(v.Y)
	v.Z = m.Ceil(v.Z)
}

// Round rounds every component, halves going towards +Inf.
func (v *Vector3) Round() {
	v.X = roundHalfUp(v.X)
	v.Y = roundHalfUp(v.Y)
	v.Z = roundHalfUp(v.Z)
}

func (v Vector3) Floored() Vector3 {
	v.Floor()
	return v
}

func (v Vector3) Ceiled() Vector3 {
	v.Ceil()
	return v
}

func (v Vector3) Rounded() Vector3 {
	v.Round()
	return v
}

/**
 * @brief Returns the squared length of the provided vector.
 */
func (v Vector3) MagnitudeSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

/**
 * @brief Returns the length of the provided vector.
 */
func (v Vector3) Magnitude() float64 {
	return m.Sqrt(v.MagnitudeSquared())
}

/**
 * @brief Returns a unit-length copy of v. The zero vector is returned as is.
 */
func (v Vector3) Normalize() Vector3 {
	v.NormalizeInPlace()
	return v
}

/**
 * @brief Normalizes v in place. Does nothing when the magnitude is zero.
 */
func (v *Vector3) NormalizeInPlace() {
	magnitude := v.Magnitude()
	if magnitude == 0 {
		return
	}
	v.CompressInPlace(magnitude)
}

func (v *Vector3) Negate() {
	v.X = -v.X
	v.Y = -v.Y
	v.Z = -v.Z
}

func (v Vector3) Negated() Vector3 {
	v.Negate()
	return v
}

func (v Vector3) Clone() Vector3 {
	return v
}

func (v *Vector3) Copy(other Vector3) {
	*v = other
}

func (v Vector3) Equals(other Vector3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 *
 * @param other The second vector.
 * @param tolerance The difference tolerance. Typically K_FLOAT_EPSILON or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vector3) Compare(other Vector3, tolerance float64) bool {
	if m.Abs(v.X-other.X) > tolerance {
		return false
	}

	if m.Abs(v.Y-other.Y) > tolerance {
		return false
	}

	if m.Abs(v.Z-other.Z) > tolerance {
		return false
	}

	return true
}

func (v *Vector3) Set(x, y, z float64) {
	v.X = x
	v.Y = y
	v.Z = z
}

func (v *Vector3) SetAll(value float64) {
	v.X = value
	v.Y = value
	v.Z = value
}

// SetFromArray assigns the components in order; missing values become 0.
func (v *Vector3) SetFromArray(values []float64) {
	var c [3]float64
	copy(c[:], values)
	v.X, v.Y, v.Z = c[0], c[1], c[2]
}

func (v Vector3) AsArray() []float64 {
	return []float64{v.X, v.Y, v.Z}
}

/**
 * @brief Returns the distance between v and other.
 */
func (v Vector3) Distance(other Vector3) float64 {
	d := Vector3{
		other.X - v.X,
		other.Y - v.Y,
		other.Z - v.Z}
	return d.Magnitude()
}

/**
 * @brief Returns the dot product between the provided vectors. Typically used
 * to calculate the difference in direction.
 */
func (v Vector3) Dot(other Vector3) float64 {
	p := float64(0)
	p += v.X * other.X
	p += v.Y * other.Y
	p += v.Z * other.Z
	return p
}

/**
 * @brief Calculates and returns the cross product of the supplied vectors.
 * The cross product is a new vector which is orthoganal to both provided vectors.
 */
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X}
}

func (v Vector3) String() string {
	return "{x: " + formatFloat(v.X) + ", y: " + formatFloat(v.Y) + ", z: " + formatFloat(v.Z) + "}"
}
