package math

import (
	m "math"
	"strings"

	"github.com/spaghettifunk/vengine/engine/core"
)

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 *
 * @return A new identity matrix
 */
func NewMatrix4Identity() Matrix4 {
	out_matrix := Matrix4{}
	out_matrix.Elements[0] = 1.0
	out_matrix.Elements[5] = 1.0
	out_matrix.Elements[10] = 1.0
	out_matrix.Elements[15] = 1.0
	return out_matrix
}

// NewMatrix4 returns the default matrix, which is the identity.
func NewMatrix4() Matrix4 {
	return NewMatrix4Identity()
}

/**
 * @brief Creates a matrix from up to 16 row-major values. Entries past the
 * end of values keep their identity value; values past 16 are ignored.
 */
func NewMatrix4FromArray(values []float64) Matrix4 {
	out_matrix := NewMatrix4Identity()
	out_matrix.Set(values)
	return out_matrix
}

/**
 * @brief Creates and returns a translation matrix from the given position.
 * The offset sits in the last column (elements 3, 7 and 11).
 */
func NewMatrix4Translation(position Vector3) Matrix4 {
	out_matrix := NewMatrix4Identity()
	out_matrix.Elements[3] = position.X
	out_matrix.Elements[7] = position.Y
	out_matrix.Elements[11] = position.Z
	return out_matrix
}

/**
 * @brief Returns a scale matrix using the provided scale.
 */
func NewMatrix4Scale(scale Vector3) Matrix4 {
	out_matrix := NewMatrix4Identity()
	out_matrix.Elements[0] = scale.X
	out_matrix.Elements[5] = scale.Y
	out_matrix.Elements[10] = scale.Z
	return out_matrix
}

/**
 * @brief Creates a rotation matrix from the provided x angle.
 *
 * @param angle_radians The x angle in radians.
 * @return A rotation matrix.
 */
func NewMatrix4EulerX(angle_radians float64) Matrix4 {
	out_matrix := NewMatrix4Identity()
	c := m.Cos(angle_radians)
	s := m.Sin(angle_radians)

	out_matrix.Elements[5] = c
	out_matrix.Elements[6] = -s
	out_matrix.Elements[9] = s
	out_matrix.Elements[10] = c
	return out_matrix
}

/**
 * @brief Creates a rotation matrix from the provided y angle.
 *
 * @param angle_radians The y angle in radians.
 * @return A rotation matrix.
 */
func NewMatrix4EulerY(angle_radians float64) Matrix4 {
	out_matrix := NewMatrix4Identity()
	c := m.Cos(angle_radians)
	s := m.Sin(angle_radians)

	out_matrix.Elements[0] = c
	out_matrix.Elements[2] = s
	out_matrix.Elements[8] = -s
	out_matrix.Elements[10] = c
	return out_matrix
}

/**
 * @brief Creates a rotation matrix from the provided z angle.
 *
 * @param angle_radians The z angle in radians.
 * @return A rotation matrix.
 */
func NewMatrix4EulerZ(angle_radians float64) Matrix4 {
	out_matrix := NewMatrix4Identity()
	c := m.Cos(angle_radians)
	s := m.Sin(angle_radians)

	out_matrix.Elements[0] = c
	out_matrix.Elements[1] = -s
	out_matrix.Elements[4] = s
	out_matrix.Elements[5] = c
	return out_matrix
}

/**
 * @brief Creates a rotation matrix from the provided x, y and z axis rotations.
 * The x rotation is applied first, then y, then z.
 */
func NewMatrix4EulerXYZ(x_radians, y_radians, z_radians float64) Matrix4 {
	out_matrix := NewMatrix4EulerX(x_radians)
	out_matrix.Multiply(NewMatrix4EulerY(y_radians))
	out_matrix.Multiply(NewMatrix4EulerZ(z_radians))
	return out_matrix
}

// At returns the element at (row, col).
func (mt Matrix4) At(row, col int) float64 {
	return mt.Elements[row*4+col]
}

// SetAt writes the element at (row, col).
func (mt *Matrix4) SetAt(row, col int, value float64) {
	mt.Elements[row*4+col] = value
}

/**
 * @brief Transposes the matrix in place.
 */
func (mt *Matrix4) Transpose() {
	e := &mt.Elements

	// Upper triangle is overwritten by the first row writes below.
	e01 := e[1]
	e02 := e[2]
	e03 := e[3]
	e12 := e[6]
	e13 := e[7]
	e23 := e[11]

	e[1] = e[4]
	e[2] = e[8]
	e[3] = e[12]
	e[4] = e01
	e[6] = e[9]
	e[7] = e[13]
	e[8] = e02
	e[9] = e12
	e[11] = e[14]
	e[12] = e03
	e[13] = e13
	e[14] = e23
}

/**
 * @brief Sets the matrix to the transpose of source.
 */
func (mt *Matrix4) TransposeFrom(source Matrix4) {
	*mt = source
	mt.Transpose()
}

/**
 * @brief Returns a transposed copy of the matrix (rows->columns).
 */
func (mt Matrix4) Transposed() Matrix4 {
	mt.Transpose()
	return mt
}

/**
 * @brief Calculates the determinant by cofactor expansion along the last
 * column. A result of exactly zero means the matrix is singular.
 */
func (mt Matrix4) Determinant() float64 {
	e := &mt.Elements

	// 2x2 minors of the top two rows
	b0 := e[0]*e[5] - e[1]*e[4]
	b1 := e[0]*e[6] - e[2]*e[4]
	b2 := e[1]*e[6] - e[2]*e[5]
	// 2x2 minors of the bottom two rows
	b3 := e[8]*e[13] - e[9]*e[12]
	b4 := e[8]*e[14] - e[10]*e[12]
	b5 := e[9]*e[14] - e[10]*e[13]
	// 3x3 cofactors of the last column
	b6 := e[0]*b5 - e[1]*b4 + e[2]*b3
	b7 := e[4]*b5 - e[5]*b4 + e[6]*b3
	b8 := e[8]*b2 - e[9]*b1 + e[10]*b0
	b9 := e[12]*b2 - e[13]*b1 + e[14]*b0

	return e[7]*b6 - e[3]*b7 + e[15]*b8 - e[11]*b9
}

// adjugate returns the transposed cofactor matrix of s. The caller's storage
// is never written, so the result may be stored back into s.
func adjugate(s *[16]float64) [16]float64 {
	b00 := s[0]*s[5] - s[1]*s[4]
	b01 := s[0]*s[6] - s[2]*s[4]
	b02 := s[0]*s[7] - s[3]*s[4]
	b03 := s[1]*s[6] - s[2]*s[5]
	b04 := s[1]*s[7] - s[3]*s[5]
	b05 := s[2]*s[7] - s[3]*s[6]
	b06 := s[8]*s[13] - s[9]*s[12]
	b07 := s[8]*s[14] - s[10]*s[12]
	b08 := s[8]*s[15] - s[11]*s[12]
	b09 := s[9]*s[14] - s[10]*s[13]
	b10 := s[9]*s[15] - s[11]*s[13]
	b11 := s[10]*s[15] - s[11]*s[14]

	return [16]float64{
		s[5]*b11 - s[6]*b10 + s[7]*b09,
		s[2]*b10 - s[1]*b11 - s[3]*b09,
		s[13]*b05 - s[14]*b04 + s[15]*b03,
		s[10]*b04 - s[9]*b05 - s[11]*b03,

		s[6]*b08 - s[4]*b11 - s[7]*b07,
		s[0]*b11 - s[2]*b08 + s[3]*b07,
		s[14]*b02 - s[12]*b05 - s[15]*b01,
		s[8]*b05 - s[10]*b02 + s[11]*b01,

		s[4]*b10 - s[5]*b08 + s[7]*b06,
		s[1]*b08 - s[0]*b10 - s[3]*b06,
		s[12]*b04 - s[13]*b02 + s[15]*b00,
		s[9]*b02 - s[8]*b04 - s[11]*b00,

		s[5]*b07 - s[4]*b09 - s[6]*b06,
		s[0]*b09 - s[1]*b07 + s[2]*b06,
		s[13]*b01 - s[12]*b03 - s[14]*b00,
		s[8]*b03 - s[9]*b01 + s[10]*b00,
	}
}

/**
 * @brief Sets the matrix to the adjugate (transposed cofactor matrix) of
 * source. Valid for singular matrices too.
 */
func (mt *Matrix4) Adjugate(source Matrix4) {
	mt.Elements = adjugate(&source.Elements)
}

/**
 * @brief Returns the adjugate of the matrix.
 */
func (mt Matrix4) Adjugated() Matrix4 {
	return Matrix4{Elements: adjugate(&mt.Elements)}
}

/**
 * @brief Sets the matrix to the inverse of source.
 *
 * If source is singular the matrix is left exactly as it was and false is
 * returned; no element is written.
 */
func (mt *Matrix4) InvertFrom(source Matrix4) bool {
	determinant := source.Determinant()
	if determinant == 0 || m.IsNaN(determinant) {
		core.LogDebug("matrix4: inversion skipped, singular source (det=%v)", determinant)
		return false
	}

	adj := adjugate(&source.Elements)
	inv := 1.0 / determinant
	for i := range adj {
		mt.Elements[i] = adj[i] * inv
	}
	return true
}

/**
 * @brief Inverts the matrix in place. See InvertFrom for the singular case.
 */
func (mt *Matrix4) Invert() bool {
	return mt.InvertFrom(*mt)
}

/**
 * @brief Returns the inverse of the matrix, or ErrSingularMatrix together
 * with an unchanged copy when the determinant is zero.
 */
func (mt Matrix4) Inverse() (Matrix4, error) {
	out_matrix := mt
	if !out_matrix.Invert() {
		return mt, ErrSingularMatrix
	}
	return out_matrix, nil
}

/**
 * @brief Returns the result of multiplying mt by other (mt x other).
 */
func (mt Matrix4) Mul(other Matrix4) Matrix4 {
	out_matrix := Matrix4{}

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := float64(0)
			for i := 0; i < 4; i++ {
				sum += mt.Elements[row*4+i] * other.Elements[i*4+col]
			}
			out_matrix.Elements[row*4+col] = sum
		}
	}

	return out_matrix
}

/**
 * @brief Composes other into the matrix: mt becomes other x mt.
 *
 * Every output element is computed from the matrix as it was before the
 * call, so m.Multiply(m) squares m.
 */
func (mt *Matrix4) Multiply(other Matrix4) {
	*mt = other.Mul(*mt)
}

// Set copies up to 16 values into the matrix in row-major order. Elements
// beyond len(values) are left untouched.
func (mt *Matrix4) Set(values []float64) {
	copy(mt.Elements[:], values)
}

func (mt *Matrix4) SetAll(value float64) {
	for i := range mt.Elements {
		mt.Elements[i] = value
	}
}

func (mt Matrix4) Clone() Matrix4 {
	return mt
}

func (mt *Matrix4) Copy(other Matrix4) {
	mt.Elements = other.Elements
}

// AsArray returns a fresh row-major slice of the 16 elements.
func (mt Matrix4) AsArray() []float64 {
	out := make([]float64, len(mt.Elements))
	copy(out, mt.Elements[:])
	return out
}

// Float32s returns the elements narrowed to float32, ready for a uniform upload.
func (mt Matrix4) Float32s() [16]float32 {
	var out [16]float32
	for i, v := range mt.Elements {
		out[i] = float32(v)
	}
	return out
}

func (mt Matrix4) Equals(other Matrix4) bool {
	return mt.Elements == other.Elements
}

/**
 * @brief Compares all elements and ensures the difference is at most tolerance.
 */
func (mt Matrix4) Compare(other Matrix4, tolerance float64) bool {
	for i := range mt.Elements {
		if m.Abs(mt.Elements[i]-other.Elements[i]) > tolerance {
			return false
		}
	}
	return true
}

// String prints the matrix one row per line:
//
//	{1, 0, 0, 0,
//	0, 1, 0, 0, ...}
func (mt Matrix4) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	last := len(mt.Elements) - 1
	for i, v := range mt.Elements {
		sb.WriteString(formatFloat(v))
		if i < last {
			sb.WriteString(", ")
			if (i+1)%4 == 0 {
				sb.WriteString("\n")
			}
		}
	}
	sb.WriteString("}")
	return sb.String()
}
