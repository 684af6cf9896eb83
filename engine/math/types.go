package math

// Vector2 represents a 2D vector
type Vector2 struct {
	X, Y float64
}

// Vector3 represents a 3D vector
type Vector3 struct {
	X, Y, Z float64
}

/**
 * @brief a 4x4 homogeneous transform stored row-major: element (row, col)
 * lives at Elements[row*4+col]. Graphics backends receive the elements in
 * exactly this order.
 *
 * NOTE: the zero value is the zero matrix; use NewMatrix4 for the identity.
 */
type Matrix4 struct {
	/** @brief The matrix elements */
	Elements [16]float64
}
