package math

import (
	m "math"
	"strconv"
	"sync"
	"time"

	"golang.org/x/exp/rand"
)

const (
	/** @brief An approximate representation of PI. */
	K_PI float64 = m.Pi
	/** @brief An approximate representation of PI multiplied by 2. */
	K_PI_2 float64 = 2.0 * K_PI
	/** @brief An approximate representation of PI divided by 2. */
	K_HALF_PI float64 = 0.5 * K_PI
	/** @brief A multiplier used to convert degrees to radians. */
	K_DEG2RAD_MULTIPLIER float64 = K_PI / 180.0
	/** @brief A multiplier used to convert radians to degrees. */
	K_RAD2DEG_MULTIPLIER float64 = 180.0 / K_PI
	/** @brief Smallest positive number where 1.0 + FLOAT_EPSILON != 1.0 */
	K_FLOAT_EPSILON float64 = 2.220446049250313e-16
	/** @brief Default tolerance for Compare on values produced by inversion. */
	K_COMPARE_TOLERANCE float64 = 1e-9
)

var seedOnce sync.Once

func seedRandom() {
	seedOnce.Do(func() {
		rand.Seed(uint64(time.Now().UnixNano()))
	})
}

// Random returns a pseudo-random number in [0, 1).
func Random() float64 {
	seedRandom()
	return rand.Float64()
}

// RandomInRange returns a pseudo-random integer in [min, max].
func RandomInRange(min, max int) int {
	seedRandom()
	if max < min {
		min, max = max, min
	}
	return rand.Intn(max-min+1) + min
}

/**
 * @brief Converts provided degrees to radians.
 *
 * @param degrees The degrees to be converted.
 * @return The amount in radians.
 */
func DegToRad(degrees float64) float64 {
	return degrees * K_DEG2RAD_MULTIPLIER
}

/**
 * @brief Converts provided radians to degrees.
 *
 * @param radians The radians to be converted.
 * @return The amount in degrees.
 */
func RadToDeg(radians float64) float64 {
	return radians * K_RAD2DEG_MULTIPLIER
}

// formatFloat prints v in its shortest round-trip form (1, 0.5, -2.25).
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
