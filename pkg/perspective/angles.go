package perspective

import "math"

// NormalizeAngle maps an angle in degrees onto [0, 360) while keeping its
// value modulo 360. Charts run it over alpha and beta on every size change
// and assign the result back, so downstream consumers always see canonical
// angles.
func NormalizeAngle(deg float64) float64 {
	m := math.Mod(deg, 360)
	if m < 0 {
		m += 360
	}
	return m
}
