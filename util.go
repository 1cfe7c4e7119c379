package flowart

import (
	"os"
)

// MaybeCreateDir creates dir and its parents unless it already exists.
func MaybeCreateDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0775)
}

// Clamp current value between low and high
func Clamp(cur, low, high float64) float64 {
	if low > high {
		low, high = high, low
	}
	if cur < low {
		return low
	}
	if cur > high {
		return high
	}
	return cur
}

// ClampInt current value between low and high
func ClampInt(cur, low, high int) int {
	if low > high {
		low, high = high, low
	}
	if cur < low {
		return low
	}
	if cur > high {
		return high
	}
	return cur
}

// Lerp is a linear interpolation from v0 to v1 where t varies from 0 to 1
func Lerp(v0, v1, t float64) float64 {
	return v0*(1-t) + v1*t
}

// Unlerp is the inverse of Lerp, it returns where v sits between v0 and v1.
// A zero width range returns 0.
func Unlerp(v0, v1, v float64) float64 {
	if v1 == v0 {
		return 0
	}
	return (v - v0) / (v1 - v0)
}
