package timer

// Easing maps linear progress in [0,1] to eased progress.
type Easing func(t float64) float64

// Linear moves at constant speed.
func Linear(t float64) float64 {
	return t
}

// EaseInQuad starts slow and accelerates.
func EaseInQuad(t float64) float64 {
	return t * t
}

// EaseOutQuad starts fast and decelerates.
func EaseOutQuad(t float64) float64 {
	return t * (2 - t)
}
