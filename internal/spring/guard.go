package spring

import "math"

// safeDiv returns num/den, or fallback when den is not a positive finite
// number or the quotient is not finite.
func safeDiv(num, den, fallback float64) float64 {
	if !(den > 0) || math.IsInf(den, 0) {
		return fallback
	}
	q := num / den
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return fallback
	}
	return q
}

// finite maps NaN and ±Inf to zero
func finite(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}

// factorOfSafety is limit/stress with a neutral 1.0 when stress is not positive
func factorOfSafety(limit, stress float64) float64 {
	return safeDiv(limit, stress, 1.0)
}

// cycleLifeFoS applies the modified Goodman relation between the stresses at
// the two reference points. k scales the alternating component.
func cycleLifeFoS(stat, endur, s1, s2, k float64) float64 {
	se2 := endur / 2
	if !(se2 > 0) {
		return 1.0
	}
	avg := (s1 + s2) / 2
	rng := (s2 - s1) / 2
	return safeDiv(stat, k*rng*(stat-se2)/se2+avg, 1.0)
}

// wireWeight returns the weight (kg) of round wire, density in kg/m³ and
// dimensions in mm.
func wireWeight(density, wireDia, length float64) float64 {
	if wireDia <= 0 || length <= 0 || density <= 0 {
		return 0
	}
	return finite(density * 1e-9 * math.Pi * wireDia * wireDia / 4 * length)
}
