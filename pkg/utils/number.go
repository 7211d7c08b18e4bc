package utils

import "math"

// RoundWithTwoDecimalPlace arredonda em 2 casas com empate para o par
// (mesmo critério do round do numpy). NaN e infinitos são devolvidos sem alteração.
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}

	return math.RoundToEven(f*100) / 100
}
