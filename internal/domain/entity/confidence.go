package entity

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// ConfidenceScale делитель дисперсии. Подобран на глаз и может настраиваться.
const ConfidenceScale = 1000.0

// Confidence оценивает "чёткость" области лица по дисперсии яркости.
//
// Это не вероятность и не выход классификатора: контрастные области
// получают больше, однотонные дают 0. Результат ограничен диапазоном [0, 100].
func Confidence(pixels []uint8) float64 {
	if len(pixels) == 0 {
		return 0
	}

	values := make([]float64, len(pixels))
	for i, p := range pixels {
		values[i] = float64(p)
	}

	return ConfidenceFromVariance(stat.PopVariance(values, nil))
}

// ConfidenceFromVariance переводит дисперсию в проценты с насыщением на 100.
func ConfidenceFromVariance(variance float64) float64 {
	if variance <= 0 || math.IsNaN(variance) {
		return 0
	}
	return math.Min(100, variance/ConfidenceScale*100)
}
