package classify

import "github.com/shenikar/geoportal/internal/models"

// Нижние границы диапазонов включительно, вызовов на 1000 жителей
const (
	CriticalRateThreshold = 40.0
	HighRateThreshold     = 30.0
	MediumRateThreshold   = 20.0
)

// RiskLevelFromRate классифицирует зону по частоте экстренных вызовов.
// Пороги проверяются от старшего к младшему.
func RiskLevelFromRate(rate float64) models.RiskLevel {
	switch {
	case rate >= CriticalRateThreshold:
		return models.RiskCritical
	case rate >= HighRateThreshold:
		return models.RiskHigh
	case rate >= MediumRateThreshold:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}
