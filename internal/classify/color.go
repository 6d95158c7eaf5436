// Package classify сопоставляет категориальные атрибуты с цветами, иконками и уровнями риска.
// Все функции тотальны: для неизвестного значения возвращается значение по умолчанию.
package classify

import "github.com/shenikar/geoportal/internal/models"

const (
	ColorGreen   = "#10B981"
	ColorAmber   = "#F59E0B"
	ColorRed     = "#EF4444"
	ColorDarkRed = "#7C2D12"
	ColorBlue    = "#3B82F6"
	ColorGray    = "#6B7280"
)

// CenterColor - цвет маркера медицинского центра
func CenterColor(t models.CenterType) string {
	switch t {
	case models.CenterHospital:
		return ColorRed
	case models.CenterClinic:
		return ColorBlue
	case models.CenterHealthCenter:
		return ColorGreen
	default:
		return ColorGray
	}
}

// RiskLevelColor - цвет зоны риска
func RiskLevelColor(level models.RiskLevel) string {
	switch level {
	case models.RiskLow:
		return ColorGreen
	case models.RiskMedium:
		return ColorAmber
	case models.RiskHigh:
		return ColorRed
	case models.RiskCritical:
		return ColorDarkRed
	default:
		return ColorGray
	}
}

// SeverityColor использует ту же шкалу, что и RiskLevelColor
func SeverityColor(s models.Severity) string {
	return RiskLevelColor(models.RiskLevel(s))
}
