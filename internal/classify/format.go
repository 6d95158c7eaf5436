package classify

import (
	"fmt"
	"math"
)

// FormatEmergencyRate - подпись частоты вызовов для всплывающих окон карты
func FormatEmergencyRate(rate float64) string {
	return fmt.Sprintf("%.1f por 1000 hab.", rate)
}

// FormatDuration форматирует длительность в минутах: "25 min" или "1h 30min"
func FormatDuration(minutes float64) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", int(math.Round(minutes)))
	}
	hours := int(math.Floor(minutes / 60))
	mins := int(math.Round(math.Mod(minutes, 60)))
	return fmt.Sprintf("%dh %dmin", hours, mins)
}

// FormatDistance форматирует расстояние: метры до 1 км, далее километры с одним знаком
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%d m", int(math.Round(km*1000)))
	}
	return fmt.Sprintf("%.1f km", km)
}
