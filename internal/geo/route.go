package geo

// AverageSpeedKmh - средняя скорость движения по городу
const AverageSpeedKmh = 40.0

// RouteEstimate - оценка маршрута: расстояние в км и время в минутах
type RouteEstimate struct {
	DistanceKm  float64 `json:"distance_km"`
	DurationMin float64 `json:"duration_min"`
}

// EstimateRoute оценивает маршрут между двумя точками.
// Это приближение по прямой (гаверсинус) при постоянной скорости AverageSpeedKmh,
// а не кратчайший путь по дорожной сети.
func EstimateRoute(from, to Point) RouteEstimate {
	distance := Distance(from, to)
	return RouteEstimate{
		DistanceKm:  distance,
		DurationMin: distance / AverageSpeedKmh * 60,
	}
}
