package geo

import "math"

// EarthRadiusKm - средний радиус Земли в километрах
const EarthRadiusKm = 6371.0

// Point - географическая координата в градусах (WGS84)
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Locatable - всё, что имеет положение на карте
type Locatable interface {
	Location() Point
}

// Distance возвращает расстояние по большому кругу между двумя точками в километрах (формула гаверсинусов)
func Distance(a, b Point) float64 {
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(a.Lat))*math.Cos(toRadians(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	// из-за погрешности float h может чуть выйти за [0, 1]
	h = math.Min(1, math.Max(0, h))

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func toDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
