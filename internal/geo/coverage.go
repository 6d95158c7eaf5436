package geo

import (
	"math"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

const (
	// CoverageRadiusKm - радиус зоны обслуживания медицинского центра
	CoverageRadiusKm = 1.0
	// DefaultCircleSegments - число вершин многоугольника, аппроксимирующего круг
	DefaultCircleSegments = 64

	srid = 4326
)

// CoverageArea описывает круг покрытия для отрисовки на карте
type CoverageArea struct {
	ID         string
	Center     Point
	RadiusKm   float64
	Properties map[string]interface{}
}

// CoverageCircle строит замкнутый многоугольник (lng/lat, SRID 4326), аппроксимирующий
// круг радиуса radiusKm вокруг center на сфере
func CoverageCircle(center Point, radiusKm float64, segments int) *geom.Polygon {
	if segments < 3 {
		segments = DefaultCircleSegments
	}

	flat := make([]float64, 0, (segments+1)*2)
	for i := 0; i < segments; i++ {
		bearing := 2 * math.Pi * float64(i) / float64(segments)
		p := destination(center, radiusKm, bearing)
		flat = append(flat, p.Lng, p.Lat)
	}
	// замыкаем кольцо
	flat = append(flat, flat[0], flat[1])

	return geom.NewPolygonFlat(geom.XY, flat, []int{len(flat)}).SetSRID(srid)
}

// Covers сообщает, попадает ли точка p в круг радиуса radiusKm вокруг center
func Covers(center, p Point, radiusKm float64) bool {
	return Distance(center, p) <= radiusKm
}

// CoverageCollection собирает круги покрытия в GeoJSON FeatureCollection
func CoverageCollection(areas []CoverageArea) *geojson.FeatureCollection {
	features := make([]*geojson.Feature, 0, len(areas))
	for _, area := range areas {
		radius := area.RadiusKm
		if radius <= 0 {
			radius = CoverageRadiusKm
		}
		props := make(map[string]interface{}, len(area.Properties)+1)
		for k, v := range area.Properties {
			props[k] = v
		}
		props["radius_km"] = radius

		features = append(features, &geojson.Feature{
			ID:         area.ID,
			Geometry:   CoverageCircle(area.Center, radius, DefaultCircleSegments),
			Properties: props,
		})
	}
	return &geojson.FeatureCollection{Features: features}
}

// destination - точка на расстоянии distanceKm от start по азимуту bearing (радианы)
func destination(start Point, distanceKm, bearing float64) Point {
	delta := distanceKm / EarthRadiusKm
	lat1 := toRadians(start.Lat)
	lng1 := toRadians(start.Lng)

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(delta) + math.Cos(lat1)*math.Sin(delta)*math.Cos(bearing))
	lng2 := lng1 + math.Atan2(
		math.Sin(bearing)*math.Sin(delta)*math.Cos(lat1),
		math.Cos(delta)-math.Sin(lat1)*math.Sin(lat2),
	)

	lng := math.Mod(toDegrees(lng2)+540, 360) - 180
	return Point{Lat: toDegrees(lat2), Lng: lng}
}
