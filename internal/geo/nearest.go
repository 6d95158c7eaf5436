package geo

import "sort"

// Ranked - сущность вместе с расстоянием до опорной точки
type Ranked[T Locatable] struct {
	Item       T
	DistanceKm float64
}

// Nearest линейным проходом находит ближайшую к ref сущность.
// При равных расстояниях побеждает первая встреченная. ok=false, если ref не задан или items пуст.
func Nearest[T Locatable](ref *Point, items []T) (nearest T, distanceKm float64, ok bool) {
	if ref == nil || len(items) == 0 {
		return nearest, 0, false
	}

	nearest = items[0]
	distanceKm = Distance(*ref, items[0].Location())
	for _, item := range items[1:] {
		d := Distance(*ref, item.Location())
		if d < distanceKm {
			distanceKm = d
			nearest = item
		}
	}
	return nearest, distanceKm, true
}

// NearestN возвращает до n ближайших сущностей, отсортированных по расстоянию.
// Сортировка стабильная: равноудалённые сохраняют входной порядок.
func NearestN[T Locatable](ref Point, items []T, n int) []Ranked[T] {
	if n <= 0 || len(items) == 0 {
		return []Ranked[T]{}
	}

	ranked := make([]Ranked[T], len(items))
	for i, item := range items {
		ranked[i] = Ranked[T]{Item: item, DistanceKm: Distance(ref, item.Location())}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
