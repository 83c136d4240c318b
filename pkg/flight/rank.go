package flight

import "sort"

// Rank sorts flights by ascending distance from the reference point and
// returns at most count entries. The sort is stable, so flights at equal
// distance keep the provider's original order. Empty input yields empty
// output; if fewer than count flights exist, all of them are returned.
func Rank(flights []Flight, count int) []Flight {
	ranked := make([]Flight, len(flights))
	copy(ranked, flights)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	if count >= 0 && count < len(ranked) {
		ranked = ranked[:count]
	}

	return ranked
}
