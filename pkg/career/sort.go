package career

import (
	"fmt"
	"sort"
)

// SortKey picks the primary ordering of job cards.
type SortKey string

const (
	SortByMatch  SortKey = "match"
	SortByDemand SortKey = "demand"
)

// SortOrder is the direction applied to the primary key and every tiebreaker.
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// Sorting is the user's current sort selection.
type Sorting struct {
	Key   SortKey   `json:"key"`
	Order SortOrder `json:"order"`
}

// DefaultSorting is match score, highest first.
func DefaultSorting() Sorting {
	return Sorting{Key: SortByMatch, Order: Descending}
}

// ParseSorting validates user-supplied sort settings.
func ParseSorting(key, order string) (Sorting, error) {
	s := Sorting{Key: SortKey(key), Order: SortOrder(order)}
	if s.Key != SortByMatch && s.Key != SortByDemand {
		return Sorting{}, fmt.Errorf("unknown sort key %q", key)
	}
	if s.Order != Ascending && s.Order != Descending {
		return Sorting{}, fmt.Errorf("unknown sort order %q", order)
	}
	return s, nil
}

// SortedIndexes returns card positions in display order. The input is not
// modified so positions stay valid as card identifiers.
func SortedIndexes(cards []JobCard, s Sorting) []int {
	idx := make([]int, len(cards))
	for i := range idx {
		idx[i] = i
	}
	primary := func(c JobCard) int {
		if s.Key == SortByDemand {
			return c.DemandLevel.Ordinal()
		}
		return int(c.MatchScore)
	}
	// Ties fall back to match score, then to position, both in the
	// chosen direction, so asc and desc are exact reverses.
	sort.Slice(idx, func(i, j int) bool {
		a, b := cards[idx[i]], cards[idx[j]]
		ka := [3]int{primary(a), int(a.MatchScore), idx[i]}
		kb := [3]int{primary(b), int(b.MatchScore), idx[j]}
		for n := range ka {
			if ka[n] == kb[n] {
				continue
			}
			if s.Order == Ascending {
				return ka[n] < kb[n]
			}
			return ka[n] > kb[n]
		}
		return false
	})
	return idx
}
