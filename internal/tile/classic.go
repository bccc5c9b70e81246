package tile

// Group names of the classic set.
const (
	GroupBall   = "ball"
	GroupBam    = "bam"
	GroupNum    = "num"
	GroupWind   = "wind"
	GroupDragon = "dragon"
	GroupSeason = "season"
	GroupFlower = "flower"
)

// ClassicSize is the number of tiles in the classic set.
const ClassicSize = 144

type groupSpec struct {
	name     string
	indices  int
	copies   int
	matchAny bool
}

var classicGroups = []groupSpec{
	{GroupBall, 9, 4, false},
	{GroupBam, 9, 4, false},
	{GroupNum, 9, 4, false},
	{GroupWind, 4, 4, false},
	{GroupDragon, 3, 4, false},
	{GroupSeason, 4, 1, true},
	{GroupFlower, 4, 1, true},
}

// Classic returns the 144-tile classic set: three suits of nine ranks,
// four winds and three dragons (four copies each), plus one of each season
// and flower. Seasons and flowers are wildcard groups.
func Classic() []Type {
	set := make([]Type, 0, ClassicSize)
	for _, g := range classicGroups {
		for i := 0; i < g.indices; i++ {
			for c := 0; c < g.copies; c++ {
				set = append(set, Type{Group: g.name, Index: i, MatchAny: g.matchAny})
			}
		}
	}
	return set
}

// classicPairs splits the classic set into matching pairs, ordered round-robin
// over matching keys so that a prefix of the list covers as many keys as
// possible.
func classicPairs() [][2]Type {
	var keys []string
	byKey := make(map[string][]Type)
	for _, t := range Classic() {
		k := t.Key()
		if _, ok := byKey[k]; !ok {
			keys = append(keys, k)
		}
		byKey[k] = append(byKey[k], t)
	}

	pairs := make([][2]Type, 0, ClassicSize/2)
	for round := 0; len(pairs) < ClassicSize/2; round++ {
		for _, k := range keys {
			ts := byKey[k]
			if 2*round+1 < len(ts) {
				pairs = append(pairs, [2]Type{ts[2*round], ts[2*round+1]})
			}
		}
	}
	return pairs
}

// PoolFor returns n faces drawn from the classic set in matching pairs.
// Layouts larger than the classic set reuse it. For odd n the last face has no
// partner; the shuffle drops it when it evens out the pool.
func PoolFor(n int) []Type {
	if n <= 0 {
		return nil
	}
	pairs := classicPairs()
	pool := make([]Type, 0, n)
	for i := 0; len(pool) < n; i++ {
		p := pairs[i%len(pairs)]
		pool = append(pool, p[0])
		if len(pool) < n {
			pool = append(pool, p[1])
		}
	}
	return pool
}
