package tile

import "testing"

func TestMatches(t *testing.T) {
	bam3 := Type{Group: GroupBam, Index: 3}
	bam4 := Type{Group: GroupBam, Index: 4}
	ball3 := Type{Group: GroupBall, Index: 3}
	spring := Type{Group: GroupSeason, Index: 0, MatchAny: true}
	winter := Type{Group: GroupSeason, Index: 3, MatchAny: true}
	rose := Type{Group: GroupFlower, Index: 1, MatchAny: true}
	seasonPlain := Type{Group: GroupSeason, Index: 2}

	tests := []struct {
		name     string
		a, b     Type
		expected bool
	}{
		{"same group and index", bam3, bam3, true},
		{"same group, different index", bam3, bam4, false},
		{"different group, same index", bam3, ball3, false},
		{"wildcards of one group", spring, winter, true},
		{"wildcards of different groups", spring, rose, false},
		{"wildcard against plain tile of its group", spring, seasonPlain, true},
		{"untyped never matches", Type{}, Type{}, false},
		{"untyped against typed", Type{}, bam3, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Matches(tc.b); got != tc.expected {
				t.Errorf("Matches() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Matches(tc.a); got != tc.expected {
				t.Errorf("Matches() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestKey(t *testing.T) {
	tests := []struct {
		typ      Type
		expected string
	}{
		{Type{Group: GroupNum, Index: 7}, "num-7"},
		{Type{Group: GroupSeason, Index: 2, MatchAny: true}, "season"},
		{Type{}, ""},
	}

	for _, tc := range tests {
		if got := tc.typ.Key(); got != tc.expected {
			t.Errorf("Key(%v) = %q, expected %q", tc.typ, got, tc.expected)
		}
	}
}

func TestMatchingTypesShareKey(t *testing.T) {
	set := Classic()
	for i := range set {
		for j := i + 1; j < len(set); j++ {
			if set[i].Matches(set[j]) != (set[i].Key() == set[j].Key()) {
				t.Fatalf("%v and %v: Matches and Key disagree", set[i], set[j])
			}
		}
	}
}

func TestClassic(t *testing.T) {
	set := Classic()
	if len(set) != ClassicSize {
		t.Fatalf("len(Classic()) = %d, expected %d", len(set), ClassicSize)
	}

	counts := make(map[string]int)
	for _, ty := range set {
		counts[ty.Key()]++
	}
	if len(counts) != 36 {
		t.Errorf("distinct keys = %d, expected 36", len(counts))
	}
	for k, n := range counts {
		if n != 4 {
			t.Errorf("key %s has %d tiles, expected 4", k, n)
		}
	}
}

func TestPoolFor(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		wantKeys int
	}{
		{"mobile layout uses every key once", 72, 36},
		{"full set", 144, 36},
		{"small board", 4, 2},
		{"zero", 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pool := PoolFor(tc.n)
			if len(pool) != tc.n {
				t.Fatalf("len = %d, expected %d", len(pool), tc.n)
			}
			counts := make(map[string]int)
			for _, ty := range pool {
				counts[ty.Key()]++
			}
			if len(counts) != tc.wantKeys {
				t.Errorf("distinct keys = %d, expected %d", len(counts), tc.wantKeys)
			}
			for k, c := range counts {
				if c%2 != 0 {
					t.Errorf("key %s has odd count %d", k, c)
				}
			}
		})
	}
}

func TestPoolForOddAndLarge(t *testing.T) {
	if got := len(PoolFor(7)); got != 7 {
		t.Errorf("len(PoolFor(7)) = %d, expected 7", got)
	}
	if got := len(PoolFor(200)); got != 200 {
		t.Errorf("len(PoolFor(200)) = %d, expected 200", got)
	}
}
