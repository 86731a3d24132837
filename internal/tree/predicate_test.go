package tree

import "testing"

func TestAnyOrNone(t *testing.T) {
	yes := PredicateFunc(func(string) bool { return true })
	no := PredicateFunc(func(string) bool { return false })

	tests := []struct {
		name       string
		predicates []ReaderPredicate
		want       bool
	}{
		{"none", nil, true},
		{"single accept", []ReaderPredicate{yes}, true},
		{"single reject", []ReaderPredicate{no}, false},
		{"one of many", []ReaderPredicate{no, yes, no}, true},
		{"all reject", []ReaderPredicate{no, no}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AnyOrNone(tt.predicates, "/content/2023"); got != tt.want {
				t.Errorf("AnyOrNone = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAnyOrNonePassesPath(t *testing.T) {
	var seen string
	p := PredicateFunc(func(path string) bool {
		seen = path
		return true
	})
	AnyOrNone([]ReaderPredicate{p}, "/content/2023/05")
	if seen != "/content/2023/05" {
		t.Errorf("predicate saw %q", seen)
	}
}
