package taxonomy

import (
	"reflect"
	"testing"
)

// testMapping returns a small vibe mapping used across consolidation tests.
func testMapping(t *testing.T) *Mapping {
	t.Helper()
	m, err := NewMapping("vibe", []SynonymGroup{
		{Canonical: "cafe", Aliases: []string{"café", "coffee", "espresso bar"}},
		{Canonical: "bar", Aliases: []string{"cocktails", "drinks", "speakeasy"}},
		{Canonical: "dinner", Aliases: []string{"fine-dining", "date night"}},
	})
	if err != nil {
		t.Fatalf("NewMapping: %v", err)
	}
	return m
}

func TestConsolidate(t *testing.T) {
	m := testMapping(t)

	tests := []struct {
		name         string
		tags         []string
		want         []string
		wantUnmapped []string
	}{
		{
			name: "synonym group collapses to one canonical",
			tags: []string{"coffee", "café", "espresso bar"},
			want: []string{"cafe"},
		},
		{
			name: "two groups sorted lexicographically",
			tags: []string{"cocktails", "fine-dining"},
			want: []string{"bar", "dinner"},
		},
		{
			name: "input order does not matter",
			tags: []string{"fine-dining", "cocktails"},
			want: []string{"bar", "dinner"},
		},
		{
			name: "duplicates deduplicated",
			tags: []string{"coffee", "coffee", "cafe", "café"},
			want: []string{"cafe"},
		},
		{
			name: "canonical passes through",
			tags: []string{"dinner"},
			want: []string{"dinner"},
		},
		{
			name:         "unmapped tag dropped and reported",
			tags:         []string{"unknown-made-up-tag"},
			want:         []string{},
			wantUnmapped: []string{"unknown-made-up-tag"},
		},
		{
			name:         "mix of mapped and unmapped",
			tags:         []string{"coffee", "zzz", "zzz"},
			want:         []string{"cafe"},
			wantUnmapped: []string{"zzz"},
		},
		{
			name: "empty input",
			tags: []string{},
			want: []string{},
		},
		{
			name: "nil input",
			tags: nil,
			want: []string{},
		},
		{
			name: "empty strings classify to nothing",
			tags: []string{"", "coffee", ""},
			want: []string{"cafe"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, unmapped := m.Consolidate(tt.tags)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Consolidate(%v) = %v, want %v", tt.tags, got, tt.want)
			}
			if !reflect.DeepEqual(unmapped, tt.wantUnmapped) {
				t.Errorf("Consolidate(%v) unmapped = %v, want %v", tt.tags, unmapped, tt.wantUnmapped)
			}
		})
	}
}

func TestConsolidateCanonicalPassThrough(t *testing.T) {
	m := testMapping(t)
	for _, g := range m.Groups() {
		got, _ := m.Consolidate([]string{g.Canonical})
		if len(got) != 1 || got[0] != g.Canonical {
			t.Errorf("Consolidate([%q]) = %v, want [%q]", g.Canonical, got, g.Canonical)
		}
	}
}

func TestConsolidateAliasCoverage(t *testing.T) {
	m := testMapping(t)
	for _, g := range m.Groups() {
		for _, a := range g.Aliases {
			got, _ := m.Consolidate([]string{a})
			if len(got) != 1 || got[0] != g.Canonical {
				t.Errorf("Consolidate([%q]) = %v, want [%q]", a, got, g.Canonical)
			}
		}
	}
}

func TestConsolidateIdempotent(t *testing.T) {
	m := testMapping(t)
	inputs := [][]string{
		{"coffee", "café", "espresso bar"},
		{"cocktails", "fine-dining", "nonsense"},
		{"cafe", "bar", "dinner"},
		{},
	}

	for _, tags := range inputs {
		once, _ := m.Consolidate(tags)
		twice, _ := m.Consolidate(once)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("Consolidate not idempotent for %v: first %v, second %v", tags, once, twice)
		}
	}
}

func TestConsolidateDeterministic(t *testing.T) {
	m := testMapping(t)
	tags := []string{"drinks", "coffee", "date night", "drinks", "mystery"}

	first, firstMissed := m.Consolidate(tags)
	for i := 0; i < 10; i++ {
		got, missed := m.Consolidate(tags)
		if !reflect.DeepEqual(got, first) || !reflect.DeepEqual(missed, firstMissed) {
			t.Fatalf("run %d differs: %v/%v vs %v/%v", i, got, missed, first, firstMissed)
		}
	}
}

func TestApplyPolicies(t *testing.T) {
	m := testMapping(t)
	tags := []string{"coffee", "mystery-tag", "cocktails"}

	tests := []struct {
		name   string
		policy Policy
		want   []string
	}{
		{
			name:   "drop excludes unmapped",
			policy: PolicyDrop,
			want:   []string{"bar", "cafe"},
		},
		{
			name:   "report excludes unmapped from output",
			policy: PolicyReport,
			want:   []string{"bar", "cafe"},
		},
		{
			name:   "keep merges unmapped sorted",
			policy: PolicyKeep,
			want:   []string{"bar", "cafe", "mystery-tag"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, unmapped := m.Apply(tags, tt.policy)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Apply(%v, %s) = %v, want %v", tags, tt.policy, got, tt.want)
			}
			if len(unmapped) != 1 || unmapped[0] != "mystery-tag" {
				t.Errorf("Apply unmapped = %v, want [mystery-tag]", unmapped)
			}
		})
	}
}

func TestApplyKeepNoDoubleCount(t *testing.T) {
	// A raw tag equal to an emitted canonical must not be duplicated.
	m := testMapping(t)
	got, _ := m.Apply([]string{"coffee", "cafe-adjacent", "cafe-adjacent"}, PolicyKeep)
	want := []string{"cafe", "cafe-adjacent"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Apply = %v, want %v", got, want)
	}
}

func TestValidPolicy(t *testing.T) {
	for _, p := range []Policy{PolicyDrop, PolicyKeep, PolicyReport} {
		if !ValidPolicy(p) {
			t.Errorf("ValidPolicy(%s) = false, want true", p)
		}
	}
	for _, p := range []Policy{"", "strict", "DROP"} {
		if ValidPolicy(p) {
			t.Errorf("ValidPolicy(%q) = true, want false", p)
		}
	}
}
