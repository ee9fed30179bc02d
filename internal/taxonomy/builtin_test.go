package taxonomy

import (
	"reflect"
	"testing"
)

func TestBuiltinVocabularySizes(t *testing.T) {
	if got := BuiltinVibeMapping().VocabularySize(); got != 20 {
		t.Errorf("vibe vocabulary size = %d, want 20", got)
	}
	if got := BuiltinEnergyMapping().VocabularySize(); got != 20 {
		t.Errorf("energy vocabulary size = %d, want 20", got)
	}
}

func TestBuiltinVibeClean(t *testing.T) {
	m := BuiltinVibeMapping()
	if conflicts := m.Conflicts(); len(conflicts) != 0 {
		t.Errorf("vibe mapping has unexpected conflicts: %v", conflicts)
	}
	if shadowed := m.ShadowedCanonicals(); len(shadowed) != 0 {
		t.Errorf("vibe mapping has unexpected shadowed canonicals: %v", shadowed)
	}
}

func TestBuiltinEnergyConflicts(t *testing.T) {
	// The reference energy table contains aliases claimed by two groups;
	// declaration order decides the winner. Pin the full set so a data
	// edit that shifts a tie-break is caught.
	m := BuiltinEnergyMapping()

	want := []AliasConflict{
		{Alias: "family tables", Winner: "social", Loser: "family-friendly"},
		{Alias: "welcoming", Winner: "social", Loser: "family-friendly"},
		{Alias: "busy brunch hours", Winner: "crowded", Loser: "bustling"},
		{Alias: "polished", Winner: "aesthetic", Loser: "elegant"},
		{Alias: "night-out", Winner: "dimly-lit", Loser: "energetic"},
	}

	if got := m.Conflicts(); !reflect.DeepEqual(got, want) {
		t.Errorf("energy conflicts = %v, want %v", got, want)
	}

	// "bustling" is an alias of lively before it is a canonical tag, so it
	// can never appear in consolidated output.
	if shadowed := m.ShadowedCanonicals(); !reflect.DeepEqual(shadowed, []string{"bustling"}) {
		t.Errorf("energy shadowed canonicals = %v, want [bustling]", shadowed)
	}
}

func TestBuiltinResolution(t *testing.T) {
	vibe := BuiltinVibeMapping()
	energy := BuiltinEnergyMapping()

	tests := []struct {
		name    string
		mapping *Mapping
		tag     string
		want    string
	}{
		{"vibe alias", vibe, "espresso bar", "cafe"},
		{"vibe unicode alias", vibe, "café", "cafe"},
		{"vibe canonical", vibe, "classic", "classic"},
		{"vibe grab-and-go", vibe, "grab-and-go", "quick-bite"},
		{"energy grab-and-go", energy, "grab-and-go", "fast-paced"},
		{"energy contested night-out", energy, "night-out", "dimly-lit"},
		{"energy contested welcoming", energy, "welcoming", "social"},
		{"energy contested polished", energy, "polished", "aesthetic"},
		{"energy contested busy brunch hours", energy, "busy brunch hours", "crowded"},
		{"energy shadowed bustling", energy, "bustling", "lively"},
		{"energy canonical local", energy, "local", "local"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.mapping.Resolve(tt.tag)
			if !ok || got != tt.want {
				t.Errorf("Resolve(%q) = %q, %v; want %q, true", tt.tag, got, ok, tt.want)
			}
		})
	}
}

func TestBuiltinAliasCoverage(t *testing.T) {
	// Every alias resolves to the group that owns it under declaration
	// order, and consolidating a single alias yields exactly that tag.
	for _, m := range []*Mapping{BuiltinVibeMapping(), BuiltinEnergyMapping()} {
		for _, g := range m.Groups() {
			for _, a := range g.Aliases {
				owner, ok := m.Resolve(a)
				if !ok {
					t.Errorf("%s: alias %q resolves to nothing", m.Dimension(), a)
					continue
				}
				got, _ := m.Consolidate([]string{a})
				if len(got) != 1 || got[0] != owner {
					t.Errorf("%s: Consolidate([%q]) = %v, want [%q]", m.Dimension(), a, got, owner)
				}
			}
		}
	}
}

func TestBuiltinOutputSelfMaps(t *testing.T) {
	// Idempotence of the whole pass: every tag the mappings can emit
	// should resolve to itself. The energy table has one known exception:
	// "bustling" is emitted for "midday bustle" etc. but itself folds into
	// "lively" on a second pass, because lively declares it as an alias.
	knownExceptions := map[string]map[string]string{
		DimensionEnergy: {"bustling": "lively"},
	}

	for _, m := range []*Mapping{BuiltinVibeMapping(), BuiltinEnergyMapping()} {
		emitted := make(map[string]bool)
		for _, g := range m.Groups() {
			for _, a := range g.Aliases {
				c, _ := m.Resolve(a)
				emitted[c] = true
			}
		}
		for c := range emitted {
			got, _ := m.Resolve(c)
			if want, ok := knownExceptions[m.Dimension()][c]; ok {
				if got != want {
					t.Errorf("%s: expected known exception %q -> %q, got %q", m.Dimension(), c, want, got)
				}
				continue
			}
			if got != c {
				t.Errorf("%s: emitted tag %q resolves to %q, breaking idempotence", m.Dimension(), c, got)
			}
		}
	}
}
