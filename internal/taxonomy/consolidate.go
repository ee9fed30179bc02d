package taxonomy

import "sort"

// Policy controls what happens to raw tags that match neither an alias nor
// a canonical name.
type Policy string

const (
	// PolicyDrop silently discards unmapped tags (reference behavior).
	PolicyDrop Policy = "drop"

	// PolicyKeep passes unmapped tags through into the output unchanged.
	PolicyKeep Policy = "keep"

	// PolicyReport discards unmapped tags but surfaces them as anomalies.
	PolicyReport Policy = "report"
)

// ValidPolicy reports whether p is a known unmapped-tag policy.
func ValidPolicy(p Policy) bool {
	return p == PolicyDrop || p == PolicyKeep || p == PolicyReport
}

// Consolidate maps raw tags through the dimension mapping and returns the
// deduplicated, lexicographically sorted canonical tags they resolve to,
// plus the raw tags that resolved to nothing (deduplicated, input order).
//
// The function is pure, deterministic, and idempotent: every canonical tag
// resolves to itself, so feeding the output back in returns it unchanged.
// Matching is exact and case-sensitive. Empty strings classify to nothing
// and are never reported as unmapped.
func (m *Mapping) Consolidate(tags []string) (canonical, unmapped []string) {
	if len(tags) == 0 {
		return []string{}, nil
	}

	resolved := make(map[string]bool)
	missed := make(map[string]bool)

	for _, t := range tags {
		if t == "" {
			continue
		}
		if c, ok := m.index[t]; ok {
			resolved[c] = true
			continue
		}
		if !missed[t] {
			missed[t] = true
			unmapped = append(unmapped, t)
		}
	}

	canonical = make([]string, 0, len(resolved))
	for c := range resolved {
		canonical = append(canonical, c)
	}
	sort.Strings(canonical)

	return canonical, unmapped
}

// Apply consolidates raw tags under the given policy. Under PolicyKeep the
// unmapped raw tags are merged into the output; under PolicyDrop and
// PolicyReport they are excluded. The returned unmapped slice is always
// populated so callers can report regardless of policy.
func (m *Mapping) Apply(tags []string, policy Policy) (result, unmapped []string) {
	result, unmapped = m.Consolidate(tags)
	if policy == PolicyKeep && len(unmapped) > 0 {
		seen := make(map[string]bool, len(result))
		for _, c := range result {
			seen[c] = true
		}
		for _, u := range unmapped {
			if !seen[u] {
				seen[u] = true
				result = append(result, u)
			}
		}
		sort.Strings(result)
	}
	return result, unmapped
}
