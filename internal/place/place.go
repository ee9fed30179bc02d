// Package place models a place record: two tag dimensions plus an opaque
// set of passthrough fields that are preserved byte-for-byte.
package place

import (
	"bytes"
	"encoding/json"
	"sort"
)

// JSON field names for the two tag dimensions.
const (
	FieldVibeTags   = "vibe_tags"
	FieldEnergyTags = "energy_tags"
)

// Place is one record from the dataset. VibeTags and EnergyTags are the two
// mutable tag lists; every other field rides along unparsed in Extra and is
// written back unchanged. A tag field that is present but not an array of
// strings is left untouched in Extra and its dimension listed in Malformed.
type Place struct {
	VibeTags   []string
	EnergyTags []string

	// Extra holds all fields other than the two tag lists, raw.
	Extra map[string]json.RawMessage

	// Malformed lists tag field names that could not be parsed as []string.
	Malformed []string
}

// Tags returns the tag list for the given dimension field name.
// Missing and null both read as an empty list.
func (p *Place) Tags(field string) []string {
	switch field {
	case FieldVibeTags:
		return p.VibeTags
	case FieldEnergyTags:
		return p.EnergyTags
	}
	return nil
}

// SetTags replaces the tag list for the given dimension field name.
func (p *Place) SetTags(field string, tags []string) {
	switch field {
	case FieldVibeTags:
		p.VibeTags = tags
	case FieldEnergyTags:
		p.EnergyTags = tags
	}
}

// IsMalformed reports whether the given tag field failed to parse.
func (p *Place) IsMalformed(field string) bool {
	for _, f := range p.Malformed {
		if f == field {
			return true
		}
	}
	return false
}

// UnmarshalJSON decodes a place object. Unknown fields are kept raw in
// Extra. Tag fields that are absent or JSON null decode to nil; tag fields
// with any other non-array shape are flagged malformed and kept raw so the
// original bytes survive a round trip.
func (p *Place) UnmarshalJSON(data []byte) error {
	raw := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.VibeTags = nil
	p.EnergyTags = nil
	p.Extra = raw
	p.Malformed = nil

	for _, field := range []string{FieldVibeTags, FieldEnergyTags} {
		v, ok := raw[field]
		if !ok || isJSONNull(v) {
			delete(raw, field)
			continue
		}

		var tags []string
		if err := json.Unmarshal(v, &tags); err != nil {
			// Keep the raw value in Extra for passthrough.
			p.Malformed = append(p.Malformed, field)
			continue
		}
		p.SetTags(field, tags)
		delete(raw, field)
	}

	return nil
}

// MarshalJSON encodes the place with both tag fields always present as
// (possibly empty) arrays, except for malformed fields, which are written
// back exactly as they were read. Keys are emitted in sorted order.
func (p *Place) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(p.Extra)+2)
	for k, v := range p.Extra {
		out[k] = v
	}

	for _, field := range []string{FieldVibeTags, FieldEnergyTags} {
		if p.IsMalformed(field) {
			continue // raw value already in Extra
		}
		tags := p.Tags(field)
		if tags == nil {
			tags = []string{}
		}
		encoded, err := json.Marshal(tags)
		if err != nil {
			return nil, err
		}
		out[field] = encoded
	}

	keys := make([]string, 0, len(out))
	for k := range out {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(out[k])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// isJSONNull reports whether the raw value is the JSON literal null.
func isJSONNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}
