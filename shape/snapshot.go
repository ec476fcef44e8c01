package shape

import "encoding/json"

// Snapshot returns the flat key→value map of every set property. Unset
// slots are omitted so a round-trip reproduces the exact set/unset state.
// Complexity: O(k).
func Snapshot(s Shape) map[string]float64 {
	out := make(map[string]float64)
	for _, sp := range s.Catalog() {
		if v, ok := s.Value(sp.Key); ok {
			out[sp.Key] = v
		}
	}

	return out
}

// MarshalSnapshot encodes Snapshot(s) as the flat JSON object consumed
// by the persistence collaborator.
func MarshalSnapshot(s Shape) ([]byte, error) {
	return json.Marshal(Snapshot(s))
}

// UnmarshalSnapshot decodes a flat JSON object and restores it verbatim.
// No validation runs beyond catalog membership — restored state carries
// exactly the guarantees the resolve that produced it already enforced.
func UnmarshalSnapshot(s Shape, data []byte) error {
	var snap map[string]float64
	if err := json.Unmarshal(data, &snap); err != nil {
		return err
	}

	return s.Restore(snap)
}
