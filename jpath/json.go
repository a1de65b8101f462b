package jpath

import (
	"encoding/json"
	"fmt"
)

func (s Segment) MarshalJSON() ([]byte, error) {
	if s.IsIndex {
		return json.Marshal(s.Index)
	}
	return json.Marshal(s.Key)
}

func (s *Segment) UnmarshalJSON(d []byte) error {
	var v any
	if err := json.Unmarshal(d, &v); err != nil {
		return err
	}
	switch x := v.(type) {
	case string:
		*s = Key(x)
	case float64:
		if x < 0 || x != float64(int(x)) {
			return fmt.Errorf("%w: index %v", ErrBadPath, x)
		}
		*s = Index(int(x))
	default:
		return fmt.Errorf("%w: segment %s", ErrBadPath, d)
	}
	return nil
}

// MarshalJSON encodes p as an array so that the empty path is [] rather
// than null.
func (p Path) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Segment(p))
}
