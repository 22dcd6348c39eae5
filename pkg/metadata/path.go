package metadata

import (
	"encoding/json"
	"fmt"
)

// Path is a filesystem path inside a metadata record. It serializes to a
// tagged object rather than a bare string so the decoder can tell
// path-valued fields from plain strings at any nesting depth.
type Path string

// taggedPath is the wire form of a Path.
// Field order matches the sorted key order written to disk.
type taggedPath struct {
	Value string `json:"__Path__"`
	Type  string `json:"__type__"`
}

const pathTypeTag = "Path"

// String returns the platform path string
func (p Path) String() string {
	return string(p)
}

// MarshalJSON encodes the path in its tagged wire form
func (p Path) MarshalJSON() ([]byte, error) {
	return json.Marshal(taggedPath{Value: string(p), Type: pathTypeTag})
}

// UnmarshalJSON decodes either the tagged wire form or, tolerantly, a bare
// string appearing in a path position
func (p *Path) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = Path(s)
		return nil
	}

	var tagged taggedPath
	if err := json.Unmarshal(data, &tagged); err != nil {
		return err
	}
	if tagged.Type != pathTypeTag {
		return fmt.Errorf("expected tagged %q object, got type %q", pathTypeTag, tagged.Type)
	}
	*p = Path(tagged.Value)
	return nil
}
