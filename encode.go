package transparence

import (
	"encoding/json"
	"fmt"
	"io"
)

// EncodeProfile writes a profile as indented JSON. Output field names are
// stable regardless of which source field-name variant provided each value,
// so profile files diff cleanly under version control.
func EncodeProfile(w io.Writer, p *Profile) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encoding profile %s: %w", p.ID, err)
	}
	return nil
}

// DecodeProfile reads one profile, rebuilding concrete record types from
// their kind.
func DecodeProfile(r io.Reader) (*Profile, error) {
	var p Profile
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("decoding profile: %w", err)
	}
	if p.Records == nil {
		p.Records = RecordSet{}
	}
	return &p, nil
}
