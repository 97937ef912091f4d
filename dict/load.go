package dict

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	gojson "github.com/goccy/go-json"

	"github.com/fastfix-go/fastfix/errs"
)

// dictFile is the on-disk shape of a user-defined group dictionary.
//
// TOML form:
//
//	[[group]]
//	name          = "PartyIDs"
//	count_tag     = 453
//	delimiter_tag = 448
//	member_tags   = [448, 447, 452]
//
// JSON form:
//
//	{"groups": [{"name": "PartyIDs", "count_tag": 453,
//	             "delimiter_tag": 448, "member_tags": [448, 447, 452]}]}
type dictFile struct {
	Groups []groupEntry `toml:"group" json:"groups"`
}

type groupEntry struct {
	Name         string   `toml:"name" json:"name"`
	CountTag     uint32   `toml:"count_tag" json:"count_tag"`
	DelimiterTag uint32   `toml:"delimiter_tag" json:"delimiter_tag"`
	MemberTags   []uint32 `toml:"member_tags" json:"member_tags"`
}

// LoadTOML reads a TOML group dictionary from r. Venue-specific or
// user-defined repeating groups loaded this way are used with
// wire.Message.Groups exactly like the built-in specs.
func LoadTOML(r io.Reader) ([]*GroupSpec, error) {
	var file dictFile
	if _, err := toml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode toml dictionary: %w", err)
	}

	return buildSpecs(file.Groups)
}

// LoadJSON reads a JSON group dictionary from data.
func LoadJSON(data []byte) ([]*GroupSpec, error) {
	var file dictFile
	if err := gojson.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode json dictionary: %w", err)
	}

	return buildSpecs(file.Groups)
}

func buildSpecs(entries []groupEntry) ([]*GroupSpec, error) {
	specs := make([]*GroupSpec, 0, len(entries))
	for i, entry := range entries {
		if entry.CountTag == 0 {
			return nil, fmt.Errorf("%w: group %d (%q) has no count tag", errs.ErrInvalidGroupSpec, i, entry.Name)
		}
		if entry.DelimiterTag == 0 {
			return nil, fmt.Errorf("%w: group %d (%q) has no delimiter tag", errs.ErrInvalidGroupSpec, i, entry.Name)
		}

		specs = append(specs, &GroupSpec{
			Name:         entry.Name,
			CountTag:     entry.CountTag,
			DelimiterTag: entry.DelimiterTag,
			MemberTags:   entry.MemberTags,
		})
	}

	return specs, nil
}
