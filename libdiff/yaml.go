package libdiff

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/signadot/go-nbt/ir"
	"github.com/signadot/go-nbt/snbt"
)

// changeDoc is the YAML form of a Change, with values in SNBT.
type changeDoc struct {
	Kind Kind   `yaml:"kind"`
	Path string `yaml:"path"`
	From string `yaml:"from,omitempty"`
	To   string `yaml:"to,omitempty"`
}

// MarshalChanges renders changes as a YAML sequence:
//
//	- kind: replace
//	  path: Data.Time
//	  from: 12L
//	  to: 13L
func MarshalChanges(changes []Change) ([]byte, error) {
	docs := make([]changeDoc, len(changes))
	for i := range changes {
		c := &changes[i]
		docs[i] = changeDoc{Kind: c.Kind, Path: c.Path}
		if c.From != nil {
			docs[i].From = snbt.MustString(c.From)
		}
		if c.To != nil {
			docs[i].To = snbt.MustString(c.To)
		}
	}
	return yaml.Marshal(docs)
}

// UnmarshalChanges parses the output of MarshalChanges.
func UnmarshalChanges(d []byte) ([]Change, error) {
	var docs []changeDoc
	if err := yaml.UnmarshalWithOptions(d, &docs, yaml.DisallowUnknownField()); err != nil {
		return nil, err
	}
	res := make([]Change, len(docs))
	for i := range docs {
		doc := &docs[i]
		c := Change{Kind: doc.Kind, Path: doc.Path}
		var err error
		if c.From, err = parseValue(doc.From); err != nil {
			return nil, fmt.Errorf("change %d from: %w", i, err)
		}
		if c.To, err = parseValue(doc.To); err != nil {
			return nil, fmt.Errorf("change %d to: %w", i, err)
		}
		switch {
		case c.Kind != Remove && c.To == nil:
			return nil, fmt.Errorf("change %d: %s without to", i, c.Kind)
		case c.Kind == Remove && c.To != nil:
			return nil, fmt.Errorf("change %d: remove with to", i)
		}
		res[i] = c
	}
	return res, nil
}

func parseValue(s string) (ir.Tag, error) {
	if s == "" {
		return nil, nil
	}
	return snbt.ParseString(s)
}
