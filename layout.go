package carbonboard

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	nt "carbonboard/entity"
)

// Layout configures the project table columns.
type Layout struct {
	Columns []nt.Column `yaml:"columns"`
}

// LoadLayout reads layout.yaml; a missing file falls back to the built-in
// default so the dashboard runs out of the box.
func LoadLayout(path string) (layout *Layout, err error) {

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return defaultLayout(), nil
	}
	if err != nil {
		err = errors.Wrapf(err, "failed to read layout from %s", path)
		return
	}

	layout = &Layout{}
	err = yaml.Unmarshal(data, layout)
	if err != nil {
		err = errors.Wrapf(err, "failed to unmarshal layout")
		return
	}

	for _, col := range layout.Columns {
		if col.Width < 1 {
			err = errors.Errorf("column %q must have width >= 1 in %s", col.Field, path)
			return
		}
	}
	return
}

func defaultLayout() *Layout {

	return &Layout{
		Columns: []nt.Column{
			{Field: "name", Title: "Project", Width: 28},
			{Field: "location", Title: "Location", Width: 14},
			{Field: "type", Title: "Type", Width: 10},
			{Field: "registry", Title: "Registry", Width: 13},
			{Field: "supply", Title: "Supply", Width: 9, Format: "compact"},
			{Field: "retired", Title: "Retired", Width: 9, Format: "compact"},
			{Field: "price", Title: "Price", Width: 9, Format: "currency"},
			{Field: "retired_pct", Title: "Ret %", Width: 7, Format: "percent"},
		},
	}
}
