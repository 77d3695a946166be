package cmd

import (
	"errors"
	"os"
	"path"

	"gopkg.in/yaml.v3"

	"github.com/jpqlkit/jpqlrewrite/rewrite"
)

// sortOrderConfig is the yaml shape of one SortOrder entry in a named
// profile's term list.
type sortOrderConfig struct {
	Property   string `yaml:"property"`
	Direction  string `yaml:"direction"`
	IgnoreCase bool   `yaml:"ignore_case"`
}

func (c sortOrderConfig) toSortOrder() rewrite.SortOrder {
	dir := rewrite.Asc
	if c.Direction == "desc" {
		dir = rewrite.Desc
	}
	return rewrite.SortOrder{Property: c.Property, Direction: dir, IgnoreCase: c.IgnoreCase}
}

// Config is the on-disk jpqlrewrite.yaml shape: a set of named, reusable
// sort-order profiles selected with --sort-profile.
type Config struct {
	SortProfiles map[string][]sortOrderConfig `yaml:"sort_profiles"`
}

// LoadConfig reads jpqlrewrite.yaml from --directory. A missing file is not
// an error: callers that never asked for --sort-profile don't need one.
func LoadConfig() (Config, error) {
	configFilename := path.Join(directory, "jpqlrewrite.yaml")
	if _, err := os.Stat(configFilename); os.IsNotExist(err) {
		return Config{}, nil
	}

	raw, err := os.ReadFile(configFilename)
	if err != nil {
		return Config{}, err
	}
	var result Config
	if err := yaml.Unmarshal(raw, &result); err != nil {
		return Config{}, err
	}
	return result, nil
}

// resolveSortProfile returns the named profile's sort terms, or an error if
// name is set but not found in cfg.
func resolveSortProfile(cfg Config, name string) ([]rewrite.SortOrder, error) {
	if name == "" {
		return nil, nil
	}
	entries, ok := cfg.SortProfiles[name]
	if !ok {
		return nil, errors.New("no sort profile named " + name + " in jpqlrewrite.yaml")
	}
	sort := make([]rewrite.SortOrder, 0, len(entries))
	for _, e := range entries {
		sort = append(sort, e.toSortOrder())
	}
	return sort, nil
}
