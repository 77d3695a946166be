package cmd

import (
	"fmt"
	"strings"

	"github.com/jpqlkit/jpqlrewrite/rewrite"
)

// parseOrderBy parses the repeatable --order-by flag's "property:dir[:ignorecase]"
// form into SortOrder terms, in flag order.
func parseOrderBy(raw []string) ([]rewrite.SortOrder, error) {
	var out []rewrite.SortOrder
	for _, term := range raw {
		parts := strings.Split(term, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, fmt.Errorf("invalid --order-by term %q: want property:dir[:ignorecase]", term)
		}
		so := rewrite.SortOrder{Property: parts[0]}
		switch strings.ToLower(parts[1]) {
		case "asc":
			so.Direction = rewrite.Asc
		case "desc":
			so.Direction = rewrite.Desc
		default:
			return nil, fmt.Errorf("invalid --order-by direction %q: want asc or desc", parts[1])
		}
		if len(parts) == 3 {
			if strings.ToLower(parts[2]) != "ignorecase" {
				return nil, fmt.Errorf("invalid --order-by modifier %q: want ignorecase", parts[2])
			}
			so.IgnoreCase = true
		}
		out = append(out, so)
	}
	return out, nil
}

// resolvedSort combines the --order-by flag with any --sort-profile,
// order-by terms first.
func resolvedSort(orderBy []string) ([]rewrite.SortOrder, error) {
	fromFlags, err := parseOrderBy(orderBy)
	if err != nil {
		return nil, err
	}
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	fromProfile, err := resolveSortProfile(cfg, sortProfile)
	if err != nil {
		return nil, err
	}
	return append(fromFlags, fromProfile...), nil
}
