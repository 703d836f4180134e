package filters

import (
	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// PathFilter reports whether a file path should be kept in the result.
type PathFilter func(path string) bool

// ParsePathFilter builds a filter from include and exclude glob rules
// (doublestar syntax, so "**" crosses directories). With no include rules
// everything is included; exclude rules always win.
func ParsePathFilter(include, exclude []string) (PathFilter, error) {
	for _, rule := range append(append([]string{}, include...), exclude...) {
		if !doublestar.ValidatePattern(rule) {
			return nil, errors.Errorf("invalid glob pattern: %v", rule)
		}
	}

	return func(path string) bool {
		if len(include) > 0 && !matchesAny(include, path) {
			return false
		}
		return !matchesAny(exclude, path)
	}, nil
}

func matchesAny(rules []string, path string) bool {
	return lo.SomeBy(rules, func(rule string) bool {
		ok, err := doublestar.Match(rule, path)
		return err == nil && ok
	})
}
