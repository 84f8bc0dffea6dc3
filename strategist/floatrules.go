package strategist

import (
	"fmt"

	gitignore "github.com/monochromegane/go-gitignore"
)

// FloatRules matches a surface's "title:class" hint against a gitignore-
// syntax pattern file, forcing a match to float regardless of the
// configured ChooseTarget mode. This reuses the same pattern-matching idiom
// the teacher's search.Walk applies to file paths, against title/class
// strings instead.
type FloatRules struct {
	matcher gitignore.IgnoreMatcher
}

// LoadFloatRules reads the gitignore-syntax pattern file at path.
func LoadFloatRules(path string) (*FloatRules, error) {
	m, err := gitignore.NewGitIgnore(path)
	if err != nil {
		return nil, fmt.Errorf("strategist: loading float rules from %q: %w", path, err)
	}
	return &FloatRules{matcher: m}, nil
}

// Match reports whether hint (a "title:class" string) matches a float rule.
func (r *FloatRules) Match(hint string) bool {
	if r == nil {
		return false
	}
	return r.matcher.Match(hint, false)
}
