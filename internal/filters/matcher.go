package filters

import (
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// ValueMatcher is a case-insensitive exact-match predicate for a
// categorical value. Runs of spaces, hyphens and underscores in the literal
// are treated as interchangeable and optional, so "full-stack" matches
// "Full Stack" and "fullstack".
type ValueMatcher struct {
	literal string
	re      *regexp.Regexp
}

var separatorRunRe = regexp.MustCompile(`[\s_-]+`)

// NewValueMatcher compiles a matcher from a literal categorical value. The
// literal is regex-escaped before separator substitution, so engine-reserved
// characters ("C++", "Node.js") are safe to embed.
func NewValueMatcher(literal string) (*ValueMatcher, error) {
	lit := strings.ToLower(strings.TrimSpace(literal))
	if lit == "" {
		return nil, fmt.Errorf("matcher literal is empty")
	}

	parts := separatorRunRe.Split(lit, -1)
	quoted := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			quoted = append(quoted, regexp.QuoteMeta(p))
		}
	}
	if len(quoted) == 0 {
		return nil, fmt.Errorf("matcher literal %q has no matchable content", literal)
	}

	pattern := "^(?i)" + strings.Join(quoted, `[\s_-]*`) + "$"
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compiling matcher for %q: %w", literal, err)
	}

	return &ValueMatcher{literal: lit, re: re}, nil
}

// MatchString reports whether the whole value matches the literal up to
// case and separator differences.
func (m *ValueMatcher) MatchString(value string) bool {
	return m.re.MatchString(strings.TrimSpace(value))
}

// Pattern returns the compiled anchored pattern, suitable for embedding in
// a query-language predicate.
func (m *ValueMatcher) Pattern() string {
	return m.re.String()
}

// Literal returns the normalized literal the matcher was built from.
func (m *ValueMatcher) Literal() string {
	return m.literal
}

// BuildValueMatchers compiles one matcher per non-empty value. A value that
// fails to compile is skipped and logged rather than failing the batch.
func BuildValueMatchers(values []string, log *zap.Logger) []*ValueMatcher {
	if log == nil {
		log = zap.NewNop()
	}

	matchers := make([]*ValueMatcher, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		m, err := NewValueMatcher(v)
		if err != nil {
			log.Warn("skipping uncompilable filter value",
				zap.String("value", v),
				zap.Error(err))
			continue
		}
		matchers = append(matchers, m)
	}
	return matchers
}

// AnyMatch reports whether any matcher in the set accepts the value. An
// empty matcher set matches nothing.
func AnyMatch(matchers []*ValueMatcher, value string) bool {
	for _, m := range matchers {
		if m.MatchString(value) {
			return true
		}
	}
	return false
}
