// Package remapping models Solidity import remappings.
// A remapping rewrites an import prefix to an on-disk path, optionally only
// for sources under a context directory. Its canonical text form is
// "[context:]prefix=target".
package remapping

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"remappings/internal/errors"
)

// Remapping is a single import rewrite rule.
// An empty Context means the remapping applies globally.
type Remapping struct {
	Context string
	Prefix  string
	Target  string
}

// Parse reads a remapping from its text form. The key is everything before
// the first '='; within the key, text before the first ':' is the context.
func Parse(s string) (Remapping, error) {
	s = strings.TrimSpace(s)

	key, target, ok := strings.Cut(s, "=")
	if !ok {
		return Remapping{}, errors.NewParsingError("", fmt.Sprintf("invalid remapping %q: missing '='", s), nil)
	}

	var context string
	prefix := key
	if ctx, rest, found := strings.Cut(key, ":"); found {
		context, prefix = ctx, rest
	}

	prefix = strings.TrimSpace(prefix)
	target = strings.TrimSpace(target)

	if prefix == "" {
		return Remapping{}, errors.NewParsingError("", fmt.Sprintf("invalid remapping %q: remapping key is empty", s), nil)
	}
	if target == "" {
		return Remapping{}, errors.NewParsingError("", fmt.Sprintf("invalid remapping %q: remapping value is empty", s), nil)
	}

	return Remapping{
		Context: strings.TrimSpace(context),
		Prefix:  prefix,
		Target:  target,
	}, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) Remapping {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

// String renders the canonical form. Prefix and target gain a trailing
// slash unless they already have one or name a .sol file.
func (r Remapping) String() string {
	var b strings.Builder
	if r.Context != "" {
		b.WriteString(r.Context)
		b.WriteByte(':')
	}
	b.WriteString(withTrailingSlash(r.Prefix))
	b.WriteByte('=')
	b.WriteString(withTrailingSlash(r.Target))
	return b.String()
}

// WithoutContext returns a copy of r that renders without its context.
func (r Remapping) WithoutContext() Remapping {
	r.Context = ""
	return r
}

// HasContext reports whether r is scoped to a context.
func (r Remapping) HasContext() bool {
	return r.Context != ""
}

// Key identifies a remapping for de-duplication: two remappings with the same
// context and normalized prefix rewrite the same imports.
func (r Remapping) Key() string {
	return r.Context + ":" + withTrailingSlash(r.Prefix)
}

func withTrailingSlash(s string) string {
	if strings.HasSuffix(s, "/") || strings.HasSuffix(s, ".sol") {
		return s
	}
	return s + "/"
}

// ParseList reads newline-separated remappings, as found in remappings.txt.
// Blank lines and lines starting with '#' are skipped. Errors name the
// source and the 1-based line number.
func ParseList(reader io.Reader, source string) ([]Remapping, error) {
	var remappings []Remapping

	scanner := bufio.NewScanner(reader)
	line := 0
	for scanner.Scan() {
		line++
		trimmed := strings.TrimSpace(scanner.Text())
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		r, err := Parse(trimmed)
		if err != nil {
			return nil, errors.NewParsingError(fmt.Sprintf("%s:%d", source, line), "invalid remapping", err)
		}
		remappings = append(remappings, r)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.NewParsingError(source, "failed to read remappings", err)
	}

	return remappings, nil
}

// ParseAll parses each entry of a list taken from configuration or the
// environment. Empty entries are ignored.
func ParseAll(entries []string, source string) ([]Remapping, error) {
	var remappings []Remapping
	for i, entry := range entries {
		if strings.TrimSpace(entry) == "" {
			continue
		}
		r, err := Parse(entry)
		if err != nil {
			return nil, errors.NewParsingError(fmt.Sprintf("%s[%d]", source, i), "invalid remapping", err)
		}
		remappings = append(remappings, r)
	}
	return remappings, nil
}

// SplitList splits a comma- or newline-separated list of remappings, the
// format accepted from environment variables.
func SplitList(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '\n'
	})
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}
