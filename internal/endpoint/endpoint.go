// Package endpoint implements the pure string plumbing behind every API
// call: scanning ":name" placeholders out of a path template, substituting
// parameter values into them, and computing the residual parameters that
// belong in the query string or request body instead of the path.
package endpoint

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Params is a mapping of request parameter names to their values. Values
// are typically strings or numbers, but nested structures are accepted for
// the handful of bulk endpoints that take them.
type Params map[string]interface{}

// placeholderPattern is the single definition of what counts as a
// placeholder. Compile and Placeholders both derive from it, so path
// substitution and residual computation can never disagree on which
// parameter keys are consumed by the template.
var placeholderPattern = regexp.MustCompile(`(?i):[a-z_]+`)

// Placeholders returns the distinct placeholder names appearing in
// template, in order of first appearance and without their leading colon.
func Placeholders(template string) []string {
	matches := placeholderPattern.FindAllString(template, -1)
	seen := make(map[string]struct{}, len(matches))
	names := make([]string, 0, len(matches))
	for _, match := range matches {
		name := strings.TrimPrefix(match, ":")
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	return names
}

// Normalize converts the raw parameter argument of an endpoint call into a
// canonical Params mapping. A mapping passes through unchanged. A scalar is
// bound to the template's placeholder when the template has exactly one
// distinct placeholder; with zero or several placeholders the binding would
// be ambiguous and an empty mapping is returned instead.
func Normalize(template string, raw interface{}) Params {
	switch v := raw.(type) {
	case nil:
		return Params{}
	case Params:
		return v
	case map[string]interface{}:
		return Params(v)
	}

	names := Placeholders(template)
	if len(names) != 1 {
		return Params{}
	}

	return Params{names[0]: raw}
}

// Compile substitutes params into template and returns the concrete path
// together with the residual parameters, i.e. params minus every key that
// named a placeholder in template. Placeholders with no matching parameter
// are left verbatim in the path.
func Compile(template string, params Params) (string, Params) {
	residual := make(Params, len(params))
	for name, value := range params {
		residual[name] = value
	}

	path := placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		name := strings.TrimPrefix(match, ":")
		value, ok := params[name]
		if !ok {
			return match
		}

		return Format(value)
	})

	for _, name := range Placeholders(template) {
		delete(residual, name)
	}

	return path, residual
}

// Format renders a parameter value the way it should appear in a path
// segment or query string.
func Format(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
