// Package query parses the raw strings Alfred hands to the workflow into
// the structured pieces the filter engine needs.
package query

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fuzzyfolders/internal/constants"
)

// ErrMalformedQuery indicates a query that does not contain the delimiter
// exactly once, or carries a non-numeric settings value.
var ErrMalformedQuery = errors.New("malformed query")

// SplitDelimited splits q on the reserved delimiter into two trimmed
// components. Queries produced by the workflow's own items always carry
// exactly one delimiter; anything else is malformed.
func SplitDelimited(q string) (string, string, error) {
	parts := strings.Split(q, constants.Delimiter)
	if len(parts) != 2 {
		return "", "", fmt.Errorf(
			"%w: expected exactly one %q in %q",
			ErrMalformedQuery, constants.Delimiter, q,
		)
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
}

// Tokenize splits a search phrase on whitespace. The last token is the
// index query handed to Spotlight; any preceding tokens refine the hits by
// matching path segments. An empty phrase yields an empty index query,
// which callers must treat as too short.
func Tokenize(phrase string) (index string, refinements []string) {
	tokens := strings.Fields(phrase)
	switch len(tokens) {
	case 0:
		return "", nil
	case 1:
		return tokens[0], nil
	default:
		return tokens[len(tokens)-1], tokens[:len(tokens)-1]
	}
}

// SettingsQuery is a parsed settings query of the form
// "profile ➣ setting ➣ value", where setting and value may be absent.
type SettingsQuery struct {
	Profile  string
	Setting  string
	Value    int
	HasValue bool
}

// ParseSettings splits a settings query into profile id, setting name and
// value. Missing trailing components are simply left unset.
func ParseSettings(q string) (SettingsQuery, error) {
	parts := strings.Split(q, constants.Delimiter)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	sq := SettingsQuery{Profile: parts[0]}
	if len(parts) > 1 && parts[1] != "" {
		sq.Setting = parts[1]
	}
	if len(parts) > 2 && parts[2] != "" {
		v, err := strconv.Atoi(parts[2])
		if err != nil {
			return sq, fmt.Errorf(
				"%w: setting value %q is not a number",
				ErrMalformedQuery, parts[2],
			)
		}
		sq.Value = v
		sq.HasValue = true
	}
	return sq, nil
}
