// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package selector

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/hlctl/hl/internal/log"
	"github.com/hlctl/hl/internal/style"
)

// rangeRegex decides whether the middle token of a three-part selector (or
// the second token of a two-part one) is a rune range rather than a color.
// Accepted forms: "START", "START-END" (END exclusive), "START+LEN".
var rangeRegex = regexp.MustCompile(`^\d+([-+]\d+)?$`)

// Span is a rune range within a field's text. Length -1 means "to the end of
// the field".
type Span struct {
	Start  int
	Length int
}

// Selector is a single parsed --field expression: which field to decorate,
// an optional rune span within it, and the style to apply.
type Selector struct {
	Field int
	Span  *Span
	Style style.Style
}

// Options carries the context a selector is resolved against: the marker
// style used when no color is named (or colors are off), whether ANSI output
// is enabled, the config alias table, and the size-color thresholds.
type Options struct {
	Marker   style.Style
	Colors   bool
	Aliases  map[string]string
	YellowAt uint64
	RedAt    uint64
}

// Parse validates one FIELD[:RANGE][:COLOR] expression and resolves it into
// a Selector. Errors name the offending token.
func Parse(spec string, opts Options) (Selector, error) {
	parts := strings.SplitN(spec, ":", 3)

	field, err := strconv.Atoi(parts[0])
	if err != nil {
		return Selector{}, fmt.Errorf("invalid field index %q in selector %q", parts[0], spec)
	}

	sel := Selector{Field: field, Style: opts.Marker}

	var rangeTok, colorTok string
	switch len(parts) {
	case 1:
		// Field only, marker style.
	case 2:
		if rangeRegex.MatchString(parts[1]) {
			rangeTok = parts[1]
		} else {
			colorTok = parts[1]
		}
	case 3:
		rangeTok = parts[1]
		colorTok = parts[2]
		if !rangeRegex.MatchString(rangeTok) {
			return Selector{}, fmt.Errorf("invalid range %q in selector %q", rangeTok, spec)
		}
	}

	if (len(parts) > 1 && parts[1] == "") || (len(parts) > 2 && parts[2] == "") {
		return Selector{}, fmt.Errorf("empty token in selector %q", spec)
	}

	if rangeTok != "" {
		span, err := parseSpan(rangeTok)
		if err != nil {
			return Selector{}, fmt.Errorf("%w in selector %q", err, spec)
		}
		sel.Span = span
	}

	if colorTok != "" {
		st, err := resolveStyle(colorTok, opts)
		if err != nil {
			return Selector{}, err
		}
		sel.Style = st
	}

	return sel, nil
}

// ParseAll resolves every --field expression, preserving order. Order
// matters: when two selectors name the same field, the first one listed wins.
func ParseAll(specs []string, opts Options) ([]Selector, error) {
	selectors := make([]Selector, 0, len(specs))
	for _, spec := range specs {
		sel, err := Parse(spec, opts)
		if err != nil {
			return nil, err
		}
		selectors = append(selectors, sel)
	}
	log.Debugf("parsed selectors: %+v", selectors)
	return selectors, nil
}

// Matches reports whether the selector names field index i of a line with
// fieldCount fields. Negative indices count from the end, so -1 is the last
// field. An index outside the line never matches.
func (s Selector) Matches(i, fieldCount int) bool {
	field := s.Field
	if field < 0 {
		field += fieldCount
		if field < 0 {
			return false
		}
	}
	return field == i
}

// parseSpan normalizes a range token to a Span. The token has already been
// shape-checked by rangeRegex.
func parseSpan(tok string) (*Span, error) {
	switch {
	case strings.Contains(tok, "-"):
		idx := strings.Index(tok, "-")
		start, _ := strconv.Atoi(tok[:idx])
		end, err := strconv.Atoi(tok[idx+1:])
		if err != nil || end < start {
			return nil, fmt.Errorf("invalid range %q", tok)
		}
		return &Span{Start: start, Length: end - start}, nil

	case strings.Contains(tok, "+"):
		idx := strings.Index(tok, "+")
		start, _ := strconv.Atoi(tok[:idx])
		length, err := strconv.Atoi(tok[idx+1:])
		if err != nil {
			return nil, fmt.Errorf("invalid range %q", tok)
		}
		return &Span{Start: start, Length: length}, nil

	default:
		start, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("invalid range %q", tok)
		}
		return &Span{Start: start, Length: -1}, nil
	}
}

// resolveStyle turns a color token into a style. Aliases resolve first (one
// level, matching style.Parse) so an alias may name any color spec, "size"
// included. The token is validated even when colors are disabled so a bad
// selector fails the same way with and without a terminal.
func resolveStyle(tok string, opts Options) (style.Style, error) {
	if target, ok := opts.Aliases[tok]; ok {
		tok = target
	}

	if tok == "size" {
		if !opts.Colors {
			return opts.Marker, nil
		}
		return style.Size(opts.YellowAt, opts.RedAt, opts.Marker), nil
	}

	st, err := style.Parse(tok, nil)
	if err != nil {
		return style.Style{}, err
	}
	if !opts.Colors {
		return opts.Marker, nil
	}
	return st, nil
}
