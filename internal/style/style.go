// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package style

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/term"
)

// kind discriminates how a Style decorates a span.
type kind int

const (
	kindMarker kind = iota
	kindAnsi
	kindSize
)

// Foreground escape building blocks. Change 3 to 4 for background colors.
const (
	escIntro   = "\x1b[3"
	escDefault = "\x1b[39m"
)

// namedColors maps color names to their foreground code digit.
var namedColors = map[string]string{
	"default": "9",
	"black":   "0",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"cyan":    "6",
	"white":   "7",
}

// Style decorates a span of text with a prefix/suffix pair. The zero value is
// unusable; construct one with Marker, Parse or Size.
type Style struct {
	// Name is the spec the style was built from, kept for messages and the
	// styles listing.
	Name string

	kind           kind
	prefix, suffix string

	// Threshold fields, size styles only. Bytes at or below yellowAt render
	// green, above redAt render red, yellow in between. A span that does not
	// parse as a byte count falls back to the marker pair.
	yellowAt, redAt          uint64
	fallbackPre, fallbackSuf string
}

// Marker builds a bracket-pair style from a two-rune pair such as "()" or
// "[]". The pair comes from --marker or the config file.
func Marker(pair string) (Style, error) {
	runes := []rune(pair)
	if len(runes) != 2 {
		return Style{}, fmt.Errorf("marker must be exactly two characters, got %q", pair)
	}
	return Style{
		Name:   pair,
		kind:   kindMarker,
		prefix: string(runes[0]),
		suffix: string(runes[1]),
	}, nil
}

// Parse resolves a color spec into an ANSI style. Accepted forms are the
// named colors, fixed(N) for the 256-color palette, rgb(R,G,B) for truecolor,
// and any key of the aliases table, which is resolved one level deep.
func Parse(spec string, aliases map[string]string) (Style, error) {
	if target, ok := aliases[spec]; ok {
		// One level only so an alias cannot reference itself.
		return Parse(target, nil)
	}

	if code, ok := namedColors[spec]; ok {
		return ansiStyle(spec, code), nil
	}

	switch {
	case strings.HasPrefix(spec, "fixed(") && strings.HasSuffix(spec, ")"):
		inner := strings.TrimSuffix(strings.TrimPrefix(spec, "fixed("), ")")
		n, err := strconv.Atoi(inner)
		if err != nil || n < 0 || n > 255 {
			return Style{}, fmt.Errorf("fixed color index must be 0-255, got %q", inner)
		}
		return ansiStyle(spec, fmt.Sprintf("8;5;%d", n)), nil

	case strings.HasPrefix(spec, "rgb(") && strings.HasSuffix(spec, ")"):
		inner := strings.TrimSuffix(strings.TrimPrefix(spec, "rgb("), ")")
		parts := strings.Split(inner, ",")
		if len(parts) != 3 {
			return Style{}, fmt.Errorf("rgb color needs three components, got %q", spec)
		}
		var comps [3]int
		for i, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil || n < 0 || n > 255 {
				return Style{}, fmt.Errorf("rgb component must be 0-255, got %q", p)
			}
			comps[i] = n
		}
		return ansiStyle(spec, fmt.Sprintf("8;2;%d;%d;%d", comps[0], comps[1], comps[2])), nil
	}

	return Style{}, fmt.Errorf("unknown color %q", spec)
}

// Size builds the threshold style selected by the "size" color name. The
// span is parsed as a (possibly humanized) byte count and colored green,
// yellow or red against the thresholds. fallback decorates spans that do not
// parse as sizes.
func Size(yellowAt, redAt uint64, fallback Style) Style {
	return Style{
		Name:        "size",
		kind:        kindSize,
		yellowAt:    yellowAt,
		redAt:       redAt,
		fallbackPre: fallback.prefix,
		fallbackSuf: fallback.suffix,
	}
}

// ansiStyle wraps a foreground code into a full escape pair. The suffix
// restores the default foreground rather than issuing a full reset so that
// surrounding attributes survive.
func ansiStyle(name, code string) Style {
	return Style{
		Name:   name,
		kind:   kindAnsi,
		prefix: escIntro + code + "m",
		suffix: escDefault,
	}
}

// Wrap returns the span decorated with the style's prefix and suffix. Size
// styles resolve their color per span.
func (s Style) Wrap(span string) string {
	if s.kind == kindSize {
		return s.wrapSize(span)
	}
	return s.prefix + span + s.suffix
}

// IsSize reports whether the style resolves per span from byte thresholds.
func (s Style) IsSize() bool {
	return s.kind == kindSize
}

func (s Style) wrapSize(span string) string {
	size, err := humanize.ParseBytes(strings.TrimSpace(span))
	if err != nil {
		return s.fallbackPre + span + s.fallbackSuf
	}

	name := "green"
	switch {
	case size > s.redAt:
		name = "red"
	case size > s.yellowAt:
		name = "yellow"
	}
	return ansiStyle(name, namedColors[name]).Wrap(span)
}

// Names returns the built-in color names in sorted order, for the styles
// listing and completion.
func Names() []string {
	names := make([]string, 0, len(namedColors))
	for name := range namedColors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TerminalColors reports whether ANSI output is appropriate for f: the
// NO_COLOR convention is honored and f must be a terminal.
func TerminalColors(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
