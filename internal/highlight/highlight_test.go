// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package highlight

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hlctl/hl/internal/selector"
	"github.com/hlctl/hl/internal/style"
)

// newHighlighter parses the given selector specs with marker style "()" and
// builds a Highlighter around them.
func newHighlighter(t *testing.T, specs []string, delimiter, skip string, colors bool) *Highlighter {
	t.Helper()

	marker, err := style.Marker("()")
	require.NoError(t, err)

	selectors, err := selector.ParseAll(specs, selector.Options{
		Marker:   marker,
		Colors:   colors,
		YellowAt: 20_000_000,
		RedAt:    100_000_000,
	})
	require.NoError(t, err)

	h, err := New(selectors, delimiter, skip)
	require.NoError(t, err)
	return h
}

func TestLineMarkers(t *testing.T) {
	tests := []struct {
		name      string
		specs     []string
		delimiter string
		skip      string
		in        string
		want      string
	}{
		{
			name:      "second field default marker",
			specs:     []string{"1"},
			delimiter: " ",
			in:        "linux 126M",
			want:      "linux (126M)",
		},
		{
			name:      "first field leaves delimiter outside",
			specs:     []string{"0"},
			delimiter: " ",
			in:        "linux 126M",
			want:      "(linux) 126M",
		},
		{
			name:      "custom delimiter moves split points",
			specs:     []string{"1"},
			delimiter: ": ",
			in:        "cpu family  : 6",
			want:      "cpu family  : (6)",
		},
		{
			name:      "custom delimiter keeps adjacent whitespace",
			specs:     []string{"0"},
			delimiter: ": ",
			in:        "cpu family  : 6",
			want:      "(cpu family  ): 6",
		},
		{
			name:      "empty line",
			specs:     []string{"1"},
			delimiter: " ",
			in:        "",
			want:      "",
		},
		{
			name:      "field beyond field count",
			specs:     []string{"5"},
			delimiter: " ",
			in:        "linux 126M",
			want:      "linux 126M",
		},
		{
			name:      "consecutive delimiters give empty field",
			specs:     []string{"1"},
			delimiter: " ",
			in:        "a  b",
			want:      "a () b",
		},
		{
			name:      "leading delimiter gives empty first field",
			specs:     []string{"0"},
			delimiter: " ",
			in:        " a",
			want:      "() a",
		},
		{
			name:      "trailing delimiter adds no phantom field",
			specs:     []string{"-1"},
			delimiter: " ",
			in:        "a b ",
			want:      "a (b) ",
		},
		{
			name:      "negative index counts from end",
			specs:     []string{"-1"},
			delimiter: " ",
			in:        "a b c",
			want:      "a b (c)",
		},
		{
			name:      "skip offsets field counting",
			specs:     []string{"0"},
			delimiter: " ",
			skip:      ": ",
			in:        "processor   : 0",
			want:      "processor   : (0)",
		},
		{
			name:      "skip not found passes line through",
			specs:     []string{"0"},
			delimiter: " ",
			skip:      ": ",
			in:        "flags fpu vme",
			want:      "flags fpu vme",
		},
		{
			name:      "no selectors is pass-through",
			specs:     nil,
			delimiter: " ",
			in:        "anything at all",
			want:      "anything at all",
		},
		{
			name:      "rune span inside field",
			specs:     []string{"1:0-3"},
			delimiter: " ",
			in:        "linux kernel",
			want:      "linux (ker)nel",
		},
		{
			name:      "open ended span",
			specs:     []string{"0:2"},
			delimiter: " ",
			in:        "kernel 6.8",
			want:      "ke(rnel) 6.8",
		},
		{
			name:      "span start past field end",
			specs:     []string{"1:10"},
			delimiter: " ",
			in:        "linux 126M",
			want:      "linux 126M",
		},
		{
			name:      "span clamps to field end",
			specs:     []string{"1:2+99"},
			delimiter: " ",
			in:        "linux 126M",
			want:      "linux 12(6M)",
		},
		{
			name:      "span is rune indexed",
			specs:     []string{"0:1+2"},
			delimiter: " ",
			in:        "héllo world",
			want:      "h(él)lo world",
		},
		{
			name:      "first selector for a field wins",
			specs:     []string{"1:0-2", "1"},
			delimiter: " ",
			in:        "a bcd",
			want:      "a (bc)d",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHighlighter(t, tt.specs, tt.delimiter, tt.skip, false)
			assert.Equal(t, tt.want, h.Line(tt.in))
		})
	}
}

func TestLineAnsi(t *testing.T) {
	h := newHighlighter(t, []string{"1:red"}, " ", "", true)
	assert.Equal(t, "linux \x1b[31m126M\x1b[39m", h.Line("linux 126M"))
}

func TestLineSizeColor(t *testing.T) {
	h := newHighlighter(t, []string{"1:size"}, " ", "", true)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "small is green", in: "dmenu 52K", want: "dmenu \x1b[32m52K\x1b[39m"},
		{name: "medium is yellow", in: "llvm 95M", want: "llvm \x1b[33m95M\x1b[39m"},
		{name: "large is red", in: "firefox 221M", want: "firefox \x1b[31m221M\x1b[39m"},
		{name: "raw byte count", in: "linux 131672735", want: "linux \x1b[31m131672735\x1b[39m"},
		{name: "unparsable falls back to marker", in: "base n/a", want: "base (n/a)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.Line(tt.in))
		})
	}
}

func TestLineDoubleApplicationNests(t *testing.T) {
	// Highlighting is not idempotent. Feeding output back in nests markers;
	// that is expected behavior, not a bug.
	h := newHighlighter(t, []string{"1"}, " ", "", false)
	once := h.Line("linux 126M")
	assert.Equal(t, "linux ((126M))", h.Line(once))
}

func TestNewRejectsEmptyDelimiter(t *testing.T) {
	_, err := New(nil, "", "")
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	h := newHighlighter(t, []string{"1"}, " ", "", false)

	in := strings.NewReader("linux 126M\nfirefox 221M\n\nshort\n")
	var out bytes.Buffer

	require.NoError(t, h.Run(context.Background(), in, &out))
	assert.Equal(t, "linux (126M)\nfirefox (221M)\n\nshort\n", out.String())
}

func TestRunKeepsMissingFinalNewline(t *testing.T) {
	h := newHighlighter(t, []string{"0"}, " ", "", false)

	in := strings.NewReader("a b\nc d")
	var out bytes.Buffer

	require.NoError(t, h.Run(context.Background(), in, &out))
	assert.Equal(t, "(a) b\n(c) d", out.String())
}

func TestRunLinesAreIndependent(t *testing.T) {
	// A skip miss on one line must not abort the rest of the stream.
	h := newHighlighter(t, []string{"0"}, " ", ": ", false)

	in := strings.NewReader("no colon here\nkey : value\n")
	var out bytes.Buffer

	require.NoError(t, h.Run(context.Background(), in, &out))
	assert.Equal(t, "no colon here\nkey : (value)\n", out.String())
}

func TestRunCanceledContext(t *testing.T) {
	h := newHighlighter(t, []string{"0"}, " ", "", false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := h.Run(ctx, strings.NewReader("a b\n"), &bytes.Buffer{})
	assert.ErrorIs(t, err, context.Canceled)
}
