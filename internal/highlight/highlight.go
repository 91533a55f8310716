// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package highlight

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/hlctl/hl/internal/log"
	"github.com/hlctl/hl/internal/selector"
)

// Highlighter applies a set of selectors to lines. It is immutable after
// construction and processes each line independently.
type Highlighter struct {
	selectors []selector.Selector
	delimiter string
	skip      string
}

// New builds a Highlighter. delimiter must be non-empty; skip may be empty to
// disable skip handling. An empty selector list turns the highlighter into a
// pass-through.
func New(selectors []selector.Selector, delimiter, skip string) (*Highlighter, error) {
	if delimiter == "" {
		return nil, errors.New("delimiter must not be empty")
	}
	return &Highlighter{
		selectors: selectors,
		delimiter: delimiter,
		skip:      skip,
	}, nil
}

// Line returns the highlighted form of one line (without its newline). Every
// byte outside the wrapped spans is emitted unchanged, the delimiter
// included.
func (h *Highlighter) Line(line string) string {
	if len(h.selectors) == 0 || line == "" {
		return line
	}

	body := line
	var out strings.Builder

	if h.skip != "" {
		idx := strings.Index(body, h.skip)
		if idx < 0 {
			log.Debugf("skip %q not found, line passed through", h.skip)
			return line
		}
		cut := idx + len(h.skip)
		out.WriteString(body[:cut])
		body = body[cut:]
	}

	chunks := splitInclusive(body, h.delimiter)
	for i, chunk := range chunks {
		sel, ok := h.match(i, len(chunks))
		if !ok {
			out.WriteString(chunk)
			continue
		}

		// The wrapped span is the field text only. The trailing delimiter an
		// inclusive chunk may carry stays outside the span.
		field := chunk
		if strings.HasSuffix(chunk, h.delimiter) {
			field = chunk[:len(chunk)-len(h.delimiter)]
		}
		trailing := chunk[len(field):]

		out.WriteString(wrapField(field, sel))
		out.WriteString(trailing)
	}

	return out.String()
}

// Run pumps r through the highlighter into w until EOF. Lines are processed
// independently, so a per-line anomaly never aborts the stream. A downstream
// pipe closure stops the loop cleanly.
func (h *Highlighter) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, rerr := br.ReadString('\n')
		if line != "" {
			newline := ""
			if strings.HasSuffix(line, "\n") {
				newline = "\n"
				line = line[:len(line)-1]
			}

			_, werr := bw.WriteString(h.Line(line) + newline)
			if werr == nil {
				werr = bw.Flush()
			}
			if werr != nil {
				if isBrokenPipe(werr) {
					return nil
				}
				return fmt.Errorf("write output: %w", werr)
			}
		}

		if rerr == io.EOF {
			return nil
		}
		if rerr != nil {
			return fmt.Errorf("read input: %w", rerr)
		}
	}
}

// match returns the first selector naming field i, honoring listing order.
func (h *Highlighter) match(i, fieldCount int) (selector.Selector, bool) {
	for _, sel := range h.selectors {
		if sel.Matches(i, fieldCount) {
			return sel, true
		}
	}
	return selector.Selector{}, false
}

// wrapField applies the selector's style to the field text, narrowed to the
// selector's rune span when one is present. A span that clamps to nothing
// leaves the field untouched.
func wrapField(field string, sel selector.Selector) string {
	if sel.Span == nil {
		return sel.Style.Wrap(field)
	}

	runes := []rune(field)
	start := sel.Span.Start
	if start >= len(runes) {
		return field
	}

	end := len(runes)
	if sel.Span.Length >= 0 && start+sel.Span.Length < end {
		end = start + sel.Span.Length
	}
	if end <= start {
		return field
	}

	return string(runes[:start]) + sel.Style.Wrap(string(runes[start:end])) + string(runes[end:])
}

// splitInclusive splits body by delimiter with each chunk keeping its
// trailing delimiter. A trailing delimiter does not produce a final empty
// chunk, so "a b " splits into "a " and "b ".
func splitInclusive(body, delimiter string) []string {
	chunks := strings.SplitAfter(body, delimiter)
	if n := len(chunks); n > 0 && chunks[n-1] == "" {
		chunks = chunks[:n-1]
	}
	return chunks
}

// isBrokenPipe reports whether the write failed because the reader went
// away, e.g. "hl ... | head".
func isBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, os.ErrClosed)
}
