// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitApp(t *testing.T) {
	app, err := InitApp(context.Background(), []string{"hl"})
	require.NoError(t, err)

	assert.Equal(t, "hl", app.Name)
	assert.NotNil(t, app.Action)

	var names []string
	for _, cmd := range app.Commands {
		names = append(names, cmd.Name)
	}
	assert.ElementsMatch(t, []string{"styles", "completion"}, names)

	// Flags are sorted for --help.
	var flagNames []string
	for _, f := range app.Flags {
		flagNames = append(flagNames, f.Names()[0])
	}
	assert.True(t, sort.StringsAreSorted(flagNames))
	assert.Contains(t, flagNames, "field")
	assert.Contains(t, flagNames, "delimiter")
	assert.Contains(t, flagNames, "skip")
}

func TestColorModeValidator(t *testing.T) {
	assert.NoError(t, ColorModeValidator("auto"))
	assert.NoError(t, ColorModeValidator("always"))
	assert.NoError(t, ColorModeValidator("never"))
	assert.Error(t, ColorModeValidator("sometimes"))
}

func TestMarkerValidator(t *testing.T) {
	assert.NoError(t, MarkerValidator("()"))
	assert.NoError(t, MarkerValidator("«»"))
	assert.Error(t, MarkerValidator("("))
	assert.Error(t, MarkerValidator("(-)"))
	assert.Error(t, MarkerValidator(42))
}

func TestSizeValidator(t *testing.T) {
	assert.NoError(t, SizeValidator("20MB"))
	assert.NoError(t, SizeValidator("1.5GiB"))
	assert.NoError(t, SizeValidator("1048576"))
	assert.Error(t, SizeValidator("huge"))
	assert.Error(t, SizeValidator(42))
}

func TestColorsEnabled(t *testing.T) {
	assert.True(t, colorsEnabled("always"))
	assert.False(t, colorsEnabled("never"))

	// auto under a test runner has no tty on stdout.
	assert.False(t, colorsEnabled("auto"))
}
