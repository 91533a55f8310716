// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

func ColorModeValidator(value any) error {
	var validColorFlagValues = []string{"auto", "always", "never"}
	valid := false
	for _, v := range validColorFlagValues {
		if v == value {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("must be one of %v", validColorFlagValues)
	}
	return nil
}

func MarkerValidator(value any) error {
	s, ok := value.(string)
	if !ok || len([]rune(s)) != 2 {
		return fmt.Errorf("must be exactly two characters, e.g. \"()\"")
	}
	return nil
}

func SizeValidator(value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a byte size string")
	}
	if _, err := humanize.ParseBytes(s); err != nil {
		return fmt.Errorf("must be a byte size such as 20MB or 1.5GiB: %w", err)
	}
	return nil
}
