// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prompt

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/ava-labs/fvm/codec"
	"github.com/ava-labs/fvm/utils"
)

var (
	ErrInputEmpty      = errors.New("input is empty")
	ErrInvalidChoice   = errors.New("invalid choice")
	ErrIndexOutOfRange = errors.New("index out-of-range")
)

func Bytes(label string) ([]byte, error) {
	promptText := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			_, err := codec.LoadHex(strings.TrimSpace(input), -1)
			return err
		},
	}
	hexString, err := promptText.Run()
	if err != nil {
		return nil, err
	}
	return codec.LoadHex(strings.TrimSpace(hexString), -1)
}

func Address(label string) (codec.Address, error) {
	promptText := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			_, err := codec.ParseAddress(strings.TrimSpace(input))
			return err
		},
	}
	address, err := promptText.Run()
	if err != nil {
		return codec.EmptyAddress, err
	}
	return codec.ParseAddress(strings.TrimSpace(address))
}

// Amount reads an amount in base units. Scientific notation such as
// 1.5e18 is accepted.
func Amount(label string) (*big.Int, error) {
	promptText := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			_, err := parseAmount(input)
			return err
		},
	}
	rawAmount, err := promptText.Run()
	if err != nil {
		return nil, err
	}
	return parseAmount(rawAmount)
}

func parseAmount(input string) (*big.Int, error) {
	if len(strings.TrimSpace(input)) == 0 {
		return nil, ErrInputEmpty
	}
	return utils.ParseAmount(input)
}

func Uint(
	label string,
	maxValue uint64,
) (uint64, error) {
	promptText := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			_, err := parseUint(input, maxValue)
			return err
		},
	}
	rawAmount, err := promptText.Run()
	if err != nil {
		return 0, err
	}
	return parseUint(rawAmount, maxValue)
}

func parseUint(input string, maxValue uint64) (uint64, error) {
	input = strings.TrimSpace(input)
	if len(input) == 0 {
		return 0, ErrInputEmpty
	}
	amount, err := strconv.ParseUint(input, 0, 64)
	if err != nil {
		return 0, err
	}
	if amount > maxValue {
		return 0, fmt.Errorf("%d must be <= %d", amount, maxValue)
	}
	return amount, nil
}

func Choice(label string, maxChoice int) (int, error) {
	if maxChoice == 1 {
		utils.Outf("{{yellow}}%s:{{/}} 0 [auto-selected]\n", label)
		return 0, nil
	}
	promptText := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			_, err := parseChoice(input, maxChoice)
			return err
		},
	}
	rawIndex, err := promptText.Run()
	if err != nil {
		return -1, err
	}
	return parseChoice(rawIndex, maxChoice)
}

func parseChoice(input string, maxChoice int) (int, error) {
	input = strings.TrimSpace(input)
	if len(input) == 0 {
		return -1, ErrInputEmpty
	}
	index, err := strconv.Atoi(input)
	if err != nil {
		return -1, err
	}
	if index >= maxChoice || index < 0 {
		return -1, ErrIndexOutOfRange
	}
	return index, nil
}

func Bool(label string) (bool, error) {
	promptText := promptui.Prompt{
		Label: label + " (y/n)",
		Validate: func(input string) error {
			_, err := parseBool(input)
			return err
		},
	}
	rawBool, err := promptText.Run()
	if err != nil {
		return false, err
	}
	return parseBool(rawBool)
}

func parseBool(input string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "":
		return false, ErrInputEmpty
	case "y":
		return true, nil
	case "n":
		return false, nil
	default:
		return false, ErrInvalidChoice
	}
}
