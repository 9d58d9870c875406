package commands

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"
)

// ErrIDRequired indicates no task id was provided.
var ErrIDRequired = errors.New("task id required")

// ParseID parses a task id from the first positional argument.
//
// Parsing rules:
//  1. No args -> ErrIDRequired
//  2. First arg is all digits and >= 1 -> that id
//  3. Otherwise -> error: invalid task id: <arg>
func ParseID(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrIDRequired
	}

	arg := args[0]
	if !isAllDigits(arg) {
		return 0, fmt.Errorf("invalid task id: %s", arg)
	}

	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid task id: %s", arg)
	}
	return id, nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
