package cmd

import (
	"errors"
	"regexp"
	"strconv"

	"github.com/hoppxi/zbacklight/pkg/operation"
)

var (
	ErrMissingArgument = errors.New("missing argument")
	ErrInvalidArgument = errors.New("invalid argument")
)

var kinds = map[string]operation.Kind{
	"-set": operation.Set,
	"-inc": operation.Inc,
	"-dec": operation.Dec,
}

// ParseOperation turns the command line (without the program name) into an
// Operation. It never touches the control files.
func ParseOperation(args []string) (operation.Operation, error) {
	if len(args) < 1 {
		return operation.Operation{}, ErrMissingArgument
	}

	if args[0] == "-get" {
		return operation.Operation{Kind: operation.Get}, nil
	}

	if len(args) < 2 {
		return operation.Operation{}, ErrMissingArgument
	}

	kind, ok := kinds[args[0]]
	if !ok {
		return operation.Operation{}, ErrInvalidArgument
	}

	return operation.Operation{Kind: kind, Value: ParseValue(args[1])}, nil
}

var leadingFloat = regexp.MustCompile(`^[ \t\n\v\f\r]*([+-]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][+-]?[0-9]+)?)`)

// ParseValue reads the decimal number at the start of s. Input without a
// numeric prefix is 0, so "-set abc" behaves like "-set 0".
func ParseValue(s string) float64 {
	m := leadingFloat.FindStringSubmatch(s)
	if m == nil {
		return 0
	}

	// out of range input comes back as ±Inf, which Set clamps
	v, _ := strconv.ParseFloat(m[1], 64)
	return v
}
