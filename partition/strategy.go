package partition

import (
	"fmt"
	"strings"

	apperrors "github.com/kbukum/asyncit/errors"
)

// Strategy selects how a drained stream of results is classified.
type Strategy int

const (
	// StrategyPartition routes every success and every error to its own list.
	StrategyPartition Strategy = iota
	// StrategyStopOnFirstError collapses the outcome to the first error seen.
	StrategyStopOnFirstError
)

var strategyNames = map[Strategy]string{
	StrategyPartition:        "partition",
	StrategyStopOnFirstError: "stop_on_first_error",
}

// Valid reports whether s is a known strategy.
func (s Strategy) Valid() bool {
	_, ok := strategyNames[s]
	return ok
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

// ParseStrategy maps a configuration name to a Strategy. Matching ignores
// case and surrounding whitespace; "break_on_error" is accepted as an alias
// of "stop_on_first_error".
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "partition":
		return StrategyPartition, nil
	case "stop_on_first_error", "break_on_error":
		return StrategyStopOnFirstError, nil
	default:
		return 0, apperrors.InvalidInput("strategy", fmt.Sprintf("unknown strategy %q", name))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, invalidStrategy(s)
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func invalidStrategy(s Strategy) *apperrors.AppError {
	return apperrors.InvalidInput("strategy", fmt.Sprintf("unsupported value %d", int(s)))
}
