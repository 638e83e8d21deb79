package salary

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var ErrInvalidAmount = errors.New("invalid amount")

// parseAmount parses a decimal amount. Underscores are accepted between
// digits, hexadecimal notation is not, and values out of the float64 range
// saturate to ±Inf.
func parseAmount(raw string) (float64, error) {
	unsigned := strings.TrimLeft(raw, "+-")
	if strings.HasPrefix(unsigned, "0x") || strings.HasPrefix(unsigned, "0X") {
		return 0, errors.Wrapf(ErrInvalidAmount, "hexadecimal amount '%s'", raw)
	}

	digits, err := stripUnderscores(raw)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	value, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return value, nil
		}

		return 0, errors.Wrapf(ErrInvalidAmount, "could not parse '%s'", raw)
	}

	return value, nil
}

func stripUnderscores(raw string) (string, error) {
	if !strings.Contains(raw, "_") {
		return raw, nil
	}

	for i := 0; i < len(raw); i++ {
		if raw[i] != '_' {
			continue
		}

		if i == 0 || i == len(raw)-1 || !isDigit(raw[i-1]) || !isDigit(raw[i+1]) {
			return "", errors.Wrapf(ErrInvalidAmount, "misplaced underscore in '%s'", raw)
		}
	}

	return strings.ReplaceAll(raw, "_", ""), nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
