package salary

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bornholm/exercises/internal/textfile"
	"github.com/spf13/afero"
)

// Total reads the "Full Name,salary" file at path and returns the sum and
// the average of the valid salaries. The name may contain commas: only the
// first one separates it from the amount.
//
// Lines without a comma or with a non numeric amount are skipped with a
// warning. An unreadable file yields (0, 0) and an error event.
func Total(ctx context.Context, fs afero.Fs, path string, funcs ...OptionFunc) (float64, float64) {
	opts := NewOptions(funcs...)

	var (
		total float64
		count int
	)

	err := textfile.Scan(ctx, fs, path, func(lineno int, raw string) error {
		line := strings.TrimSpace(raw)
		if line == "" {
			return nil
		}

		_, rawSalary, found := strings.Cut(line, ",")
		if !found {
			opts.Logger.WarnContext(ctx, "skipping malformed line, no comma",
				slog.Int("line", lineno),
				slog.String("content", line),
			)
			return nil
		}

		rawSalary = strings.TrimSpace(rawSalary)

		salary, err := parseAmount(rawSalary)
		if err != nil {
			opts.Logger.WarnContext(ctx, "skipping line, invalid salary",
				slog.Int("line", lineno),
				slog.String("salary", rawSalary),
			)
			return nil
		}

		total += salary
		count++

		return nil
	})
	if err != nil {
		textfile.LogError(ctx, opts.Logger, path, err)
		return 0, 0
	}

	return total, average(total, count)
}

func average(total float64, count int) float64 {
	if count == 0 {
		return 0
	}

	return total / float64(count)
}
