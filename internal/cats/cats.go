package cats

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bornholm/exercises/internal/textfile"
	"github.com/spf13/afero"
)

const fieldCount = 3

type Cat struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Age  string `json:"age" yaml:"age"`
}

func (c Cat) String() string {
	return fmt.Sprintf("{id: %s, name: %s, age: %s}", c.ID, c.Name, c.Age)
}

// Read parses the "id,name,age" file at path and returns its records in file
// order. Malformed lines are skipped with a warning. When the file cannot be
// read at all, an error is logged and the result is empty.
func Read(ctx context.Context, fs afero.Fs, path string, funcs ...OptionFunc) []Cat {
	opts := NewOptions(funcs...)

	cats := make([]Cat, 0)

	err := textfile.Scan(ctx, fs, path, func(lineno int, raw string) error {
		line := strings.TrimSpace(raw)
		if line == "" {
			return nil
		}

		parts := strings.Split(line, ",")
		if len(parts) != fieldCount {
			opts.Logger.WarnContext(ctx, "skipping malformed line",
				slog.Int("line", lineno),
				slog.String("content", line),
			)
			return nil
		}

		cats = append(cats, Cat{
			ID:   strings.TrimSpace(parts[0]),
			Name: strings.TrimSpace(parts[1]),
			Age:  strings.TrimSpace(parts[2]),
		})

		return nil
	})
	if err != nil {
		textfile.LogError(ctx, opts.Logger, path, err)
		return []Cat{}
	}

	return cats
}
