package salary

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/bornholm/exercises/internal/command"
	"github.com/bornholm/exercises/internal/command/common"
	"github.com/bornholm/exercises/internal/config"
	"github.com/pkg/errors"
)

func runApp(args ...string) (string, error) {
	conf := &config.Config{
		Logger: config.Logger{Level: "error"},
	}

	var out bytes.Buffer

	app := command.NewApp(conf, "exercises", "test", Command())
	app.Writer = &out
	app.ErrWriter = io.Discard

	err := app.Run(append([]string{"exercises"}, args...))

	return out.String(), err
}

func TestCommand(t *testing.T) {
	type testCase struct {
		Name     string
		Content  string
		Expected string
	}

	testCases := []testCase{
		{
			Name:     "with invalid salary",
			Content:  "Alice Smith,1000\nBob,abc\nCarol Lee,2000",
			Expected: "Total salary: 3000.00, Average salary: 1500.00\n",
		},
		{
			Name:     "empty file",
			Content:  "",
			Expected: "Total salary: 0.00, Average salary: 0.00\n",
		},
		{
			Name:     "decimal salaries",
			Content:  "Alice,1000.5\nBob,999.25\n",
			Expected: "Total salary: 1999.75, Average salary: 999.88\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "salary.txt")

			if err := os.WriteFile(path, []byte(tc.Content), 0644); err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			output, err := runApp("salary", path)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.Expected, output; e != g {
				t.Errorf("output: expected '%v', got '%v'", e, g)
			}
		})
	}
}

func TestCommandMissingArgument(t *testing.T) {
	output, err := runApp("salary")

	if !errors.Is(err, common.ErrMissingArgument) {
		t.Errorf("err: expected '%v', got '%v'", common.ErrMissingArgument, err)
	}

	if e, g := "Usage: exercises salary <path>\n", output; e != g {
		t.Errorf("output: expected '%v', got '%v'", e, g)
	}
}
