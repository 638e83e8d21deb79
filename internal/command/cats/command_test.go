package cats

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/bornholm/exercises/internal/cats"
	"github.com/bornholm/exercises/internal/command"
	"github.com/bornholm/exercises/internal/command/common"
	"github.com/bornholm/exercises/internal/config"
	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const catsContent = "1, Tom , 3\n\nbad_line\n2,Jerry,5"

var expectedCats = []cats.Cat{
	{ID: "1", Name: "Tom", Age: "3"},
	{ID: "2", Name: "Jerry", Age: "5"},
}

func runApp(args ...string) (string, error) {
	conf := &config.Config{
		Logger: config.Logger{Level: "error"},
		Cats:   config.Cats{Output: OutputText},
	}

	var out bytes.Buffer

	app := command.NewApp(conf, "exercises", "test", Command(conf.Cats))
	app.Writer = &out
	app.ErrWriter = io.Discard

	err := app.Run(append([]string{"exercises"}, args...))

	return out.String(), err
}

func writeFile(t *testing.T, name string, content string) string {
	path := filepath.Join(t.TempDir(), name)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return path
}

func TestCommandText(t *testing.T) {
	path := writeFile(t, "cats.txt", catsContent)

	output, err := runApp("cats", path)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	expected := "{id: 1, name: Tom, age: 3}\n{id: 2, name: Jerry, age: 5}\n"

	if e, g := expected, output; e != g {
		t.Errorf("output: expected '%v', got '%v'", e, g)
	}
}

func TestCommandJSON(t *testing.T) {
	path := writeFile(t, "cats.txt", catsContent)

	output, err := runApp("cats", "--output", "json", path)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	var records []cats.Cat
	if err := json.Unmarshal([]byte(output), &records); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if diff := cmp.Diff(expectedCats, records); diff != "" {
		t.Errorf("records mismatch (-expected +got):\n%s", diff)
	}
}

func TestCommandYAML(t *testing.T) {
	path := writeFile(t, "cats.txt", catsContent)

	output, err := runApp("cats", "-o", "yaml", path)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	var records []cats.Cat
	if err := yaml.Unmarshal([]byte(output), &records); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if diff := cmp.Diff(expectedCats, records); diff != "" {
		t.Logf("output: %s", spew.Sdump(output))
		t.Errorf("records mismatch (-expected +got):\n%s", diff)
	}
}

func TestCommandConfigFile(t *testing.T) {
	path := writeFile(t, "cats.txt", catsContent)
	configFile := writeFile(t, "config.yaml", "output: json\n")

	output, err := runApp("--config", configFile, "cats", path)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	var records []cats.Cat
	if err := json.Unmarshal([]byte(output), &records); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := len(expectedCats), len(records); e != g {
		t.Errorf("len(records): expected '%v', got '%v'", e, g)
	}
}

func TestCommandLocalDSN(t *testing.T) {
	path := writeFile(t, "cats.txt", catsContent)

	output, err := runApp("cats", "local://"+path)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "{id: 1, name: Tom, age: 3}\n{id: 2, name: Jerry, age: 5}\n", output; e != g {
		t.Errorf("output: expected '%v', got '%v'", e, g)
	}
}

func TestCommandMissingFile(t *testing.T) {
	output, err := runApp("cats", filepath.Join(t.TempDir(), "missing.txt"))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "", output; e != g {
		t.Errorf("output: expected '%v', got '%v'", e, g)
	}
}

func TestCommandMissingArgument(t *testing.T) {
	output, err := runApp("cats")

	if !errors.Is(err, common.ErrMissingArgument) {
		t.Errorf("err: expected '%v', got '%v'", common.ErrMissingArgument, err)
	}

	if e, g := "Usage: exercises cats <path>\n", output; e != g {
		t.Errorf("output: expected '%v', got '%v'", e, g)
	}
}

func TestCommandUnknownOutput(t *testing.T) {
	path := writeFile(t, "cats.txt", catsContent)

	if _, err := runApp("cats", "--output", "xml", path); err == nil {
		t.Error("err: expected an error, got nil")
	}
}
