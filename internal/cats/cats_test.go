package cats

import (
	"context"
	"log/slog"
	"testing"

	"github.com/bornholm/exercises/internal/testutil"
	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

func TestRead(t *testing.T) {
	fs := afero.NewMemMapFs()

	if err := afero.WriteFile(fs, "/cats.txt", []byte("1, Tom , 3\n\nbad_line\n2,Jerry,5"), 0644); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	logger, recorder := testutil.NewLogger()

	cats := Read(context.Background(), fs, "/cats.txt", WithLogger(logger))

	expected := []Cat{
		{ID: "1", Name: "Tom", Age: "3"},
		{ID: "2", Name: "Jerry", Age: "5"},
	}

	if diff := cmp.Diff(expected, cats); diff != "" {
		t.Errorf("cats mismatch (-expected +got):\n%s", diff)
	}

	warnings := recorder.Records(slog.LevelWarn)
	if e, g := 1, len(warnings); e != g {
		t.Fatalf("len(warnings): expected '%v', got '%v'", e, g)
	}

	line, _ := testutil.Attr(warnings[0], "line")
	if e, g := int64(3), line.Int64(); e != g {
		t.Errorf("warnings[0].line: expected '%v', got '%v'", e, g)
	}

	content, _ := testutil.Attr(warnings[0], "content")
	if e, g := "bad_line", content.String(); e != g {
		t.Errorf("warnings[0].content: expected '%v', got '%v'", e, g)
	}

	if e, g := 0, len(recorder.Records(slog.LevelError)); e != g {
		t.Errorf("len(errors): expected '%v', got '%v'", e, g)
	}
}

func TestReadTestdata(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewOsFs())
	logger, _ := testutil.NewLogger()

	first := Read(context.Background(), fs, "testdata/cats.txt", WithLogger(logger))
	second := Read(context.Background(), fs, "testdata/cats.txt", WithLogger(logger))

	if e, g := 3, len(first); e != g {
		t.Fatalf("len(cats): expected '%v', got '%v'\n%s", e, g, spew.Sdump(first))
	}

	if e, g := "Jerry", first[1].Name; e != g {
		t.Errorf("cats[1].Name: expected '%v', got '%v'", e, g)
	}

	if e, g := "45", first[2].Age; e != g {
		t.Errorf("cats[2].Age: expected '%v', got '%v'", e, g)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second read mismatch (-first +second):\n%s", diff)
	}
}

func TestReadFailures(t *testing.T) {
	fs := afero.NewMemMapFs()

	if err := fs.MkdirAll("/data", 0755); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if err := afero.WriteFile(fs, "/data/broken.txt", []byte("1,Tom,3\n2,\xc3\x28,5\n"), 0644); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	type testCase struct {
		Path            string
		ExpectedMessage string
	}

	testCases := []testCase{
		{Path: "/data/missing.txt", ExpectedMessage: "file not found"},
		{Path: "/data", ExpectedMessage: "path is not a file"},
		{Path: "/data/broken.txt", ExpectedMessage: "could not read file"},
	}

	for _, tc := range testCases {
		t.Run(tc.Path, func(t *testing.T) {
			logger, recorder := testutil.NewLogger()

			cats := Read(context.Background(), fs, tc.Path, WithLogger(logger))

			if cats == nil {
				t.Errorf("cats should not be nil")
			}

			if e, g := 0, len(cats); e != g {
				t.Errorf("len(cats): expected '%v', got '%v'", e, g)
			}

			records := recorder.Records(slog.LevelError)
			if e, g := 1, len(records); e != g {
				t.Fatalf("len(errors): expected '%v', got '%v'", e, g)
			}

			if e, g := tc.ExpectedMessage, records[0].Message; e != g {
				t.Errorf("errors[0].Message: expected '%v', got '%v'", e, g)
			}
		})
	}
}

func TestCatString(t *testing.T) {
	cat := Cat{ID: "60b90c1c13067a15887e1ae1", Name: "Tayson", Age: "3"}

	if e, g := "{id: 60b90c1c13067a15887e1ae1, name: Tayson, age: 3}", cat.String(); e != g {
		t.Errorf("cat.String(): expected '%v', got '%v'", e, g)
	}
}
