package common

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"path/filepath"
	"regexp"

	"github.com/Bornholm/amatl/pkg/resolver"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
	"gopkg.in/yaml.v2"

	// Register resolver schemes

	_ "github.com/Bornholm/amatl/pkg/resolver/file"
	_ "github.com/Bornholm/amatl/pkg/resolver/http"
	_ "github.com/Bornholm/amatl/pkg/resolver/stdin"
)

func NewResolverSourceFromFlagFunc(flag string) func(cCtx *cli.Context) (altsrc.InputSourceContext, error) {
	return func(cCtx *cli.Context) (altsrc.InputSourceContext, error) {
		if urlStr := cCtx.String(flag); urlStr != "" {
			return NewResolvedInputSource(cCtx.Context, urlStr)
		}

		return altsrc.NewMapInputSource("", map[any]any{}), nil
	}
}

// NewResolvedInputSource loads a YAML (or JSON) configuration file from a
// local path or a URL. Relative paths found in a local file are made
// relative to the directory of that file.
func NewResolvedInputSource(ctx context.Context, urlStr string) (altsrc.InputSourceContext, error) {
	url, err := url.Parse(urlStr)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse url '%s'", urlStr)
	}

	reader, err := resolver.Resolve(ctx, url)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	defer func() {
		if err := reader.Close(); err != nil {
			slog.ErrorContext(ctx, "could not close configuration file", slog.Any("error", errors.WithStack(err)))
		}
	}()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	ext := filepath.Ext(url.Path)
	switch ext {
	case ".json", ".yaml", ".yml":
		var values map[any]any

		if err := yaml.Unmarshal(data, &values); err != nil {
			return nil, errors.WithStack(err)
		}

		if url.Scheme == "" || url.Scheme == "file" {
			values, err = rewriteRelativePaths(url.Path, values)
			if err != nil {
				return nil, errors.WithStack(err)
			}
		}

		return altsrc.NewMapInputSource(urlStr, values), nil

	default:
		return nil, errors.Errorf("no parser associated with '%s' file extension", ext)
	}
}

func rewriteRelativePaths(configPath string, values map[any]any) (map[any]any, error) {
	baseDir, err := filepath.Abs(filepath.Dir(configPath))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	for key, rawValue := range values {
		value, ok := rawValue.(string)
		if !ok {
			continue
		}

		if isURL(value) || !isPath(value) || filepath.IsAbs(value) {
			continue
		}

		values[key] = filepath.Join(baseDir, value)
	}

	return values, nil
}

var filepathRegExp = regexp.MustCompile(`^(?i)(?:\/[^\/]+)+\/?[^\s]+(?:\.[^\s]+)+|[^\s]+(?:\.[^\s]+)+$`)

func isPath(str string) bool {
	return filepathRegExp.MatchString(str)
}

func isURL(str string) bool {
	u, err := url.ParseRequestURI(str)
	return err == nil && u.Scheme != ""
}
