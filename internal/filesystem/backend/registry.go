package backend

import (
	"net/url"
	"strings"

	"github.com/bornholm/exercises/internal/filesystem"
	"github.com/pkg/errors"
)

// DefaultScheme is used for locations given as plain paths.
const DefaultScheme = "local"

var backendFactories = make(map[string]BackendFactory, 0)

// BackendFactory builds a backend from a location DSN and returns the path,
// inside the mounted filesystem, the DSN points to.
type BackendFactory func(dsn *url.URL) (filesystem.Backend, string, error)

func RegisterBackendFactory(scheme string, factory BackendFactory) {
	backendFactories[scheme] = factory
}

// Resolve turns a location, either a plain path or a DSN such as
// "sftp://user@host/data/cats.txt", into a backend and a target path.
func Resolve(location string) (filesystem.Backend, string, error) {
	if !hasScheme(location) {
		factory, exists := backendFactories[DefaultScheme]
		if !exists {
			return nil, "", errors.Wrapf(ErrSchemeNotRegistered, "no driver associated with scheme '%s'", DefaultScheme)
		}

		return factory(&url.URL{Scheme: DefaultScheme, Path: location})
	}

	dsn, err := url.Parse(location)
	if err != nil {
		return nil, "", errors.WithStack(err)
	}

	factory, exists := backendFactories[dsn.Scheme]
	if !exists {
		return nil, "", errors.Wrapf(ErrSchemeNotRegistered, "no driver associated with scheme '%s'", dsn.Scheme)
	}

	backend, path, err := factory(dsn)
	if err != nil {
		return nil, "", errors.WithStack(err)
	}

	return backend, path, nil
}

func hasScheme(location string) bool {
	scheme, _, found := strings.Cut(location, "://")
	if !found || scheme == "" {
		return false
	}

	for _, r := range scheme {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		if !isLetter && !isDigit && r != '+' && r != '-' && r != '.' {
			return false
		}
	}

	return true
}
