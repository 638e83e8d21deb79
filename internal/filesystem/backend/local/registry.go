package local

import (
	"net/url"

	"github.com/bornholm/exercises/internal/filesystem"
	"github.com/bornholm/exercises/internal/filesystem/backend"
)

func init() {
	backend.RegisterBackendFactory("local", FromDSN)
}

// FromDSN handles "local:///abs/path", "local://relative/path" and plain
// paths. The whole disk is mounted and the path is returned as target.
func FromDSN(dsn *url.URL) (filesystem.Backend, string, error) {
	path := dsn.Path
	if dsn.Host != "" {
		path = dsn.Host + path
	}

	return New(), path, nil
}
