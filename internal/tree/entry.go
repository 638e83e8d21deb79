package tree

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

type entry struct {
	name   string
	isDir  bool
	isFile bool
	size   int64
}

// listEntries returns the children of dir, directories (and anything that is
// not a regular file) first, then files, each group sorted case-insensitively.
// Symbolic links are followed.
func listEntries(fs afero.Fs, dir string) ([]entry, error) {
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, err
	}

	entries := make([]entry, 0, len(infos))

	for _, info := range infos {
		if info.Mode()&os.ModeSymlink != 0 {
			target, err := fs.Stat(filepath.Join(dir, info.Name()))
			if err != nil {
				// Dangling link: neither a file nor a directory
				entries = append(entries, entry{name: info.Name()})
				continue
			}

			info = namedInfo{FileInfo: target, name: info.Name()}
		}

		entries = append(entries, entry{
			name:   info.Name(),
			isDir:  info.IsDir(),
			isFile: info.Mode().IsRegular(),
			size:   info.Size(),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].isFile != entries[j].isFile {
			return !entries[i].isFile
		}

		return strings.ToLower(entries[i].name) < strings.ToLower(entries[j].name)
	})

	return entries, nil
}

type namedInfo struct {
	os.FileInfo
	name string
}

func (i namedInfo) Name() string {
	return i.name
}
