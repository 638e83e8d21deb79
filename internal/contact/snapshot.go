package contact

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

type snapshot struct {
	Contacts []Contact `yaml:"contacts"`
}

// Load reads a book previously written by Save. A missing file yields an
// empty book.
func Load(fs afero.Fs, path string) (*Book, error) {
	book := NewBook()

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return book, nil
		}

		return nil, errors.Wrapf(err, "could not read contacts file '%s'", path)
	}

	var snap snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, errors.Wrapf(err, "could not parse contacts file '%s'", path)
	}

	for _, c := range snap.Contacts {
		book.Add(c.Name, c.Phone)
	}

	return book, nil
}

func Save(fs afero.Fs, path string, book *Book) error {
	data, err := yaml.Marshal(snapshot{Contacts: book.All()})
	if err != nil {
		return errors.WithStack(err)
	}

	if err := afero.WriteFile(fs, path, data, 0o600); err != nil {
		return errors.Wrapf(err, "could not write contacts file '%s'", path)
	}

	return nil
}
