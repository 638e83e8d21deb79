package contact

import (
	"sort"

	"github.com/pkg/errors"
)

type Contact struct {
	Name  string `yaml:"name"`
	Phone string `yaml:"phone"`
}

// Book maps usernames to phone numbers. It is owned by a single session and
// is not safe for concurrent use.
type Book struct {
	phones map[string]string
}

func NewBook() *Book {
	return &Book{
		phones: make(map[string]string),
	}
}

// Add inserts the contact, overwriting any previous phone for name.
func (b *Book) Add(name string, phone string) {
	b.phones[name] = phone
}

func (b *Book) Change(name string, phone string) error {
	if _, exists := b.phones[name]; !exists {
		return errors.Wrapf(ErrNotFound, "contact '%s'", name)
	}

	b.phones[name] = phone

	return nil
}

func (b *Book) Phone(name string) (string, error) {
	phone, exists := b.phones[name]
	if !exists {
		return "", errors.Wrapf(ErrNotFound, "contact '%s'", name)
	}

	return phone, nil
}

// All returns every contact sorted by name.
func (b *Book) All() []Contact {
	contacts := make([]Contact, 0, len(b.phones))
	for name, phone := range b.phones {
		contacts = append(contacts, Contact{Name: name, Phone: phone})
	}

	sort.Slice(contacts, func(i, j int) bool {
		return contacts[i].Name < contacts[j].Name
	})

	return contacts
}

func (b *Book) Len() int {
	return len(b.phones)
}
