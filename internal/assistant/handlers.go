package assistant

import (
	"fmt"
	"strings"

	"github.com/bornholm/exercises/internal/contact"
)

const (
	MessageGreeting       = "How can I help you?"
	MessageAdded          = "Contact added."
	MessageUpdated        = "Contact updated."
	MessageNoContacts     = "No contacts."
	MessageGoodBye        = "Good bye!"
	MessageInvalidCommand = "Invalid command."

	UsageAdd    = "Usage: add <username> <phone>"
	UsageChange = "Usage: change <username> <phone>"
	UsagePhone  = "Usage: phone <username>"
)

// Handler executes one command against the book and returns the text to
// display. Handlers never fail: errors are part of the returned text.
type Handler func(args []string, book *contact.Book) string

func NotFoundMessage(username string) string {
	return fmt.Sprintf("Error: contact %s not found.", username)
}

func hello(args []string, book *contact.Book) string {
	return MessageGreeting
}

func addContact(args []string, book *contact.Book) string {
	if len(args) < 2 {
		return UsageAdd
	}

	book.Add(args[0], args[1])

	return MessageAdded
}

func changeContact(args []string, book *contact.Book) string {
	if len(args) < 2 {
		return UsageChange
	}

	if err := book.Change(args[0], args[1]); err != nil {
		return NotFoundMessage(args[0])
	}

	return MessageUpdated
}

func showPhone(args []string, book *contact.Book) string {
	if len(args) < 1 {
		return UsagePhone
	}

	phone, err := book.Phone(args[0])
	if err != nil {
		return NotFoundMessage(args[0])
	}

	return phone
}

func showAll(args []string, book *contact.Book) string {
	contacts := book.All()
	if len(contacts) == 0 {
		return MessageNoContacts
	}

	lines := make([]string, 0, len(contacts))
	for _, c := range contacts {
		lines = append(lines, c.Name+": "+c.Phone)
	}

	return strings.Join(lines, "\n")
}

func goodBye(args []string, book *contact.Book) string {
	return MessageGoodBye
}
