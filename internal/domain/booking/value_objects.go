package booking

import (
	"errors"
	"strings"
)

var (
	ErrInvalidContactName  = errors.New("contact name is required")
	ErrInvalidContactEmail = errors.New("contact email is invalid")
)

const MaxNoteLength = 1000

// Contact is the requester's contact information, opaque to the scheduling
// core beyond basic well-formedness.
type Contact struct {
	name  string
	email string
}

func NewContact(name, email string) (Contact, error) {
	trimmedName := strings.TrimSpace(name)
	if trimmedName == "" {
		return Contact{}, ErrInvalidContactName
	}

	trimmedEmail := strings.TrimSpace(strings.ToLower(email))
	at := strings.Index(trimmedEmail, "@")
	if at <= 0 || at == len(trimmedEmail)-1 {
		return Contact{}, ErrInvalidContactEmail
	}

	return Contact{name: trimmedName, email: trimmedEmail}, nil
}

func (c Contact) Name() string {
	return c.name
}

func (c Contact) Email() string {
	return c.email
}

type Note struct {
	value string
}

var ErrNoteTooLong = errors.New("note is too long")

func NewNote(value string) (Note, error) {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) > MaxNoteLength {
		return Note{}, ErrNoteTooLong
	}
	return Note{value: trimmed}, nil
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
