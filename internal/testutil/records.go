package testutil

import (
	"strings"

	"github.com/roach88/phonebook/internal/contact"
)

// Record returns a valid record with the given surname and organization.
func Record(surname, organization string) contact.Record {
	return contact.Record{
		Surname:       surname,
		FirstName:     "Иван",
		Patronymic:    "Иванович",
		Organization:  organization,
		WorkPhone:     "(495) 123-45-67",
		PersonalPhone: "(916) 765-43-21",
	}
}

// AddInput returns the answers to Add's six prompts for r, one per line.
func AddInput(r contact.Record) string {
	return Lines(r.Values()...)
}

// Lines joins answers into newline-terminated input.
func Lines(answers ...string) string {
	if len(answers) == 0 {
		return ""
	}
	return strings.Join(answers, "\n") + "\n"
}
