// Package phonebook implements the interactive operations on the contact
// Directory and the menu loop that dispatches to them.
//
// # Menu
//
//	1. List records
//	2. Add a record
//	3. Edit a record
//	4. Search records
//	5. Delete a record
//	6. Exit
//
// The loop has a single state, awaiting a menu choice. Choices 1-5 run an
// operation and return to the menu; 6 saves and returns. Anything else is
// reported as an invalid choice. End of input behaves like 6.
//
// # Persistence
//
// Add, Edit and Delete save the whole Directory after mutating it. A failed
// save is reported and logged but does not end the session. Exit returns the
// save error so the caller can exit non-zero.
//
// # Validation
//
// Add validates names (letters only) and phones (see contact.PhonePattern)
// and re-prompts until they pass. Edit stores any non-empty replacement,
// trimmed, without validation.
package phonebook
