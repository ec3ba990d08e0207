package phonebook

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/roach88/phonebook/internal/console"
	"github.com/roach88/phonebook/internal/contact"
	"github.com/roach88/phonebook/internal/store"
)

// Book runs the interactive operations against a Store.
type Book struct {
	store  *store.Store
	prompt *console.Prompter
	logger *slog.Logger // base logger plus the current session id
	base   *slog.Logger
	ids    SessionIDGenerator
}

// Option configures a Book.
type Option func(*Book)

// WithLogger sets the logger. The session id is attached when Run starts.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Book) { b.logger = logger }
}

// WithSessionIDs overrides the session id generator (for testing).
func WithSessionIDs(gen SessionIDGenerator) Option {
	return func(b *Book) { b.ids = gen }
}

// New returns a Book operating on st through prompt.
func New(st *store.Store, prompt *console.Prompter, opts ...Option) *Book {
	b := &Book{
		store:  st,
		prompt: prompt,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		ids:    UUIDv7Generator{},
	}
	for _, opt := range opts {
		opt(b)
	}
	b.base = b.logger
	return b
}

// List prints every record in Directory order, one per line.
func (b *Book) List(ctx context.Context) error {
	for _, r := range b.store.Records() {
		b.prompt.Println(r)
	}
	return nil
}

// Add collects and validates a new record, appends it and saves.
func (b *Book) Add(ctx context.Context) error {
	var (
		r   contact.Record
		err error
	)

	if r.Surname, err = b.prompt.AskValid(PromptSurname, contact.ValidateName); err != nil {
		return err
	}
	if r.FirstName, err = b.prompt.AskValid(PromptFirstName, contact.ValidateName); err != nil {
		return err
	}
	if r.Patronymic, err = b.prompt.AskValid(PromptPatronymic, contact.ValidateName); err != nil {
		return err
	}
	org, err := b.prompt.Ask(PromptOrganization)
	if err != nil {
		return err
	}
	r.Organization = contact.TitleCase(org)
	if r.WorkPhone, err = b.prompt.AskValid(PromptWorkPhone, contact.ValidatePhone); err != nil {
		return err
	}
	if r.PersonalPhone, err = b.prompt.AskValid(PromptPersonalPhone, contact.ValidatePhone); err != nil {
		return err
	}

	b.store.Append(r)
	b.logger.Info("record added", "position", b.store.Len()-1)
	b.prompt.Println(MsgAdded)
	b.persist(ctx)
	return nil
}

// Edit selects a record by surname and replaces fields one by one.
// Empty answers keep the current value; other answers are trimmed and stored
// without validation.
func (b *Book) Edit(ctx context.Context) error {
	pos, ok, err := b.selectBySurname(PromptEditSurname, PromptEditSelect)
	if err != nil || !ok {
		return err
	}

	r, err := b.store.At(pos)
	if err != nil {
		return err
	}
	b.prompt.Printf(MsgEditing, r)

	for _, f := range contact.Fields {
		answer, err := b.prompt.Ask(fmt.Sprintf(PromptEditField, f.Header()))
		if err != nil {
			return err
		}
		if answer != "" {
			r.Set(f, strings.TrimSpace(answer))
		}
	}

	if err := b.store.Replace(pos, r); err != nil {
		return err
	}
	b.logger.Info("record edited", "position", pos)
	b.prompt.Println(MsgEdited)
	b.persist(ctx)
	return nil
}

// Delete selects a record by surname and removes it by position.
func (b *Book) Delete(ctx context.Context) error {
	pos, ok, err := b.selectBySurname(PromptDeleteSurname, PromptDeleteSelect)
	if err != nil || !ok {
		return err
	}

	if err := b.store.Remove(pos); err != nil {
		return err
	}
	b.logger.Info("record deleted", "position", pos)
	b.prompt.Println(MsgDeleted)
	b.persist(ctx)
	return nil
}

// Search prints the records matching every comma-separated keyword.
func (b *Book) Search(ctx context.Context) error {
	query, err := b.prompt.Ask(PromptSearch)
	if err != nil {
		return err
	}

	results := b.store.Search(contact.ParseKeywords(query))
	b.logger.Debug("search", "query", query, "results", len(results))
	if len(results) == 0 {
		b.prompt.Println(MsgNothingFound)
		return nil
	}

	b.prompt.Println(MsgSearchResults)
	printEnumerated(b.prompt, results)
	return nil
}

// Exit saves the Directory and prints the farewell message.
func (b *Book) Exit(ctx context.Context) error {
	if err := b.store.Save(ctx); err != nil {
		b.prompt.Printf(MsgSaveFailed, err)
		return err
	}
	b.prompt.Println(MsgFarewell)
	return nil
}

// selectBySurname asks for a surname, title-cases it, lists the exact
// matches and asks which one to use. ok is false when nothing matched.
func (b *Book) selectBySurname(surnamePrompt, selectPrompt string) (pos int, ok bool, err error) {
	answer, err := b.prompt.Ask(surnamePrompt)
	if err != nil {
		return 0, false, err
	}

	positions := b.store.MatchSurname(contact.TitleCase(answer))
	if len(positions) == 0 {
		b.prompt.Println(MsgNotFound)
		return 0, false, nil
	}

	matches := make([]contact.Record, len(positions))
	for i, p := range positions {
		if matches[i], err = b.store.At(p); err != nil {
			return 0, false, err
		}
	}
	b.prompt.Println(MsgFound)
	printEnumerated(b.prompt, matches)

	idx, err := b.prompt.Select(selectPrompt, len(positions))
	if err != nil {
		return 0, false, err
	}
	return positions[idx], true, nil
}

// persist saves after a mutation. Failures are reported, not returned.
func (b *Book) persist(ctx context.Context) {
	if err := b.store.Save(ctx); err != nil {
		b.prompt.Printf(MsgSaveFailed, err)
	}
}

func printEnumerated(p *console.Prompter, records []contact.Record) {
	for i, r := range records {
		p.Printf("%d. %s\n", i+1, r)
	}
}
