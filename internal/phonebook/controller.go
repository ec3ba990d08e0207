package phonebook

import (
	"context"
	"errors"
	"io"
)

// operation is one menu entry.
type operation func(*Book, context.Context) error

var operations = map[string]operation{
	ChoiceList:   (*Book).List,
	ChoiceAdd:    (*Book).Add,
	ChoiceEdit:   (*Book).Edit,
	ChoiceSearch: (*Book).Search,
	ChoiceDelete: (*Book).Delete,
}

// Run shows the menu and dispatches choices until the user exits or input
// ends. Both paths save the Directory; the save error, if any, is returned.
// Cancelling ctx ends the loop at the next menu.
func (b *Book) Run(ctx context.Context) error {
	b.logger = b.base.With("session", b.ids.Generate())
	b.logger.Info("session started", "backend", b.store.Backend().String(), "records", b.store.Len())

	for {
		if ctx.Err() != nil {
			b.logger.Info("session cancelled")
			return b.exit(context.WithoutCancel(ctx))
		}

		b.prompt.Println(menuText)
		choice, err := b.prompt.Ask(PromptChoice)
		if errors.Is(err, io.EOF) {
			b.logger.Info("input closed")
			return b.exit(ctx)
		}
		if err != nil {
			return err
		}

		if choice == ChoiceExit {
			return b.exit(ctx)
		}

		op, ok := operations[choice]
		if !ok {
			b.prompt.Println(MsgInvalidChoice)
			continue
		}

		if err := op(b, ctx); err != nil {
			if errors.Is(err, io.EOF) {
				b.logger.Info("input closed")
				return b.exit(ctx)
			}
			return err
		}
	}
}

func (b *Book) exit(ctx context.Context) error {
	err := b.Exit(ctx)
	if err != nil {
		b.logger.Error("session ended with unsaved changes", "error", err)
		return err
	}
	b.logger.Info("session ended", "records", b.store.Len())
	return nil
}
