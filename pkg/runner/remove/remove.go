package remove

import (
	"context"
	"errors"

	"github.com/fatih/color"

	"github.com/moodlog-app/moodlog/pkg/store"
)

// Remove deletes an entry by id. Removing an id that does not exist is a
// no-op, matching the store contract.
type Remove struct {
	ID string

	Journal store.Store
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not remove, no journal")
	}

	if err := n.Journal.Delete(ctx, n.ID); err != nil {
		return err
	}

	f := color.New(color.Faint)
	_, _ = f.Printf("removed %s\n", n.ID)
	return nil
}
