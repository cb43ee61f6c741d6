package source

import "context"

// Source produces a batch of raw items from one upstream system. An
// empty batch is a valid no-op result, not an error.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]Item, error)
}
