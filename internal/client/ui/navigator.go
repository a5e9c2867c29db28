package ui

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/dsaccounts/internal/logging"
)

// StartPage is the location before any navigation happened.
const StartPage = "index"

type Navigator interface {
	Navigate(ctx context.Context, destination string) error
}

// Location is a Navigator that records where the user currently is.
type Location struct {
	mu      sync.Mutex
	current string
	log     logging.Logger
}

func NewLocation(log logging.Logger) *Location {
	return &Location{current: StartPage, log: log}
}

func (l *Location) Navigate(ctx context.Context, destination string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.mu.Lock()
	from := l.current
	l.current = destination
	l.mu.Unlock()

	l.log.Info(ctx, "navigated", "from", from, "to", destination)
	return nil
}

func (l *Location) Current() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current
}
