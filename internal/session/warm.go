package session

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Warm fetches the caller identity and the mailing lists in parallel.
// Both keep their own error state, so one failing never cancels the other.
func (s *Session) Warm(ctx context.Context) error {
	var g errgroup.Group
	if s.User != nil {
		g.Go(func() error { return s.User.Load(ctx) })
	}
	if s.MailingLists != nil {
		g.Go(func() error { return s.MailingLists.Load(ctx) })
	}
	return g.Wait()
}
