package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"collab-dashboard/internal/chatroom"
	"collab-dashboard/internal/dashboard"
)

// Summary fetches the three collections in parallel. Any failure fails the whole summary.
func (uc *implUseCase) Summary(ctx context.Context) (dashboard.Summary, error) {
	var out dashboard.Summary
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		items, err := uc.lists.ListAll(gctx)
		if err != nil {
			return err
		}
		out.MailingLists = len(items)
		for _, it := range items {
			if it.Active {
				out.ActiveMailingLists++
			}
		}
		return nil
	})

	g.Go(func() error {
		res, err := uc.projects.List(gctx)
		if err != nil {
			return err
		}
		out.Projects = len(res.Projects)
		return nil
	})

	g.Go(func() error {
		res, err := uc.rooms.List(gctx, chatroom.ScopeAll)
		if err != nil {
			return err
		}
		out.Rooms = len(res.Rooms)
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "uc.Summary: %v", err)
		return dashboard.Summary{}, err
	}
	return out, nil
}
