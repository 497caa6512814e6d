package rest

import (
	"context"

	"collab-dashboard/internal/mailinglist"
	"collab-dashboard/internal/mailinglist/repository"
	"collab-dashboard/pkg/apigateway"
)

func (r *implRepository) ListAll(ctx context.Context) ([]mailinglist.ListItem, error) {
	recs, err := r.lists.GetAll(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListAll"), err)
		return nil, err
	}

	items := make([]mailinglist.ListItem, 0, len(recs))
	for _, rec := range recs {
		items = append(items, normalize(rec))
	}
	return items, nil
}

func (r *implRepository) Create(ctx context.Context, opt repository.CreateOptions) (mailinglist.ListItem, error) {
	payload := buildCreatePayload(opt)
	r.l.Debugf(ctx, "%s payload: %v", r.dsn("Create"), payload)

	rec, err := r.lists.Create(ctx, payload)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Create"), err)
		return mailinglist.ListItem{}, err
	}
	if rec == nil {
		r.l.Warnf(ctx, "%s: empty echo", r.dsn("Create"))
		return mailinglist.ListItem{}, repository.ErrNoRecordEchoed
	}
	return normalize(rec), nil
}

// SetActive sends only the flipped flag; the echoed record, if any, is ignored.
func (r *implRepository) SetActive(ctx context.Context, id int64, active bool) error {
	if _, err := r.lists.Update(ctx, apigateway.FormatID(id), map[string]any{"active": active}); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetActive"), err)
		return err
	}
	return nil
}

func (r *implRepository) Delete(ctx context.Context, id int64) error {
	if err := r.lists.Delete(ctx, apigateway.FormatID(id)); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Delete"), err)
		return err
	}
	return nil
}
