package apigateway

import (
	"context"
	"net/http"
	"net/url"
)

// Resource groups the standard calls for one remote collection.
type Resource struct {
	c    *Client
	path string
}

// Resource returns the wrapper for the collection mounted at path.
func (c *Client) Resource(path string) Resource {
	return Resource{c: c, path: path}
}

// GetAll fetches the whole collection.
func (r Resource) GetAll(ctx context.Context) ([]RawRecord, error) {
	raw, err := r.c.Call(ctx, http.MethodGet, r.path, nil)
	if err != nil {
		return nil, err
	}
	return DecodeCollection(raw)
}

// GetByID fetches one record.
func (r Resource) GetByID(ctx context.Context, id string) (RawRecord, error) {
	raw, err := r.c.Call(ctx, http.MethodGet, r.itemPath(id), nil)
	if err != nil {
		return nil, err
	}
	return DecodeRecord(raw)
}

// GetByUser fetches the records owned by or shared with userID.
func (r Resource) GetByUser(ctx context.Context, userID string) ([]RawRecord, error) {
	raw, err := r.c.Call(ctx, http.MethodGet, r.path+byUserSegment+url.PathEscape(userID), nil)
	if err != nil {
		return nil, err
	}
	return DecodeCollection(raw)
}

// Create posts payload and returns the created record as echoed by the remote.
func (r Resource) Create(ctx context.Context, payload any) (RawRecord, error) {
	raw, err := r.c.Call(ctx, http.MethodPost, r.path, payload)
	if err != nil {
		return nil, err
	}
	return DecodeRecord(raw)
}

// Update sends a partial payload. The echoed record may be nil.
func (r Resource) Update(ctx context.Context, id string, partial any) (RawRecord, error) {
	raw, err := r.c.Call(ctx, http.MethodPut, r.itemPath(id), partial)
	if err != nil {
		return nil, err
	}
	return DecodeRecord(raw)
}

// Delete removes one record.
func (r Resource) Delete(ctx context.Context, id string) error {
	_, err := r.c.Call(ctx, http.MethodDelete, r.itemPath(id), nil)
	return err
}

func (r Resource) itemPath(id string) string {
	return r.path + "/" + url.PathEscape(id)
}
