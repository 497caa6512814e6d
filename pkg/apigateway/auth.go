package apigateway

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

// Identity is the current authenticated caller as reported by the remote.
type Identity struct {
	ID       int64
	Name     string // given name
	Surname  string
	Email    string
	FullName string
}

// Me returns the caller's identity. JSON null yields (nil, nil); a 401 yields ErrUnauthenticated.
func (c *Client) Me(ctx context.Context) (*Identity, error) {
	raw, err := c.Call(ctx, http.MethodGet, PathMe, nil)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}

	rec, err := DecodeRecord(raw)
	if err != nil || rec == nil {
		return nil, err
	}

	id, _ := rec.Int64("id")
	name, _ := rec.String("prenom", "name")
	surname, _ := rec.String("nom", "surname")
	email, _ := rec.String("email")
	fullName, _ := rec.String("fullName")

	return &Identity{
		ID:       id,
		Name:     strings.TrimSpace(name),
		Surname:  strings.TrimSpace(surname),
		Email:    email,
		FullName: fullName,
	}, nil
}
