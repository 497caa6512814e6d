package apigateway_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"collab-dashboard/pkg/apigateway"
	"collab-dashboard/pkg/log"
)

func TestClient(t *testing.T) {
	var lastAuth string
	var lastBody map[string]any

	mux := http.NewServeMux()

	mux.HandleFunc("/bare", func(w http.ResponseWriter, r *http.Request) {
		lastAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[{"id":1,"nom":"a"},{"id":2,"nom":"b"}]`))
	})
	mux.HandleFunc("/enveloped", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"id":3}],"total":1}`))
	})
	mux.HandleFunc("/weird", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[{"id":4}]}`))
	})
	mux.HandleFunc("/things", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		json.NewDecoder(r.Body).Decode(&lastBody)
		if lastBody["nom"] == "dup" {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"message":"name already taken","field":"nom"}`))
			return
		}
		// some deployments echo the created row inside an array
		w.Write([]byte(`[{"id":10,"nom":"created"}]`))
	})
	mux.HandleFunc("/things/10", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			json.NewDecoder(r.Body).Decode(&lastBody)
			w.WriteHeader(http.StatusOK)
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		case http.MethodGet:
			w.Write([]byte(`{"id":10,"nom":"created"}`))
		}
	})
	mux.HandleFunc("/things/utilisateur/7", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"id":11},{"id":12}]}`))
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`upstream down`))
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := apigateway.NewClient(apigateway.Config{BaseURL: ts.URL + "/", AccessToken: "secret"}, log.NewNop())
	ctx := context.Background()

	t.Run("GetAll bare array", func(t *testing.T) {
		recs, err := client.Resource("/bare").GetAll(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(recs) != 2 {
			t.Fatalf("expected 2 records, got %d", len(recs))
		}
		if lastAuth != "Bearer secret" {
			t.Errorf("expected bearer token, got %q", lastAuth)
		}
	})

	t.Run("GetAll envelope", func(t *testing.T) {
		recs, err := client.Resource("/enveloped").GetAll(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(recs) != 1 {
			t.Fatalf("expected 1 record, got %d", len(recs))
		}
		if id, _ := recs[0].Int64("id"); id != 3 {
			t.Errorf("expected id 3, got %d", id)
		}
	})

	t.Run("GetAll unknown shape is empty", func(t *testing.T) {
		recs, err := client.Resource("/weird").GetAll(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if recs == nil || len(recs) != 0 {
			t.Errorf("expected empty non-nil slice, got %#v", recs)
		}
	})

	t.Run("Create unwraps array echo", func(t *testing.T) {
		rec, err := client.Resource("/things").Create(ctx, map[string]any{"nom": "created"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id, _ := rec.Int64("id"); id != 10 {
			t.Errorf("expected id 10, got %d", id)
		}
	})

	t.Run("Create surfaces remote message and body", func(t *testing.T) {
		_, err := client.Resource("/things").Create(ctx, map[string]any{"nom": "dup"})
		var apiErr *apigateway.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected *APIError, got %v", err)
		}
		if apiErr.StatusCode != http.StatusConflict {
			t.Errorf("expected 409, got %d", apiErr.StatusCode)
		}
		if apiErr.Error() != "name already taken" {
			t.Errorf("unexpected message: %q", apiErr.Error())
		}
		if apiErr.BodyText() == "" {
			t.Errorf("expected body text to be kept")
		}
	})

	t.Run("Update with empty echo", func(t *testing.T) {
		rec, err := client.Resource("/things").Update(ctx, "10", map[string]any{"active": false})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec != nil {
			t.Errorf("expected nil record for empty body, got %v", rec)
		}
		if lastBody["active"] != false {
			t.Errorf("expected partial payload to be sent, got %v", lastBody)
		}
	})

	t.Run("GetByID", func(t *testing.T) {
		rec, err := client.Resource("/things").GetByID(ctx, "10")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if name, _ := rec.String("nom"); name != "created" {
			t.Errorf("unexpected name %q", name)
		}
	})

	t.Run("GetByUser", func(t *testing.T) {
		recs, err := client.Resource("/things").GetByUser(ctx, "7")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(recs) != 2 {
			t.Errorf("expected 2 records, got %d", len(recs))
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := client.Resource("/things").Delete(ctx, "10"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Non-JSON error body", func(t *testing.T) {
		_, err := client.Call(ctx, http.MethodGet, "/broken", nil)
		var apiErr *apigateway.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected *APIError, got %v", err)
		}
		if apiErr.Message != http.StatusText(http.StatusBadGateway) {
			t.Errorf("unexpected message %q", apiErr.Message)
		}
		if apiErr.BodyText() != "upstream down" {
			t.Errorf("unexpected body %q", apiErr.BodyText())
		}
	})

	t.Run("Not found helper", func(t *testing.T) {
		_, err := client.Resource("/nothing").GetByID(ctx, "1")
		if !apigateway.IsNotFound(err) {
			t.Errorf("expected not found, got %v", err)
		}
	})

	t.Run("WithToken swaps the caller", func(t *testing.T) {
		other := client.WithToken("other")
		if _, err := other.Resource("/bare").GetAll(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lastAuth != "Bearer other" {
			t.Errorf("expected other bearer, got %q", lastAuth)
		}
	})

	t.Run("Server Down", func(t *testing.T) {
		bad := apigateway.NewClient(apigateway.Config{BaseURL: "http://localhost:59999"}, log.NewNop())
		if _, err := bad.Resource("/bare").GetAll(ctx); err == nil {
			t.Errorf("expected connection refused error")
		}
	})
}

func TestMe(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ok/auth/me", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"42","prenom":" Ada ","nom":"Lovelace","email":"ada@x.com"}`))
	})
	mux.HandleFunc("/anon/auth/me", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`null`))
	})
	mux.HandleFunc("/denied/auth/me", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	ctx := context.Background()

	t.Run("identity", func(t *testing.T) {
		c := apigateway.NewClient(apigateway.Config{BaseURL: ts.URL + "/ok"}, log.NewNop())
		me, err := c.Me(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if me.ID != 42 || me.Name != "Ada" || me.Surname != "Lovelace" || me.Email != "ada@x.com" {
			t.Errorf("unexpected identity: %+v", me)
		}
	})

	t.Run("null", func(t *testing.T) {
		c := apigateway.NewClient(apigateway.Config{BaseURL: ts.URL + "/anon"}, log.NewNop())
		me, err := c.Me(ctx)
		if err != nil || me != nil {
			t.Errorf("expected (nil, nil), got (%v, %v)", me, err)
		}
	})

	t.Run("401", func(t *testing.T) {
		c := apigateway.NewClient(apigateway.Config{BaseURL: ts.URL + "/denied"}, log.NewNop())
		if _, err := c.Me(ctx); !errors.Is(err, apigateway.ErrUnauthenticated) {
			t.Errorf("expected ErrUnauthenticated, got %v", err)
		}
	})
}
