package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"collab-dashboard/internal/mailinglist"
	"collab-dashboard/internal/mailinglist/repository"
	"collab-dashboard/internal/mailinglist/repository/rest"
	"collab-dashboard/internal/model"
	"collab-dashboard/pkg/apigateway"
	"collab-dashboard/pkg/log"
)

func TestRepository(t *testing.T) {
	var lastUpdate map[string]any
	var deleted bool
	echo := true

	mux := http.NewServeMux()
	mux.HandleFunc("/listes-diffusion", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`{"data":[{"id":1,"nom":"Team","active":true},{"idListeDiffusion":2,"nom":"Other","statut":"INACTIF"}]}`))
		case http.MethodPost:
			if !echo {
				w.WriteHeader(http.StatusCreated)
				return
			}
			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			body["id"] = 3
			json.NewEncoder(w).Encode(body)
		}
	})
	mux.HandleFunc("/listes-diffusion/1", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			json.NewDecoder(r.Body).Decode(&lastUpdate)
			w.Write([]byte(`{"id":1,"active":false}`))
		case http.MethodDelete:
			deleted = true
			w.WriteHeader(http.StatusNoContent)
		}
	})
	mux.HandleFunc("/listes-diffusion/500", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"boom"}`))
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	gw := apigateway.NewClient(apigateway.Config{BaseURL: ts.URL}, log.NewNop())
	repo := rest.New(gw, log.NewNop())
	ctx := context.Background()

	t.Run("ListAll", func(t *testing.T) {
		items, err := repo.ListAll(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(items))
		}
		if items[1].ID != 2 || items[1].Status != mailinglist.StatusInactive || items[1].Active {
			t.Errorf("unexpected legacy item: %+v", items[1])
		}
	})

	t.Run("Create", func(t *testing.T) {
		item, err := repo.Create(ctx, repository.CreateOptions{
			Name:    "New",
			Status:  mailinglist.StatusActive,
			Creator: model.User{ID: 7},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.ID != 3 || item.Name != "New" || !item.Active {
			t.Errorf("unexpected created item: %+v", item)
		}
	})

	t.Run("Create without echo", func(t *testing.T) {
		echo = false
		defer func() { echo = true }()
		_, err := repo.Create(ctx, repository.CreateOptions{Name: "New"})
		if !errors.Is(err, repository.ErrNoRecordEchoed) {
			t.Errorf("expected ErrNoRecordEchoed, got %v", err)
		}
	})

	t.Run("SetActive sends only the flag", func(t *testing.T) {
		if err := repo.SetActive(ctx, 1, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(lastUpdate) != 1 || lastUpdate["active"] != false {
			t.Errorf("unexpected update payload: %v", lastUpdate)
		}
	})

	t.Run("SetActive failure", func(t *testing.T) {
		if err := repo.SetActive(ctx, 500, true); err == nil {
			t.Errorf("expected error")
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := repo.Delete(ctx, 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !deleted {
			t.Errorf("expected delete to reach the remote")
		}
	})
}
