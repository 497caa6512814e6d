package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"collab-dashboard/internal/auth"
	"collab-dashboard/internal/mailinglist"
	"collab-dashboard/internal/mailinglist/controller"
	"collab-dashboard/internal/mailinglist/repository"
	"collab-dashboard/internal/model"
	"collab-dashboard/internal/project"
	"collab-dashboard/pkg/log"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type memRepo struct {
	items   []mailinglist.ListItem
	deleted []int64
	nextID  int64
}

func (m *memRepo) ListAll(ctx context.Context) ([]mailinglist.ListItem, error) {
	return append([]mailinglist.ListItem(nil), m.items...), nil
}

func (m *memRepo) Create(ctx context.Context, opt repository.CreateOptions) (mailinglist.ListItem, error) {
	m.nextID++
	it := mailinglist.ListItem{ID: m.nextID, Name: opt.Name, ContactAddress: opt.ContactAddress}.WithActive(opt.Status == mailinglist.StatusActive)
	m.items = append([]mailinglist.ListItem{it}, m.items...)
	return it, nil
}

func (m *memRepo) SetActive(ctx context.Context, id int64, active bool) error { return nil }

func (m *memRepo) Delete(ctx context.Context, id int64) error {
	m.deleted = append(m.deleted, id)
	return nil
}

type noProjects struct{}

func (noProjects) List(ctx context.Context) (project.ListOutput, error) {
	return project.ListOutput{}, nil
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func setup(t *testing.T, withController bool) (*gin.Engine, *memRepo) {
	t.Helper()
	repo := &memRepo{
		items: []mailinglist.ListItem{
			mailinglist.ListItem{ID: 1, Name: "Team Alpha", ContactAddress: "alpha@x"}.WithActive(true),
			mailinglist.ListItem{ID: 2, Name: "Beta", ContactAddress: "b@x"}.WithActive(false),
		},
		nextID: 10,
	}
	user := &model.User{ID: 7, Name: "Alice", Email: "alice@x"}
	ctrl := controller.New(repo, noProjects{}, auth.NewStatic(user), log.NewNop())
	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	h := New(log.NewNop(), func(c *gin.Context) (mailinglist.Controller, bool) {
		if !withController {
			return nil, false
		}
		return ctrl, true
	})
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1/mailing-lists"), h)
	return r, repo
}

func do(r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func decodeSnapshot(t *testing.T, raw json.RawMessage) snapshotResp {
	t.Helper()
	var s snapshotResp
	if err := json.Unmarshal(raw, &s); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	return s
}

func TestSnapshotAndFilter(t *testing.T) {
	r, _ := setup(t, true)

	w, env := do(r, http.MethodGet, "/api/v1/mailing-lists", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if s := decodeSnapshot(t, env.Data); len(s.Items) != 2 || s.Dialog.Draft.AccessType != "PRIVE" {
		t.Fatalf("unexpected snapshot: %+v", s)
	}

	w, env = do(r, http.MethodPut, "/api/v1/mailing-lists/filter", `{"search":"team","status":"ACTIF"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	s := decodeSnapshot(t, env.Data)
	if len(s.Filtered) != 1 || s.Filtered[0].ID != 1 || len(s.Items) != 2 {
		t.Fatalf("unexpected filter result: %+v", s)
	}

	w, _ = do(r, http.MethodPut, "/api/v1/mailing-lists/filter", `{"status":"ARCHIVE"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCreate(t *testing.T) {
	r, _ := setup(t, true)

	w, env := do(r, http.MethodPost, "/api/v1/mailing-lists", `{"name":"   "}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if s := decodeSnapshot(t, env.Data); s.Dialog.ValidationError == "" {
		t.Fatal("expected inline validation message in the snapshot")
	}

	w, env = do(r, http.MethodPost, "/api/v1/mailing-lists", `{"name":"Team","contact_address":"team@x"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var out itemActionResp
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Item == nil || out.Item.ID != 11 || !out.Item.Active {
		t.Fatalf("unexpected item: %+v", out.Item)
	}
	if out.Snapshot.Items[0].ID != 11 || out.Snapshot.Notice == nil {
		t.Fatalf("unexpected snapshot: %+v", out.Snapshot)
	}

	w, _ = do(r, http.MethodPost, "/api/v1/mailing-lists", `{"status":"ARCHIVE","name":"x"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected binding failure, got %d", w.Code)
	}
}

func TestCreateBodyless(t *testing.T) {
	t.Run("empty body submits the staged draft", func(t *testing.T) {
		r, repo := setup(t, true)
		do(r, http.MethodPut, "/api/v1/mailing-lists/draft", `{"name":"Ops","contact_address":"ops@x"}`)

		w, _ := do(r, http.MethodPost, "/api/v1/mailing-lists", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if repo.items[0].Name != "Ops" {
			t.Fatalf("staged draft was not submitted: %+v", repo.items[0])
		}
	})

	t.Run("chunked body is applied", func(t *testing.T) {
		r, repo := setup(t, true)

		w := httptest.NewRecorder()
		// a plain io.Reader leaves the length unknown, as with chunked encoding
		req := httptest.NewRequest(http.MethodPost, "/api/v1/mailing-lists", io.MultiReader(strings.NewReader(`{"name":"Chunked"}`)))
		req.Header.Set("Content-Type", "application/json")
		if req.ContentLength != -1 {
			t.Fatalf("expected unknown length, got %d", req.ContentLength)
		}
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if repo.items[0].Name != "Chunked" {
			t.Fatalf("body was ignored: %+v", repo.items[0])
		}
	})
}

func TestToggleAndRemove(t *testing.T) {
	r, repo := setup(t, true)

	w, env := do(r, http.MethodPost, "/api/v1/mailing-lists/2/toggle", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var out itemActionResp
	_ = json.Unmarshal(env.Data, &out)
	if out.Item == nil || out.Item.Status != "ACTIF" {
		t.Fatalf("unexpected item: %+v", out.Item)
	}

	w, _ = do(r, http.MethodPost, "/api/v1/mailing-lists/99/toggle", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	w, _ = do(r, http.MethodDelete, "/api/v1/mailing-lists/1", "")
	if w.Code != http.StatusPreconditionRequired || len(repo.deleted) != 0 {
		t.Fatalf("expected 428 and no delete, got %d %v", w.Code, repo.deleted)
	}

	w, env = do(r, http.MethodDelete, "/api/v1/mailing-lists/1?confirm=true", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if s := decodeSnapshot(t, env.Data); len(s.Items) != 1 || s.Items[0].ID != 2 {
		t.Fatalf("unexpected items: %+v", s.Items)
	}

	w, env = do(r, http.MethodDelete, "/api/v1/mailing-lists/notice", "")
	if s := decodeSnapshot(t, env.Data); w.Code != http.StatusOK || s.Notice != nil {
		t.Fatalf("notice not dismissed: %d %+v", w.Code, s.Notice)
	}
}

func TestDialog(t *testing.T) {
	r, _ := setup(t, true)

	_, env := do(r, http.MethodPost, "/api/v1/mailing-lists/dialog", "")
	s := decodeSnapshot(t, env.Data)
	if !s.Dialog.Open || s.Dialog.Draft.Name != "Alice" || s.Dialog.Draft.ContactAddress != "alice@x" {
		t.Fatalf("unexpected dialog: %+v", s.Dialog)
	}

	_, env = do(r, http.MethodPut, "/api/v1/mailing-lists/draft", `{"name":"Ops","send_permission":"TOUS"}`)
	if s := decodeSnapshot(t, env.Data); s.Dialog.Draft.Name != "Ops" || s.Dialog.Draft.SendPermission != "TOUS" {
		t.Fatalf("unexpected draft: %+v", s.Dialog.Draft)
	}

	_, env = do(r, http.MethodDelete, "/api/v1/mailing-lists/dialog", "")
	if s := decodeSnapshot(t, env.Data); s.Dialog.Open || s.Dialog.Draft.Name != "" {
		t.Fatalf("dialog not reset: %+v", s.Dialog)
	}
}

func TestNoSession(t *testing.T) {
	r, _ := setup(t, false)
	w, _ := do(r, http.MethodGet, "/api/v1/mailing-lists", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
