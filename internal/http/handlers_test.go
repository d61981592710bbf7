package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type annResp struct {
	ID             string  `json:"id"`
	Message        string  `json:"message"`
	StartDate      *string `json:"start_date"`
	ExpirationDate string  `json:"expiration_date"`
	CreatedAt      string  `json:"created_at"`
}

func do(env *testEnv, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	env.Router.ServeHTTP(w, req)
	return w
}

func Test_CRUD_Flow(t *testing.T) {
	env := newTestEnv(t)
	defer env.Close()

	// 1) CREATE without start_date
	w := do(env, "POST", "/api/announcements?teacher_username=mrodriguez",
		`{"message":"  Exam tomorrow  ","expiration_date":"2099-01-01T00:00:00Z"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create code=%d body=%s", w.Code, w.Body.String())
	}
	var created annResp
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil || created.ID == "" {
		t.Fatalf("create resp parse: %v; body=%s", err, w.Body.String())
	}
	if created.Message != "Exam tomorrow" {
		t.Fatalf("message not trimmed: %q", created.Message)
	}
	if created.StartDate != nil {
		t.Fatalf("start_date must be null, got %v", *created.StartDate)
	}
	if created.ExpirationDate != "2099-01-01T00:00:00Z" {
		t.Fatalf("expiration not canonical: %q", created.ExpirationDate)
	}

	// 2) visible in the public active list
	w = do(env, "GET", "/api/announcements/active", "")
	if w.Code != http.StatusOK {
		t.Fatalf("active code=%d body=%s", w.Code, w.Body.String())
	}
	var active []annResp
	_ = json.Unmarshal(w.Body.Bytes(), &active)
	if len(active) != 1 || active[0].ID != created.ID {
		t.Fatalf("active list wrong: %s", w.Body.String())
	}

	// 3) UPDATE to a past expiration — the future check applies on create
	// only, so this must succeed and keep id/created_at
	w = do(env, "PUT", "/api/announcements/"+created.ID+"?teacher_username=mrodriguez",
		`{"message":"y","expiration_date":"2000-01-01T00:00:00Z"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update code=%d body=%s", w.Code, w.Body.String())
	}
	var updated annResp
	_ = json.Unmarshal(w.Body.Bytes(), &updated)
	if updated.ID != created.ID {
		t.Fatal("id changed on update")
	}
	if updated.CreatedAt != created.CreatedAt {
		t.Fatalf("created_at changed on update: %q -> %q", created.CreatedAt, updated.CreatedAt)
	}
	if updated.Message != "y" || updated.ExpirationDate != "2000-01-01T00:00:00Z" {
		t.Fatalf("fields not replaced: %s", w.Body.String())
	}

	// 4) now expired: gone from active, still in the management list
	w = do(env, "GET", "/api/announcements/active", "")
	_ = json.Unmarshal(w.Body.Bytes(), &active)
	if len(active) != 0 {
		t.Fatalf("expired record still active: %s", w.Body.String())
	}
	w = do(env, "GET", "/api/announcements?teacher_username=mrodriguez", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list all code=%d body=%s", w.Code, w.Body.String())
	}
	var all []annResp
	_ = json.Unmarshal(w.Body.Bytes(), &all)
	if len(all) != 1 {
		t.Fatalf("management list must include expired records: %s", w.Body.String())
	}

	// 5) DELETE, then reads yield 404
	w = do(env, "DELETE", "/api/announcements/"+created.ID+"?teacher_username=mrodriguez", "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete code=%d body=%s", w.Code, w.Body.String())
	}
	var msg map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &msg)
	if msg["message"] != "Announcement deleted successfully" {
		t.Fatalf("delete confirmation: %s", w.Body.String())
	}
	w = do(env, "DELETE", "/api/announcements/"+created.ID+"?teacher_username=mrodriguez", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("delete after delete: want 404, got %d %s", w.Code, w.Body.String())
	}
	w = do(env, "PUT", "/api/announcements/"+created.ID+"?teacher_username=mrodriguez",
		`{"message":"z","expiration_date":"2099-01-01T00:00:00Z"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("update after delete: want 404, got %d %s", w.Code, w.Body.String())
	}
}

func Test_ActiveWindow_And_Order(t *testing.T) {
	env := newTestEnv(t)
	defer env.Close()

	// scheduled for the future: not yet visible
	w := do(env, "POST", "/api/announcements?teacher_username=mrodriguez",
		`{"message":"scheduled","expiration_date":"2099-01-01T00:00:00Z","start_date":"2098-01-01T00:00:00Z"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create scheduled: %d %s", w.Code, w.Body.String())
	}
	// created_at is stored at millisecond precision; space the writes so
	// the newest-first order is deterministic
	time.Sleep(5 * time.Millisecond)
	// already started window: visible
	w = do(env, "POST", "/api/announcements?teacher_username=mrodriguez",
		`{"message":"running","expiration_date":"2099-01-01T00:00:00Z","start_date":"2020-01-01T00:00:00Z"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create running: %d %s", w.Code, w.Body.String())
	}
	time.Sleep(5 * time.Millisecond)
	// no start date: visible
	w = do(env, "POST", "/api/announcements?teacher_username=mrodriguez",
		`{"message":"open","expiration_date":"2099-01-01T00:00:00Z"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create open: %d %s", w.Code, w.Body.String())
	}

	w = do(env, "GET", "/api/announcements/active", "")
	var active []annResp
	_ = json.Unmarshal(w.Body.Bytes(), &active)
	if len(active) != 2 {
		t.Fatalf("want 2 active, got %s", w.Body.String())
	}
	// newest-first by created_at
	if active[0].Message != "open" || active[1].Message != "running" {
		t.Fatalf("wrong order: %q then %q", active[0].Message, active[1].Message)
	}

	w = do(env, "GET", "/api/announcements?teacher_username=mrodriguez", "")
	var all []annResp
	_ = json.Unmarshal(w.Body.Bytes(), &all)
	if len(all) != 3 {
		t.Fatalf("want all 3, got %s", w.Body.String())
	}
	if all[0].Message != "open" || all[1].Message != "running" || all[2].Message != "scheduled" {
		t.Fatalf("wrong order: %s", w.Body.String())
	}
}

func Test_Auth_Statuses(t *testing.T) {
	env := newTestEnv(t)
	defer env.Close()

	w := do(env, "GET", "/api/announcements", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("missing credential: want 401, got %d %s", w.Code, w.Body.String())
	}
	w = do(env, "GET", "/api/announcements?teacher_username=ghost", "")
	if w.Code != http.StatusForbidden {
		t.Fatalf("unknown credential: want 403, got %d %s", w.Code, w.Body.String())
	}
	w = do(env, "POST", "/api/announcements",
		`{"message":"x","expiration_date":"2099-01-01T00:00:00Z"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("create without credential: want 401, got %d", w.Code)
	}
	w = do(env, "DELETE", "/api/announcements/000000000000000000000000?teacher_username=ghost", "")
	if w.Code != http.StatusForbidden {
		t.Fatalf("delete with unknown credential: want 403, got %d", w.Code)
	}
}

func Test_Validation_Statuses(t *testing.T) {
	env := newTestEnv(t)
	defer env.Close()

	cases := []struct {
		name, body string
	}{
		{"empty message", `{"message":"","expiration_date":"2099-01-01T00:00:00Z"}`},
		{"bad expiration", `{"message":"x","expiration_date":"soon"}`},
		{"past expiration", `{"message":"x","expiration_date":"2000-01-01T00:00:00Z"}`},
		{"start after expiration", `{"message":"x","expiration_date":"2099-01-01T00:00:00Z","start_date":"2099-06-01T00:00:00Z"}`},
	}
	for _, tc := range cases {
		w := do(env, "POST", "/api/announcements?teacher_username=mrodriguez", tc.body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: want 400, got %d %s", tc.name, w.Code, w.Body.String())
		}
	}

	// malformed id → 400, well-formed but absent id → 404
	w := do(env, "PUT", "/api/announcements/nothex?teacher_username=mrodriguez",
		`{"message":"x","expiration_date":"2099-01-01T00:00:00Z"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("malformed id: want 400, got %d %s", w.Code, w.Body.String())
	}
	w = do(env, "PUT", "/api/announcements/64b0c1f2a3d4e5f601234567?teacher_username=mrodriguez",
		`{"message":"x","expiration_date":"2099-01-01T00:00:00Z"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("absent id: want 404, got %d %s", w.Code, w.Body.String())
	}
}

func Test_Healthz(t *testing.T) {
	env := newTestEnv(t)
	defer env.Close()

	w := do(env, "GET", "/healthz", "")
	if w.Code != http.StatusOK {
		t.Fatalf("healthz: %d %s", w.Code, w.Body.String())
	}
}
