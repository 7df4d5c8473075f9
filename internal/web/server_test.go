package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/coursetrail/coursetrail/internal/api"
	"github.com/coursetrail/coursetrail/internal/course"
	"github.com/coursetrail/coursetrail/internal/disclosure"
	"github.com/coursetrail/coursetrail/internal/render"
)

// fakeBackend serves the generation API endpoints with canned responses.
func fakeBackend() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"healthy","ollama":{"status":"connected","url":"http://localhost:11434"}}`))
	})
	mux.HandleFunc("/api/models", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"models":[{"name":"llama3","size":4200000000}]}`))
	})
	mux.HandleFunc("/api/generate/outline", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"title": "Rust from Zero",
			"description": "Eight weeks of Rust",
			"weeks": [
				{"week": 1, "title": "Ownership", "concepts": ["moves"]},
				{"week": 2, "title": "Traits"}
			]
		}`))
	})
	mux.HandleFunc("/api/generate/week", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"days":[
			{"day":1,"title":"Moves","task_type":"theory","duration_minutes":60},
			{"day":2,"title":"Borrows","task_type":"practice","duration_minutes":90}
		]}`))
	})
	mux.HandleFunc("/api/generate/day", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"description":"Deep dive into moves","table_of_contents":["stack","heap"]}`))
	})
	return mux
}

func newTestServer(t *testing.T, backend http.Handler) *Server {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	client := api.New(srv.URL, 5*time.Second)
	store := course.NewStore()
	ctrl := disclosure.New(store, client)
	return New(Config{Port: 0, ToastTTL: time.Minute}, client, store, ctrl, render.New())
}

func doJSON(t *testing.T, s *Server, method, path, body string) (*httptest.ResponseRecorder, uiResponse) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	var resp uiResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding %s %s response: %v\nbody: %s", method, path, err, rec.Body.String())
	}
	return rec, resp
}

func startCourse(t *testing.T, s *Server) {
	t.Helper()
	rec, _ := doJSON(t, s, http.MethodPost, "/api/course", `{"goal":"Learn Rust","model":"llama3"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("starting course: status %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t, fakeBackend())
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestStatusReportsBackend(t *testing.T) {
	s := newTestServer(t, fakeBackend())
	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	var resp statusResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding status: %v", err)
	}
	if !resp.Connected {
		t.Error("expected connected backend")
	}
	if len(resp.Models) != 1 || resp.Models[0].Name != "llama3" {
		t.Errorf("models = %+v", resp.Models)
	}
}

func TestStatusBackendDown(t *testing.T) {
	s := newTestServer(t, fakeBackend())
	// Point the client at a closed port.
	s.backend = api.New("http://127.0.0.1:1", 200*time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status probe should answer 200, got %d", rec.Code)
	}
	var resp statusResponse
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Connected || resp.Error == "" {
		t.Errorf("unreachable backend should report an inline error: %+v", resp)
	}
}

func TestStartCourseShowsCourseView(t *testing.T) {
	s := newTestServer(t, fakeBackend())
	rec, resp := doJSON(t, s, http.MethodPost, "/api/course", `{"goal":"Learn Rust","model":"llama3"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if resp.View != ViewCourse {
		t.Errorf("view = %q, want course", resp.View)
	}
	if !strings.Contains(resp.HTML, "Rust from Zero") {
		t.Error("rendered timeline missing course title")
	}
	if !strings.Contains(resp.HTML, "Week 1") || !strings.Contains(resp.HTML, "Ownership") {
		t.Error("rendered timeline missing weeks")
	}
	if s.CurrentView() != ViewCourse {
		t.Errorf("server view = %q, want course", s.CurrentView())
	}

	found := false
	for _, toast := range resp.Toasts {
		if toast.Level == "success" {
			found = true
		}
	}
	if !found {
		t.Error("expected a success toast after the outline arrives")
	}
}

func TestStartCourseValidationError(t *testing.T) {
	s := newTestServer(t, fakeBackend())
	rec, resp := doJSON(t, s, http.MethodPost, "/api/course", `{"goal":"  ","model":"llama3"}`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if resp.View != ViewLanding || resp.Error == "" {
		t.Errorf("response = %+v", resp)
	}
	if s.CurrentView() != ViewLanding {
		t.Error("validation failure must stay on landing")
	}
}

func TestRejectedStartPushesNoEvents(t *testing.T) {
	s := newTestServer(t, fakeBackend())
	srv := httptest.NewServer(s.Router())
	t.Cleanup(srv.Close)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dialing websocket: %v", err)
	}
	defer conn.Close()

	// Wait for the hub to register the connection.
	deadline := time.After(2 * time.Second)
	for {
		s.hub.mu.Lock()
		n := len(s.hub.conns)
		s.hub.mu.Unlock()
		if n == 1 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("websocket client never registered")
		case <-time.After(5 * time.Millisecond):
		}
	}

	rec, resp := doJSON(t, s, http.MethodPost, "/api/course", `{"goal":"","model":"llama3"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if resp.View != ViewLanding || s.CurrentView() != ViewLanding {
		t.Error("rejected request must not change the view")
	}

	// Connected pages must see nothing, not even a loading flash.
	conn.SetReadDeadline(time.Now().Add(300 * time.Millisecond))
	var ev Event
	if err := conn.ReadJSON(&ev); err == nil {
		t.Fatalf("unexpected event pushed for a rejected request: %+v", ev)
	}
}

func TestStartCourseBackendError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/generate/outline", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail":"model not found"}`))
	})
	s := newTestServer(t, mux)

	rec, resp := doJSON(t, s, http.MethodPost, "/api/course", `{"goal":"Learn Rust","model":"nope"}`)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
	if resp.Error != "model not found" {
		t.Errorf("error = %q, want backend detail verbatim", resp.Error)
	}
	if resp.View != ViewLanding || s.CurrentView() != ViewLanding {
		t.Error("failed outline must return to landing")
	}

	found := false
	for _, toast := range resp.Toasts {
		if toast.Level == "error" && toast.Message == "model not found" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an error toast, got %+v", resp.Toasts)
	}
}

func TestToggleWeekExpandsInRenderedHTML(t *testing.T) {
	s := newTestServer(t, fakeBackend())
	startCourse(t, s)

	rec, resp := doJSON(t, s, http.MethodPost, "/api/course/weeks/1/toggle", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(resp.HTML, "Moves") || !strings.Contains(resp.HTML, "Borrows") {
		t.Error("expanded week should render its days")
	}

	// Toggle again collapses; the days disappear from the markup.
	_, resp = doJSON(t, s, http.MethodPost, "/api/course/weeks/1/toggle", "")
	if strings.Contains(resp.HTML, "Moves") {
		t.Error("collapsed week should not render days")
	}
}

func TestToggleWeekBadNumber(t *testing.T) {
	s := newTestServer(t, fakeBackend())
	startCourse(t, s)

	rec, _ := doJSON(t, s, http.MethodPost, "/api/course/weeks/abc/toggle", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for a non-numeric week", rec.Code)
	}

	rec, _ = doJSON(t, s, http.MethodPost, "/api/course/weeks/99/toggle", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for an unknown week", rec.Code)
	}
}

func TestToggleWeekWithoutCourse(t *testing.T) {
	s := newTestServer(t, fakeBackend())
	rec, _ := doJSON(t, s, http.MethodPost, "/api/course/weeks/1/toggle", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 without a course", rec.Code)
	}
}

func TestLoadDayRendersDetails(t *testing.T) {
	s := newTestServer(t, fakeBackend())
	startCourse(t, s)
	doJSON(t, s, http.MethodPost, "/api/course/weeks/1/toggle", "")

	rec, resp := doJSON(t, s, http.MethodPost, "/api/course/weeks/1/days/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(resp.HTML, "Deep dive into moves") {
		t.Error("loaded day should render its description")
	}
	if !strings.Contains(resp.HTML, "Covered today") {
		t.Error("loaded day should render its table of contents")
	}
}

func TestLoadDayBeforeExpanding(t *testing.T) {
	s := newTestServer(t, fakeBackend())
	startCourse(t, s)

	rec, _ := doJSON(t, s, http.MethodPost, "/api/course/weeks/1/days/1", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for a day in a collapsed week", rec.Code)
	}
}

func TestWeekFailureKeepsCourseView(t *testing.T) {
	weekFails := true
	mux := http.NewServeMux()
	mux.HandleFunc("/api/generate/outline", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"title":"Rust","weeks":[{"week":1,"title":"Ownership"}]}`))
	})
	mux.HandleFunc("/api/generate/week", func(w http.ResponseWriter, r *http.Request) {
		if weekFails {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"detail":"generation timed out"}`))
			return
		}
		w.Write([]byte(`{"days":[{"day":1,"title":"Moves","task_type":"theory","duration_minutes":60}]}`))
	})
	s := newTestServer(t, mux)
	startCourse(t, s)

	rec, resp := doJSON(t, s, http.MethodPost, "/api/course/weeks/1/toggle", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if resp.View != ViewCourse {
		t.Errorf("view = %q, backend failure must not leave the course view", resp.View)
	}
	found := false
	for _, toast := range resp.Toasts {
		if toast.Level == "error" && toast.Message == "generation timed out" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an error toast, got %+v", resp.Toasts)
	}

	// The click retries once the backend recovers.
	weekFails = false
	rec, resp = doJSON(t, s, http.MethodPost, "/api/course/weeks/1/toggle", "")
	if rec.Code != http.StatusOK || !strings.Contains(resp.HTML, "Moves") {
		t.Error("retry after backend recovery should expand the week")
	}
}

func TestResetReturnsToLanding(t *testing.T) {
	s := newTestServer(t, fakeBackend())
	startCourse(t, s)

	rec, resp := doJSON(t, s, http.MethodDelete, "/api/course", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if resp.View != ViewLanding || resp.HTML != "" {
		t.Errorf("response = %+v, want empty landing view", resp)
	}
	if s.CurrentView() != ViewLanding {
		t.Error("server should be back on landing")
	}
	if s.store.Active() {
		t.Error("reset must clear the stored course")
	}
}

func TestViewEndpointRendersCurrentState(t *testing.T) {
	s := newTestServer(t, fakeBackend())

	_, resp := doJSON(t, s, http.MethodGet, "/api/view", "")
	if resp.View != ViewLanding {
		t.Errorf("fresh server view = %q, want landing", resp.View)
	}

	startCourse(t, s)
	_, resp = doJSON(t, s, http.MethodGet, "/api/view", "")
	if resp.View != ViewCourse || !strings.Contains(resp.HTML, "Rust from Zero") {
		t.Error("view endpoint should replay the course markup")
	}
}

func TestIndexServed(t *testing.T) {
	s := newTestServer(t, fakeBackend())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "<!DOCTYPE html>") {
		t.Error("index page missing doctype")
	}
}
