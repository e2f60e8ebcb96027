package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"todolist/internal/models"
	"todolist/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// --- parseInterval unit tests ---

func TestParseInterval(t *testing.T) {
	h := NewHandler(&service.Service{}, nil)

	cases := []struct {
		name string
		u    string
		want time.Duration
	}{
		{"default_when_missing", "/ws", 1 * time.Second},
		{"interval_string_valid", "/ws?interval=200ms", 200 * time.Millisecond},
		{"interval_ms_valid", "/ws?interval_ms=150", 150 * time.Millisecond},
		{"interval_too_large", "/ws?interval=20s", 1 * time.Second},
		{"interval_ms_too_large", "/ws?interval_ms=20000", 1 * time.Second},
		{"interval_invalid_string", "/ws?interval=bogus", 1 * time.Second},
		{"both_present_interval_wins", "/ws?interval=2s&interval_ms=150", 2 * time.Second},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.u, nil)
			c, _ := gin.CreateTestContext(w)
			c.Request = req
			got := h.parseInterval(c)
			if got != tc.want {
				t.Fatalf("got %v, want %v for %s", got, tc.want, tc.u)
			}
		})
	}
}

// --- websocket integration tests ---

func TestWebSocket_TaskStream_InitialAndPeriodic(t *testing.T) {
	auth := &mockAuth{parseID: 7}
	tasks := &mockTasks{tasks: []models.Task{
		{ID: 1, Title: "groceries", Description: "milk", UserID: 7},
	}}
	s := &service.Service{Authorization: auth, TaskManager: tasks}

	r := newTestRouter(s)
	srv := httptest.NewServer(r)
	defer srv.Close()

	u, _ := url.Parse(srv.URL)
	u.Scheme = "ws"
	u.Path = "/ws"
	q := u.Query()
	q.Set("interval_ms", "100")
	u.RawQuery = q.Encode()

	hdr := http.Header{}
	hdr.Set("Cookie", (&http.Cookie{Name: sessionCookieName, Value: "tok123"}).String())

	conn, resp, err := websocket.DefaultDialer.Dial(u.String(), hdr)
	if err != nil {
		t.Fatalf("dial: %v (resp=%+v)", err, resp)
	}
	defer func() { _ = conn.Close() }()

	readEnvelope := func() wsEnvelope {
		t.Helper()
		_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, raw, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		var env wsEnvelope
		if err := json.Unmarshal(raw, &env); err != nil {
			t.Fatalf("unmarshal: %v (raw=%s)", err, raw)
		}
		return env
	}

	// Initial snapshot arrives immediately.
	env := readEnvelope()
	if env.Type != "tasks" {
		t.Fatalf("expected tasks envelope, got %+v", env)
	}
	data, ok := env.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("unexpected data payload: %+v", env.Data)
	}
	if count, _ := data["count"].(float64); int(count) != 1 {
		t.Fatalf("expected count 1, got %v", data["count"])
	}

	// A periodic update follows.
	env = readEnvelope()
	if env.Type != "tasks" {
		t.Fatalf("expected periodic tasks envelope, got %+v", env)
	}

	if tasks.lastListOwner != 7 {
		t.Fatalf("stream must be scoped to session user 7, got %d", tasks.lastListOwner)
	}
}

func TestWebSocket_RequiresSession(t *testing.T) {
	s := &service.Service{Authorization: &mockAuth{}, TaskManager: &mockTasks{}}
	r := newTestRouter(s)
	srv := httptest.NewServer(r)
	defer srv.Close()

	u, _ := url.Parse(srv.URL)
	u.Scheme = "ws"
	u.Path = "/ws"

	// No session cookie: the guard redirects before the upgrade happens.
	_, resp, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err == nil {
		t.Fatal("expected dial to fail without a session")
	}
	if resp == nil || resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected redirect status, got %+v", resp)
	}
}
