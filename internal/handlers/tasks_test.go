package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"todolist/internal/models"
	"todolist/internal/service"
)

func getWithSession(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.AddCookie(sessionCookie("tok123"))
	r.ServeHTTP(w, req)
	return w
}

func TestIndex_ListsSessionUsersTasks(t *testing.T) {
	auth := &mockAuth{parseID: 7}
	tasks := &mockTasks{tasks: []models.Task{
		{ID: 1, Title: "groceries", Description: "milk", UserID: 7},
		{ID: 3, Title: "dishes", Description: "tonight", UserID: 7},
	}}
	r := newTestRouter(&service.Service{Authorization: auth, TaskManager: tasks})

	w := getWithSession(r, "/")

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if tasks.lastListOwner != 7 {
		t.Fatalf("list must be scoped to session user 7, got %d", tasks.lastListOwner)
	}
	body := w.Body.String()
	if !strings.Contains(body, "groceries") || !strings.Contains(body, "dishes") {
		t.Fatalf("expected tasks in body, got %s", body)
	}
	if !strings.Contains(body, "My Tasks (2)") {
		t.Fatalf("expected count 2 in body, got %s", body)
	}
}

func TestIndex_EmptyList(t *testing.T) {
	auth := &mockAuth{parseID: 7}
	tasks := &mockTasks{}
	r := newTestRouter(&service.Service{Authorization: auth, TaskManager: tasks})

	w := getWithSession(r, "/")

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "My Tasks (0)") {
		t.Fatalf("expected count 0, got %s", body)
	}
	if !strings.Contains(body, "No tasks yet.") {
		t.Fatalf("expected empty-state message, got %s", body)
	}
}

func TestIndex_Unauthenticated_Redirects(t *testing.T) {
	r := newTestRouter(&service.Service{Authorization: &mockAuth{}, TaskManager: &mockTasks{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status=%d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

func TestCreateTask_CreatesForSessionUserAndRerenders(t *testing.T) {
	auth := &mockAuth{parseID: 7}
	tasks := &mockTasks{createID: 9}
	r := newTestRouter(&service.Service{Authorization: auth, TaskManager: tasks})

	w := postForm(r, "/", url.Values{
		"title": {"groceries"},
		"desc":  {"milk"},
	}, sessionCookie("tok123"))

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if tasks.createCalls != 1 {
		t.Fatalf("expected 1 create call, got %d", tasks.createCalls)
	}
	if tasks.lastCreatedOwner != 7 || tasks.lastCreatedTitle != "groceries" || tasks.lastCreatedDesc != "milk" {
		t.Fatalf("unexpected create args: %+v", tasks)
	}
	// The list page is rendered back after create.
	if !strings.Contains(w.Body.String(), "My Tasks") {
		t.Fatalf("expected list page, got %s", w.Body.String())
	}
}

func TestCreateTask_MissingFields(t *testing.T) {
	auth := &mockAuth{parseID: 7}
	tasks := &mockTasks{}
	r := newTestRouter(&service.Service{Authorization: auth, TaskManager: tasks})

	w := postForm(r, "/", url.Values{"title": {"only title"}}, sessionCookie("tok123"))

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if tasks.createCalls != 0 {
		t.Fatalf("expected no create calls, got %d", tasks.createCalls)
	}
	if !strings.Contains(w.Body.String(), "required") {
		t.Fatalf("expected validation flash, got %s", w.Body.String())
	}
}

func TestDeleteTask_RedirectsHome(t *testing.T) {
	auth := &mockAuth{parseID: 7}
	tasks := &mockTasks{}
	r := newTestRouter(&service.Service{Authorization: auth, TaskManager: tasks})

	w := getWithSession(r, "/delete/4")

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Fatalf("expected redirect to /, got %q", loc)
	}
	if tasks.lastDeletedID != 4 {
		t.Fatalf("expected delete of task 4, got %d", tasks.lastDeletedID)
	}
}

func TestDeleteTask_NotFound(t *testing.T) {
	auth := &mockAuth{parseID: 7}
	tasks := &mockTasks{deleteErr: service.ErrTaskNotFound}
	r := newTestRouter(&service.Service{Authorization: auth, TaskManager: tasks})

	w := getWithSession(r, "/delete/12345")

	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
}

func TestDeleteTask_NonNumericID(t *testing.T) {
	auth := &mockAuth{parseID: 7}
	r := newTestRouter(&service.Service{Authorization: auth, TaskManager: &mockTasks{}})

	w := getWithSession(r, "/delete/abc")

	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d", w.Code)
	}
}
