package handlers

import (
	"context"
	"net/http"

	"todolist/internal/models"
	"todolist/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID  int
	signUpErr error
	token     string
	signInErr error
	parseID   int
	parseErr  error

	lastSignUpUsername string
	lastSignUpEmail    string
	lastSignUpPassword string
	lastSignInEmail    string
	lastSignInPassword string
	lastParseToken     string
}

func (m *mockAuth) SignUp(ctx context.Context, username, email, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpEmail = email
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) SignIn(ctx context.Context, email, password string) (string, error) {
	m.lastSignInEmail = email
	m.lastSignInPassword = password
	return m.token, m.signInErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockTasks struct {
	tasks     []models.Task
	listErr   error
	createID  int
	createErr error
	deleteErr error

	lastListOwner    int
	lastCreatedTitle string
	lastCreatedDesc  string
	lastCreatedOwner int
	lastDeletedID    int
	createCalls      int
	deleteCalls      int
}

func (m *mockTasks) List(ctx context.Context, ownerID int) ([]models.Task, int, error) {
	m.lastListOwner = ownerID
	if m.listErr != nil {
		return nil, 0, m.listErr
	}
	return m.tasks, len(m.tasks), nil
}
func (m *mockTasks) Create(ctx context.Context, ownerID int, title, description string) (int, error) {
	m.createCalls++
	m.lastCreatedOwner = ownerID
	m.lastCreatedTitle = title
	m.lastCreatedDesc = description
	return m.createID, m.createErr
}
func (m *mockTasks) Delete(ctx context.Context, taskID int) error {
	m.deleteCalls++
	m.lastDeletedID = taskID
	return m.deleteErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func sessionCookie(token string) *http.Cookie {
	return &http.Cookie{Name: sessionCookieName, Value: token}
}
