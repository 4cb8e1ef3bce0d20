package handlers_fiber

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"freelance-flow/config"
	"freelance-flow/internal/api"
	"freelance-flow/internal/entities"
	"freelance-flow/internal/notify"
	"freelance-flow/internal/repository"
	"freelance-flow/internal/session"
	"freelance-flow/internal/transport/http/middleware"
	"freelance-flow/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type e2e struct {
	t   *testing.T
	app *fiber.App
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []entities.Message
}

func (p *recordingPublisher) MessagePosted(_ context.Context, msg entities.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, msg)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) posted() []entities.Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]entities.Message(nil), p.events...)
}

func newE2E(t *testing.T) *e2e {
	t.Helper()
	return newE2EWithPublisher(t, notify.Nop{})
}

func newE2EWithPublisher(t *testing.T, pub notify.Publisher) *e2e {
	t.Helper()
	ctx := context.Background()
	log := zap.NewNop().Sugar()

	cfg := &config.Config{SQLite: config.SQLiteConfig{
		Path:         filepath.Join(t.TempDir(), "e2e.db"),
		MaxOpenConns: 1,
	}}
	repo, err := repository.New(ctx, "sqlite", log, cfg)
	require.NoError(t, err)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	uc := usecase.New(log, repo, pub, 5*time.Second)
	sessions := session.NewManager(session.NewMemoryStore(), "0123456789abcdef0123", time.Hour, "e2e")

	app := fiber.New()
	app.Use(middleware.Identity(sessions, testCookie, log))
	NewHandler(log, uc, sessions, CookieConfig{Name: testCookie}).RegisterRoutes(app)
	return &e2e{t: t, app: app}
}

func (e *e2e) do(req *http.Request, token string) *http.Response {
	e.t.Helper()
	if token != "" {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: token})
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(e.t, err)
	e.t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func (e *e2e) register(username, password string) {
	e.t.Helper()
	resp := e.do(formRequest("/register", url.Values{"username": {username}, "password": {password}}), "")
	require.Equal(e.t, http.StatusFound, resp.StatusCode)
}

func (e *e2e) login(username, password string) string {
	e.t.Helper()
	resp := e.do(formRequest("/login", url.Values{"username": {username}, "password": {password}}), "")
	require.Equal(e.t, http.StatusFound, resp.StatusCode)
	for _, ck := range resp.Cookies() {
		if ck.Name == testCookie {
			return ck.Value
		}
	}
	e.t.Fatalf("no session cookie for %s", username)
	return ""
}

func (e *e2e) getJSON(path, token string, out any) int {
	e.t.Helper()
	resp := e.do(httptest.NewRequest(http.MethodGet, path, nil), token)
	if resp.StatusCode == http.StatusOK {
		require.NoError(e.t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func (e *e2e) postJSON(path, token, body string, out any) int {
	e.t.Helper()
	resp := e.do(jsonRequest(http.MethodPost, path, body), token)
	require.NoError(e.t, json.NewDecoder(resp.Body).Decode(out))
	return resp.StatusCode
}

func TestE2ERegisterAndLogin(t *testing.T) {
	e := newE2E(t)
	e.register("alice", "secret1")

	resp := e.do(formRequest("/register", url.Values{"username": {"alice"}, "password": {"other12"}}), "")
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	token := e.login("alice", "secret1")
	require.NotEmpty(t, token)

	for _, creds := range [][2]string{{"alicf", "secret1"}, {"alice", "secret2"}, {"Alice", "secret1"}} {
		resp := e.do(formRequest("/login", url.Values{"username": {creds[0]}, "password": {creds[1]}}), "")
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}
}

func TestE2EProjectsInvitesAndChat(t *testing.T) {
	e := newE2E(t)
	e.register("alice", "secret1")
	e.register("bob", "secret2")
	e.register("carol", "secret3")
	alice := e.login("alice", "secret1")
	bob := e.login("bob", "secret2")
	carol := e.login("carol", "secret3")

	var created api.MessageResponse
	require.Equal(t, http.StatusOK, e.postJSON("/create-project", alice, `{"title":"Website"}`, &created))
	require.Equal(t, "Project created", created.Message)
	projectID := created.ProjectID
	require.NotZero(t, projectID)

	var dash api.DashboardPage
	require.Equal(t, http.StatusOK, e.getJSON("/dashboard", alice, &dash))
	require.Equal(t, int64(1), dash.ProjectCount)
	require.Equal(t, http.StatusOK, e.getJSON("/dashboard", bob, &dash))
	require.Equal(t, int64(0), dash.ProjectCount)

	var errBody api.ErrorResponse
	require.Equal(t, http.StatusForbidden, e.postJSON("/invite-user", bob, `{"username":"carol","project_id":`+itoa(projectID)+`}`, &errBody))

	var invited api.MessageResponse
	require.Equal(t, http.StatusOK, e.postJSON("/invite-user", alice, `{"username":"bob","project_id":`+itoa(projectID)+`}`, &invited))
	require.Equal(t, "Client invited", invited.Message)

	require.Equal(t, http.StatusConflict, e.postJSON("/invite-user", alice, `{"username":"bob","project_id":`+itoa(projectID)+`}`, &errBody))
	require.Equal(t, "User already a member", errBody.Error)
	require.Equal(t, http.StatusNotFound, e.postJSON("/invite-user", alice, `{"username":"dave","project_id":`+itoa(projectID)+`}`, &errBody))
	require.Equal(t, "User not found", errBody.Error)

	var projects api.ProjectsPage
	require.Equal(t, http.StatusOK, e.getJSON("/projects", bob, &projects))
	require.Len(t, projects.Projects, 1)
	require.Equal(t, projectID, projects.Projects[0].ID)

	var clients api.ClientsPage
	require.Equal(t, http.StatusOK, e.getJSON("/clients", alice, &clients))
	require.Len(t, clients.Clients, 1)
	require.Equal(t, "bob", clients.Clients[0].Username)
	bobID := clients.Clients[0].ID

	var shared api.ProjectsPage
	require.Equal(t, http.StatusOK, e.getJSON("/client-projects/"+itoa(bobID), alice, &shared))
	require.Equal(t, []api.Project{{ID: projectID, Title: "Website", CreatedBy: projects.Projects[0].CreatedBy}}, shared.Projects)

	require.Equal(t, http.StatusForbidden, e.postJSON("/send-message", carol, `{"project_id":`+itoa(projectID)+`,"message":"let me in"}`, &errBody))
	require.Equal(t, http.StatusBadRequest, e.postJSON("/send-message", alice, `{"project_id":`+itoa(projectID)+`,"message":""}`, &errBody))

	var sent api.MessageResponse
	require.Equal(t, http.StatusOK, e.postJSON("/send-message", alice, `{"project_id":`+itoa(projectID)+`,"message":"hello"}`, &sent))
	require.Equal(t, "sent", sent.Message)
	require.Equal(t, http.StatusOK, e.postJSON("/send-message", bob, `{"project_id":`+itoa(projectID)+`,"message":"hi alice"}`, &sent))

	var chat api.ChatPage
	require.Equal(t, http.StatusOK, e.getJSON("/chat/"+itoa(projectID), bob, &chat))
	require.Equal(t, projectID, chat.ProjectID)
	require.Len(t, chat.Messages, 2)
	require.Equal(t, "hello", chat.Messages[0].Message)
	require.Equal(t, "alice", chat.Messages[0].Username)
	require.Equal(t, "hi alice", chat.Messages[1].Message)
	require.Equal(t, "bob", chat.Messages[1].Username)
	require.Len(t, chat.Messages[0].Timestamp, len("2006-01-02 15:04"))

	resp := e.do(httptest.NewRequest(http.MethodGet, "/chat/"+itoa(projectID), nil), carol)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestE2ELogoutRevokesCookie(t *testing.T) {
	e := newE2E(t)
	e.register("alice", "secret1")
	token := e.login("alice", "secret1")

	var dash api.DashboardPage
	require.Equal(t, http.StatusOK, e.getJSON("/dashboard", token, &dash))

	resp := e.do(httptest.NewRequest(http.MethodGet, "/logout", nil), token)
	require.Equal(t, http.StatusFound, resp.StatusCode)

	resp = e.do(httptest.NewRequest(http.MethodGet, "/dashboard", nil), token)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestE2ERegisterRejectsPaddedUsername(t *testing.T) {
	e := newE2E(t)

	resp := e.do(formRequest("/register", url.Values{"username": {" alice "}, "password": {"secret1"}}), "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = e.do(formRequest("/login", url.Values{"username": {"alice"}, "password": {"secret1"}}), "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	e.register("alice", "secret1")
	require.NotEmpty(t, e.login("alice", "secret1"))
}

func TestE2ESendMessagePublishesAuthor(t *testing.T) {
	pub := &recordingPublisher{}
	e := newE2EWithPublisher(t, pub)
	e.register("alice", "secret1")
	alice := e.login("alice", "secret1")

	var created api.MessageResponse
	require.Equal(t, http.StatusOK, e.postJSON("/create-project", alice, `{"title":"Website"}`, &created))

	var sent api.MessageResponse
	require.Equal(t, http.StatusOK, e.postJSON("/send-message", alice, `{"project_id":`+itoa(created.ProjectID)+`,"message":"hello"}`, &sent))

	events := pub.posted()
	require.Len(t, events, 1)
	require.Equal(t, "alice", events[0].Username)
	require.Equal(t, "hello", events[0].Body)
	require.Equal(t, created.ProjectID, events[0].ProjectID)
	require.NotZero(t, events[0].ID)
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
