package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"freelance-flow/config"
	"freelance-flow/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRepo(t *testing.T) *SQLite {
	t.Helper()
	ctx := context.Background()

	cfg := &config.Config{SQLite: config.SQLiteConfig{
		Path:         filepath.Join(t.TempDir(), "freelance_flow.db"),
		MaxOpenConns: 1,
	}}
	repo := New(ctx, zap.NewNop().Sugar(), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })
	return repo
}

func mustUser(t *testing.T, repo *SQLite, name string) *entities.User {
	t.Helper()
	u, err := repo.CreateUser(context.Background(), name, "hash-"+name)
	require.NoError(t, err)
	return u
}

func TestCreateUserUnique(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	u := mustUser(t, repo, "alice")
	require.NotZero(t, u.ID)

	_, err := repo.CreateUser(ctx, "alice", "other")
	require.ErrorIs(t, err, entities.ErrUserExists)

	got, err := repo.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.Equal(t, "hash-alice", got.PasswordHash)

	_, err = repo.GetUserByUsername(ctx, "Alice")
	require.ErrorIs(t, err, entities.ErrUserNotFound)
}

func TestProjectsAndMembership(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	u := mustUser(t, repo, "alice")
	v := mustUser(t, repo, "bob")
	w := mustUser(t, repo, "carol")

	p, err := repo.CreateProject(ctx, "Website", u.ID)
	require.NoError(t, err)
	require.Equal(t, u.ID, p.CreatedBy)

	ok, err := repo.IsMember(ctx, p.ID, u.ID)
	require.NoError(t, err)
	require.True(t, ok)

	dashU, err := repo.Dashboard(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), dashU.ProjectCount)

	dashV, err := repo.Dashboard(ctx, v.ID)
	require.NoError(t, err)
	require.Equal(t, int64(0), dashV.ProjectCount)

	require.NoError(t, repo.AddMember(ctx, p.ID, v.ID))
	require.ErrorIs(t, repo.AddMember(ctx, p.ID, v.ID), entities.ErrAlreadyMember)
	require.ErrorIs(t, repo.AddMember(ctx, p.ID+100, v.ID), entities.ErrProjectNotFound)

	_, err = repo.CreateProject(ctx, "Private", u.ID)
	require.NoError(t, err)

	vProjects, err := repo.ListMemberProjects(ctx, v.ID)
	require.NoError(t, err)
	require.Equal(t, []entities.Project{*p}, vProjects)

	uProjects, err := repo.ListMemberProjects(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, uProjects, 2)

	shared, err := repo.ListSharedProjects(ctx, u.ID, v.ID)
	require.NoError(t, err)
	require.Equal(t, []entities.Project{*p}, shared)

	none, err := repo.ListSharedProjects(ctx, u.ID, w.ID)
	require.NoError(t, err)
	require.Empty(t, none)

	clients, err := repo.ListClients(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, []entities.Client{{ID: v.ID, Username: "bob"}}, clients)

	wClients, err := repo.ListClients(ctx, w.ID)
	require.NoError(t, err)
	require.Empty(t, wClients)
}

func TestClientsDeduplicated(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	u := mustUser(t, repo, "alice")
	v := mustUser(t, repo, "bob")

	for _, title := range []string{"One", "Two"} {
		p, err := repo.CreateProject(ctx, title, u.ID)
		require.NoError(t, err)
		require.NoError(t, repo.AddMember(ctx, p.ID, v.ID))
	}

	clients, err := repo.ListClients(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, clients, 1)

	shared, err := repo.ListSharedProjects(ctx, v.ID, u.ID)
	require.NoError(t, err)
	require.Len(t, shared, 2)
}

func TestPendingTasks(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	u := mustUser(t, repo, "alice")
	v := mustUser(t, repo, "bob")

	mine, err := repo.CreateProject(ctx, "Mine", u.ID)
	require.NoError(t, err)
	theirs, err := repo.CreateProject(ctx, "Theirs", v.ID)
	require.NoError(t, err)

	tasks := []taskModel{
		{ProjectID: mine.ID, Title: "a", Status: "Pending"},
		{ProjectID: mine.ID, Title: "b", Status: "In Progress"},
		{ProjectID: mine.ID, Title: "c", Status: entities.TaskStatusCompleted},
		{ProjectID: mine.ID, Title: "d", Status: "completed"},
		{ProjectID: theirs.ID, Title: "e", Status: "Pending"},
	}
	require.NoError(t, repo.db.Create(&tasks).Error)

	dash, err := repo.Dashboard(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), dash.ProjectCount)
	require.Equal(t, int64(3), dash.PendingTasks)

	dash, err = repo.Dashboard(ctx, v.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), dash.PendingTasks)
}

func TestMessagesOrdered(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	u := mustUser(t, repo, "alice")
	v := mustUser(t, repo, "bob")
	p, err := repo.CreateProject(ctx, "Chat", u.ID)
	require.NoError(t, err)
	require.NoError(t, repo.AddMember(ctx, p.ID, v.ID))

	bodies := []struct {
		user *entities.User
		body string
	}{
		{u, "hello"},
		{v, "hi"},
		{u, "ship it"},
	}
	for _, b := range bodies {
		stored, err := repo.AppendMessage(ctx, entities.Message{
			ProjectID: p.ID,
			UserID:    b.user.ID,
			Body:      b.body,
			Timestamp: "2026-10-17 12:00",
		})
		require.NoError(t, err)
		require.NotZero(t, stored.ID)
		require.Equal(t, b.user.Username, stored.Username)
	}

	msgs, err := repo.ListMessages(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	for i, b := range bodies {
		require.Equal(t, b.body, msgs[i].Body)
		require.Equal(t, b.user.Username, msgs[i].Username)
		require.Equal(t, "2026-10-17 12:00", msgs[i].Timestamp)
	}
	require.Less(t, msgs[0].ID, msgs[1].ID)

	other, err := repo.ListMessages(ctx, p.ID+1)
	require.NoError(t, err)
	require.Empty(t, other)
}
