//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/habiro-server/internal/model"
	repo "github.com/dtroode/habiro-server/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "habiro_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/habiro_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func connect(t *testing.T) *repo.Connection {
	t.Helper()
	conn, err := repo.NewConnection(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func seedUser(t *testing.T, conn *repo.Connection, name string, createdAt time.Time) model.User {
	t.Helper()
	u := model.User{
		ID:          uuid.New(),
		Handle:      name + "-" + uuid.NewString()[:8],
		DisplayName: name,
		Email:       name + "-" + uuid.NewString()[:8] + "@example.com",
		CreatedAt:   createdAt,
	}
	_, err := conn.Exec(context.Background(),
		`INSERT INTO users (id, handle, display_name, email, phone, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		u.ID, u.Handle, u.DisplayName, u.Email, "+1"+u.ID.String()[:8], u.CreatedAt)
	require.NoError(t, err)
	u.Phone = "+1" + u.ID.String()[:8]
	return u
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	conn := connect(t)
	users := repo.NewUserRepository(conn)

	u := seedUser(t, conn, "ann", time.Now())

	got, err := users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Handle, got.Handle)

	for _, q := range []string{u.Handle, u.Email, u.Phone} {
		got, err := users.FindByContact(ctx, q)
		require.NoError(t, err, q)
		assert.Equal(t, u.ID, got.ID)
	}

	_, err = users.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, model.ErrNotFound)
	_, err = users.FindByContact(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestMessageRepository_Pagination(t *testing.T) {
	ctx := context.Background()
	conn := connect(t)
	messages := repo.NewMessageRepository(conn)

	a := seedUser(t, conn, "a", time.Now())
	b := seedUser(t, conn, "b", time.Now())

	var ids []int64
	for i := 0; i < 125; i++ {
		sender, receiver := a.ID, b.ID
		if i%2 == 1 {
			sender, receiver = b.ID, a.ID
		}
		m, err := messages.Create(ctx, model.Message{SenderID: sender, ReceiverID: receiver, Body: fmt.Sprint(i), Key: "k"})
		require.NoError(t, err)
		assert.False(t, m.IsRead)
		ids = append(ids, m.ID)
	}

	count, err := messages.CountVisible(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 125, count)

	page1, err := messages.ListVisible(ctx, a.ID, b.ID, 50, 0)
	require.NoError(t, err)
	require.Len(t, page1, 50)
	assert.Equal(t, ids[124], page1[0].ID)

	page3, err := messages.ListVisible(ctx, a.ID, b.ID, 50, 100)
	require.NoError(t, err)
	require.Len(t, page3, 25)
	assert.Equal(t, ids[0], page3[24].ID)
}

func TestMessageRepository_MarkReadIdempotent(t *testing.T) {
	ctx := context.Background()
	conn := connect(t)
	messages := repo.NewMessageRepository(conn)

	a := seedUser(t, conn, "a", time.Now())
	b := seedUser(t, conn, "b", time.Now())

	for i := 0; i < 3; i++ {
		_, err := messages.Create(ctx, model.Message{SenderID: a.ID, ReceiverID: b.ID, Body: "x", Key: "k"})
		require.NoError(t, err)
	}
	_, err := messages.Create(ctx, model.Message{SenderID: b.ID, ReceiverID: a.ID, Body: "y", Key: "k"})
	require.NoError(t, err)

	n, err := messages.MarkRead(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	n, err = messages.MarkRead(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	list, err := messages.ListVisible(ctx, b.ID, a.ID, 10, 0)
	require.NoError(t, err)
	for _, m := range list {
		assert.Equal(t, m.SenderID == a.ID, m.IsRead)
	}
}

func TestMessageRepository_DeleteForParty(t *testing.T) {
	ctx := context.Background()
	conn := connect(t)
	messages := repo.NewMessageRepository(conn)

	a := seedUser(t, conn, "a", time.Now())
	b := seedUser(t, conn, "b", time.Now())

	for _, order := range [][2]uuid.UUID{{a.ID, b.ID}, {b.ID, a.ID}} {
		m, err := messages.Create(ctx, model.Message{SenderID: a.ID, ReceiverID: b.ID, Body: "x", Key: "k"})
		require.NoError(t, err)

		purged, err := messages.DeleteForParty(ctx, m.ID, order[0])
		require.NoError(t, err)
		assert.False(t, purged)

		// still visible to the other party only
		first, err := messages.CountVisible(ctx, order[0], order[1])
		require.NoError(t, err)
		second, err := messages.CountVisible(ctx, order[1], order[0])
		require.NoError(t, err)
		assert.Equal(t, 0, first)
		assert.Equal(t, 1, second)

		purged, err = messages.DeleteForParty(ctx, m.ID, order[1])
		require.NoError(t, err)
		assert.True(t, purged)

		_, err = messages.DeleteForParty(ctx, m.ID, order[0])
		assert.ErrorIs(t, err, model.ErrNotFound)
	}

	m, err := messages.Create(ctx, model.Message{SenderID: a.ID, ReceiverID: b.ID, Body: "x", Key: "k"})
	require.NoError(t, err)
	_, err = messages.DeleteForParty(ctx, m.ID, uuid.New())
	assert.ErrorIs(t, err, model.ErrUnauthorized)
}

func TestMessageRepository_DeleteForPartyConcurrent(t *testing.T) {
	ctx := context.Background()
	conn := connect(t)
	messages := repo.NewMessageRepository(conn)

	a := seedUser(t, conn, "a", time.Now())
	b := seedUser(t, conn, "b", time.Now())

	for i := 0; i < 20; i++ {
		m, err := messages.Create(ctx, model.Message{SenderID: a.ID, ReceiverID: b.ID, Body: "x", Key: "k"})
		require.NoError(t, err)

		type result struct {
			purged bool
			err    error
		}
		results := make([]result, 2)
		start := make(chan struct{})
		var wg sync.WaitGroup
		for j, party := range []uuid.UUID{a.ID, b.ID} {
			wg.Add(1)
			go func(j int, party uuid.UUID) {
				defer wg.Done()
				<-start
				purged, err := messages.DeleteForParty(ctx, m.ID, party)
				results[j] = result{purged: purged, err: err}
			}(j, party)
		}
		close(start)
		wg.Wait()

		purges := 0
		for _, r := range results {
			if r.err != nil {
				assert.ErrorIs(t, r.err, model.ErrNotFound)
				continue
			}
			if r.purged {
				purges++
			}
		}
		assert.Equal(t, 1, purges, "exactly one delete must purge the row")

		_, err = messages.DeleteForParty(ctx, m.ID, a.ID)
		assert.ErrorIs(t, err, model.ErrNotFound, "row must be gone")
	}

	count, err := messages.CountVisible(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
	count, err = messages.CountVisible(ctx, b.ID, a.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestFriendRepository(t *testing.T) {
	ctx := context.Background()
	conn := connect(t)
	friends := repo.NewFriendRepository(conn)
	messages := repo.NewMessageRepository(conn)

	a := seedUser(t, conn, "a", time.Now())
	b := seedUser(t, conn, "b", time.Now())
	c := seedUser(t, conn, "c", time.Now())

	req, err := friends.CreateRequest(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, model.FriendRequestPending, req.Status)

	_, err = friends.CreateRequest(ctx, a.ID, b.ID)
	assert.ErrorIs(t, err, model.ErrAlreadyExists)

	incoming, err := friends.ListIncoming(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, incoming, 1)

	accepted, err := friends.AcceptRequest(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, model.FriendRequestAccepted, accepted.Status)

	_, err = friends.AcceptRequest(ctx, req.ID)
	assert.ErrorIs(t, err, model.ErrRequestNotPending)
	_, err = friends.AcceptRequest(ctx, 1<<40)
	assert.ErrorIs(t, err, model.ErrNotFound)

	for _, pair := range [][2]uuid.UUID{{a.ID, b.ID}, {b.ID, a.ID}} {
		ok, err := friends.AreFriends(ctx, pair[0], pair[1])
		require.NoError(t, err)
		assert.True(t, ok)
	}

	rejected, err := friends.CreateRequest(ctx, c.ID, a.ID)
	require.NoError(t, err)
	_, err = friends.RejectRequest(ctx, rejected.ID)
	require.NoError(t, err)
	ok, err := friends.AreFriends(ctx, a.ID, c.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	reopened, err := friends.ReopenRequest(ctx, rejected.ID)
	require.NoError(t, err)
	assert.Equal(t, model.FriendRequestPending, reopened.Status)

	_, err = messages.Create(ctx, model.Message{SenderID: b.ID, ReceiverID: a.ID, Body: "hi", Key: "k"})
	require.NoError(t, err)

	list, err := friends.ListFriends(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].Friend.ID)
	require.NotNil(t, list[0].LastMessage)
	assert.Equal(t, "hi", list[0].LastMessage.Body)
	assert.Equal(t, 1, list[0].UnreadCount)
}

func TestRankingRepository(t *testing.T) {
	ctx := context.Background()
	conn := connect(t)
	db, err := repo.OpenReadDB(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	ranking := repo.NewRankingRepository(db)

	u := seedUser(t, conn, "ranked", time.Now())
	var habitID int64
	require.NoError(t, conn.QueryRow(ctx, `INSERT INTO habits (user_id, title) VALUES ($1, 'run') RETURNING id`, u.ID).Scan(&habitID))

	today := time.Now().UTC()
	for i, done := range []bool{true, true, false} {
		_, err := conn.Exec(ctx, `INSERT INTO tasks (habit_id, date, is_completed) VALUES ($1, $2, $3)`,
			habitID, today.AddDate(0, 0, -i*10), done)
		require.NoError(t, err)
	}

	all, err := ranking.Tally(ctx, nil, today)
	require.NoError(t, err)
	from := today.AddDate(0, 0, -5)
	recent, err := ranking.Tally(ctx, &from, today)
	require.NoError(t, err)

	find := func(tallies []model.TaskTally) model.TaskTally {
		for _, tt := range tallies {
			if tt.UserID == u.ID {
				return tt
			}
		}
		t.Fatalf("user %s missing from tally", u.ID)
		return model.TaskTally{}
	}

	assert.Equal(t, 3, find(all).Total)
	assert.Equal(t, 2, find(all).Completed)
	assert.Equal(t, 1, find(recent).Total)
	assert.Equal(t, 1, find(recent).Completed)
}
