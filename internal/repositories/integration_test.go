//go:build integration

package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-contacts/internal/migrations"
	"github.com/sbilibin2017/gw-contacts/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgresContainer(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { container.Terminate(context.Background()) })

	host, _ := container.Host(ctx)
	port, _ := container.MappedPort(ctx, "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, migrations.Run(ctx, db.DB))
	return db
}

func TestIntegration_UserLifecycle(t *testing.T) {
	db := setupPostgresContainer(t)
	ctx := context.Background()

	reader := NewUserReadRepository(db, nil)
	writer := NewUserWriteRepository(db, nil)

	user, err := writer.Save(ctx, "alice", "a@x.io", "$2a$hash", nil)
	require.NoError(t, err)
	assert.False(t, user.Verification)

	_, err = writer.Save(ctx, "alice2", "a@x.io", "$2a$hash", nil)
	assert.ErrorIs(t, err, models.ErrDuplicate)

	require.NoError(t, writer.ConfirmEmail(ctx, "a@x.io"))
	token := "r1"
	require.NoError(t, writer.UpdateRefreshToken(ctx, user.ID, &token))

	got, err := reader.GetByEmail(ctx, "a@x.io")
	require.NoError(t, err)
	assert.True(t, got.Verification)
	require.NotNil(t, got.RefreshToken)
	assert.Equal(t, "r1", *got.RefreshToken)

	require.NoError(t, writer.UpdateRefreshToken(ctx, user.ID, nil))
	got, err = reader.GetByEmail(ctx, "a@x.io")
	require.NoError(t, err)
	assert.Nil(t, got.RefreshToken)

	missing, err := reader.GetByEmail(ctx, "nobody@x.io")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestIntegration_ContactOwnership(t *testing.T) {
	db := setupPostgresContainer(t)
	ctx := context.Background()

	users := NewUserWriteRepository(db, nil)
	owner, err := users.Save(ctx, "alice", "a@x.io", "h", nil)
	require.NoError(t, err)
	other, err := users.Save(ctx, "bobby", "b@x.io", "h", nil)
	require.NoError(t, err)

	reader := NewContactReadRepository(db, nil)
	writer := NewContactWriteRepository(db, nil)

	in := models.ContactInput{
		FirstName:   "John",
		LastName:    "Doe",
		Email:       "john@example.com",
		PhoneNumber: "+380501234567",
		Birthday:    models.NewDate(1990, time.May, 17),
		Other:       "None",
	}
	c, err := writer.Save(ctx, owner.ID, in)
	require.NoError(t, err)
	assert.Equal(t, in.Birthday, c.Birthday)

	_, err = writer.Save(ctx, other.ID, in)
	assert.ErrorIs(t, err, models.ErrDuplicate)

	foreign, err := reader.GetByID(ctx, other.ID, c.ID)
	require.NoError(t, err)
	assert.Nil(t, foreign)

	in.Other = "changed"
	updated, err := writer.Update(ctx, other.ID, c.ID, in)
	require.NoError(t, err)
	assert.Nil(t, updated)

	deleted, err := writer.Delete(ctx, other.ID, c.ID)
	require.NoError(t, err)
	assert.Nil(t, deleted)

	own, err := reader.GetByID(ctx, owner.ID, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "None", own.Other)

	found, err := reader.Search(ctx, owner.ID, "DOE", 10, 0)
	require.NoError(t, err)
	assert.Len(t, found, 1)

	deleted, err = writer.Delete(ctx, owner.ID, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, deleted.ID)
}

func TestIntegration_RateLimit(t *testing.T) {
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	defer rdb.Close()
	require.NoError(t, rdb.Ping(ctx).Err())

	repo := NewRateLimitRepository(rdb)

	for i := 0; i < 2; i++ {
		ok, _, err := repo.Allow(ctx, "user:1", 2, time.Second)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, retryAfter, err := repo.Allow(ctx, "user:1", 2, time.Second)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Greater(t, retryAfter, time.Duration(0))

	ok, _, err = repo.Allow(ctx, "user:2", 2, time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	time.Sleep(1500 * time.Millisecond)

	ok, _, err = repo.Allow(ctx, "user:1", 2, time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
}
