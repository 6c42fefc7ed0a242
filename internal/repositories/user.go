package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-contacts/internal/logger"
	"github.com/sbilibin2017/gw-contacts/internal/models"
)

const userColumns = `id, username, email, password, avatar, verification, refresh_token, created_at, updated_at`

type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByEmail returns nil without error when no user has the email.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
	`

	var user models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, email)

	// Log with query in single line
	logger.Log.Infow("db query",
		"query", oneLine(query),
		"args", []any{email},
		"result", user.ID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts an unverified user. A taken email yields models.ErrDuplicate.
func (r *UserWriteRepository) Save(ctx context.Context, username, email, passwordHash string, avatar *string) (*models.User, error) {
	query := `
		INSERT INTO users (username, email, password, avatar, verification, created_at, updated_at)
		VALUES ($1, $2, $3, $4, FALSE, NOW(), NOW())
		RETURNING ` + userColumns

	var user models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, username, email, passwordHash, avatar)

	logger.Log.Infow("db query",
		"query", oneLine(query),
		"args", []any{username, email, avatar},
		"result", user.ID,
		"error", err,
	)

	if err != nil {
		return nil, translate(err)
	}

	return &user, nil
}

// UpdateRefreshToken stores the current refresh token; nil clears the session.
func (r *UserWriteRepository) UpdateRefreshToken(ctx context.Context, userID int64, token *string) error {
	query := `
		UPDATE users
		SET refresh_token = $2, updated_at = NOW()
		WHERE id = $1
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, userID, token)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("db query",
		"query", oneLine(query),
		"args", []any{userID, token != nil},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// ConfirmEmail flips verification to true. Already verified rows are left untouched.
func (r *UserWriteRepository) ConfirmEmail(ctx context.Context, email string) error {
	query := `
		UPDATE users
		SET verification = TRUE, updated_at = NOW()
		WHERE email = $1 AND verification = FALSE
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, email)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("db query",
		"query", oneLine(query),
		"args", []any{email},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// UpdateAvatar sets the avatar URL and returns the updated user, or nil if
// the user no longer exists.
func (r *UserWriteRepository) UpdateAvatar(ctx context.Context, userID int64, url string) (*models.User, error) {
	query := `
		UPDATE users
		SET avatar = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	var user models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, userID, url)

	logger.Log.Infow("db query",
		"query", oneLine(query),
		"args", []any{userID, url},
		"result", user.ID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}
