package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-contacts/internal/logger"
	"github.com/sbilibin2017/gw-contacts/internal/models"
)

const contactColumns = `id, first_name, last_name, email, phone_number, birthday, other, user_id, created_at, updated_at`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContactReadRepository reads contacts. Every query is restricted to one owner.
type ContactReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewContactReadRepository(db *sqlx.DB, txGetter TxGetter) *ContactReadRepository {
	return &ContactReadRepository{db: db, txGetter: txGetter}
}

func (r *ContactReadRepository) selectMany(ctx context.Context, query string, args ...any) ([]models.Contact, error) {
	contacts := make([]models.Contact, 0)
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &contacts, query, args...)

	// Log with query in single line
	logger.Log.Infow("db query",
		"query", oneLine(query),
		"args", args,
		"result", len(contacts),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *ContactReadRepository) selectOne(ctx context.Context, query string, args ...any) (*models.Contact, error) {
	var contact models.Contact
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &contact, query, args...)

	logger.Log.Infow("db query",
		"query", oneLine(query),
		"args", args,
		"result", contact.ID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *ContactReadRepository) List(ctx context.Context, ownerID int64, limit, offset int) ([]models.Contact, error) {
	query := `
		SELECT ` + contactColumns + `
		FROM contacts
		WHERE user_id = $1
		ORDER BY id
		LIMIT $2 OFFSET $3
	`
	return r.selectMany(ctx, query, ownerID, limit, offset)
}

func (r *ContactReadRepository) ListAll(ctx context.Context, ownerID int64) ([]models.Contact, error) {
	query := `
		SELECT ` + contactColumns + `
		FROM contacts
		WHERE user_id = $1 AND birthday IS NOT NULL
		ORDER BY id
	`
	return r.selectMany(ctx, query, ownerID)
}

func (r *ContactReadRepository) GetByID(ctx context.Context, ownerID, id int64) (*models.Contact, error) {
	query := `
		SELECT ` + contactColumns + `
		FROM contacts
		WHERE id = $1 AND user_id = $2
	`
	return r.selectOne(ctx, query, id, ownerID)
}

func (r *ContactReadRepository) GetByFirstName(ctx context.Context, ownerID int64, firstName string) ([]models.Contact, error) {
	query := `
		SELECT ` + contactColumns + `
		FROM contacts
		WHERE user_id = $1 AND first_name = $2
		ORDER BY id
	`
	return r.selectMany(ctx, query, ownerID, firstName)
}

func (r *ContactReadRepository) GetByLastName(ctx context.Context, ownerID int64, lastName string) ([]models.Contact, error) {
	query := `
		SELECT ` + contactColumns + `
		FROM contacts
		WHERE user_id = $1 AND last_name = $2
		ORDER BY id
	`
	return r.selectMany(ctx, query, ownerID, lastName)
}

func (r *ContactReadRepository) GetByEmail(ctx context.Context, ownerID int64, email string) (*models.Contact, error) {
	query := `
		SELECT ` + contactColumns + `
		FROM contacts
		WHERE user_id = $1 AND email = $2
	`
	return r.selectOne(ctx, query, ownerID, email)
}

// Search matches a case-insensitive substring of first name, last name or email.
func (r *ContactReadRepository) Search(ctx context.Context, ownerID int64, q string, limit, offset int) ([]models.Contact, error) {
	query := `
		SELECT ` + contactColumns + `
		FROM contacts
		WHERE user_id = $1
		  AND (first_name ILIKE $2 OR last_name ILIKE $2 OR email ILIKE $2)
		ORDER BY id
		LIMIT $3 OFFSET $4
	`
	pattern := "%" + likeEscaper.Replace(q) + "%"
	return r.selectMany(ctx, query, ownerID, pattern, limit, offset)
}

// ContactWriteRepository writes contacts. Update and Delete match on both
// the contact id and the owner in a single statement.
type ContactWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewContactWriteRepository(db *sqlx.DB, txGetter TxGetter) *ContactWriteRepository {
	return &ContactWriteRepository{db: db, txGetter: txGetter}
}

func (r *ContactWriteRepository) returning(ctx context.Context, query string, args ...any) (*models.Contact, error) {
	var contact models.Contact
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &contact, query, args...)

	logger.Log.Infow("db query",
		"query", oneLine(query),
		"args", args,
		"result", contact.ID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, translate(err)
	}
	return &contact, nil
}

func (r *ContactWriteRepository) Save(ctx context.Context, ownerID int64, in models.ContactInput) (*models.Contact, error) {
	query := `
		INSERT INTO contacts (first_name, last_name, email, phone_number, birthday, other, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + contactColumns
	return r.returning(ctx, query,
		in.FirstName, in.LastName, in.Email, in.PhoneNumber, in.Birthday, in.Other, ownerID)
}

func (r *ContactWriteRepository) Update(ctx context.Context, ownerID, id int64, in models.ContactInput) (*models.Contact, error) {
	query := `
		UPDATE contacts
		SET first_name = $3, last_name = $4, email = $5, phone_number = $6,
		    birthday = $7, other = $8, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + contactColumns
	return r.returning(ctx, query,
		id, ownerID, in.FirstName, in.LastName, in.Email, in.PhoneNumber, in.Birthday, in.Other)
}

func (r *ContactWriteRepository) Delete(ctx context.Context, ownerID, id int64) (*models.Contact, error) {
	query := `
		DELETE FROM contacts
		WHERE id = $1 AND user_id = $2
		RETURNING ` + contactColumns
	return r.returning(ctx, query, id, ownerID)
}
