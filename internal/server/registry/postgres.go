package registry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/sonarauth/internal/common"
	"github.com/dmitrijs2005/sonarauth/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Insert relies on ON CONFLICT DO NOTHING so that concurrent inserts for
// the same username resolve inside the database: exactly one caller gets
// a row back, every other caller sees ErrAlreadyRegistered and the
// original entry stays untouched.
func (r *PostgresRepository) Insert(ctx context.Context, identity *Identity) error {

	query :=
		`INSERT INTO identities (username, pub_key)
		 VALUES ($1, $2)
		 ON CONFLICT (username) DO NOTHING
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		identity.Username, identity.PubKey).Scan(&identity.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.ErrAlreadyRegistered
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, username string) (*Identity, error) {
	query :=
		`SELECT username, pub_key, created_at FROM identities
		 WHERE username = $1
		 `

	identity := &Identity{}
	err := r.db.QueryRowContext(ctx, query, username).
		Scan(&identity.Username, &identity.PubKey, &identity.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return identity, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, username string) error {
	query :=
		`DELETE FROM identities
		 WHERE username = $1
		 `

	res, err := r.db.ExecContext(ctx, query, username)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
