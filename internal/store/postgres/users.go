package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/punchamoorthee/bankapi/internal/domain"
	"github.com/punchamoorthee/bankapi/internal/store"
)

type UserStore struct {
	s *Store
}

const userColumns = "id, username, email, password_hash, salt, COALESCE(session_token, ''), created_at"

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Salt, &u.SessionToken, &u.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &u, nil
}

func (r *UserStore) Create(ctx context.Context, u *domain.User) error {
	_, err := r.s.db.Exec(ctx,
		`INSERT INTO users (id, username, email, password_hash, salt, session_token, created_at)
		 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7)`,
		u.ID, u.Username, u.Email, u.PasswordHash, u.Salt, u.SessionToken, u.CreatedAt)
	if err != nil {
		return mapError(err)
	}
	return nil
}

func (r *UserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return scanUser(r.s.db.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1", id))
}

func (r *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return scanUser(r.s.db.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = $1", email))
}

func (r *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return scanUser(r.s.db.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE username = $1", username))
}

func (r *UserStore) List(ctx context.Context) ([]*domain.User, error) {
	rows, err := r.s.db.Query(ctx,
		"SELECT "+userColumns+" FROM users ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserStore) Update(ctx context.Context, u *domain.User) error {
	tag, err := r.s.db.Exec(ctx,
		`UPDATE users
		 SET username = $2, email = $3, password_hash = $4, salt = $5, session_token = NULLIF($6, '')
		 WHERE id = $1`,
		u.ID, u.Username, u.Email, u.PasswordHash, u.Salt, u.SessionToken)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// Delete removes the user; accounts and transactions go with them via the
// schema's ON DELETE CASCADE.
func (r *UserStore) Delete(ctx context.Context, id string) error {
	tag, err := r.s.db.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
