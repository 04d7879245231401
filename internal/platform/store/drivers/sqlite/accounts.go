package sqlite

import (
	"context"
)

type accountsRepo struct {
	db dbtx
}

func (r *accountsRepo) CreateAccount(ctx context.Context, id, email, passwordHash, displayName string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO accounts (id, email, password_hash, display_name) VALUES (?, ?, ?, ?)`,
		id, email, passwordHash, displayName,
	)
	return mapAlreadyExists(err)
}

func (r *accountsRepo) GetAccountByEmail(ctx context.Context, email string) (string, string, error) {
	var id, hash string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, password_hash FROM accounts WHERE email = ?`, email,
	).Scan(&id, &hash)
	if err != nil {
		return "", "", mapNotFound(err)
	}
	return id, hash, nil
}
