package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/glebzinovew-create/telegram-gpt-bot/internal/db/settings"
)

var _ settings.Repository = &RepositorySQLite{}

type RepositorySQLite struct {
	db *sql.DB
}

func NewRepositorySQLite(db *sql.DB) *RepositorySQLite {
	return &RepositorySQLite{db: db}
}

func (r *RepositorySQLite) Init() error {
	_, err := r.db.Exec(createTable)
	if err != nil {
		log.Println("[settings/RepositorySQLite.Init] failed to create table:", err)
		return err
	}
	log.Println("[settings/RepositorySQLite.Init] table created or already exists")
	return nil
}

func (r *RepositorySQLite) Upsert(ctx context.Context, userID string, voice string) error {
	_, err := r.db.ExecContext(ctx, upsert, userID, voice)
	if err != nil {
		log.Printf("[settings/RepositorySQLite.Upsert] userID=%s voice=%s err=%v", userID, voice, err)
		return err
	}
	log.Printf("[settings/RepositorySQLite.Upsert] success userID=%s voice=%s", userID, voice)
	return nil
}

func (r *RepositorySQLite) GetById(ctx context.Context, userID string) (voice string, found bool, err error) {
	row := r.db.QueryRowContext(ctx, selectByUserId, userID)
	switch err = row.Scan(&voice); {
	case err == nil:
		return voice, true, nil
	case errors.Is(err, sql.ErrNoRows):
		return "", false, nil
	default:
		log.Printf("[settings/RepositorySQLite.GetById] userID=%s err=%v", userID, err)
		return "", false, err
	}
}

func (r *RepositorySQLite) DeleteById(ctx context.Context, userID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteByUserId, userID)
	if err != nil {
		log.Printf("[settings/RepositorySQLite.DeleteById] userID=%s err=%v", userID, err)
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		log.Printf("[settings/RepositorySQLite.DeleteById] userID=%s RowsAffected err=%v", userID, err)
		return false, err
	}

	return rows > 0, nil
}
