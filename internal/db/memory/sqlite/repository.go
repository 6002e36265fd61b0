package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"sync"

	"github.com/glebzinovew-create/telegram-gpt-bot/internal/db/memory"
)

var _ memory.Repository = &RepositorySQLite{}

// RepositorySQLite persists conversation history in a single append-only
// table. Writes are serialized with an internal mutex since sqlite allows
// only one writer at a time and turns for different users may run
// concurrently.
type RepositorySQLite struct {
	db *sql.DB
	mu sync.Mutex
}

func NewRepositorySQLite(db *sql.DB) *RepositorySQLite {
	return &RepositorySQLite{db: db}
}

func (r *RepositorySQLite) Init() error {
	_, err := r.db.Exec(createTable)
	if err != nil {
		log.Println("[memory/RepositorySQLite.Init] failed to create table:", err)
		return err
	}
	log.Println("[memory/RepositorySQLite.Init] table created or already exists")
	return nil
}

func (r *RepositorySQLite) Close() error {
	log.Println("[memory/RepositorySQLite.Close] closing db connection")
	return r.db.Close()
}

func (r *RepositorySQLite) Append(ctx context.Context, userID string, role string, content string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.ExecContext(ctx, insertMessage, userID, role, content)
	if err != nil {
		log.Printf("[memory/RepositorySQLite.Append] userID=%s role=%s err=%v", userID, role, err)
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

func (r *RepositorySQLite) Window(ctx context.Context, userID string, limit int) ([]memory.Message, error) {
	if limit <= 0 {
		limit = memory.DefaultLimit
	}

	rows, err := r.db.QueryContext(ctx, selectWindow, userID, limit)
	if err != nil {
		log.Printf("[memory/RepositorySQLite.Window] userID=%s err=%v", userID, err)
		return nil, fmt.Errorf("select window: %w", err)
	}
	defer func(rows *sql.Rows) {
		if cerr := rows.Close(); cerr != nil {
			log.Println("[memory/RepositorySQLite.Window] failed to close rows:", cerr)
		}
	}(rows)

	messages := make([]memory.Message, 0, limit)
	for rows.Next() {
		var m memory.Message
		if err := rows.Scan(&m.Role, &m.Content); err != nil {
			log.Printf("[memory/RepositorySQLite.Window] failed to scan row: %v", err)
			return nil, fmt.Errorf("scan message row: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		log.Printf("[memory/RepositorySQLite.Window] rows error: %v", err)
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	// rows came newest-first, restore chronological order
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}

func (r *RepositorySQLite) Erase(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, err := r.db.ExecContext(ctx, deleteByUserId, userID)
	if err != nil {
		log.Printf("[memory/RepositorySQLite.Erase] userID=%s err=%v", userID, err)
		return fmt.Errorf("delete messages: %w", err)
	}

	if rows, err := res.RowsAffected(); err == nil {
		log.Printf("[memory/RepositorySQLite.Erase] userID=%s deleted=%d", userID, rows)
	}
	return nil
}
