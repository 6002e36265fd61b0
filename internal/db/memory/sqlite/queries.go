package sqlite

import "fmt"

const (
	tableName  = "memory"
	colUserId  = "user_id"
	colRole    = "role"
	colContent = "content"
)

var createTable = fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
  %s TEXT NOT NULL,
  %s TEXT NOT NULL,
  %s TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_memory_user_id ON %s (%s);`,
	tableName,
	colUserId,
	colRole,
	colContent,
	tableName, colUserId,
)

var insertMessage = fmt.Sprintf(`
INSERT INTO %s (%s, %s, %s)
VALUES (?, ?, ?);`,
	tableName,
	colUserId, colRole, colContent,
)

// Newest rows first so the LIMIT bounds the scan; callers restore
// chronological order in memory.
var selectWindow = fmt.Sprintf(`
SELECT %s, %s
FROM %s
WHERE %s = ?
ORDER BY rowid DESC
LIMIT ?;`,
	colRole, colContent,
	tableName,
	colUserId,
)

var deleteByUserId = fmt.Sprintf(`
DELETE FROM %s
WHERE %s = ?;`,
	tableName,
	colUserId,
)
