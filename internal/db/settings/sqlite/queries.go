package sqlite

import "fmt"

const (
	tableSettings = "settings"

	colUserID = "user_id"
	colVoice  = "voice"
)

var createTable = fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
  %s TEXT PRIMARY KEY,
  %s TEXT NOT NULL
);`, tableSettings, colUserID, colVoice)

var upsert = fmt.Sprintf(`
INSERT INTO %s (%s, %s)
VALUES (?, ?)
ON CONFLICT(%s) DO UPDATE SET
  %s = excluded.%s;
`, tableSettings,
	colUserID, colVoice,
	colUserID,
	colVoice, colVoice,
)

var selectByUserId = fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ?;`,
	colVoice, tableSettings, colUserID)

var deleteByUserId = fmt.Sprintf(`DELETE FROM %s WHERE %s = ?;`,
	tableSettings, colUserID)
