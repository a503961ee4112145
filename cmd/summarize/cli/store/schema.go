package store

import "database/sql"

// InitSchema creates the cache DB tables if they do not exist.
func InitSchema(d *sql.DB) error {
	if _, err := d.Exec(summariesDDL); err != nil {
		return err
	}
	_, err := d.Exec(versionCheckDDL)
	return err
}

const summariesDDL = `
CREATE TABLE IF NOT EXISTS summaries (
	hash       VARCHAR PRIMARY KEY,
	run_id     VARCHAR NOT NULL,
	created_at TIMESTAMP NOT NULL,
	payload    BLOB NOT NULL
);
`

// version_check holds a single row (id = 0) recording the last time the
// CLI checked GitHub for a newer release, so that check is throttled
// across invocations without a separate side-cache file.
const versionCheckDDL = `
CREATE TABLE IF NOT EXISTS version_check (
	id              INTEGER PRIMARY KEY,
	last_check_time TIMESTAMP NOT NULL
);
`
