package pgdb

import (
	"database/sql"
	"errors"

	"foodshare-api/internal/repo/repo_errors"

	"github.com/google/uuid"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// parseId maps malformed ids to not found; they can never name a stored row.
func parseId(id string) (uuid.UUID, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, repo_errors.ErrNotFound
	}

	return uuidForm, nil
}

func rollback(tx *sql.Tx, err error) error {
	if e := tx.Rollback(); e != nil && !errors.Is(e, sql.ErrTxDone) {
		return errors.Join(err, e)
	}

	return err
}
