package pgdb

import (
	"time"

	"foodshare-api/pkg/postgres"
)

const pingTimeout = 3 * time.Second

type DiagnosticsRepo struct {
	*postgres.Postgres
}

func NewDiagnosticsRepo(pgdb *postgres.Postgres) *DiagnosticsRepo {
	return &DiagnosticsRepo{pgdb}
}

func (r *DiagnosticsRepo) Ping() error {
	if err := r.Postgres.Ping(pingTimeout); err != nil {
		return err
	}

	return nil
}
