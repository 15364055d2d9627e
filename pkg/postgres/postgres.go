package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type Postgres struct {
	Database   *sql.DB
	SqlBuilder squirrel.StatementBuilderType
	url        string
}

func NewDB(url string) (*Postgres, error) {
	driver := "postgres"
	db, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("error while opening database with driver `%s`. %w", driver, err)
	}

	return &Postgres{
		Database:   db,
		SqlBuilder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		url:        url,
	}, nil
}

// Ping checks the connection, giving up after timeout.
func (p *Postgres) Ping(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return p.Database.PingContext(ctx)
}

// NewListener opens a dedicated LISTEN connection on channel.
func (p *Postgres) NewListener(channel string, onEvent pq.EventCallbackType) (*pq.Listener, error) {
	listener := pq.NewListener(p.url, time.Second, time.Minute, onEvent)
	if err := listener.Listen(channel); err != nil {
		_ = listener.Close()
		return nil, fmt.Errorf("listen on `%s`: %w", channel, err)
	}

	return listener, nil
}

func (p *Postgres) Close() error {
	if p.Database != nil {
		err := p.Database.Close()
		if err != nil {
			return err
		}

		return nil
	}

	return nil
}

// IsUniqueViolation reports whether err is a PostgreSQL unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}

	return false
}
