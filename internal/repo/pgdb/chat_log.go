package pgdb

import (
	"context"
	"time"

	"foodshare-api/internal/entity"
	"foodshare-api/pkg/postgres"

	"github.com/google/uuid"
)

type ChatLogRepo struct {
	*postgres.Postgres
}

func NewChatLogRepo(pgdb *postgres.Postgres) *ChatLogRepo {
	return &ChatLogRepo{pgdb}
}

func (r *ChatLogRepo) CreateChatLog(ctx context.Context, log *entity.ChatLog) error {
	if log.Id == uuid.Nil {
		log.Id = uuid.New()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now().UTC()
	}

	createChatLogSql, args, _ := r.SqlBuilder.
		Insert("chat_logs").
		Columns("id", "session_id", "user_id", "message", "response", "intent", "created_at").
		Values(log.Id, log.SessionId, log.UserId, log.Message, log.Response, log.Intent, log.CreatedAt).
		ToSql()

	_, err := r.Database.ExecContext(ctx, createChatLogSql, args...)

	return err
}
