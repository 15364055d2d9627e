package memdb

import (
	"context"

	"foodshare-api/internal/entity"

	"github.com/google/uuid"
)

func (s *Store) CreateChatLog(ctx context.Context, log *entity.ChatLog) error {
	entry := *log
	if entry.Id == uuid.Nil {
		entry.Id = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.now()
	}

	s.mu.Lock()
	s.chatLogs = append(s.chatLogs, entry)
	s.mu.Unlock()

	return nil
}

// ChatLogs returns a copy of every logged exchange in insertion order.
func (s *Store) ChatLogs() []entity.ChatLog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	logs := make([]entity.ChatLog, len(s.chatLogs))
	copy(logs, s.chatLogs)

	return logs
}
