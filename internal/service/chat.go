package service

import (
	"context"
	"strings"

	"foodshare-api/internal/chatbot"
	"foodshare-api/internal/entity"
	"foodshare-api/internal/repo"

	"github.com/uber-go/tally"
)

type ChatService struct {
	chatLogRepo repo.ChatLog
	messages    tally.Counter
}

func NewChatService(repos *repo.Repositories, scope tally.Scope) *ChatService {
	return &ChatService{
		chatLogRepo: repos.ChatLog,
		messages:    scope.Counter("chat_messages"),
	}
}

// Chat answers message and records the exchange. The reply never depends on the log write.
func (s *ChatService) Chat(ctx context.Context, viewer *entity.Viewer, sessionId string, message string) (*entity.ChatOutputModel, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrEmptyMessage
	}

	reply, intent := chatbot.Reply(message)
	s.messages.Inc(1)

	entry := &entity.ChatLog{
		SessionId: sessionId,
		Message:   message,
		Response:  reply,
		Intent:    intent,
	}
	if viewer.Authenticated() {
		uid := viewer.Uid
		entry.UserId = &uid
	}

	if err := s.chatLogRepo.CreateChatLog(ctx, entry); err != nil {
		log.WithError(err).Warn("chat log write failed")
	}

	return &entity.ChatOutputModel{Reply: reply, Intent: intent}, nil
}
