package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatLog struct {
	Id        uuid.UUID `json:"id" db:"id"`
	SessionId string    `json:"sessionId" db:"session_id"`
	UserId    *string   `json:"userId" db:"user_id"`
	Message   string    `json:"message" db:"message"`
	Response  string    `json:"response" db:"response"`
	Intent    *string   `json:"intent" db:"intent"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type ChatOutputModel struct {
	Reply  string  `json:"reply"`
	Intent *string `json:"intent"`
}
