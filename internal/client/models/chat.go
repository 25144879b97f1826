package models

import "time"

// Sender tells who authored a chat message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

type ChatMessage struct {
	ID        string    `json:"id"`
	Type      Sender    `json:"type"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Mood      string    `json:"mood,omitempty"`
}

// ChatExchange pairs one user message with the generated reply.
type ChatExchange struct {
	UserMessage ChatMessage `json:"userMessage"`
	AIResponse  ChatMessage `json:"aiResponse"`
}
