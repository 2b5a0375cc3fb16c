// Package flash holds one-shot notices that survive exactly one redirect.
package flash

import (
	"context"
	"sync"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

type Message struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
}

func Success(text string) Message { return Message{Level: LevelSuccess, Text: text} }

func Error(text string) Message { return Message{Level: LevelError, Text: text} }

// Store keeps pending messages per browser session. Pop returns the
// messages in the order they were pushed and forgets them.
type Store interface {
	Push(ctx context.Context, sessionID string, msg Message) error
	Pop(ctx context.Context, sessionID string) ([]Message, error)
}

// MemoryStore is a process-local Store for single-instance setups.
type MemoryStore struct {
	mu       sync.Mutex
	messages map[string][]Message
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{messages: make(map[string][]Message)}
}

func (s *MemoryStore) Push(_ context.Context, sessionID string, msg Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages[sessionID] = append(s.messages[sessionID], msg)
	return nil
}

func (s *MemoryStore) Pop(_ context.Context, sessionID string) ([]Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msgs := s.messages[sessionID]
	delete(s.messages, sessionID)
	return msgs, nil
}
