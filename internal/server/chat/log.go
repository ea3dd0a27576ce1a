package chat

import (
	"slices"
	"sync"
)

// Log is an append-only message log. Sequence numbers start at 1 and have no
// gaps, so the message with sequence n lives at index n-1.
type Log struct {
	mu       sync.RWMutex
	messages []ChatMessage
}

func NewLog() *Log {
	return &Log{}
}

// Append stores a message and returns its sequence number.
func (l *Log) Append(username, text string) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	seq := uint64(len(l.messages)) + 1
	l.messages = append(l.messages, ChatMessage{Sequence: seq, Username: username, Text: text})
	return seq
}

// ReadFrom returns a copy of every message with a sequence number greater
// than after, in ascending order. after == 0 yields the full history.
func (l *Log) ReadFrom(after uint64) []ChatMessage {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if after >= uint64(len(l.messages)) {
		return []ChatMessage{}
	}
	return slices.Clone(l.messages[after:])
}

func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.messages)
}
