package session

import (
	"fmt"
	"time"
)

// Session tracks one agent run: an identifier, when it started, and how
// many tool commands have executed.
type Session struct {
	ID          string
	StartTime   time.Time
	commandsRun int
}

// New creates a session with a timestamp-derived ID.
func New() *Session {
	return &Session{
		ID:        fmt.Sprintf("%d", time.Now().UnixNano()),
		StartTime: time.Now(),
	}
}

// RecordCommand counts one executed command.
func (s *Session) RecordCommand() {
	s.commandsRun++
}

// CommandsRun returns the number of commands executed so far.
func (s *Session) CommandsRun() int {
	return s.commandsRun
}

// Elapsed returns the time since the session started.
func (s *Session) Elapsed() time.Duration {
	return time.Since(s.StartTime)
}
