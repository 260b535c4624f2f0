package server

import (
	"fmt"
	"sync"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	RenderID  string    `json:"renderId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning", "error"
}

// WebLogger implements core.Logger by forwarding messages to a web console
type WebLogger struct {
	renderID string
	send     func(ConsoleMessage)
}

// NewWebLogger creates a new web logger for a specific render. Messages are
// sent to consoleChan without blocking and dropped when it is full.
func NewWebLogger(renderID string, consoleChan chan<- ConsoleMessage) core.Logger {
	return &WebLogger{
		renderID: renderID,
		send: func(msg ConsoleMessage) {
			if consoleChan == nil {
				return
			}
			select {
			case consoleChan <- msg:
			default:
				// Channel full, skip (don't block)
			}
		},
	}
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	// Also write to stdout for server logs
	fmt.Print(message)

	wl.send(ConsoleMessage{
		RenderID:  wl.renderID,
		Message:   message,
		Timestamp: time.Now(),
		Level:     "info",
	})
}

// Console keeps the most recent messages logged by renders
type Console struct {
	mu       sync.Mutex
	messages []ConsoleMessage
	limit    int
}

// NewConsole creates a console that retains up to limit messages
func NewConsole(limit int) *Console {
	return &Console{limit: limit}
}

// Logger returns a logger whose messages show up in this console
func (c *Console) Logger(renderID string) core.Logger {
	return &WebLogger{renderID: renderID, send: c.add}
}

// add appends a message, dropping the oldest once the limit is reached
func (c *Console) add(msg ConsoleMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.messages = append(c.messages, msg)
	if len(c.messages) > c.limit {
		c.messages = append([]ConsoleMessage(nil), c.messages[len(c.messages)-c.limit:]...)
	}
}

// Recent returns retained messages, oldest first
func (c *Console) Recent() []ConsoleMessage {
	c.mu.Lock()
	defer c.mu.Unlock()

	recent := make([]ConsoleMessage, len(c.messages))
	copy(recent, c.messages)
	return recent
}
