package server

import (
	"fmt"
	"log"
	"strings"
	"time"
)

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	RenderID  string    `json:"renderId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning", "error"
}

// WebLogger implements core.Logger by forwarding render messages to a console channel
type WebLogger struct {
	renderID    string
	consoleChan chan<- ConsoleMessage
}

// NewWebLogger creates a new web logger for a specific render
func NewWebLogger(renderID string, consoleChan chan<- ConsoleMessage) *WebLogger {
	return &WebLogger{
		renderID:    renderID,
		consoleChan: consoleChan,
	}
}

// Printf implements core.Logger. Messages are dropped when the channel is full.
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	log.Printf("[%s] %s", wl.renderID, strings.TrimRight(message, "\n"))

	if wl.consoleChan == nil {
		return
	}
	select {
	case wl.consoleChan <- ConsoleMessage{
		RenderID:  wl.renderID,
		Message:   message,
		Timestamp: time.Now(),
		Level:     messageLevel(message),
	}:
	default:
	}
}

// messageLevel derives the console level from the message prefix
func messageLevel(message string) string {
	lower := strings.ToLower(message)
	switch {
	case strings.HasPrefix(lower, "error"):
		return "error"
	case strings.HasPrefix(lower, "warning"):
		return "warning"
	default:
		return "info"
	}
}

// logWriter implements core.Logger on the server log
type logWriter struct {
	prefix string
}

func (lw *logWriter) Printf(format string, args ...interface{}) {
	log.Printf("[%s] %s", lw.prefix, strings.TrimRight(fmt.Sprintf(format, args...), "\n"))
}
