// Package notify delivers one-time codes to users over an out-of-band
// channel. WhatsApp via Twilio is the only production channel.
package notify

import (
	"context"
	"errors"
	"sync"
)

var ErrNotConfigured = errors.New("notify: channel not configured")

// Message is a single outbound notification.
type Message struct {
	To   string // raw phone number as stored on the user
	Body string
}

type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

// Disabled rejects every message. It stands in when no credentials are set.
type Disabled struct{}

func (Disabled) Send(context.Context, Message) error { return ErrNotConfigured }

// Recorder keeps every message in memory. Err, when set, is returned from Send
// after the message has been recorded.
type Recorder struct {
	mu   sync.Mutex
	sent []Message
	Err  error
}

func (r *Recorder) Send(_ context.Context, msg Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, msg)
	return r.Err
}

// Sent returns a copy of the recorded messages.
func (r *Recorder) Sent() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Message(nil), r.sent...)
}

// Last returns the most recent message, if any.
func (r *Recorder) Last() (Message, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.sent) == 0 {
		return Message{}, false
	}
	return r.sent[len(r.sent)-1], true
}
