package client

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/fadilmartias/job-board/internal/dto"
	"github.com/google/uuid"
)

// DefaultPollInterval matches the refresh cadence of the thread view.
const DefaultPollInterval = 30 * time.Second

const maxMessageLength = 2000

// ThreadMessage is one entry of the local thread view. Pending entries
// are optimistic sends not yet confirmed by the server.
type ThreadMessage struct {
	ID        string
	Content   string
	CreatedAt time.Time
	Sender    dto.MessageSender
	Pending   bool
}

// SendFailedError reports a send that exhausted its retries. Content
// carries the text back so the caller can restore it to the input box.
type SendFailedError struct {
	Content string
	Err     error
}

func (e *SendFailedError) Error() string {
	return fmt.Sprintf("send failed: %v", e.Err)
}

func (e *SendFailedError) Unwrap() error { return e.Err }

// Thread is a live message-thread session for one application. It polls
// the server on a fixed interval and applies sends optimistically,
// reconciling them once the server confirms.
type Thread struct {
	client        *Client
	applicationID string
	persona       Persona
	interval      time.Duration

	mu       sync.Mutex
	messages []ThreadMessage
	onUpdate func([]ThreadMessage)
}

func NewThread(client *Client, applicationID string, persona Persona) *Thread {
	return &Thread{
		client:        client,
		applicationID: applicationID,
		persona:       persona,
		interval:      DefaultPollInterval,
	}
}

// SetInterval overrides the poll interval. Must be called before Poll.
func (t *Thread) SetInterval(d time.Duration) {
	t.interval = d
}

// OnUpdate registers a callback invoked with a snapshot after every
// change to the thread. Must be called before Poll or Send.
func (t *Thread) OnUpdate(fn func([]ThreadMessage)) {
	t.onUpdate = fn
}

// Messages returns a snapshot of the current thread.
func (t *Thread) Messages() []ThreadMessage {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

func (t *Thread) snapshotLocked() []ThreadMessage {
	out := make([]ThreadMessage, len(t.messages))
	copy(out, t.messages)
	return out
}

func (t *Thread) notifyLocked() {
	if t.onUpdate != nil {
		t.onUpdate(t.snapshotLocked())
	}
}

// Poll refreshes the thread on the configured interval until ctx is
// canceled. Fetch errors leave the current view in place; the next tick
// tries again.
func (t *Thread) Poll(ctx context.Context) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	_ = t.Refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = t.Refresh(ctx)
		}
	}
}

// Refresh replaces the confirmed portion of the thread with the server
// state, keyed by message ID. Pending optimistic entries are kept at the
// end until their send resolves.
func (t *Thread) Refresh(ctx context.Context) error {
	items, err := t.client.Messages(ctx, t.applicationID)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	confirmed := make([]ThreadMessage, 0, len(items))
	for _, item := range items {
		confirmed = append(confirmed, ThreadMessage{
			ID:        item.ID,
			Content:   item.Content,
			CreatedAt: item.CreatedAt,
			Sender:    item.Sender,
		})
	}
	for _, m := range t.messages {
		if m.Pending {
			confirmed = append(confirmed, m)
		}
	}
	t.messages = confirmed
	t.notifyLocked()
	return nil
}

// Send appends the message optimistically, then delivers it with
// retries. Transient failures (network errors, 5xx) back off
// exponentially; a 4xx fails immediately. On success the temp entry
// takes the server's ID and timestamp. On terminal failure the entry is
// removed and the text is returned inside a SendFailedError.
func (t *Thread) Send(ctx context.Context, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return errors.New("message content is required")
	}
	if len(content) > maxMessageLength {
		return fmt.Errorf("message content exceeds %d characters", maxMessageLength)
	}

	tempID := "temp-" + uuid.NewString()
	t.mu.Lock()
	t.messages = append(t.messages, ThreadMessage{
		ID:        tempID,
		Content:   content,
		CreatedAt: time.Now(),
		Sender: dto.MessageSender{
			Type: t.persona.Type,
			ID:   t.persona.ID,
			Name: t.persona.Name,
		},
		Pending: true,
	})
	t.notifyLocked()
	t.mu.Unlock()

	// One token for the whole attempt, so server-side deduplication
	// catches a retry whose first try actually landed.
	req := dto.CreateMessageRequest{
		ApplicationID: t.applicationID,
		Content:       content,
		ClientToken:   uuid.NewString(),
	}
	if t.persona.Type == dto.PersonaTypeHiringManager {
		req.HiringManagerID = t.persona.ID
	} else {
		req.CandidateID = t.persona.ID
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 4), ctx)
	message, err := backoff.RetryWithData(func() (*dto.MessageItem, error) {
		sent, err := t.client.SendMessage(ctx, req)
		if err != nil {
			var apiErr *APIError
			if errors.As(err, &apiErr) && !apiErr.Temporary() {
				return nil, backoff.Permanent(err)
			}
			return nil, err
		}
		return &dto.MessageItem{
			ID:        sent.ID.String(),
			Content:   sent.Content,
			CreatedAt: sent.CreatedAt,
		}, nil
	}, policy)

	t.mu.Lock()
	defer t.mu.Unlock()

	if err != nil {
		t.removeLocked(tempID)
		t.notifyLocked()
		return &SendFailedError{Content: content, Err: err}
	}

	// A poll may have picked up the confirmed row while the response was
	// in flight; then the temp entry is redundant, not renamed.
	for i := range t.messages {
		if t.messages[i].ID == message.ID && !t.messages[i].Pending {
			t.removeLocked(tempID)
			t.notifyLocked()
			return nil
		}
	}
	for i := range t.messages {
		if t.messages[i].ID == tempID {
			t.messages[i].ID = message.ID
			t.messages[i].CreatedAt = message.CreatedAt
			t.messages[i].Pending = false
			break
		}
	}
	sort.SliceStable(t.messages, func(i, j int) bool {
		return t.messages[i].CreatedAt.Before(t.messages[j].CreatedAt)
	})
	t.notifyLocked()
	return nil
}

func (t *Thread) removeLocked(id string) {
	for i := range t.messages {
		if t.messages[i].ID == id {
			t.messages = append(t.messages[:i], t.messages[i+1:]...)
			return
		}
	}
}
