// Package bridge carries host RPC over a JSON frame stream: request/response
// invokes correlated by id, fire-and-forget sends, and subscription callbacks
// for host-pushed channels.
package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/intentvault/widgets/internal/logger"
)

// frame is the wire format. Kind is one of "invoke", "reply" or "send";
// replies echo the invoke's id.
type frame struct {
	Kind    string          `json:"kind"`
	ID      uint64          `json:"id,omitempty"`
	Channel string          `json:"channel,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Handler receives the payload of a host-pushed frame.
type Handler func(data json.RawMessage)

// Bridge multiplexes invokes, sends and subscriptions over one stream. All
// methods are safe for concurrent use.
type Bridge struct {
	enc   *json.Encoder
	encMu sync.Mutex

	log *logger.Logger

	mu       sync.Mutex
	nextID   uint64
	pending  map[uint64]chan frame
	nextSub  uint64
	handlers map[string]map[uint64]Handler
	closed   bool

	done chan struct{}
}

// New wraps a frame stream and starts its read loop. The caller owns the
// underlying stream's lifetime; Close stops delivery but does not close it.
func New(rw io.ReadWriter, log *logger.Logger) *Bridge {
	b := &Bridge{
		enc:      json.NewEncoder(rw),
		log:      log,
		pending:  make(map[uint64]chan frame),
		handlers: make(map[string]map[uint64]Handler),
		done:     make(chan struct{}),
	}
	go b.readLoop(json.NewDecoder(rw))
	return b
}

func (b *Bridge) readLoop(dec *json.Decoder) {
	for {
		var f frame
		if err := dec.Decode(&f); err != nil {
			if err != io.EOF {
				b.log.Error(err, "bridge stream failed")
			}
			b.Close()
			return
		}

		switch f.Kind {
		case "reply":
			b.mu.Lock()
			ch, ok := b.pending[f.ID]
			delete(b.pending, f.ID)
			b.mu.Unlock()
			if ok {
				ch <- f
			}

		case "send":
			b.mu.Lock()
			subs := make([]Handler, 0, len(b.handlers[f.Channel]))
			for _, h := range b.handlers[f.Channel] {
				subs = append(subs, h)
			}
			b.mu.Unlock()
			for _, h := range subs {
				h(f.Data)
			}

		default:
			b.log.Warn("bridge dropped frame with unknown kind " + f.Kind)
		}
	}
}

func (b *Bridge) write(f frame) error {
	b.encMu.Lock()
	defer b.encMu.Unlock()
	return b.enc.Encode(f)
}

// Invoke performs a request/response round trip on a channel. The reply is
// matched by correlation id, so concurrent invokes may resolve out of order.
func (b *Bridge) Invoke(ctx context.Context, channel string, v any) (json.RawMessage, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", channel, err)
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, fmt.Errorf("bridge closed")
	}
	b.nextID++
	id := b.nextID
	ch := make(chan frame, 1)
	b.pending[id] = ch
	b.mu.Unlock()

	if err := b.write(frame{Kind: "invoke", ID: id, Channel: channel, Data: data}); err != nil {
		b.mu.Lock()
		delete(b.pending, id)
		b.mu.Unlock()
		return nil, fmt.Errorf("invoke %s: %w", channel, err)
	}

	select {
	case f := <-ch:
		if f.Error != "" {
			return nil, fmt.Errorf("invoke %s: %s", channel, f.Error)
		}
		return f.Data, nil
	case <-ctx.Done():
		b.mu.Lock()
		delete(b.pending, id)
		b.mu.Unlock()
		return nil, ctx.Err()
	case <-b.done:
		return nil, fmt.Errorf("bridge closed")
	}
}

// Send writes a fire-and-forget frame on a channel.
func (b *Bridge) Send(channel string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", channel, err)
	}
	return b.write(frame{Kind: "send", Channel: channel, Data: data})
}

// On subscribes a handler to host-pushed frames on a channel and returns the
// unsubscribe function. After unsubscribe returns, the handler receives no
// further frames.
func (b *Bridge) On(channel string, h Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextSub++
	id := b.nextSub
	if b.handlers[channel] == nil {
		b.handlers[channel] = make(map[uint64]Handler)
	}
	b.handlers[channel][id] = h

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.handlers[channel], id)
	}
}

// Close stops delivery and fails every pending invoke. Idempotent.
func (b *Bridge) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	b.pending = make(map[uint64]chan frame)
	b.handlers = make(map[string]map[uint64]Handler)
	b.mu.Unlock()
	close(b.done)
}
