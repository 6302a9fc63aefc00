package conn

import (
	"bytes"
	"encoding/json"

	pkgerrors "github.com/intentvault/widgets/pkg/errors"
)

// Envelope is the push message wire shape: a type discriminator plus either a
// nested data object or the payload fields flattened alongside the type.
type Envelope struct {
	Type   string          `json:"type"`
	Data   json.RawMessage `json:"data"`
	UserID string          `json:"userId"`

	raw json.RawMessage
}

// DecodeEnvelope parses an inbound frame. Callers are expected to log and
// drop the frame on error rather than propagate it.
func DecodeEnvelope(raw []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Envelope{}, pkgerrors.NewEnvelopeError("", err)
	}
	env.raw = append(json.RawMessage(nil), raw...)

	// Some producers nest the relevance id inside data.
	if env.UserID == "" && len(env.Data) > 0 {
		var probe struct {
			UserID string `json:"userId"`
		}
		if err := json.Unmarshal(env.Data, &probe); err == nil {
			env.UserID = probe.UserID
		}
	}
	return env, nil
}

// Payload returns the message body the widget update routine should see: the
// nested data object when present, otherwise the whole frame.
func (e Envelope) Payload() json.RawMessage {
	if len(e.Data) > 0 && !bytes.Equal(e.Data, []byte("null")) {
		return e.Data
	}
	return e.raw
}
