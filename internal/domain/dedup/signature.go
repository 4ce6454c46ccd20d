// Package dedup collapses near-simultaneous copies of the same logical event.
// The same rules serve the write path (candidates about to be persisted) and
// the read path (persisted notifications being counted or shown), so what is
// saved and what is shown never diverge.
package dedup

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"tracenfind/internal/domain/entity"
)

// DefaultWindow is the tolerance within which equal signatures are one event.
const DefaultWindow = 10 * time.Second

// Policy controls signature identity and the dedup window.
type Policy struct {
	// Window is the dedup tolerance. Zero or negative means DefaultWindow.
	Window time.Duration
	// SignatureIncludesEntity adds the device ID to the signature. When false
	// two devices producing identical text inside the window collapse into one.
	SignatureIncludesEntity bool
}

// DefaultPolicy returns the compatibility policy: 10s window, entity excluded.
func DefaultPolicy() Policy {
	return Policy{Window: DefaultWindow}
}

// WindowMs returns the effective window in milliseconds. A partial
// millisecond rounds up so a positive window never collapses to zero.
func (p Policy) WindowMs() int64 {
	if p.Window <= 0 {
		return DefaultWindow.Milliseconds()
	}

	ms := p.Window.Milliseconds()
	if p.Window%time.Millisecond != 0 {
		ms++
	}

	return ms
}

// Signature is the identity used to decide whether two events are the same.
type Signature struct {
	Kind     entity.EventKind
	Title    string
	Message  string
	DeviceID string
}

// Of builds the signature of an event under the policy.
func (p Policy) Of(kind entity.EventKind, title, message, deviceID string) Signature {
	sig := Signature{Kind: kind, Title: title, Message: message}
	if p.SignatureIncludesEntity {
		sig.DeviceID = deviceID
	}

	return sig
}

// OfEvent returns the signature of a logical event.
func (p Policy) OfEvent(ev entity.LogicalEvent) Signature {
	return p.Of(ev.Kind, ev.Title, ev.Message, ev.DeviceID)
}

// OfNotification returns the signature of a persisted notification.
func (p Policy) OfNotification(n *entity.Notification) Signature {
	return p.Of(n.Kind, n.Title, n.Message, n.DeviceID)
}

// Key returns a fixed-length digest of the signature, usable as a cache key.
func (s Signature) Key() string {
	h := sha256.New()
	h.Write([]byte(strings.Join([]string{string(s.Kind), s.Title, s.Message, s.DeviceID}, "\x1f")))

	return hex.EncodeToString(h.Sum(nil))
}

func (s Signature) less(o Signature) bool {
	if s.Kind != o.Kind {
		return s.Kind < o.Kind
	}
	if s.Title != o.Title {
		return s.Title < o.Title
	}
	if s.Message != o.Message {
		return s.Message < o.Message
	}

	return s.DeviceID < o.DeviceID
}
