// Package alert holds the presentation rules for unread notifications.
package alert

// SoundGate decides how many alert sounds a subscription callback deserves.
// The first callback is always silent; after that every raw ID not seen
// before earns one sound, duplicates included. One gate serves one
// subscription and is not safe for concurrent use.
type SoundGate struct {
	primed bool
	seen   map[string]struct{}
}

// NewSoundGate returns a gate in its initial silent state.
func NewSoundGate() *SoundGate {
	return &SoundGate{seen: make(map[string]struct{})}
}

// Observe records the current raw ID set and returns the number of sounds to
// play. IDs absent from the set are forgotten so the gate stays bounded.
func (g *SoundGate) Observe(ids []string) int {
	current := make(map[string]struct{}, len(ids))
	fresh := 0
	for _, id := range ids {
		if _, dup := current[id]; dup {
			continue
		}
		current[id] = struct{}{}
		if _, ok := g.seen[id]; !ok {
			fresh++
		}
	}
	g.seen = current

	if !g.primed {
		g.primed = true

		return 0
	}

	return fresh
}

// Primed reports whether the silent first callback has happened.
func (g *SoundGate) Primed() bool {
	return g.primed
}
