package dedup

import (
	"slices"
	"sort"

	"tracenfind/internal/domain/entity"
)

// Entry is what Dedupe needs to know about an item.
type Entry struct {
	Signature Signature
	AtMs      int64
	// TieBreak orders items with equal time and signature, e.g. a document ID.
	TieBreak string
}

// Dedupe sorts items newest first and keeps an item only if no kept item with
// the same signature lies within the window of it. The anchor for a signature
// is always the newest kept item, so a slow trickle of near-duplicates cannot
// drag the window along. Kept items are returned newest first.
//
// The sort is total (time, then signature, then TieBreak) so that any two
// processes holding the same multiset converge on the same kept set.
func Dedupe[T any](items []T, entryOf func(T) Entry, policy Policy) []T {
	if len(items) == 0 {
		return nil
	}

	type indexed struct {
		item  T
		entry Entry
	}

	sorted := make([]indexed, len(items))
	for i, item := range items {
		sorted[i] = indexed{item: item, entry: entryOf(item)}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].entry, sorted[j].entry
		if a.AtMs != b.AtMs {
			return a.AtMs > b.AtMs
		}
		if a.Signature != b.Signature {
			return a.Signature.less(b.Signature)
		}

		return a.TieBreak < b.TieBreak
	})

	window := policy.WindowMs()
	anchors := make(map[Signature]int64, len(sorted))
	kept := make([]T, 0, len(sorted))

	for _, it := range sorted {
		anchor, seen := anchors[it.entry.Signature]
		if seen && anchor-it.entry.AtMs < window {
			continue
		}
		anchors[it.entry.Signature] = it.entry.AtMs
		kept = append(kept, it.item)
	}

	return kept
}

// Events dedupes candidate events.
func Events(events []entity.LogicalEvent, policy Policy) []entity.LogicalEvent {
	return Dedupe(events, func(ev entity.LogicalEvent) Entry {
		return Entry{
			Signature: policy.OfEvent(ev),
			AtMs:      ev.OccurredAtMs,
			TieBreak:  ev.DeviceID + "\x1f" + ev.ZoneID,
		}
	}, policy)
}

// Notifications dedupes persisted notifications. Nil entries are dropped.
func Notifications(items []*entity.Notification, policy Policy) []*entity.Notification {
	if slices.Contains(items, nil) {
		items = slices.DeleteFunc(slices.Clone(items), func(n *entity.Notification) bool { return n == nil })
	}

	return Dedupe(items, func(n *entity.Notification) Entry {
		return Entry{
			Signature: policy.OfNotification(n),
			AtMs:      n.TimestampMs(),
			TieBreak:  n.ID,
		}
	}, policy)
}

// Count returns the number of distinct notifications in items.
func Count(items []*entity.Notification, policy Policy) int {
	return len(Notifications(items, policy))
}

// FindRecentDuplicate looks for a notification in recent with the same
// signature as sig created within the window of nowMs. Store timestamps may
// run slightly ahead of the local clock, so the distance is absolute.
func FindRecentDuplicate(sig Signature, nowMs int64, recent []*entity.Notification, policy Policy) (*entity.Notification, bool) {
	window := policy.WindowMs()
	for _, n := range recent {
		if n == nil || policy.OfNotification(n) != sig {
			continue
		}
		delta := nowMs - n.TimestampMs()
		if delta < 0 {
			delta = -delta
		}
		if delta < window {
			return n, true
		}
	}

	return nil, false
}
