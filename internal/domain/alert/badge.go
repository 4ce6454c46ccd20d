package alert

import "strconv"

// BadgeCeiling is the largest count rendered verbatim.
const BadgeCeiling = 99

// Badge is the display state derived from an exact unread count.
type Badge struct {
	Count   int    `json:"count"`
	Label   string `json:"label"`
	Visible bool   `json:"visible"`
	// Attention asks the UI for its attention-drawing state.
	Attention bool `json:"attention"`
}

// NewBadge builds the badge for count. Zero hides it.
func NewBadge(count int) Badge {
	if count <= 0 {
		return Badge{}
	}

	return Badge{
		Count:     count,
		Label:     BadgeLabel(count),
		Visible:   true,
		Attention: true,
	}
}

// BadgeLabel renders count, capped at "99+".
func BadgeLabel(count int) string {
	switch {
	case count <= 0:
		return ""
	case count > BadgeCeiling:
		return strconv.Itoa(BadgeCeiling) + "+"
	default:
		return strconv.Itoa(count)
	}
}
