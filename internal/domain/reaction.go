package domain

import "strings"

// Reaction is a viewer's verdict on a quote.
type Reaction string

// Supported reactions.
const (
	ReactionLike    Reaction = "like"
	ReactionDislike Reaction = "dislike"
)

// ParseReaction converts user input into a Reaction.
func ParseReaction(s string) (Reaction, error) {
	switch r := Reaction(strings.ToLower(strings.TrimSpace(s))); r {
	case ReactionLike, ReactionDislike:
		return r, nil
	default:
		return "", NewValidationErrorWithValue("kind", "must be one of: like, dislike", s)
	}
}

// WeightDelta is the change a reaction applies to a quote's weight before clamping.
func (r Reaction) WeightDelta() int {
	if r == ReactionLike {
		return 1
	}

	return -1
}

// Counter names a monotonically increasing engagement field on a quote.
type Counter string

// Engagement counters.
const (
	CounterWatches  Counter = "watch_count"
	CounterLikes    Counter = "like_count"
	CounterDislikes Counter = "dislike_count"
)

// Counter returns the engagement counter a reaction increments.
func (r Reaction) Counter() Counter {
	if r == ReactionLike {
		return CounterLikes
	}

	return CounterDislikes
}

// Valid reports whether c is a known counter.
func (c Counter) Valid() bool {
	switch c {
	case CounterWatches, CounterLikes, CounterDislikes:
		return true
	default:
		return false
	}
}

// ApplyReaction returns q with r applied and the new weight clamped.
// Repositories must produce the same result in a single atomic write.
func ApplyReaction(q Quote, r Reaction) Quote {
	q.Weight = ClampWeight(q.Weight + r.WeightDelta())
	if r == ReactionLike {
		q.LikeCount++
	} else {
		q.DislikeCount++
	}

	return q
}
