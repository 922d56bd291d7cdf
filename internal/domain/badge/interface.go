package badge

import "context"

// Result is the outcome of a single eligibility scan.
type Result struct {
	// GroupID is the group the badge would be awarded to. Post-scoped
	// scanners resolve it from the owning post.
	GroupID string

	// Eligible reports whether the badge threshold is satisfied right
	// now. It is recomputed from persisted aggregate state on every scan,
	// never from a stored progress counter.
	Eligible bool
}

type Scanner interface {
	// Content returns the catalog content string of the badge this
	// scanner evaluates.
	Content() string

	// Scan evaluates eligibility for the target entity. Group-scoped
	// scanners receive a group id; post-scoped scanners receive a post id.
	Scan(ctx context.Context, targetID string) (Result, error)
}
