package reconcile

import (
	"menu-manager/core/apperror"
)

// Keyed is implemented by every entity that takes part in a reconciliation.
type Keyed interface {
	Identity() ID
}

// Pair holds a desired child together with the persisted child it matches.
type Pair[T any] struct {
	Desired T
	Current T
}

// Plan is the classification of one level of children under one parent.
type Plan[T Keyed] struct {
	// Added holds desired children without an identifier, in submission order.
	Added []T

	// Updated holds desired children matched to a current child by identifier,
	// in submission order.
	Updated []Pair[T]

	// Removed holds current children whose identifier is absent from the desired set,
	// in the order they were loaded.
	Removed []T
}

// Classify splits desired and current children into added, updated and removed sets.
//
// It fails before anything is classified when a desired identifier appears twice
// (InvalidArgument) or names no current child (NotFound), so callers can run it ahead of
// any write at that level.
func Classify[T Keyed](desired, current []T) (*Plan[T], error) {
	currentIndex := make(map[int]T, len(current))
	for _, child := range current {
		if key, ok := child.Identity().Value(); ok {
			currentIndex[key] = child
		}
	}

	plan := &Plan[T]{}
	seen := make(map[int]struct{}, len(desired))

	for _, child := range desired {
		key, ok := child.Identity().Value()
		if !ok {
			plan.Added = append(plan.Added, child)
			continue
		}

		if _, dup := seen[key]; dup {
			return nil, apperror.InvalidArgument("identifier %d appears more than once", key)
		}
		seen[key] = struct{}{}

		match, exists := currentIndex[key]
		if !exists {
			return nil, apperror.NotFound("no child with identifier %d at this parent", key)
		}
		plan.Updated = append(plan.Updated, Pair[T]{Desired: child, Current: match})
	}

	for _, child := range current {
		key, ok := child.Identity().Value()
		if !ok {
			continue
		}
		if _, keep := seen[key]; !keep {
			plan.Removed = append(plan.Removed, child)
		}
	}

	return plan, nil
}
