package repository

import "garden/pkg/relation"

type RelationRepository interface {
	// Get returns the owner's relations grouped by category, each entry
	// enriched with its target's display fields.
	Get(ownerID uint) (*relation.Bundle, error)

	// Save atomically replaces the owner's entire relation set with the
	// given input. Duplicate ids are collapsed, so saving the same payload
	// twice yields the same rows.
	Save(ownerID uint, in relation.Input) error
}
