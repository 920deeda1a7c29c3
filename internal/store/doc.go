// Package store provides the persistence layer for locally cached trip state.
//
// Store keeps one JSON document per hydration key in the snapshot_cache
// table and guarantees that a corrupt cache never surfaces as an error.
// ReflectionRepository implements models.Repository for end-of-day journal
// entries, handling CRUD operations, soft deletes, and sequence generation.
package store
