// Package storage provides the two-slot persistence layer for mode and
// preset state. Slots have independent lifecycles: a failure on one never
// affects the other.
package storage

// Store is the persistence port. Keys are caller-configurable slot names.
type Store interface {
	// Read returns a slot's raw contents. Absent slots and read failures both
	// report false; the engine treats them identically.
	Read(key string) (string, bool)
	// Write replaces a slot's contents.
	Write(key, value string) error
	// Delete removes a slot. Deleting an absent slot is not an error.
	Delete(key string) error
}
