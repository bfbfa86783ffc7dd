// Package models contains the domain entities persisted by this service.
package models

// Contact is the single record kind rolodexd stores. The ID doubles as the
// storage key, so it must be a safe single path element; the use-case layer
// enforces that before anything reaches storage.
type Contact struct {
	// ID is the caller-supplied lookup key
	ID string `json:"id"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
