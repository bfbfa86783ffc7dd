// Package contacts provides managers for contact records. Manager provides
// methods for "regular" interaction, i.e. create and get, agnostic of the
// underlying storage provider.
package contacts

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/rolodexd/rolodexd/entities/models"
)

// Repo is the storage abstraction the manager depends on. The file-backed
// implementation lives in adapters/repos/contacts.
type Repo interface {
	// Put stores the contact under its id, silently overwriting any
	// previous record stored under the same id.
	Put(ctx context.Context, contact *models.Contact) (*models.Contact, error)

	// ByID returns the stored contact, or an ErrNotFound if no record
	// exists for the id. It never returns a zero-value record.
	ByID(ctx context.Context, id string) (*models.Contact, error)
}

// Manager manages contact records at a use-case level, i.e. agnostic of the
// underlying storage provider
type Manager struct {
	repo   Repo
	logger logrus.FieldLogger
}

// NewManager creates a new manager
func NewManager(repo Repo, logger logrus.FieldLogger) *Manager {
	return &Manager{
		repo:   repo,
		logger: logger,
	}
}
