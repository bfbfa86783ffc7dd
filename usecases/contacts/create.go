package contacts

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/rolodexd/rolodexd/entities/models"
)

// Create stores the contact and returns the stored record. An empty id is
// replaced with a freshly generated one before storing.
func (m *Manager) Create(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	id, err := m.checkIDOrAssignNew(contact.ID)
	if err != nil {
		return nil, err
	}
	contact.ID = id

	stored, err := m.repo.Put(ctx, contact)
	if err != nil {
		return nil, err
	}

	m.logger.
		WithField("action", "contact_create").
		WithField("id", stored.ID).
		Info("contact created")

	return stored, nil
}

func (m *Manager) checkIDOrAssignNew(id string) (string, error) {
	if id == "" {
		return uuid.New().String(), nil
	}

	if err := validateID(id); err != nil {
		return "", err
	}

	return id, nil
}

// validateID makes sure the id can serve as a storage key. The id becomes a
// single path element under the data directory, so anything that could escape
// it is invalid user input.
func validateID(id string) error {
	if id == "." || id == ".." || strings.ContainsAny(id, `/\`) {
		return NewErrInvalidUserInput(
			"invalid id '%s': must not contain path separators or dot segments", id)
	}

	return nil
}
