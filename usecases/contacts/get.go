package contacts

import (
	"context"

	"github.com/rolodexd/rolodexd/entities/models"
)

// Get returns the contact stored under the given id
func (m *Manager) Get(ctx context.Context, id string) (*models.Contact, error) {
	if id == "" {
		return nil, NewErrInvalidUserInput("id cannot be empty")
	}

	if err := validateID(id); err != nil {
		return nil, err
	}

	return m.repo.ByID(ctx, id)
}
