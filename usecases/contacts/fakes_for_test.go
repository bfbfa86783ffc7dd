package contacts

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rolodexd/rolodexd/entities/models"
)

type fakeRepo struct {
	mock.Mock
}

func (f *fakeRepo) Put(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	args := f.Called(contact)
	switch ret := args.Get(0).(type) {
	case func(*models.Contact) *models.Contact:
		// allows tests to echo back the stored contact
		return ret(contact), args.Error(1)
	case *models.Contact:
		return ret, args.Error(1)
	default:
		return nil, args.Error(1)
	}
}

func (f *fakeRepo) ByID(ctx context.Context, id string) (*models.Contact, error) {
	args := f.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Contact), args.Error(1)
}
