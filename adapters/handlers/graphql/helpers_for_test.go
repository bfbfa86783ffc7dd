package graphql

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	gql "github.com/tailor-inc/graphql"

	"github.com/rolodexd/rolodexd/entities/models"
)

type fakeManager struct {
	mock.Mock
}

func (f *fakeManager) Create(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	args := f.Called(contact)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Contact), args.Error(1)
}

func (f *fakeManager) Get(ctx context.Context, id string) (*models.Contact, error) {
	args := f.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Contact), args.Error(1)
}

func buildForTest(t *testing.T, manager Manager) GraphQL {
	t.Helper()

	logger, _ := test.NewNullLogger()
	g, err := Build(manager, logger)
	require.Nil(t, err)

	return g
}

func resolveForTest(t *testing.T, g GraphQL, query string) *gql.Result {
	t.Helper()

	return g.Resolve(context.Background(), query, "", nil)
}
