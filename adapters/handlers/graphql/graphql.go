// Package graphql provides the graphql endpoint for rolodexd
package graphql

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tailor-inc/graphql"

	"github.com/rolodexd/rolodexd/entities/models"
)

// Manager is the use-case surface the resolvers dispatch to
type Manager interface {
	Create(ctx context.Context, contact *models.Contact) (*models.Contact, error)
	Get(ctx context.Context, id string) (*models.Contact, error)
}

// GraphQL resolves inbound query/mutation documents
type GraphQL interface {
	Resolve(ctx context.Context, query string, operationName string,
		variables map[string]interface{}) *graphql.Result
}

type graphQL struct {
	schema graphql.Schema
	logger logrus.FieldLogger
}

// Build the GraphQL schema from the static query and mutation structure
func Build(manager Manager, logger logrus.FieldLogger) (GraphQL, error) {
	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query:    assembleQuery(manager),
		Mutation: assembleMutation(manager),
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not build GraphQL schema")
	}

	return &graphQL{
		schema: schema,
		logger: logger,
	}, nil
}

func (g *graphQL) Resolve(ctx context.Context, query string, operationName string,
	variables map[string]interface{},
) *graphql.Result {
	g.logger.WithField("action", "graphql_resolve").Debug("resolving a query")

	return graphql.Do(graphql.Params{
		Schema:         g.schema,
		Context:        ctx,
		RequestString:  query,
		OperationName:  operationName,
		VariableValues: variables,
	})
}
