// Package state provides the application-wide state shared between the
// transport layer and the rest of the system.
package state

import (
	"github.com/sirupsen/logrus"

	"github.com/rolodexd/rolodexd/adapters/handlers/graphql"
	"github.com/rolodexd/rolodexd/usecases/config"
	"github.com/rolodexd/rolodexd/usecases/contacts"
	"github.com/rolodexd/rolodexd/usecases/monitoring"
)

// State is the only source of application-wide state
type State struct {
	ServerConfig *config.ServerConfig
	Logger       *logrus.Logger
	Contacts     *contacts.Manager
	GraphQL      graphql.GraphQL

	// Metrics is nil when monitoring is disabled
	Metrics *monitoring.PrometheusMetrics
}
