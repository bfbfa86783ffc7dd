package rest

import (
	"context"
	"net/http"

	graphqlapi "github.com/rolodexd/rolodexd/adapters/handlers/graphql"
	"github.com/rolodexd/rolodexd/adapters/handlers/graphql/graphiql"
	"github.com/rolodexd/rolodexd/adapters/handlers/rest/state"
	contactsrepo "github.com/rolodexd/rolodexd/adapters/repos/contacts"
	"github.com/rolodexd/rolodexd/usecases/config"
	"github.com/rolodexd/rolodexd/usecases/contacts"
	"github.com/rolodexd/rolodexd/usecases/monitoring"
)

// MakeAppState loads the config and assembles every long-lived component the
// handlers depend on. Any failure at this stage is fatal.
func MakeAppState(ctx context.Context, flags *config.Flags) *state.State {
	logger := makeLogger()

	serverConfig := &config.ServerConfig{}
	if err := serverConfig.LoadConfig(flags, logger); err != nil {
		logger.WithField("action", "startup").WithError(err).
			Fatal("could not load config")
	}

	repo, err := contactsrepo.NewRepo(serverConfig.Config.Persistence.DataPath, logger)
	if err != nil {
		logger.WithField("action", "startup").WithError(err).
			Fatal("could not init contacts repo")
	}

	manager := contacts.NewManager(repo, logger)

	graphQL, err := graphqlapi.Build(manager, logger)
	if err != nil {
		logger.WithField("action", "startup").WithError(err).
			Fatal("could not build graphql schema")
	}

	appState := &state.State{
		ServerConfig: serverConfig,
		Logger:       logger,
		Contacts:     manager,
		GraphQL:      graphQL,
	}

	if serverConfig.Config.Monitoring.Enabled {
		appState.Metrics = monitoring.NewPrometheusMetrics()
	}

	return appState
}

// Server serves the graphql endpoint plus the operational side routes
type Server struct {
	appState *state.State
	srv      *http.Server
}

func NewServer(appState *state.State) *Server {
	return &Server{
		appState: appState,
		srv: &http.Server{
			Addr:    appState.ServerConfig.Config.ListenAddress,
			Handler: setupGlobalMiddleware(makeRoutes(appState), appState),
		},
	}
}

// Serve blocks until the server stops
func (s *Server) Serve() error {
	s.appState.Logger.
		WithField("action", "restapi_management").
		WithField("address", s.srv.Addr).
		Info("serving rolodexd")

	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func makeRoutes(appState *state.State) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/.well-known/live", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/.well-known/ready", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	if appState.Metrics != nil {
		mux.Handle("/metrics", appState.Metrics.Handler())
	}

	// the graphql endpoint lives at the root: POST executes a document, GET
	// serves the interactive console
	graphQLHandler := graphqlapi.HTTPHandler(appState.GraphQL, appState.Logger)
	mux.Handle("/", atRoot(graphiql.AddMiddleware(graphQLHandler)))

	return mux
}

// atRoot keeps the catch-all pattern from swallowing unknown paths
func atRoot(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}
