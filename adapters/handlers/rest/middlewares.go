package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/rs/cors"

	"github.com/rolodexd/rolodexd/adapters/handlers/rest/state"
	"github.com/rolodexd/rolodexd/usecases/monitoring"
)

// The middleware configuration happens before routing, so this is a good
// place to plug in CORS handling, logging and metrics.
func setupGlobalMiddleware(handler http.Handler, appState *state.State) http.Handler {
	corsConfig := appState.ServerConfig.Config.CORS

	handleCORS := cors.New(cors.Options{
		OptionsPassthrough: true,
		AllowedOrigins:     []string{corsConfig.AllowOrigin},
		AllowedMethods:     []string{"POST", "GET"},
	}).Handler
	handler = handleCORS(handler)

	if appState.Metrics != nil {
		handler = addMeasuring(handler, appState.Metrics)
	}

	handler = addLogging(handler, appState)
	handler = addPreflight(handler, appState)

	return handler
}

func addLogging(next http.Handler, appState *state.State) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if appState.ServerConfig.Config.Debug {
			appState.Logger.
				WithField("method", r.Method).
				WithField("url", r.URL).
				Debug("received request")
		}

		next.ServeHTTP(w, r)
	})
}

func addPreflight(next http.Handler, appState *state.State) http.Handler {
	corsConfig := appState.ServerConfig.Config.CORS

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Origin", corsConfig.AllowOrigin)
			w.Header().Set("Access-Control-Allow-Methods", corsConfig.AllowMethods)
			w.Header().Set("Access-Control-Allow-Headers", corsConfig.AllowHeaders)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func addMeasuring(next http.Handler, metrics *monitoring.PrometheusMetrics) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(sw, r)

		metrics.RequestsTotal.
			WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(sw.status)).Inc()
		metrics.RequestDuration.
			WithLabelValues(r.Method, r.URL.Path).Observe(time.Since(start).Seconds())
	})
}

// statusWriter remembers the status code for the metrics middleware
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
