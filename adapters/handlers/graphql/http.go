package graphql

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

// request is the standard GraphQL-over-HTTP POST body
type request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// HTTPHandler executes GraphQL documents POSTed as JSON bodies. Method and
// path dispatch (e.g. serving the interactive console on GET) happens in the
// surrounding rest handlers.
func HTTPHandler(g GraphQL, logger logrus.FieldLogger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeErrors(w, http.StatusMethodNotAllowed, "only POST is allowed on the graphql endpoint")
			return
		}

		defer r.Body.Close()

		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrors(w, http.StatusBadRequest, "could not parse request body: "+err.Error())
			return
		}

		result := g.Resolve(r.Context(), req.Query, req.OperationName, req.Variables)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.
				WithField("action", "graphql_response").
				WithError(err).
				Error("could not write response")
		}
	})
}

// writeErrors answers with a GraphQL-shaped errors list, so clients only ever
// have to parse one response format
func writeErrors(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"errors": []map[string]string{{"message": message}},
	})
}
