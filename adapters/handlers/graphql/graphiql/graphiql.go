// Package graphiql serves an interactive GraphQL console
package graphiql

import "net/http"

// AddMiddleware answers GET requests on the graphql endpoint with the
// interactive console and hands everything else to the next handler.
func AddMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write([]byte(page))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// The console posts back to the path it was loaded from, so it works no
// matter where the endpoint is mounted.
const page = `<!DOCTYPE html>
<html>
  <head>
    <title>rolodexd console</title>
    <style>body { margin: 0; } #graphiql { height: 100vh; }</style>
    <link rel="stylesheet" href="https://unpkg.com/graphiql/graphiql.min.css" />
  </head>
  <body>
    <div id="graphiql">Loading...</div>
    <script crossorigin src="https://unpkg.com/react/umd/react.production.min.js"></script>
    <script crossorigin src="https://unpkg.com/react-dom/umd/react-dom.production.min.js"></script>
    <script crossorigin src="https://unpkg.com/graphiql/graphiql.min.js"></script>
    <script>
      ReactDOM.render(
        React.createElement(GraphiQL, {
          fetcher: GraphiQL.createFetcher({ url: window.location.pathname }),
        }),
        document.getElementById('graphiql'),
      );
    </script>
  </body>
</html>
`
