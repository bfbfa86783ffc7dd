package main

import (
	"context"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/rolodexd/rolodexd/adapters/handlers/rest"
	"github.com/rolodexd/rolodexd/usecases/config"
)

func main() {
	var opts config.Flags

	if _, err := flags.Parse(&opts); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		// go-flags already printed the parse error
		os.Exit(1)
	}

	appState := rest.MakeAppState(context.Background(), &opts)

	server := rest.NewServer(appState)
	if err := server.Serve(); err != nil {
		appState.Logger.
			WithField("action", "startup").
			WithError(err).
			Fatal("http server stopped")
	}
}
