package main

import (
	"fmt"
	"net/http"
	"time"
)

func (app *application) serve() error {
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", app.Config.Port),
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		// generation calls can run through retries on both providers, so
		// the write timeout has to cover the full orchestration deadline
		WriteTimeout: app.Config.AI.RequestTimeout + 30*time.Second,
	}

	app.Logger.Sugar().Infof("starting server on port: %d", app.Config.Port)

	return server.ListenAndServe()
}
