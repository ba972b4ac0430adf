// Command server runs the formdrop HTTP API: public submission intake,
// recipient verification links and the form owner API.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/akinloluwami/formdrop/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
