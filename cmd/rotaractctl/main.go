// Command rotaractctl is a terminal client of the district API.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rotaract-d4465/portal/internal/cli"
	"github.com/rotaract-d4465/portal/pkg/logger"
)

func main() {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "warn"
	}
	log := logger.Init(logger.Options{Level: level, Pretty: true, Service: "rotaractctl"})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, cli.Options{Log: log}, os.Args[1:])
	stop()
	os.Exit(code)
}
