package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/williampepple1/post-inspector/cmd/inspector/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	commands.ExecuteContext(ctx)
}
