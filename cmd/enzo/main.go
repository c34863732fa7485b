package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/enzojs/enzo/internal/commands"
	"github.com/enzojs/enzo/output"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := commands.RootCmd(commands.DefaultApp())
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, commands.ErrFailed) {
			output.Error(err.Error())
		}
		stop()
		os.Exit(1)
	}
}
