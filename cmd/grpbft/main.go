package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/gordian-engine/grpbft/cmd/grpbft/internal/grpbftcmd"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := grpbftcmd.NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
