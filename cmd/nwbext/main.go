package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/goliatone/go-nwbext/internal/cli"
)

func main() {
	userCfg := cli.FindUserConfig(os.Args[1:])

	var root cli.CLI
	kctx := kong.Parse(&root, cli.Options(cli.ConfigCandidatePaths(userCfg)...)...)

	logger := cli.NewLogger(root.Log, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cli.Run(ctx, kctx, cli.Deps{Logger: logger, Stdout: os.Stdout})
	kctx.FatalIfErrorf(err)
}
