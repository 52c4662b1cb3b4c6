// Package main starts the browser-facing storefront service.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	storefrontcmd "github.com/louisbranch/storefront/internal/cmd/storefront"
	"github.com/louisbranch/storefront/internal/platform/config"
)

func main() {
	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	cfg, err := storefrontcmd.ParseConfig(fs, os.Args[1:])
	config.Exit("storefront: config", err)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := storefrontcmd.Run(ctx, cfg); err != nil {
		stop()
		config.Exit("storefront", err)
	}
}
