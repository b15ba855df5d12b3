package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/desertthunder/sounds-of-canada/internal/server"
	"github.com/desertthunder/sounds-of-canada/internal/services"
	"github.com/urfave/cli/v3"
)

// Serve runs the gateway until interrupted.
//
// Discogs credentials are required unless a catalog was injected.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	cfg := r.config
	if cmd.IsSet("host") {
		cfg.Server.Host = cmd.String("host")
	}
	if cmd.IsSet("port") {
		cfg.Server.Port = cmd.Int("port")
	}
	if cmd.IsSet("client-url") {
		cfg.Server.ClientURL = cmd.String("client-url")
	}

	catalog := r.catalog
	if catalog == nil {
		if err := cfg.Credentials.Discogs.Validate(); err != nil {
			return err
		}
		catalog = services.NewDiscogsServiceFromConfig(cfg)
	}

	gateway := server.NewGateway(catalog, r.logger)
	srv := server.NewHTTPServer(cfg.Server.Addr(), server.NewHandler(gateway, cfg.Server.ClientURL))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	r.logger.Info("starting gateway", "addr", srv.Addr, "upstream", cfg.Catalog.BaseURL, "client_url", cfg.Server.ClientURL)
	return server.Run(ctx, srv, r.listener, server.DefaultShutdownTimeout, r.logger)
}
