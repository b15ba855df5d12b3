package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/sounds-of-canada/internal/shared"
	"github.com/urfave/cli/v3"
)

// APIGet makes a direct GET request to the gateway
func (r *Runner) APIGet(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("path")
	if path == "" {
		return fmt.Errorf("%w: path", shared.ErrMissingArgument)
	}

	r.logger.Info("GET request", "path", path)

	resp, err := r.api.Get(ctx, path)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if !resp.OK() {
		if msg := resp.ErrorMessage(); msg != "" {
			return fmt.Errorf("%w: status %d: %s", shared.ErrAPIRequest, resp.StatusCode, msg)
		}
		return fmt.Errorf("%w: status %d, body: %s", shared.ErrAPIRequest, resp.StatusCode, string(resp.Body))
	}

	if resp.IsJSON {
		return r.writeJSON(resp.JSONData, cmd.Bool("pretty"))
	}

	return r.writePlain("%s\n", resp.Body)
}

// APIHealth reports whether the gateway answers /health.
func (r *Runner) APIHealth(ctx context.Context, cmd *cli.Command) error {
	if err := r.api.Health(ctx); err != nil {
		return err
	}
	return r.writePlain("✓ Gateway is healthy\n")
}
