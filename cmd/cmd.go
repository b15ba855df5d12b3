// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// serveCommand starts the Discogs gateway.
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the signed Discogs gateway",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "host",
				Usage: "Interface to listen on (default: all)",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to listen on (default from config, or PORT)",
			},
			&cli.StringFlag{
				Name:  "client-url",
				Usage: "Origin allowed by CORS (default from config, or CLIENT_URL)",
			},
		},
		Action: r.Serve,
	}
}

// albumsCommand searches Canadian albums through a running gateway.
func albumsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "albums",
		Usage: "Search Canadian albums by year and genre",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "year",
				Aliases: []string{"y"},
				Usage:   "Release year (gateway default when empty)",
			},
			&cli.StringSliceFlag{
				Name:    "genre",
				Aliases: []string{"g"},
				Usage:   "Genre to include; repeat for more",
			},
			&cli.IntFlag{
				Name:  "page",
				Usage: "Result page",
				Value: 1,
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: table, csv, markdown, json, yaml",
				Value:   "table",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write to a file (a directory for markdown) instead of stdout",
			},
		},
		Action: r.Albums,
	}
}

// artistAlbumsCommand lists the releases of the artist credited on a release.
func artistAlbumsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "artist-albums",
		Usage: "List releases by the first artist of a release",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "release",
				Aliases:  []string{"r"},
				Usage:    "Release ID",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: table, csv, markdown, json, yaml",
				Value:   "table",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write to a file (a directory for markdown) instead of stdout",
			},
		},
		Action: r.ArtistAlbums,
	}
}

// browseCommand returns the top-level TUI command.
func browseCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "browse",
		Aliases: []string{"tui", "ui"},
		Usage:   "Launch the interactive album browser",
		Action:  r.Browse,
	}
}

// favouritesCommand manages favourites kept in the database.
func favouritesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "favourites",
		Aliases: []string{"favs"},
		Usage:   "Manage saved favourite albums",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List favourites in the order they were added",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Output format: table, csv, markdown, json, yaml",
						Value:   "table",
					},
				},
				Action: r.FavouritesList,
			},
			{
				Name:  "export",
				Usage: "Export favourites to a file or Markdown directory",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Output format: table, csv, markdown, json, yaml",
						Value:   "markdown",
					},
					&cli.StringFlag{
						Name:     "output",
						Aliases:  []string{"o"},
						Usage:    "Output file, or directory for markdown",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "title",
						Usage: "Markdown document title",
						Value: "Favourite Canadian Albums",
					},
					&cli.BoolFlag{
						Name:  "covers",
						Usage: "Download cover images with a markdown export",
					},
				},
				Action: r.FavouritesExport,
			},
			{
				Name:  "remove",
				Usage: "Remove one favourite",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "id",
						Usage:    "Album ID",
						Required: true,
					},
				},
				Action: r.FavouritesRemove,
			},
			{
				Name:   "clear",
				Usage:  "Remove every favourite",
				Action: r.FavouritesClear,
			},
		},
	}
}

// apiCommand handles direct calls to a running gateway
func apiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "api",
		Usage: "Direct calls to a running gateway",
		Commands: []*cli.Command{
			{
				Name:  "get",
				Usage: "Direct GET to the gateway, prints the response",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "path",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print JSON",
						Value: true,
					},
				},
				Action: r.APIGet,
			},
			{
				Name:   "health",
				Usage:  "Check that the gateway is up",
				Action: r.APIHealth,
			},
		},
	}
}

// setupCommand creates the config file and favourites database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Create configuration and initialize the database",
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Write a config file from the built-in template",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Config file to create",
						Value:   "config.toml",
					},
				},
				Action: r.SetupConfig,
			},
			{
				Name:  "database",
				Usage: "Initialize the favourites database and run migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "path",
						Usage: "Database file (default from config, or SOC_DATABASE_PATH)",
					},
				},
				Action: r.SetupDatabase,
			},
		},
	}
}
