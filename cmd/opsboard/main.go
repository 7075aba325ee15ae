// opsboard - AWS operations dashboard backend
//
// Usage:
//   opsboard serve --snapshot-file infra.json
//   opsboard serve --archive --cluster my-cluster
//   opsboard snapshot archive --file infra.json
//   opsboard snapshot history
//   opsboard resources
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"opsboard/api"
	"opsboard/db/clickhouse"
	"opsboard/internal/tasks"
	"opsboard/pkg/platform"
	"opsboard/plugin"
	"opsboard/plugin/features"
	"opsboard/resolve"
	awshandlers "opsboard/resolve/handlers/aws"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	app := &cli.App{
		Name:    "opsboard",
		Usage:   "AWS operations dashboard backend",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"OPSBOARD_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "account",
				Value:   "default",
				Usage:   "Account label for archived snapshots",
				EnvVars: []string{"OPSBOARD_ACCOUNT"},
			},
			&cli.StringFlag{
				Name:    "region",
				Value:   "us-east-1",
				Usage:   "AWS region",
				EnvVars: []string{"AWS_REGION"},
			},
			&cli.StringFlag{
				Name:    "clickhouse-host",
				Value:   "localhost",
				Usage:   "ClickHouse host",
				EnvVars: []string{"CLICKHOUSE_HOST"},
			},
			&cli.IntFlag{
				Name:    "clickhouse-port",
				Value:   9000,
				Usage:   "ClickHouse native port",
				EnvVars: []string{"CLICKHOUSE_PORT"},
			},
			&cli.StringFlag{
				Name:    "clickhouse-database",
				Value:   "opsboard",
				Usage:   "ClickHouse database",
				EnvVars: []string{"CLICKHOUSE_DATABASE"},
			},
			&cli.StringFlag{
				Name:    "clickhouse-user",
				Value:   "default",
				Usage:   "ClickHouse user",
				EnvVars: []string{"CLICKHOUSE_USER"},
			},
			&cli.StringFlag{
				Name:    "clickhouse-password",
				Value:   "",
				Usage:   "ClickHouse password",
				EnvVars: []string{"CLICKHOUSE_PASSWORD"},
			},
		},

		Before: func(c *cli.Context) error {
			platform.InitLogger(c.String("log-level"))
			return nil
		},

		Commands: []*cli.Command{
			serveCommand(),
			snapshotCommand(),
			resourcesCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildResolver constructs the registry with every family handler and wraps
// it in a resolver.
func buildResolver() *resolve.Resolver {
	reg := resolve.NewRegistry()
	awshandlers.RegisterAllHandlers(reg)
	return resolve.NewResolver(reg)
}

func storeConfig(c *cli.Context) *clickhouse.Config {
	return &clickhouse.Config{
		Host:     c.String("clickhouse-host"),
		Port:     c.Int("clickhouse-port"),
		Database: c.String("clickhouse-database"),
		Username: c.String("clickhouse-user"),
		Password: c.String("clickhouse-password"),
		Debug:    platform.GetEnvBool("CLICKHOUSE_DEBUG", false),
	}
}

// =============================================================================
// SERVE COMMAND
// =============================================================================

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the dashboard API server",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Value:   8080,
				Usage:   "HTTP listen port",
				EnvVars: []string{"OPSBOARD_PORT"},
			},
			&cli.StringFlag{
				Name:  "snapshot-file",
				Usage: "Serve snapshots from a local JSON document instead of the archive",
			},
			&cli.BoolFlag{
				Name:  "archive",
				Usage: "Connect the ClickHouse snapshot archive",
			},
			&cli.StringFlag{
				Name:    "cluster",
				Usage:   "ECS cluster for live task lookups",
				EnvVars: []string{"OPSBOARD_ECS_CLUSTER"},
			},
		},
		Action: runServe,
	}
}

func runServe(c *cli.Context) error {
	resolver := buildResolver()
	plugins := features.All(resolver)

	ctx := context.Background()
	if err := plugin.Initialize(ctx, plugins, map[string]string{
		"account": c.String("account"),
		"region":  c.String("region"),
	}); err != nil {
		return err
	}
	composed := plugin.Compose(plugins...)

	cfg := api.DefaultConfig()
	cfg.Port = c.Int("port")
	cfg.Account = c.String("account")
	cfg.Region = c.String("region")

	var store *clickhouse.Store
	if c.Bool("archive") || c.String("snapshot-file") == "" {
		var err error
		store, err = clickhouse.NewStore(storeConfig(c))
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.Migrate(ctx); err != nil {
			return err
		}
	}

	var provider api.SnapshotProvider
	if file := c.String("snapshot-file"); file != "" {
		provider = &api.FileProvider{Path: file}
	} else {
		provider = &api.ArchiveProvider{Store: store, Account: cfg.Account, Region: cfg.Region}
	}

	server := api.NewServer(resolver, composed, provider, cfg)
	if store != nil {
		server.WithArchive(store)
	}

	if cluster := c.String("cluster"); cluster != "" {
		taskClient, err := tasks.NewClient(ctx, cluster)
		if err != nil {
			return err
		}
		server.WithTaskClient(taskClient)
		slog.Info("ECS task lookups enabled", "cluster", cluster)
	}

	return server.StartWithGracefulShutdown()
}

// =============================================================================
// SNAPSHOT COMMAND
// =============================================================================

func snapshotCommand() *cli.Command {
	return &cli.Command{
		Name:  "snapshot",
		Usage: "Manage the snapshot archive",
		Subcommands: []*cli.Command{
			{
				Name:  "archive",
				Usage: "Archive a snapshot document",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Path to the snapshot JSON document",
						Required: true,
					},
				},
				Action: runSnapshotArchive,
			},
			{
				Name:   "history",
				Usage:  "List archived snapshots",
				Action: runSnapshotHistory,
			},
		},
	}
}

func runSnapshotArchive(c *cli.Context) error {
	body, err := os.ReadFile(c.String("file"))
	if err != nil {
		return err
	}

	store, err := clickhouse.NewStore(storeConfig(c))
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		return err
	}

	id, err := store.Archive(ctx, c.String("account"), c.String("region"), time.Now(), body)
	if err != nil {
		return err
	}
	fmt.Printf("archived snapshot %s\n", id)
	return nil
}

func runSnapshotHistory(c *cli.Context) error {
	store, err := clickhouse.NewStore(storeConfig(c))
	if err != nil {
		return err
	}
	defer store.Close()

	rows, err := store.History(context.Background(), c.String("account"), c.String("region"), 20)
	if err != nil {
		return err
	}

	for _, row := range rows {
		fmt.Printf("%s  %s  %s  %s/%s\n",
			row.ID, row.FetchedAt.Format(time.RFC3339), row.Hash[:16], row.Account, row.Region)
	}
	return nil
}

// =============================================================================
// RESOURCES COMMAND
// =============================================================================

func resourcesCommand() *cli.Command {
	return &cli.Command{
		Name:  "resources",
		Usage: "List supported resource types",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "text",
				Usage:   "Output format: text, json",
			},
		},
		Action: func(c *cli.Context) error {
			types := awshandlers.SupportedResourceTypes()
			if c.String("format") == "json" {
				return json.NewEncoder(os.Stdout).Encode(types)
			}
			for _, t := range types {
				fmt.Println(t)
			}
			return nil
		},
	}
}
