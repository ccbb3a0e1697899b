package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/rogerio-castellano/inventory-cli/internal/config"
	"github.com/rogerio-castellano/inventory-cli/internal/inventory"
	"github.com/rogerio-castellano/inventory-cli/internal/logging"
	"github.com/rogerio-castellano/inventory-cli/internal/shell"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "inventory",
		Usage: "interactive inventory tracker",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "path to a config file (yaml, json or toml)",
				EnvVars: []string{"INVENTORY_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (trace, debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "log format (text or json)",
			},
			&cli.StringFlag{
				Name:  "currency",
				Usage: "currency symbol printed before prices",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("inventory exited with error")
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.LogFormat = c.String("log-format")
	}
	if c.IsSet("currency") {
		cfg.Currency = c.String("currency")
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := inventory.NewInMemoryStore(inventory.WithLogger(logger))
	sh := shell.New(store, os.Stdin, os.Stdout,
		shell.WithCurrency(cfg.Currency),
		shell.WithLogger(logger),
	)

	logger.WithFields(log.Fields{"log_level": cfg.LogLevel, "currency": cfg.Currency}).Info("inventory shell started")
	if err := sh.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
