package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"addressbook/config"
	"addressbook/internal/errors"
	logs "addressbook/internal/infra/log"
	"addressbook/internal/infra/persistence/postgres"

	"github.com/spf13/cobra"
)

// Supported subcommands:
// - up:     apply every pending migration
// - down:   roll back the latest migration
// - status: list migrations and when they were applied

func main() {
	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the address book database schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply every pending migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrator(cmd.Context(), func(ctx context.Context, m *postgres.Migrator) error {
					return m.Up(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recently applied migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrator(cmd.Context(), func(ctx context.Context, m *postgres.Migrator) error {
					return m.Down(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show the applied state of every migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrator(cmd.Context(), func(ctx context.Context, m *postgres.Migrator) error {
					return printStatus(ctx, cmd, m)
				})
			},
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// withMigrator loads configuration, opens the pool and hands a migrator to fn.
func withMigrator(ctx context.Context, fn func(context.Context, *postgres.Migrator) error) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	defer func() {
		if closeErr := sqlDB.Close(); closeErr != nil {
			logger.Warn("Failed to close PostgreSQL pool", slog.Any("error", closeErr))
		}
	}()

	migrator, err := postgres.NewMigrator(db, logger)
	if err != nil {
		return err
	}

	return fn(ctx, migrator)
}

func printStatus(ctx context.Context, cmd *cobra.Command, m *postgres.Migrator) error {
	statuses, err := m.Status(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VERSION\tSTATE\tAPPLIED AT\tSOURCE")
	for _, status := range statuses {
		appliedAt := "-"
		if !status.AppliedAt.IsZero() {
			appliedAt = status.AppliedAt.Format(time.RFC3339)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", status.Source.Version, status.State, appliedAt, status.Source.Path)
	}

	return w.Flush()
}
