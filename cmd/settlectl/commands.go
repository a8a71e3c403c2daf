package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/amirhossein-jamali/settlement-engine/internal/app"
	errs "github.com/amirhossein-jamali/settlement-engine/internal/domain/error"
	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/api/middleware"
	timeprovider "github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/config"
	"github.com/spf13/cobra"
)

// loadConfig reads the configuration for the environment named by --env
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if env, _ := cmd.Flags().GetString("env"); env != "" {
		if err := os.Setenv(config.EnvPrefix+"_ENV", env); err != nil {
			return nil, err
		}
	}
	return config.LoadConfig()
}

// withApp builds the application, runs fn and releases everything afterwards
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	appLogger, err := app.NewLogger(cfg)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = appLogger.Flush() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := app.New(ctx, cfg, appLogger)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	return fn(ctx, a)
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Bring the database schema to the current version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				if err := a.Migrate(ctx); err != nil {
					return fmt.Errorf("migrate: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")
				return nil
			})
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Register the demo guests that do not exist yet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				created, err := a.Guests.SeedDefaultGuests(ctx)
				if err != nil {
					return fmt.Errorf("seed guests (created %d): %w", created, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created %d guests\n", created)
				return nil
			})
		},
	}
}

func reconcileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Retry charged transactions and pending ones that failed transiently",
		Long: `Runs one reconciliation pass. Every candidate is retried through the normal
settle path, so a pass can be repeated safely. Exits non-zero when any
transaction is still unsettled afterwards.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				report, err := a.Reconciler.Run(ctx)
				if err != nil && report == nil {
					return fmt.Errorf("reconcile: %w", err)
				}

				if asJSON {
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					if encErr := enc.Encode(report); encErr != nil {
						return encErr
					}
				} else {
					out := cmd.OutOrStdout()
					fmt.Fprintf(out, "scanned=%d settled=%d partial=%d failed=%d skipped=%d\n",
						report.Scanned, report.Settled, report.Partial, report.Failed, report.Skipped)
					ids := make([]string, 0, len(report.Failures))
					for id := range report.Failures {
						ids = append(ids, id)
					}
					sort.Strings(ids)
					for _, id := range ids {
						fmt.Fprintf(out, "  %s: %s\n", id, report.Failures[id])
					}
				}

				if err != nil {
					return fmt.Errorf("reconcile interrupted: %w", err)
				}
				if report.Partial+report.Failed > 0 {
					return fmt.Errorf("%d transactions still unsettled", report.Partial+report.Failed)
				}
				return nil
			})
		},
	}
	cmd.Flags().Bool("json", false, "print the report as JSON")
	return cmd
}

func settleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "settle <transactionId>",
		Short: "Retry one transaction from its recorded status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				result, err := a.Settlement.Settle(ctx, args[0])
				if err != nil {
					if errs.IsDuplicateOperationError(err) {
						fmt.Fprintf(cmd.OutOrStdout(), "Transaction %s is already settled\n", args[0])
						return nil
					}
					return fmt.Errorf("settle %s: %w", args[0], err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Transaction %s is %s (reference %s)\n",
					result.TransactionID, result.Status, result.Reference)
				return nil
			})
		},
	}
}

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Sign a bearer token for the API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			role, _ := cmd.Flags().GetString("role")
			id, _ := cmd.Flags().GetUint64("id")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			switch middleware.Role(role) {
			case middleware.RoleHost, middleware.RoleGuest:
				if id == 0 {
					return fmt.Errorf("--id is required for role %s", role)
				}
			case middleware.RoleOperator:
			default:
				return fmt.Errorf("unknown role %q, must be one of host, guest, operator", role)
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			if strings.TrimSpace(cfg.Auth.JWTSecret) == "" {
				return fmt.Errorf("auth.jwtSecret is not configured")
			}

			authority := middleware.NewTokenAuthority(cfg.Auth.JWTSecret, cfg.Auth.Issuer, timeprovider.NewRealTimeProvider())
			token, err := authority.Issue(middleware.Role(role), id, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().String("role", string(middleware.RoleOperator), "caller role: host, guest or operator")
	cmd.Flags().Uint64("id", 0, "host or guest id")
	cmd.Flags().Duration("ttl", time.Hour, "token lifetime")
	return cmd
}
