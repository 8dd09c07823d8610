package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zizouhuweidi/trivia/internal/config"
)

type app struct {
	cfg config.Config

	addr     string
	dbDriver string
}

// NewRootCommand builds the trivia command tree
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:               "trivia",
		Short:             "Trivia question bank and quiz API",
		SilenceUsage:      true,
		PersistentPreRunE: a.loadConfig,
	}
	root.PersistentFlags().StringVar(&a.addr, "addr", "", "HTTP listen address (overrides HTTP_ADDR)")
	root.PersistentFlags().StringVar(&a.dbDriver, "db-driver", "", "record store: postgres, sqlite or memory (overrides DB_DRIVER)")

	root.AddCommand(a.serveCommand(), a.migrateCommand(), a.seedCommand())
	return root
}

// Execute runs the root command until it finishes or the process is
// interrupted
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return NewRootCommand().ExecuteContext(ctx)
}

func (a *app) loadConfig(cmd *cobra.Command, _ []string) error {
	a.cfg = config.FromEnv()
	if cmd.Flags().Changed("addr") {
		a.cfg.HTTPAddr = a.addr
	}
	if cmd.Flags().Changed("db-driver") {
		a.cfg.DBDriver = config.Driver(a.dbDriver)
	}

	switch a.cfg.DBDriver {
	case config.DriverPostgres, config.DriverSQLite, config.DriverMemory:
		return nil
	default:
		return fmt.Errorf("unknown database driver %q", a.cfg.DBDriver)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	if strings.EqualFold(level, "debug") {
		return zap.NewDevelopment()
	}

	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	return cfg.Build()
}
