package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zizouhuweidi/trivia/internal/cache"
	"github.com/zizouhuweidi/trivia/internal/database"
)

func (a *app) migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Apply, roll back or inspect schema migrations",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "status"},
		RunE:      a.migrate,
	}
}

func (a *app) migrate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	command := "up"
	if len(args) == 1 {
		command = args[0]
	}

	logger, err := newLogger(a.cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	store, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer store.close()

	if err := store.migrate(ctx, command); err != nil {
		return err
	}
	logger.Info("migrations finished", zap.String("command", command), zap.String("driver", string(a.cfg.DBDriver)))

	if command == "status" || a.cfg.Redis.Addr == "" {
		return nil
	}

	// the category rows may have changed under the cache
	client, err := database.ConnectRedis(ctx, a.cfg.Redis)
	if err != nil {
		logger.Warn("skipping category cache invalidation", zap.Error(err))
		return nil
	}
	defer client.Close()

	if err := cache.NewCategoryCache(client, a.cfg.CategoryCacheTTL).Invalidate(ctx); err != nil {
		logger.Warn("failed to invalidate category cache", zap.Error(err))
	}
	return nil
}
