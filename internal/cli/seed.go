package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zizouhuweidi/trivia/internal/config"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/handler"
)

func (a *app) seedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed <file.json>",
		Short: "Bulk-load questions from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE:  a.seed,
	}
}

func (a *app) seed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if a.cfg.DBDriver == config.DriverMemory {
		return errNoSQLDriver
	}

	logger, err := newLogger(a.cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	questions, err := readSeedFile(args[0])
	if err != nil {
		return err
	}

	store, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer store.close()

	if err := store.migrate(ctx, "up"); err != nil {
		return err
	}

	if err := store.BulkCreateQuestions(ctx, questions); err != nil {
		return fmt.Errorf("failed to seed questions: %w", err)
	}
	logger.Info("seeded questions", zap.Int("count", len(questions)), zap.String("file", args[0]))
	return nil
}

// readSeedFile decodes and validates a JSON array of questions
func readSeedFile(path string) ([]*domain.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var reqs []handler.CreateQuestionRequest
	if err := json.Unmarshal(data, &reqs); err != nil {
		return nil, fmt.Errorf("failed to decode seed file: %w", err)
	}

	v := handler.NewValidator()
	questions := make([]*domain.Question, 0, len(reqs))
	for i, req := range reqs {
		if err := v.Validate(&req); err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
		questions = append(questions, &domain.Question{
			Question:   req.Question,
			Answer:     req.Answer,
			Category:   req.Category,
			Difficulty: req.Difficulty,
		})
	}
	return questions, nil
}
