package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/zizouhuweidi/trivia/internal/cache"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/trivia"
	"github.com/zizouhuweidi/trivia/internal/validation"
)

// CategoryCache is the read-through cache for the category listing
type CategoryCache interface {
	GetCategories(ctx context.Context) ([]domain.Category, error)
	StoreCategories(ctx context.Context, categories []domain.Category) error
}

// EventPublisher fans question changes out to live subscribers
type EventPublisher interface {
	PublishQuestionEvent(ctx context.Context, event domain.QuestionEvent)
}

// Options configures the optional collaborators of TriviaService
type Options struct {
	Cache             CategoryCache
	Events            EventPublisher
	Source            trivia.Source
	EmptyPageNotFound bool
}

// TriviaService reads snapshots from the Record Store and applies the
// pagination, search, scoping and quiz rules to them
type TriviaService struct {
	store             domain.Store
	cache             CategoryCache
	events            EventPublisher
	selector          *trivia.Selector
	emptyPageNotFound bool
	logger            *zap.Logger
}

// NewTriviaService creates a new trivia service
func NewTriviaService(store domain.Store, logger *zap.Logger, opts Options) *TriviaService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TriviaService{
		store:             store,
		cache:             opts.Cache,
		events:            opts.Events,
		selector:          trivia.NewSelector(opts.Source),
		emptyPageNotFound: opts.EmptyPageNotFound,
		logger:            logger,
	}
}

// QuestionPage is one page of the question listing
type QuestionPage struct {
	Questions      []domain.Question
	TotalQuestions int
	Categories     []domain.Category
}

// DeleteResult describes the question set after a delete
type DeleteResult struct {
	Deleted        int
	Questions      []domain.Question
	TotalQuestions int
}

// CreateQuestionInput holds the four required fields of a new question
type CreateQuestionInput struct {
	Question   string
	Answer     string
	Category   int
	Difficulty int
}

// CreateResult describes the question set after a create
type CreateResult struct {
	Created        int
	Questions      []domain.Question
	TotalQuestions int
}

// CategoryQuestions is the listing of one category
type CategoryQuestions struct {
	Questions       []domain.Question
	TotalQuestions  int
	CurrentCategory int
}

// AnswerResult is the outcome of checking a quiz answer
type AnswerResult struct {
	QuestionID int
	Correct    bool
	Answer     string
}

// ListCategories returns every category, served from the cache when possible
func (s *TriviaService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	if s.cache != nil {
		categories, err := s.cache.GetCategories(ctx)
		if err == nil {
			return categories, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			s.logger.Warn("category cache read failed", zap.Error(err))
		}
	}

	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.StoreCategories(ctx, categories); err != nil {
			s.logger.Warn("category cache write failed", zap.Error(err))
		}
	}
	return categories, nil
}

// ListQuestionsPage returns page of the question listing
func (s *TriviaService) ListQuestionsPage(ctx context.Context, page int) (*QuestionPage, error) {
	questions, err := s.store.ListQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	current := trivia.Paginate(questions, page)
	if len(current) == 0 && s.emptyPageNotFound {
		return nil, fmt.Errorf("page %d: %w", page, domain.ErrPageNotFound)
	}

	categories, err := s.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	return &QuestionPage{
		Questions:      current,
		TotalQuestions: len(questions),
		Categories:     categories,
	}, nil
}

// DeleteQuestion deletes a question and returns the remaining questions
func (s *TriviaService) DeleteQuestion(ctx context.Context, id int) (*DeleteResult, error) {
	if err := s.store.DeleteQuestion(ctx, id); err != nil {
		if errors.Is(err, domain.ErrQuestionNotFound) {
			return nil, fmt.Errorf("question %d: %w", id, err)
		}
		return nil, fmt.Errorf("failed to delete question: %w", err)
	}

	s.publish(ctx, domain.QuestionEvent{Type: domain.EventQuestionDeleted, Deleted: id})

	questions, err := s.store.ListQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	return &DeleteResult{
		Deleted:        id,
		Questions:      questions,
		TotalQuestions: len(questions),
	}, nil
}

// CreateQuestion stores a new question and returns page of the listing
func (s *TriviaService) CreateQuestion(ctx context.Context, in CreateQuestionInput, page int) (*CreateResult, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	question := &domain.Question{
		Question:   strings.TrimSpace(in.Question),
		Answer:     strings.TrimSpace(in.Answer),
		Category:   in.Category,
		Difficulty: in.Difficulty,
	}
	if err := s.store.CreateQuestion(ctx, question); err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	s.logger.Debug("question created", zap.Int("id", question.ID), zap.Int("category", question.Category))
	s.publish(ctx, domain.QuestionEvent{Type: domain.EventQuestionCreated, Question: question})

	questions, err := s.store.ListQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	return &CreateResult{
		Created:        question.ID,
		Questions:      trivia.Paginate(questions, page),
		TotalQuestions: len(questions),
	}, nil
}

func (in CreateQuestionInput) validate() error {
	switch {
	case strings.TrimSpace(in.Question) == "":
		return fmt.Errorf("%w: question is required", domain.ErrInvalidInput)
	case strings.TrimSpace(in.Answer) == "":
		return fmt.Errorf("%w: answer is required", domain.ErrInvalidInput)
	case in.Category <= 0:
		return fmt.Errorf("%w: category is required", domain.ErrInvalidInput)
	case in.Difficulty <= 0:
		return fmt.Errorf("%w: difficulty is required", domain.ErrInvalidInput)
	}
	return nil
}

// SearchQuestions returns every question whose text contains term
func (s *TriviaService) SearchQuestions(ctx context.Context, term string) ([]domain.Question, error) {
	if strings.TrimSpace(term) == "" {
		return nil, fmt.Errorf("%w: search term is required", domain.ErrUnprocessable)
	}

	questions, err := s.store.ListQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return trivia.Search(questions, term)
}

// QuestionsByCategory returns every question of an existing category
func (s *TriviaService) QuestionsByCategory(ctx context.Context, categoryID int) (*CategoryQuestions, error) {
	if _, err := s.store.GetCategory(ctx, categoryID); err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return nil, fmt.Errorf("category %d: %w", categoryID, err)
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	questions, err := s.store.ListQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	scoped := trivia.ScopeByCategory(questions, categoryID)
	return &CategoryQuestions{
		Questions:       scoped,
		TotalQuestions:  len(scoped),
		CurrentCategory: categoryID,
	}, nil
}

// NextQuizQuestion picks the next unseen question of a quiz round. A nil
// question with a nil error means no question is left.
func (s *TriviaService) NextQuizQuestion(ctx context.Context, req trivia.QuizRequest) (*domain.Question, error) {
	if req.Category == nil || req.Category.ID == nil {
		return nil, fmt.Errorf("%w: quiz category is required", domain.ErrUnprocessable)
	}

	questions, err := s.store.ListQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	categories, err := s.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	return s.selector.Next(trivia.Snapshot{Questions: questions, Categories: categories}, req)
}

// CheckAnswer compares a player's answer with the stored one
func (s *TriviaService) CheckAnswer(ctx context.Context, questionID int, answer string) (*AnswerResult, error) {
	question, err := s.store.GetQuestion(ctx, questionID)
	if err != nil {
		if errors.Is(err, domain.ErrQuestionNotFound) {
			return nil, fmt.Errorf("question %d: %w", questionID, err)
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}

	return &AnswerResult{
		QuestionID: question.ID,
		Correct:    validation.IsCorrectAnswer(question.Answer, answer),
		Answer:     question.Answer,
	}, nil
}

func (s *TriviaService) publish(ctx context.Context, event domain.QuestionEvent) {
	if s.events == nil {
		return
	}
	s.events.PublishQuestionEvent(ctx, event)
}
