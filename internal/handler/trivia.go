package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/service"
	"github.com/zizouhuweidi/trivia/internal/trivia"
)

// TriviaHandler handles the trivia HTTP API
type TriviaHandler struct {
	service *service.TriviaService
}

// NewTriviaHandler creates a new trivia handler
func NewTriviaHandler(svc *service.TriviaService) *TriviaHandler {
	return &TriviaHandler{service: svc}
}

// Register registers the trivia routes
func (h *TriviaHandler) Register(e *echo.Echo) {
	e.GET("/categories", h.ListCategories)
	e.GET("/categories/:id/questions", h.QuestionsByCategory)
	e.GET("/questions", h.ListQuestions)
	e.POST("/questions", h.CreateQuestion)
	e.DELETE("/questions/:id", h.DeleteQuestion)
	e.POST("/search", h.SearchQuestions)
	e.POST("/quizzes", h.NextQuizQuestion)
	e.POST("/quizzes/answers", h.CheckAnswer)
	e.GET("/health", h.Health)
}

// CreateQuestionRequest represents the request to create a new question
type CreateQuestionRequest struct {
	Question   string `json:"question" validate:"required"`
	Answer     string `json:"answer" validate:"required"`
	Category   int    `json:"category" validate:"required,gte=1"`
	Difficulty int    `json:"difficulty" validate:"required,gte=1"`
}

// SearchRequest represents a question search
type SearchRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// AnswerRequest represents a quiz answer to check
type AnswerRequest struct {
	QuestionID int    `json:"question_id" validate:"required,gte=1"`
	Answer     string `json:"answer" validate:"required"`
}

// CategoriesResponse lists every category
type CategoriesResponse struct {
	Success         bool              `json:"success"`
	Categories      []domain.Category `json:"categories"`
	TotalCategories int               `json:"total_categories"`
}

// QuestionsResponse is one page of the question listing
type QuestionsResponse struct {
	Success         bool              `json:"success"`
	Questions       []domain.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	Categories      []domain.Category `json:"categories"`
	CurrentCategory *int              `json:"current_category"`
}

// DeleteResponse is returned after a question is deleted
type DeleteResponse struct {
	Success        bool              `json:"success"`
	Deleted        int               `json:"deleted"`
	Questions      []domain.Question `json:"questions"`
	TotalQuestions int               `json:"total_questions"`
}

// CreateResponse is returned after a question is created
type CreateResponse struct {
	Success        bool              `json:"success"`
	Created        int               `json:"created"`
	Questions      []domain.Question `json:"questions"`
	TotalQuestions int               `json:"total_questions"`
}

// SearchResponse lists the questions matching a search term
type SearchResponse struct {
	Success               bool              `json:"success"`
	Questions             []domain.Question `json:"questions"`
	TotalMatchedQuestions int               `json:"total_matched_questions"`
}

// CategoryQuestionsResponse lists the questions of one category
type CategoryQuestionsResponse struct {
	Success         bool              `json:"success"`
	Questions       []domain.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	CurrentCategory int               `json:"current_category"`
}

// QuizResponse carries the next quiz question, or null when the round is over
type QuizResponse struct {
	Success  bool             `json:"success"`
	Question *domain.Question `json:"question"`
}

// AnswerResponse is the outcome of an answer check
type AnswerResponse struct {
	Success bool   `json:"success"`
	Correct bool   `json:"correct"`
	Answer  string `json:"answer"`
}

// ListCategories handles GET /categories
func (h *TriviaHandler) ListCategories(c echo.Context) error {
	categories, err := h.service.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, CategoriesResponse{
		Success:         true,
		Categories:      categories,
		TotalCategories: len(categories),
	})
}

// ListQuestions handles GET /questions?page=N
func (h *TriviaHandler) ListQuestions(c echo.Context) error {
	page, err := h.service.ListQuestionsPage(c.Request().Context(), trivia.ParsePage(c.QueryParam("page")))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, QuestionsResponse{
		Success:        true,
		Questions:      page.Questions,
		TotalQuestions: page.TotalQuestions,
		Categories:     page.Categories,
	})
}

// DeleteQuestion handles DELETE /questions/:id
func (h *TriviaHandler) DeleteQuestion(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return domain.ErrQuestionNotFound
	}

	res, err := h.service.DeleteQuestion(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, DeleteResponse{
		Success:        true,
		Deleted:        res.Deleted,
		Questions:      res.Questions,
		TotalQuestions: res.TotalQuestions,
	})
}

// CreateQuestion handles POST /questions
func (h *TriviaHandler) CreateQuestion(c echo.Context) error {
	var req CreateQuestionRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	res, err := h.service.CreateQuestion(c.Request().Context(), service.CreateQuestionInput{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category,
		Difficulty: req.Difficulty,
	}, trivia.ParsePage(c.QueryParam("page")))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, CreateResponse{
		Success:        true,
		Created:        res.Created,
		Questions:      res.Questions,
		TotalQuestions: res.TotalQuestions,
	})
}

// SearchQuestions handles POST /search
func (h *TriviaHandler) SearchQuestions(c echo.Context) error {
	var req SearchRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	questions, err := h.service.SearchQuestions(c.Request().Context(), req.SearchTerm)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, SearchResponse{
		Success:               true,
		Questions:             questions,
		TotalMatchedQuestions: len(questions),
	})
}

// QuestionsByCategory handles GET /categories/:id/questions
func (h *TriviaHandler) QuestionsByCategory(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return domain.ErrCategoryNotFound
	}

	res, err := h.service.QuestionsByCategory(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, CategoryQuestionsResponse{
		Success:         true,
		Questions:       res.Questions,
		TotalQuestions:  res.TotalQuestions,
		CurrentCategory: res.CurrentCategory,
	})
}

// NextQuizQuestion handles POST /quizzes
func (h *TriviaHandler) NextQuizQuestion(c echo.Context) error {
	var req trivia.QuizRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	question, err := h.service.NextQuizQuestion(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, QuizResponse{Success: true, Question: question})
}

// CheckAnswer handles POST /quizzes/answers
func (h *TriviaHandler) CheckAnswer(c echo.Context) error {
	var req AnswerRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	res, err := h.service.CheckAnswer(c.Request().Context(), req.QuestionID, req.Answer)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, AnswerResponse{
		Success: true,
		Correct: res.Correct,
		Answer:  res.Answer,
	})
}

// Health handles GET /health
func (h *TriviaHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
