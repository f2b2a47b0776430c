package handler

import (
	"context"

	"quiz-deck/internal/domain"
	"quiz-deck/internal/dto"
	"quiz-deck/internal/middleware"
	"quiz-deck/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SessionHandler handles quiz session HTTP requests
type SessionHandler struct {
	service service.SessionService
}

// NewSessionHandler creates a new SessionHandler instance
func NewSessionHandler(service service.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

// StartSession godoc
// @Summary Start a quiz
// @Description Draws count random questions from the pool. count must be between 1 and the pool size.
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body dto.StartSessionRequest true "Pool and question count"
// @Success 201 {object} dto.SessionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions [post]
func (h *SessionHandler) StartSession(c *fiber.Ctx) error {
	var req dto.StartSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	session, err := h.service.StartSession(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

// GetSession godoc
// @Summary Get quiz session state
// @Tags sessions
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{sessionID} [get]
func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	return h.respond(c, h.service.GetSession)
}

// Answer godoc
// @Summary Answer the current question
// @Description Records the chosen label (A-D) for the current question, replacing an earlier choice
// @Tags sessions
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param request body dto.AnswerRequest true "Chosen option"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /sessions/{sessionID}/answer [put]
func (h *SessionHandler) Answer(c *fiber.Ctx) error {
	var req dto.AnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	return h.respond(c, func(ctx context.Context, id string) (*dto.SessionResponse, error) {
		return h.service.Answer(ctx, id, req.Choice)
	})
}

// Next godoc
// @Summary Go to the next question
// @Description On the last question this completes the quiz
// @Tags sessions
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /sessions/{sessionID}/next [post]
func (h *SessionHandler) Next(c *fiber.Ctx) error {
	return h.respond(c, h.service.Next)
}

// Previous godoc
// @Summary Go to the previous question
// @Tags sessions
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /sessions/{sessionID}/previous [post]
func (h *SessionHandler) Previous(c *fiber.Ctx) error {
	return h.respond(c, h.service.Previous)
}

// Submit godoc
// @Summary Finish the quiz now
// @Description Unanswered questions are scored as incorrect
// @Tags sessions
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /sessions/{sessionID}/submit [post]
func (h *SessionHandler) Submit(c *fiber.Ctx) error {
	return h.respond(c, h.service.Submit)
}

// Retake godoc
// @Summary Retake the quiz
// @Description Draws a new random selection of the same size from the same pool
// @Tags sessions
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /sessions/{sessionID}/retake [post]
func (h *SessionHandler) Retake(c *fiber.Ctx) error {
	return h.respond(c, h.service.Retake)
}

// GetResults godoc
// @Summary Get quiz results
// @Description Score summary and per-question review with correct answers and explanations
// @Tags sessions
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} dto.ResultsResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /sessions/{sessionID}/results [get]
func (h *SessionHandler) GetResults(c *fiber.Ctx) error {
	results, err := h.service.GetResults(c.UserContext(), sessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(results)
}

// Reset godoc
// @Summary Discard a quiz session
// @Tags sessions
// @Param sessionID path string true "Session ID"
// @Success 204
// @Router /sessions/{sessionID} [delete]
func (h *SessionHandler) Reset(c *fiber.Ctx) error {
	if err := h.service.Reset(c.UserContext(), sessionID(c)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *SessionHandler) respond(c *fiber.Ctx, fn func(ctx context.Context, id string) (*dto.SessionResponse, error)) error {
	session, err := fn(c.UserContext(), sessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(session)
}

func sessionID(c *fiber.Ctx) string {
	if id, ok := c.Locals(middleware.LocalSessionID).(string); ok {
		return id
	}
	return c.Params("sessionID")
}
