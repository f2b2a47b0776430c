package handler

import (
	"quiz-deck/internal/domain"
	"quiz-deck/internal/middleware"
	"quiz-deck/internal/service"
	"quiz-deck/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// PoolHandler handles question pool HTTP requests
type PoolHandler struct {
	service        service.PoolService
	validator      *validation.Validator
	maxUploadBytes int
}

// NewPoolHandler creates a new PoolHandler instance
func NewPoolHandler(service service.PoolService, maxUploadBytes int) *PoolHandler {
	return &PoolHandler{
		service:        service,
		validator:      validation.NewValidator(),
		maxUploadBytes: maxUploadBytes,
	}
}

// ImportPool godoc
// @Summary Upload a question spreadsheet
// @Description Parses the first sheet of an .xlsx file into a question pool. Columns: question, options A-D, correct label, optional explanation. Invalid rows are skipped.
// @Tags pools
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Excel (.xlsx) file"
// @Success 201 {object} dto.PoolResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /pools [post]
func (h *PoolHandler) ImportPool(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return domain.ValidationErrors{domain.NewMissingFieldError("file")}
	}
	if errs := h.validator.ValidateUpload(fh.Filename, fh.Size, h.maxUploadBytes); len(errs) > 0 {
		return errs
	}

	f, err := fh.Open()
	if err != nil {
		return domain.NewInternalError("failed to open uploaded file", err)
	}
	defer f.Close()

	pool, err := h.service.ImportPool(c.UserContext(), fh.Filename, f)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(pool)
}

// GetPool godoc
// @Summary Get a question pool
// @Description Returns pool details with the allowed quiz size range and the default count
// @Tags pools
// @Produce json
// @Param poolID path string true "Pool ID"
// @Success 200 {object} dto.PoolResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /pools/{poolID} [get]
func (h *PoolHandler) GetPool(c *fiber.Ctx) error {
	pool, err := h.service.GetPool(c.UserContext(), poolID(c))
	if err != nil {
		return err
	}
	return c.JSON(pool)
}

// DeletePool godoc
// @Summary Delete a question pool
// @Description Removes the pool, its questions and its result history
// @Tags pools
// @Param poolID path string true "Pool ID"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse
// @Router /pools/{poolID} [delete]
func (h *PoolHandler) DeletePool(c *fiber.Ctx) error {
	if err := h.service.DeletePool(c.UserContext(), poolID(c)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListResults godoc
// @Summary List completed quizzes of a pool
// @Tags pools
// @Produce json
// @Param poolID path string true "Pool ID"
// @Success 200 {object} dto.PoolResultsResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /pools/{poolID}/results [get]
func (h *PoolHandler) ListResults(c *fiber.Ctx) error {
	results, err := h.service.ListResults(c.UserContext(), poolID(c))
	if err != nil {
		return err
	}
	return c.JSON(results)
}

func poolID(c *fiber.Ctx) string {
	if id, ok := c.Locals(middleware.LocalPoolID).(string); ok {
		return id
	}
	return c.Params("poolID")
}
