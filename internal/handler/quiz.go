package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"

	"docquiz/internal/domain"
	"docquiz/internal/dto"
	"docquiz/internal/logger"
	"docquiz/internal/service"
	"docquiz/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var whitespacePattern = regexp.MustCompile(`\s+`)

// QuizHandler handles quiz generation and export HTTP requests
type QuizHandler struct {
	generation service.GenerationService
	exporter   domain.QuizExporter
	validator  *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(generation service.GenerationService, exporter domain.QuizExporter, validator *validation.Validator) *QuizHandler {
	return &QuizHandler{
		generation: generation,
		exporter:   exporter,
		validator:  validator,
	}
}

// GenerateQuiz godoc
// @Summary Generate a quiz from an uploaded document
// @Description Extracts text from the uploaded PDF and generates quiz items via the remote assistant
// @Tags quiz
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Source document (PDF)"
// @Param options formData string true "Generation options as JSON"
// @Param focus_area formData string false "Optional focus hint"
// @Success 200 {object} dto.GenerateQuizResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /quiz/generate [post]
func (h *QuizHandler) GenerateQuiz(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return domain.NewInvalidInputError("Missing file upload")
	}

	optionsValue := c.FormValue("options")
	if optionsValue == "" {
		return domain.NewInvalidInputError("Missing options")
	}
	var opts dto.GenerateQuizOptions
	if err := json.Unmarshal([]byte(optionsValue), &opts); err != nil {
		return domain.NewInvalidInputError("Options payload is not valid JSON")
	}

	if errs := h.validator.ValidateGenerateOptions(&opts); len(errs) > 0 {
		return errs
	}

	file, err := fileHeader.Open()
	if err != nil {
		return domain.NewInternalError("Failed to open uploaded file", err)
	}
	defer file.Close()
	payload, err := io.ReadAll(file)
	if err != nil {
		return domain.NewInternalError("Failed to read uploaded file", err)
	}

	focusHint := c.FormValue("focus_area")

	resp, err := h.generation.GenerateQuiz(c.UserContext(), fileHeader.Filename, payload, &opts, focusHint)
	if err != nil {
		logger.Get().Error("Quiz generation failed",
			zap.Error(err),
			zap.String("file", fileHeader.Filename),
		)
		return err
	}

	return c.JSON(resp)
}

// ExportQuiz godoc
// @Summary Export a quiz as a PDF document
// @Description Renders the given quiz items and answer key into a downloadable PDF
// @Tags quiz
// @Accept json
// @Produce application/pdf
// @Param request body dto.ExportQuizRequest true "Quiz items and title"
// @Success 200 {file} binary
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quiz/export [post]
func (h *QuizHandler) ExportQuiz(c *fiber.Ctx) error {
	var req dto.ExportQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Request body is not valid JSON")
	}

	if errs := h.validator.ValidateExportRequest(&req); len(errs) > 0 {
		return errs
	}

	document, err := h.exporter.Render(dto.ToDomainItems(req.Questions), req.Title)
	if err != nil {
		logger.Get().Error("Quiz export failed",
			zap.Error(err),
			zap.String("title", req.Title),
		)
		return err
	}

	filename := whitespacePattern.ReplaceAllString(req.Title, "_") + ".pdf"
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(document)
}
