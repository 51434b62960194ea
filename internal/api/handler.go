// Package api exposes the statement pipeline over HTTP. The endpoints fail
// softly the way the pipeline does: a statement that parses only partially
// still returns whatever was recovered plus its summary.
package api

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/quillbooks/statement-parser/internal/buildinfo"
	"github.com/quillbooks/statement-parser/internal/config"
	"github.com/quillbooks/statement-parser/internal/extractor"
	"github.com/quillbooks/statement-parser/internal/models"
	"github.com/quillbooks/statement-parser/internal/pipeline"
	"github.com/quillbooks/statement-parser/internal/store"
)

// ParseResponse is the JSON response from POST /api/statements/parse.
type ParseResponse struct {
	Success      bool                       `json:"success"`
	Error        string                     `json:"error,omitempty"`
	Year         int                        `json:"year,omitempty"`
	Count        int                        `json:"count"`
	Transactions []models.ParsedTransaction `json:"transactions"`
	Summary      *models.StatementSummary   `json:"summary,omitempty"`
}

// Handler holds the HTTP handlers and their collaborators.
type Handler struct {
	Config   config.Config
	Pipeline *pipeline.Pipeline
	Store    store.Store
}

// NewApp builds the fiber application with routes and middleware registered.
func NewApp(h *Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit: h.Config.Server.MaxUploadMB << 20,
	})
	app.Use(recover.New())
	app.Use(logger.New())

	app.Get("/api/health", h.handleHealth)
	app.Post("/api/statements/parse", h.handleParse)
	app.Get("/api/transactions", h.handleListTransactions)

	if dir := h.Config.Server.StaticDir; dir != "" {
		app.Static("/", dir)
	}

	return app
}

func (h *Handler) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "version": buildinfo.Version})
}

// handleParse accepts either a multipart PDF upload under form field "file"
// or pre-extracted text under "rawText", plus a "year" form value. With
// persist=true the recovered transactions are also written to the store.
func (h *Handler) handleParse(c *fiber.Ctx) error {
	rawText, err := h.statementText(c)
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, err.Error())
	}

	year := h.Config.StatementYear(parseYear(c.FormValue("year")))

	res, err := h.Pipeline.Process(rawText, year)
	if err != nil {
		// The only pipeline error is unreadable input.
		return writeError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	txns := res.Transactions
	if strings.EqualFold(c.FormValue("persist"), "true") {
		txns, err = h.Store.SaveTransactions(c.Context(), txns)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, fmt.Sprintf("persisting transactions: %v", err))
		}
	}
	if txns == nil {
		txns = []models.ParsedTransaction{}
	}

	return c.JSON(ParseResponse{
		Success:      true,
		Year:         year,
		Count:        len(txns),
		Transactions: txns,
		Summary:      &res.Summary,
	})
}

func (h *Handler) handleListTransactions(c *fiber.Ctx) error {
	txns, err := h.Store.ListTransactions(c.Context())
	if err != nil {
		return writeError(c, fiber.StatusInternalServerError, err.Error())
	}
	if txns == nil {
		txns = []models.ParsedTransaction{}
	}
	return c.JSON(fiber.Map{"count": len(txns), "transactions": txns})
}

// statementText resolves the request's statement text: pre-extracted text if
// supplied, otherwise text extracted from the uploaded PDF.
func (h *Handler) statementText(c *fiber.Ctx) (string, error) {
	if rawText := c.FormValue("rawText"); strings.TrimSpace(rawText) != "" {
		return rawText, nil
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return "", fmt.Errorf("no statement supplied: provide a PDF under form field %q or text under %q", "file", "rawText")
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		return "", fmt.Errorf("only PDF uploads are supported")
	}

	tmp, err := os.CreateTemp("", "statement-*.pdf")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	tmp.Close()

	if err := c.SaveFile(fileHeader, tmp.Name()); err != nil {
		return "", fmt.Errorf("saving upload: %w", err)
	}

	text, err := extractor.ExtractText(tmp.Name())
	if err != nil {
		return "", fmt.Errorf("extracting text: %w", err)
	}
	return text, nil
}

func parseYear(s string) int {
	y, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return y
}

func writeError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ParseResponse{
		Success:      false,
		Error:        msg,
		Transactions: []models.ParsedTransaction{},
	})
}
