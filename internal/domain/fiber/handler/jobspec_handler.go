package handler

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fadilmartias/jobspec-studio/internal/dto"
	"github.com/fadilmartias/jobspec-studio/internal/middleware"
	"github.com/fadilmartias/jobspec-studio/internal/model"
	"github.com/fadilmartias/jobspec-studio/internal/render"
	"github.com/fadilmartias/jobspec-studio/internal/response"
	"github.com/fadilmartias/jobspec-studio/internal/usecase"
	"github.com/fadilmartias/jobspec-studio/internal/util"
)

const maxUploadSize = 5 * 1024 * 1024

type JobSpecHandler struct {
	uc *usecase.JobSpecUsecase
}

func NewJobSpecHandler(uc *usecase.JobSpecUsecase) *JobSpecHandler {
	return &JobSpecHandler{uc: uc}
}

func (h *JobSpecHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/status", h.Status)
	app.Post("/structure", middleware.RateLimiter("structure", 10, time.Minute), h.Structure)
	app.Post("/render", h.Render)
	app.Post("/rewrite", middleware.RateLimiter("rewrite", 20, time.Minute), h.Rewrite)
	app.Get("/history", h.History)
	app.Delete("/history", h.ClearHistory)
	app.Get("/history/:id", h.Entry)
	app.Get("/history/:id/similar", h.Similar)
	app.Get("/history/:id/export", h.Export)
}

func (h *JobSpecHandler) Status(c *fiber.Ctx) error {
	mode := "stand-in"
	if h.uc.GatewayAvailable() {
		mode = "live"
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get status",
		Data:    fiber.Map{"gateway": mode},
	})
}

// Structure accepts either a JSON body with the posting text or a multipart
// form with a PDF under "file".
func (h *JobSpecHandler) Structure(c *fiber.Ctx) error {
	var req dto.StructureRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	if file, err := c.FormFile("file"); err == nil {
		text, status, err := h.extractUpload(c, file.Filename, file.Size, func(path string) error {
			return c.SaveFile(file, path)
		})
		if err != nil {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    status,
				Message: "cannot read uploaded file",
			}, err)
		}
		req.Text = text
	}

	entry, err := h.uc.Process(c.UserContext(), req.Text, renderOptions(req.Tone, req.Angle, req.Template))
	if err != nil {
		return h.fail(c, "failed to structure job text", err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success structure job text",
		Data:    dto.NewHistoryEntryDTO(entry),
	})
}

func (h *JobSpecHandler) extractUpload(c *fiber.Ctx, name string, size int64, save func(path string) error) (string, int, error) {
	if size > maxUploadSize {
		return "", fiber.StatusRequestEntityTooLarge, errors.New("file size is too large (max 5MB)")
	}
	if strings.ToLower(filepath.Ext(name)) != ".pdf" {
		return "", fiber.StatusUnsupportedMediaType, errors.New("unsupported file type, only PDF is accepted")
	}

	tmp, err := os.CreateTemp("", "posting-*.pdf")
	if err != nil {
		return "", fiber.StatusInternalServerError, err
	}
	path := tmp.Name()
	tmp.Close()
	defer os.Remove(path)

	if err := save(path); err != nil {
		return "", fiber.StatusInternalServerError, err
	}
	text, err := util.ExtractPDFText(path)
	if err != nil {
		return "", fiber.StatusUnprocessableEntity, err
	}
	return text, 0, nil
}

func (h *JobSpecHandler) Render(c *fiber.Ctx) error {
	var req dto.RenderRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	rec, err := model.ParseJobRecord(string(req.Record))
	if err != nil {
		var verr *model.ValidationError
		var details any
		if errors.As(err, &verr) {
			details = verr.Fields
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid record",
			Details: details,
		}, err)
	}

	a := h.uc.Render(rec, renderOptions(req.Tone, req.Angle, req.Template))
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success render record",
		Data:    dto.ArtifactsDTO{Summary: a.Summary, Email: a.Email, Questions: a.Questions},
	})
}

func (h *JobSpecHandler) Rewrite(c *fiber.Ctx) error {
	var req dto.RewriteRequest
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Text) == "" || strings.TrimSpace(req.Instruction) == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "text and instruction are required",
		}, err)
	}

	out, err := h.uc.Rewrite(c.UserContext(), req.Text, req.Instruction)
	if err != nil {
		return h.fail(c, "failed to rewrite text", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success rewrite text",
		Data:    fiber.Map{"text": out},
	})
}

func (h *JobSpecHandler) History(c *fiber.Ctx) error {
	entries := h.uc.History()
	page := response.Paginate(c.QueryInt("page", 1), c.QueryInt("page_size", 10), len(entries))

	items := make([]dto.HistoryItemDTO, 0, page.To-page.From)
	for _, e := range entries[page.From:page.To] {
		items = append(items, dto.HistoryItemDTO{ID: e.ID, Title: e.Title, CreatedAt: e.CreatedAt})
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success get history",
		Data:       items,
		Pagination: &page,
	})
}

func (h *JobSpecHandler) ClearHistory(c *fiber.Ctx) error {
	h.uc.ClearHistory()
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success clear history",
	})
}

func (h *JobSpecHandler) Entry(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badID(c, err)
	}
	e, err := h.uc.Entry(id)
	if err != nil {
		return h.fail(c, "history entry not found", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get history entry",
		Data:    dto.NewHistoryEntryDTO(e),
	})
}

func (h *JobSpecHandler) Similar(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badID(c, err)
	}
	matches, err := h.uc.Similar(id, c.QueryInt("top_n", 3))
	if err != nil {
		return h.fail(c, "history entry not found", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get similar jobs",
		Data:    dto.NewSimilarDTOs(matches),
	})
}

// Export returns the report as a download; format=text drops the JSON code
// fence.
func (h *JobSpecHandler) Export(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badID(c, err)
	}
	plain := c.Query("format") == "text"
	doc, err := h.uc.Export(id, plain)
	if err != nil {
		return h.fail(c, "failed to export history entry", err)
	}

	ext, mime := "md", "text/markdown; charset=utf-8"
	if plain {
		ext, mime = "txt", fiber.MIMETextPlainCharsetUTF8
	}
	c.Attachment("jobspec_" + time.Now().Format("20060102_1504") + "." + ext)
	c.Set(fiber.HeaderContentType, mime)
	return c.SendString(doc)
}

func (h *JobSpecHandler) fail(c *fiber.Ctx, message string, err error) error {
	code := fiber.StatusInternalServerError
	var extErr *usecase.ExtractionError
	switch {
	case errors.Is(err, usecase.ErrEmptyInput):
		code = fiber.StatusBadRequest
		message = "job text is required"
	case errors.As(err, &extErr):
		code = fiber.StatusUnprocessableEntity
	case errors.Is(err, usecase.ErrEntryNotFound):
		code = fiber.StatusNotFound
	default:
		zap.L().Error(message, zap.Error(err))
	}
	return util.ErrorResponse(c, util.ErrorResponseFormat{Code: code, Message: message}, err)
}

func badID(c *fiber.Ctx, err error) error {
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    fiber.StatusBadRequest,
		Message: "invalid history id",
	}, err)
}

func renderOptions(tone, angle, template string) usecase.RenderOptions {
	return usecase.RenderOptions{
		Tone:     render.ParseTone(tone),
		Angle:    render.ParseAngle(angle),
		Template: render.ParseEmailTemplate(template),
	}
}
