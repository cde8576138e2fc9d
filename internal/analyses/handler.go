package analyses

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resume-analyzer/internal/extract"
	"resume-analyzer/internal/shared/server/respond"
	"resume-analyzer/internal/shared/telemetry"
)

// maxUploadBytes caps résumé uploads at 10MB.
const maxUploadBytes = 10 << 20

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyses", h.createAnalysis)
	rg.GET("/analyses", h.listAnalyses)
	rg.GET("/analyses/:id", h.getAnalysis)
	rg.POST("/analyses/:id/optimized-resume", h.optimizedResume)
	rg.GET("/samples/:id/analysis", h.analyzeSample)
}

func (h *Handler) createAnalysis(c *gin.Context) {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "no resume file uploaded", nil)
		return
	}
	if fileHeader.Size > maxUploadBytes {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file exceeds the 10MB limit", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read upload", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read upload", nil)
		return
	}
	if len(data) > maxUploadBytes {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file exceeds the 10MB limit", nil)
		return
	}

	jobDescription := c.PostForm("jobDescription")

	text, err := extract.Text(c.Request.Context(), data, fileHeader.Header.Get("Content-Type"), fileHeader.Filename)
	if err != nil {
		switch {
		case errors.Is(err, extract.ErrUnsupportedType):
			respond.Error(c, http.StatusBadRequest, "validation_error", "only PDF and DOCX files are supported", nil)
		case errors.Is(err, extract.ErrUnreadable):
			respond.Error(c, http.StatusBadRequest, "validation_error", "unable to parse file, please ensure it contains readable text", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to extract text", nil)
		}
		return
	}

	telemetry.Info("analyses.create", map[string]any{
		"file_name":           fileHeader.Filename,
		"file_size":           len(data),
		"has_job_description": jobDescription != "",
	})

	analysis, err := h.Svc.Analyze(c.Request.Context(), fileHeader.Filename, len(data), text, jobDescription)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoReadableText):
			respond.Error(c, http.StatusBadRequest, "validation_error", "no readable text found in file", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze resume", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, analysis)
}

func (h *Handler) getAnalysis(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	analysis, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch analysis", nil)
		}
		return
	}
	respond.OK(c, analysis)
}

func (h *Handler) listAnalyses(c *gin.Context) {
	list, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list analyses", nil)
		return
	}
	respond.OK(c, list)
}

func (h *Handler) optimizedResume(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	doc, err := h.Svc.OptimizedResume(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate optimized resume", nil)
		}
		return
	}
	respond.OK(c, gin.H{"optimizedResume": doc})
}

func (h *Handler) analyzeSample(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	analysis, err := h.Svc.AnalyzeSample(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "sample not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate sample analysis", nil)
		}
		return
	}
	respond.OK(c, analysis)
}

func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "id must be a positive integer", nil)
		return 0, false
	}
	return id, true
}
