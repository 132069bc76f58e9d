package plans

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"planner-backend/internal/assessment"
	"planner-backend/internal/planning"
	"planner-backend/internal/shared/server/middleware"
	"planner-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the plans service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches plan routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/plans", h.createPlan)
	rg.GET("/plans", h.listPlans)
	rg.GET("/plans/:id", h.getPlan)
	rg.PATCH("/plans/:id/items/:itemId", h.updateItemStatus)
	rg.GET("/plans/:id/next", h.nextItem)
	rg.GET("/plans/:id/progress", h.progress)
	rg.GET("/plans/:id/assessment", h.assessment)
	rg.GET("/catalog", h.catalog)
}

func (h *Handler) createPlan(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	focus, err := planning.ParseFocus(c.Query("focus"))
	if err != nil {
		writeError(c, err)
		return
	}

	format, err := assessment.FormatFromContentType(c.GetHeader("Content-Type"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, assessment.MaxBytes)
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(c, assessment.ErrTooLarge)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "failed to read request body", nil)
		return
	}

	plan, err := h.Svc.Create(requestContext(c), CreateInput{
		UserID: userID,
		Focus:  focus,
		Format: format,
		Body:   body,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.Set("planId", plan.ID)
	respond.JSON(c, http.StatusCreated, plan)
}

func (h *Handler) getPlan(c *gin.Context) {
	planID := c.Param("id")
	c.Set("planId", planID)

	plan, err := h.Svc.Get(requestContext(c), middleware.UserIDFromContext(c), planID)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, plan)
}

func (h *Handler) listPlans(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	limit := 0
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	plans, err := h.Svc.List(requestContext(c), userID, limit, offset)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]gin.H, 0, len(plans))
	for _, p := range plans {
		resp = append(resp, gin.H{
			"planId":              p.ID,
			"projectName":         p.ProjectName,
			"focus":               p.Focus,
			"totalItems":          p.Report.TotalItems,
			"criticalCount":       p.Report.CriticalCount,
			"totalEffort":         p.Report.TotalEffort,
			"recommendedApproach": p.Report.RecommendedApproach,
			"createdAt":           p.CreatedAt,
		})
	}
	respond.OK(c, resp)
}

type updateItemRequest struct {
	Status string `json:"status"`
}

func (h *Handler) updateItemStatus(c *gin.Context) {
	planID := c.Param("id")
	itemID := c.Param("itemId")
	c.Set("planId", planID)

	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "status is required", []map[string]string{
			{"field": "status", "issue": "required"},
		})
		return
	}

	item, transition, err := h.Svc.UpdateItemStatus(requestContext(c), middleware.UserIDFromContext(c), planID, itemID, planning.ItemStatus(req.Status))
	if err != nil {
		writeError(c, err)
		return
	}
	c.Set("statusTransition", transition)
	respond.OK(c, item)
}

func (h *Handler) nextItem(c *gin.Context) {
	planID := c.Param("id")
	c.Set("planId", planID)

	item, ok, err := h.Svc.Next(requestContext(c), middleware.UserIDFromContext(c), planID)
	if err != nil {
		writeError(c, err)
		return
	}
	if !ok {
		respond.OK(c, gin.H{"done": true})
		return
	}
	respond.OK(c, gin.H{"done": false, "item": item})
}

func (h *Handler) progress(c *gin.Context) {
	planID := c.Param("id")
	c.Set("planId", planID)

	summary, err := h.Svc.Progress(requestContext(c), middleware.UserIDFromContext(c), planID)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, summary)
}

func (h *Handler) assessment(c *gin.Context) {
	planID := c.Param("id")
	c.Set("planId", planID)

	body, contentType, err := h.Svc.Assessment(requestContext(c), middleware.UserIDFromContext(c), planID)
	if err != nil {
		writeError(c, err)
		return
	}
	defer body.Close()
	c.DataFromReader(http.StatusOK, -1, contentType, body, nil)
}

func (h *Handler) catalog(c *gin.Context) {
	respond.OK(c, planning.Catalog())
}

func writeError(c *gin.Context, err error) {
	var inputErr *planning.InvalidInputError
	switch {
	case errors.As(err, &inputErr):
		details := map[string]string{"reason": inputErr.Reason}
		if inputErr.FindingID != "" {
			details["findingId"] = inputErr.FindingID
		}
		if inputErr.Field != "" {
			details["field"] = inputErr.Field
		}
		if inputErr.Value != "" {
			details["value"] = inputErr.Value
		}
		respond.Error(c, http.StatusBadRequest, "invalid_input", inputErr.Error(), details)
	case errors.Is(err, planning.ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "invalid_input", err.Error(), nil)
	case errors.Is(err, planning.ErrInvalidStatus):
		respond.Error(c, http.StatusBadRequest, "invalid_status", err.Error(), []map[string]string{
			{"field": "status", "issue": "must be one of pending, in_progress, completed, skipped"},
		})
	case errors.Is(err, assessment.ErrTooLarge):
		respond.Error(c, http.StatusRequestEntityTooLarge, "payload_too_large", "assessment exceeds size limit", nil)
	case errors.Is(err, assessment.ErrUnsupportedFormat):
		respond.Error(c, http.StatusUnsupportedMediaType, "unsupported_format", "assessment must be JSON or YAML", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "plan not found", nil)
	case errors.Is(err, planning.ErrItemNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "roadmap item not found", nil)
	case errors.Is(err, ErrNoArchive):
		respond.Error(c, http.StatusNotFound, "not_found", "assessment not archived", nil)
	case errors.Is(err, ErrMissingIDs):
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "Missing identity", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to process plan", nil)
	}
}

func requestContext(c *gin.Context) context.Context {
	return WithRequestID(c.Request.Context(), middleware.RequestIDFromContext(c))
}
