package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/labos-hq/labos-backend/internal/api/metrics"
	"github.com/labos-hq/labos-backend/internal/core/domain"
	"github.com/labos-hq/labos-backend/internal/core/ports"
)

// WorkUnitHandler handles HTTP requests for work unit operations.
type WorkUnitHandler struct {
	service ports.WorkUnitService
}

func NewWorkUnitHandler(service ports.WorkUnitService) *WorkUnitHandler {
	return &WorkUnitHandler{service: service}
}

// List handles GET /work-units.
//
// @Summary      List all work units
// @Tags         work-units
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   workUnitResponse
// @Failure      401  {object}  errorResponse
// @Router       /work-units [get]
func (h *WorkUnitHandler) List(c echo.Context) error {
	units, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]workUnitResponse, len(units))
	for i, w := range units {
		out[i] = toWorkUnitResponse(w)
	}
	return c.JSON(http.StatusOK, out)
}

// Create handles POST /work-units.
//
// @Summary      Create a work unit (admin only, status starts as "idea")
// @Tags         work-units
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createWorkUnitRequest  true  "Work unit details"
// @Success      201   {object}  workUnitResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /work-units [post]
func (h *WorkUnitHandler) Create(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req createWorkUnitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	unit, err := h.service.Create(c.Request().Context(), caller, ports.CreateWorkUnitInput{
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		Owner:       req.Owner,
	})
	if err != nil {
		return err
	}

	metrics.WorkUnitsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toWorkUnitResponse(*unit))
}

// UpdateStatus handles POST /work-units/:id/status.
//
// @Summary      Update a work unit's status (owner only)
// @Tags         work-units
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                  true  "Work unit id"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  updateStatusResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /work-units/{id}/status [post]
func (h *WorkUnitHandler) UpdateStatus(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid work unit id")
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.service.UpdateStatus(c.Request().Context(), caller, id, req.Status); err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			metrics.StatusUpdatesTotal.WithLabelValues("forbidden").Inc()
		}
		return err
	}

	metrics.StatusUpdatesTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, updateStatusResponse{Success: true})
}

func toWorkUnitResponse(w domain.WorkUnit) workUnitResponse {
	return workUnitResponse{
		ID:          w.ID,
		ProjectID:   w.ProjectID,
		Title:       w.Title,
		Description: w.Description,
		Owner:       w.Owner,
		Status:      w.Status,
	}
}
