package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wisensor/wisensor-api/internal/api/metrics"
	"github.com/wisensor/wisensor-api/internal/core/domain"
	"github.com/wisensor/wisensor-api/internal/core/ports"
)

type createCenterRequest struct {
	Name      string  `json:"name"      validate:"required,max=255"`
	Latitude  float64 `json:"latitude"  validate:"required"`
	Longitude float64 `json:"longitude" validate:"required"`
	Code      string  `json:"code"      validate:"required,max=50"`
	Name1     string  `json:"name1"     validate:"max=255"`
	Name2     string  `json:"name2"     validate:"max=255"`
}

type updateCenterRequest struct {
	Name      *string  `json:"name"      validate:"omitempty,min=1,max=255"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Code      *string  `json:"code"      validate:"omitempty,min=1,max=50"`
	Name1     *string  `json:"name1"     validate:"omitempty,max=255"`
	Name2     *string  `json:"name2"     validate:"omitempty,max=255"`
}

type centerResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Code      string    `json:"code"`
	Name1     string    `json:"name1"`
	Name2     string    `json:"name2"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newCenterResponse(ce *domain.Center) centerResponse {
	return centerResponse{
		ID:        ce.ID,
		Name:      ce.Name,
		Latitude:  ce.Latitude,
		Longitude: ce.Longitude,
		Code:      ce.Code,
		Name1:     ce.Name1,
		Name2:     ce.Name2,
		CreatedAt: ce.CreatedAt,
		UpdatedAt: ce.UpdatedAt,
	}
}

type CenterHandler struct {
	service ports.CenterService
}

func NewCenterHandler(service ports.CenterService) *CenterHandler {
	return &CenterHandler{service: service}
}

// @Summary      Create a center
// @Tags         centers
// @Accept       json
// @Produce      json
// @Param        body  body      createCenterRequest  true  "Center details"
// @Success      201   {object}  centerResponse
// @Failure      409   {object}  map[string]string
// @Router       /api/centers/ [post]
func (h *CenterHandler) Create(c echo.Context) error {
	var req createCenterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	center, err := h.service.Create(c.Request().Context(), ports.CreateCenterInput{
		Name:      req.Name,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Code:      req.Code,
		Name1:     req.Name1,
		Name2:     req.Name2,
	})
	if err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("center", "create").Inc()

	return c.JSON(http.StatusCreated, newCenterResponse(center))
}

// @Summary      List centers
// @Tags         centers
// @Produce      json
// @Param        skip   query    int  false  "Rows to skip"
// @Param        limit  query    int  false  "Max rows to return"
// @Success      200    {array}  centerResponse
// @Router       /api/centers/ [get]
func (h *CenterHandler) List(c echo.Context) error {
	skip, limit := listParams(c)
	centers, err := h.service.List(c.Request().Context(), skip, limit)
	if err != nil {
		return err
	}

	out := make([]centerResponse, 0, len(centers))
	for i := range centers {
		out = append(out, newCenterResponse(&centers[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// @Summary      Get a center
// @Tags         centers
// @Produce      json
// @Param        id   path      int  true  "Center id"
// @Success      200  {object}  centerResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/centers/{id} [get]
func (h *CenterHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	center, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newCenterResponse(center))
}

// @Summary      Update a center
// @Tags         centers
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "Center id"
// @Param        body  body      updateCenterRequest  true  "Fields to change"
// @Success      200   {object}  centerResponse
// @Failure      404   {object}  map[string]string
// @Router       /api/centers/{id} [put]
func (h *CenterHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req updateCenterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	center, err := h.service.Update(c.Request().Context(), id, ports.UpdateCenterInput{
		Name:      req.Name,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Code:      req.Code,
		Name1:     req.Name1,
		Name2:     req.Name2,
	})
	if err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("center", "update").Inc()

	return c.JSON(http.StatusOK, newCenterResponse(center))
}

// @Summary      Delete a center
// @Tags         centers
// @Produce      json
// @Param        id   path      int  true  "Center id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/centers/{id} [delete]
func (h *CenterHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("center", "delete").Inc()

	return c.JSON(http.StatusOK, map[string]string{"message": "center deleted"})
}
