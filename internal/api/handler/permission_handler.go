package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wisensor/wisensor-api/internal/api/metrics"
	"github.com/wisensor/wisensor-api/internal/core/domain"
	"github.com/wisensor/wisensor-api/internal/core/ports"
)

type createPermissionRequest struct {
	Name        string `json:"name"        validate:"required,max=50"`
	Description string `json:"description" validate:"max=255"`
}

type updatePermissionRequest struct {
	Name        *string `json:"name"        validate:"omitempty,min=1,max=50"`
	Description *string `json:"description" validate:"omitempty,max=255"`
}

type PermissionHandler struct {
	service ports.PermissionService
}

func NewPermissionHandler(service ports.PermissionService) *PermissionHandler {
	return &PermissionHandler{service: service}
}

// @Summary      Create a permission
// @Tags         permissions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPermissionRequest  true  "Permission details"
// @Success      201   {object}  permissionResponse
// @Failure      409   {object}  map[string]string
// @Router       /api/permissions/ [post]
func (h *PermissionHandler) Create(c echo.Context) error {
	var req createPermissionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	perm, err := h.service.Create(c.Request().Context(), ports.CreatePermissionInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("permission", "create").Inc()

	return c.JSON(http.StatusCreated, newPermissionResponse(perm))
}

// @Summary      List permissions
// @Tags         permissions
// @Produce      json
// @Security     BearerAuth
// @Param        skip   query    int  false  "Rows to skip"
// @Param        limit  query    int  false  "Max rows to return"
// @Success      200    {array}  permissionResponse
// @Router       /api/permissions/ [get]
func (h *PermissionHandler) List(c echo.Context) error {
	skip, limit := listParams(c)
	perms, err := h.service.List(c.Request().Context(), skip, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newPermissionListResponse(perms))
}

// @Summary      Get a permission
// @Tags         permissions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Permission id"
// @Success      200  {object}  permissionResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/permissions/{id} [get]
func (h *PermissionHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	perm, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newPermissionResponse(perm))
}

// @Summary      Update a permission
// @Tags         permissions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                      true  "Permission id"
// @Param        body  body      updatePermissionRequest  true  "Fields to change"
// @Success      200   {object}  permissionResponse
// @Failure      404   {object}  map[string]string
// @Router       /api/permissions/{id} [put]
func (h *PermissionHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req updatePermissionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	perm, err := h.service.Update(c.Request().Context(), id, ports.UpdatePermissionInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("permission", "update").Inc()

	return c.JSON(http.StatusOK, newPermissionResponse(perm))
}

// @Summary      Delete a permission
// @Tags         permissions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Permission id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/permissions/{id} [delete]
func (h *PermissionHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("permission", "delete").Inc()

	return c.JSON(http.StatusOK, map[string]string{"message": "permission deleted"})
}

func newPermissionListResponse(perms []domain.Permission) []permissionResponse {
	out := make([]permissionResponse, 0, len(perms))
	for i := range perms {
		out = append(out, newPermissionResponse(&perms[i]))
	}
	return out
}
