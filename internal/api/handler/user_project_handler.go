package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wisensor/wisensor-api/internal/api/metrics"
	"github.com/wisensor/wisensor-api/internal/core/domain"
	"github.com/wisensor/wisensor-api/internal/core/ports"
)

type createUserProjectRequest struct {
	UserID        uint   `json:"user_id"         validate:"required,gt=0"`
	ProjectID     uint   `json:"project_id"      validate:"required,gt=0"`
	RoleInProject string `json:"role_in_project" validate:"max=50"`
}

type updateUserProjectRequest struct {
	RoleInProject *string `json:"role_in_project" validate:"omitempty,max=50"`
}

type userProjectResponse struct {
	ID            uint      `json:"id"`
	UserID        uint      `json:"user_id"`
	ProjectID     uint      `json:"project_id"`
	RoleInProject string    `json:"role_in_project"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func newUserProjectResponse(up *domain.UserProject) userProjectResponse {
	return userProjectResponse{
		ID:            up.ID,
		UserID:        up.UserID,
		ProjectID:     up.ProjectID,
		RoleInProject: up.RoleInProject,
		CreatedAt:     up.CreatedAt,
		UpdatedAt:     up.UpdatedAt,
	}
}

// UserProjectHandler handles HTTP requests for user-project assignments.
type UserProjectHandler struct {
	service ports.UserProjectService
}

func NewUserProjectHandler(service ports.UserProjectService) *UserProjectHandler {
	return &UserProjectHandler{service: service}
}

// @Summary      Assign a user to a project
// @Tags         user-projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserProjectRequest  true  "Assignment details"
// @Success      201   {object}  userProjectResponse
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/user-projects/ [post]
func (h *UserProjectHandler) Create(c echo.Context) error {
	var req createUserProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	up, err := h.service.Create(c.Request().Context(), ports.CreateUserProjectInput{
		UserID:        req.UserID,
		ProjectID:     req.ProjectID,
		RoleInProject: req.RoleInProject,
	})
	if err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("user_project", "create").Inc()

	return c.JSON(http.StatusCreated, newUserProjectResponse(up))
}

// @Summary      List assignments
// @Tags         user-projects
// @Produce      json
// @Security     BearerAuth
// @Param        skip   query    int  false  "Rows to skip"
// @Param        limit  query    int  false  "Max rows to return"
// @Success      200    {array}  userProjectResponse
// @Router       /api/user-projects/ [get]
func (h *UserProjectHandler) List(c echo.Context) error {
	skip, limit := listParams(c)
	ups, err := h.service.List(c.Request().Context(), skip, limit)
	if err != nil {
		return err
	}

	out := make([]userProjectResponse, 0, len(ups))
	for i := range ups {
		out = append(out, newUserProjectResponse(&ups[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// @Summary      Get an assignment
// @Tags         user-projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Assignment id"
// @Success      200  {object}  userProjectResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/user-projects/{id} [get]
func (h *UserProjectHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	up, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newUserProjectResponse(up))
}

// @Summary      Update an assignment
// @Tags         user-projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                       true  "Assignment id"
// @Param        body  body      updateUserProjectRequest  true  "Fields to change"
// @Success      200   {object}  userProjectResponse
// @Failure      404   {object}  map[string]string
// @Router       /api/user-projects/{id} [put]
func (h *UserProjectHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req updateUserProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	up, err := h.service.Update(c.Request().Context(), id, ports.UpdateUserProjectInput{
		RoleInProject: req.RoleInProject,
	})
	if err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("user_project", "update").Inc()

	return c.JSON(http.StatusOK, newUserProjectResponse(up))
}

// @Summary      Remove an assignment
// @Tags         user-projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Assignment id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/user-projects/{id} [delete]
func (h *UserProjectHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("user_project", "delete").Inc()

	return c.JSON(http.StatusOK, map[string]string{"message": "assignment deleted"})
}
