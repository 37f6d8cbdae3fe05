package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Dorian-Reyes18/user-recolector/internal/core/ports"
)

// SystemUserHandler handles HTTP requests for login accounts. All routes
// sit behind the auth + admin middleware.
type SystemUserHandler struct {
	service ports.SystemUserService
}

func NewSystemUserHandler(service ports.SystemUserService) *SystemUserHandler {
	return &SystemUserHandler{service: service}
}

// List handles GET /v1/users.
//
// @Summary      List system users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Page size (default 50, max 200)"
// @Success      200    {object}  listResponse
// @Router       /v1/users [get]
func (h *SystemUserHandler) List(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), queryInt(c, "page"), queryInt(c, "limit"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listResponse{
		Message:    "system users retrieved",
		Page:       page.Page,
		Limit:      page.Limit,
		Total:      page.Total,
		TotalPages: page.TotalPages,
		Data:       page.Items,
	})
}

// Get handles GET /v1/users/:id.
func (h *SystemUserHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	user, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{Message: "system user retrieved", Data: user})
}

// Create handles POST /v1/users.
//
// @Summary      Create a system user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  dataResponse
// @Failure      400   {object}  map[string]string
// @Router       /v1/users [post]
func (h *SystemUserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.Create(c.Request().Context(), ports.SystemUserInput{
		Username: req.Username,
		Password: req.Password,
		RoleID:   req.RoleID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dataResponse{Message: "system user created", Data: user})
}

// Update handles PUT /v1/users/:id. Password is optional; when absent the
// stored hash is kept.
func (h *SystemUserHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.Update(c.Request().Context(), id, ports.SystemUserInput{
		Username: req.Username,
		Password: req.Password,
		RoleID:   req.RoleID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{Message: "system user updated", Data: user})
}

// Delete handles DELETE /v1/users/:id and returns the deleted snapshot.
func (h *SystemUserHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	user, err := h.service.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{Message: "system user deleted", Data: user})
}
