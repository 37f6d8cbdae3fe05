package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Dorian-Reyes18/user-recolector/internal/api/metrics"
	"github.com/Dorian-Reyes18/user-recolector/internal/core/ports"
)

// CustomerHandler handles HTTP requests for the customer registry.
type CustomerHandler struct {
	service ports.CustomerService
}

func NewCustomerHandler(service ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// List handles GET /v1/customers.
//
// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Page size (default 50, max 200)"
// @Success      200    {object}  listResponse
// @Router       /v1/customers [get]
func (h *CustomerHandler) List(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), queryInt(c, "page"), queryInt(c, "limit"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listResponse{
		Message:    "customers retrieved",
		Page:       page.Page,
		Limit:      page.Limit,
		Total:      page.Total,
		TotalPages: page.TotalPages,
		Data:       page.Items,
	})
}

// Get handles GET /v1/customers/:id.
//
// @Summary      Get a customer by id
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Customer id"
// @Success      200  {object}  dataResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/customers/{id} [get]
func (h *CustomerHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	customer, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{Message: "customer retrieved", Data: customer})
}

// Create handles POST /v1/customers. This endpoint is public.
//
// @Summary      Create a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body      customerRequest  true  "Customer details"
// @Success      201   {object}  dataResponse
// @Failure      400   {object}  map[string]string
// @Router       /v1/customers [post]
func (h *CustomerHandler) Create(c echo.Context) error {
	var req customerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	customer, err := h.service.Create(c.Request().Context(), ports.CustomerInput{
		AccountNumber: req.AccountNumber,
		Name:          req.Name,
		Phone:         req.Phone,
		Branch:        req.Branch,
	})
	if err != nil {
		return err
	}

	metrics.CustomersCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, dataResponse{Message: "customer created", Data: customer})
}

// Update handles PUT /v1/customers/:id.
//
// @Summary      Update a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int              true  "Customer id"
// @Param        body  body      customerRequest  true  "Customer details"
// @Success      200   {object}  dataResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/customers/{id} [put]
func (h *CustomerHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req customerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	customer, err := h.service.Update(c.Request().Context(), id, ports.CustomerInput{
		AccountNumber: req.AccountNumber,
		Name:          req.Name,
		Phone:         req.Phone,
		Branch:        req.Branch,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{Message: "customer updated", Data: customer})
}

// Delete handles DELETE /v1/customers/:id and returns the deleted snapshot.
//
// @Summary      Delete a customer
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Customer id"
// @Success      200  {object}  dataResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/customers/{id} [delete]
func (h *CustomerHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	customer, err := h.service.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{Message: "customer deleted", Data: customer})
}
