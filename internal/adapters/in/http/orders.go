package http

import (
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, err)
	}

	lines := make([]commands.OrderLine, 0, len(req.Items))
	for _, it := range req.Items {
		lines = append(lines, commands.OrderLine{MenuItemID: it.MenuItemID, Quantity: it.Quantity})
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), req.TableID, req.StaffID, lines)
	if err != nil {
		return s.fail(c, err)
	}

	created, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, orderResponse(created))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.fail(c, err)
	}

	view, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, orderViewResponse(view))
}

// MarkOrderServed handles PUT /api/v1/orders/:id/served.
func (s *Server) MarkOrderServed(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewMarkOrderServedCommand(id)
	if err != nil {
		return s.fail(c, err)
	}

	served, err := s.handlers.MarkOrderServed.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, orderResponse(served))
}

// CloseOrder handles PUT /api/v1/orders/:id/closed.
func (s *Server) CloseOrder(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCloseOrderCommand(id)
	if err != nil {
		return s.fail(c, err)
	}

	closed, err := s.handlers.CloseOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, orderResponse(closed))
}

// MarkItemReady handles PUT /api/v1/order-items/:id/ready.
func (s *Server) MarkItemReady(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewMarkItemReadyCommand(id)
	if err != nil {
		return s.fail(c, err)
	}

	item, err := s.handlers.MarkItemReady.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, itemResponse(item))
}

// StartItemPreparation handles PUT /api/v1/order-items/:id/in-preparation.
func (s *Server) StartItemPreparation(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewStartItemPreparationCommand(id)
	if err != nil {
		return s.fail(c, err)
	}

	item, err := s.handlers.StartItemPreparation.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, itemResponse(item))
}
