package http

import (
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/staff"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// GetTasks handles GET /api/v1/tasks/:destination, where destination is
// kitchen or bar.
func (s *Server) GetTasks(c echo.Context) error {
	destination, err := order.ParseDestination(c.Param("destination"))
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetPendingTasksQuery(destination)
	if err != nil {
		return s.fail(c, err)
	}

	tasks, err := s.handlers.GetTasks.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		response[i] = TaskResponse{
			ItemID:       task.ItemID,
			OrderID:      task.OrderID,
			MenuItemName: task.MenuItemName,
			Quantity:     task.Quantity,
			Status:       task.Status.String(),
			TableName:    task.TableName,
			OrderedAt:    task.OrderedAt,
		}
	}

	return c.JSON(http.StatusOK, response)
}

// ListTables handles GET /api/v1/tables.
func (s *Server) ListTables(c echo.Context) error {
	tables, err := s.handlers.ListTables.Handle(c.Request().Context(), queries.NewListTablesQuery())
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]TableResponse, len(tables))
	for i, t := range tables {
		response[i] = TableResponse{ID: t.ID, Name: t.Name, Occupancy: t.Occupancy.String()}
	}

	return c.JSON(http.StatusOK, response)
}

// CreateTable handles POST /api/v1/tables.
func (s *Server) CreateTable(c echo.Context) error {
	var req CreateTableRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, err)
	}

	cmd, err := commands.NewCreateTableCommand(kernel.NewUUID(), req.Name)
	if err != nil {
		return s.fail(c, err)
	}

	created, err := s.handlers.CreateTable.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, tableResponse(created))
}

// ListMenuItems handles GET /api/v1/menu-items. ?available=true hides items
// taken off the menu.
func (s *Server) ListMenuItems(c echo.Context) error {
	onlyAvailable := c.QueryParam("available") == "true"

	items, err := s.handlers.ListMenuItems.Handle(c.Request().Context(), queries.NewListMenuItemsQuery(onlyAvailable))
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]MenuItemResponse, len(items))
	for i, it := range items {
		response[i] = MenuItemResponse{
			ID:        it.ID,
			Name:      it.Name,
			Price:     it.Price,
			Category:  it.Category.String(),
			Available: it.Available,
		}
	}

	return c.JSON(http.StatusOK, response)
}

// CreateMenuItem handles POST /api/v1/menu-items.
func (s *Server) CreateMenuItem(c echo.Context) error {
	var req CreateMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, err)
	}

	category, err := menu.ParseCategory(req.Category)
	if err != nil {
		return s.fail(c, err)
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	cmd, err := commands.NewCreateMenuItemCommand(kernel.NewUUID(), req.Name, req.Price, category, available)
	if err != nil {
		return s.fail(c, err)
	}

	created, err := s.handlers.CreateMenuItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, menuItemResponse(created))
}

// SetMenuItemAvailability handles PUT /api/v1/menu-items/:id/availability.
func (s *Server) SetMenuItemAvailability(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return s.fail(c, err)
	}

	var req AvailabilityRequest
	if err = c.Bind(&req); err != nil {
		return s.badRequest(c, err)
	}
	if req.Available == nil {
		return s.fail(c, errs.NewValueIsRequiredError("available"))
	}

	cmd, err := commands.NewSetMenuItemAvailabilityCommand(id, *req.Available)
	if err != nil {
		return s.fail(c, err)
	}

	updated, err := s.handlers.SetAvailability.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, menuItemResponse(updated))
}

// ListStaff handles GET /api/v1/staff.
func (s *Server) ListStaff(c echo.Context) error {
	members, err := s.handlers.ListStaff.Handle(c.Request().Context(), queries.NewListStaffQuery())
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]StaffResponse, len(members))
	for i, m := range members {
		response[i] = StaffResponse{ID: m.ID, Name: m.Name, Role: m.Role.String()}
	}

	return c.JSON(http.StatusOK, response)
}

// CreateStaff handles POST /api/v1/staff.
func (s *Server) CreateStaff(c echo.Context) error {
	var req CreateStaffRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, err)
	}

	role, err := staff.ParseRole(req.Role)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateStaffCommand(kernel.NewUUID(), req.Name, role)
	if err != nil {
		return s.fail(c, err)
	}

	created, err := s.handlers.CreateStaff.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, staffResponse(created))
}
