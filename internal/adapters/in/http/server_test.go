package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	api "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/fanout"
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/notification"
	"restaurant/internal/notifier"
	"restaurant/internal/testutil/storetest"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type uowFactory func() commands.UoW

func (f uowFactory) Create() commands.UoW { return f() }

type orderUoWFactory func() commands.OrderUoW

func (f orderUoWFactory) Create() commands.OrderUoW { return f() }

type tableUoWFactory func() commands.TableUoW

func (f tableUoWFactory) Create() commands.TableUoW { return f() }

type menuUoWFactory func() commands.MenuUoW

func (f menuUoWFactory) Create() commands.MenuUoW { return f() }

type staffUoWFactory func() commands.StaffUoW

func (f staffUoWFactory) Create() commands.StaffUoW { return f() }

type harness struct {
	echo *echo.Echo
	hub  *notifier.Notifier
}

func newHarness(t *testing.T, ping api.Pinger) *harness {
	t.Helper()
	logger, _ := test.NewNullLogger()
	db := storetest.NewSQLite(t)
	store := postgres.NewGormUnitOfWorkFactory(db)
	hub := notifier.New(notifier.DefaultBufferSize, logger)
	publisher := fanout.NewPublisher(hub, logger)

	all := uowFactory(func() commands.UoW { return store.Create() })
	orders := orderUoWFactory(func() commands.OrderUoW { return store.Create() })
	menus := menuUoWFactory(func() commands.MenuUoW { return store.Create() })

	handlers := api.Handlers{
		CreateOrder:          commands.NewCreateOrderCommandHandler(all),
		MarkItemReady:        commands.NewMarkItemReadyCommandHandler(all, publisher),
		StartItemPreparation: commands.NewStartItemPreparationCommandHandler(orders),
		MarkOrderServed:      commands.NewMarkOrderServedCommandHandler(orders),
		CloseOrder:           commands.NewCloseOrderCommandHandler(all),
		CreateTable:          commands.NewCreateTableCommandHandler(tableUoWFactory(func() commands.TableUoW { return store.Create() })),
		CreateMenuItem:       commands.NewCreateMenuItemCommandHandler(menus),
		SetAvailability:      commands.NewSetMenuItemAvailabilityCommandHandler(menus),
		CreateStaff:          commands.NewCreateStaffCommandHandler(staffUoWFactory(func() commands.StaffUoW { return store.Create() })),
		GetOrder:             queries.NewGetOrderQueryHandler(db),
		GetTasks:             queries.NewGetPendingTasksQueryHandler(db),
		ListTables:           queries.NewListTablesQueryHandler(db),
		ListMenuItems:        queries.NewListMenuItemsQueryHandler(db),
		ListStaff:            queries.NewListStaffQueryHandler(db),
	}

	if ping == nil {
		ping = func(ctx context.Context) error { return postgres.Ping(ctx, db) }
	}

	e := api.NewEcho(logger)
	api.NewServer(handlers, hub, ping, "test", logger).Register(e)
	return &harness{echo: e, hub: hub}
}

func (h *harness) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	h.echo.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

// seed creates a table, a waiter, a dish and a drink and returns their ids.
func (h *harness) seed(t *testing.T) (tableID, staffID, dishID, drinkID string) {
	t.Helper()
	rec := h.do(t, http.MethodPost, "/api/v1/tables", map[string]any{"name": "T1"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	tableID = decode[api.TableResponse](t, rec).ID.String()

	rec = h.do(t, http.MethodPost, "/api/v1/staff", map[string]any{"name": "Alice", "role": "waiter"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	staffID = decode[api.StaffResponse](t, rec).ID.String()

	rec = h.do(t, http.MethodPost, "/api/v1/menu-items", map[string]any{"name": "Burger", "price": "12.50", "category": "food"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	dishID = decode[api.MenuItemResponse](t, rec).ID.String()

	rec = h.do(t, http.MethodPost, "/api/v1/menu-items", map[string]any{"name": "Cola", "price": 3, "category": "general-beverage"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	drinkID = decode[api.MenuItemResponse](t, rec).ID.String()

	return tableID, staffID, dishID, drinkID
}

func TestServer_OrderLifecycle(t *testing.T) {
	h := newHarness(t, nil)
	tableID, staffID, dishID, drinkID := h.seed(t)
	sub := h.hub.Subscribe()
	defer h.hub.Unsubscribe(sub)

	rec := h.do(t, http.MethodPost, "/api/v1/orders", map[string]any{
		"table_id": tableID,
		"staff_id": staffID,
		"items": []map[string]any{
			{"menu_item_id": dishID, "quantity": 2},
			{"menu_item_id": drinkID, "quantity": 1},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[api.OrderResponse](t, rec)
	assert.Equal(t, "new", created.Status)
	assert.Equal(t, "28", created.Total.String())
	require.Len(t, created.Items, 2)

	rec = h.do(t, http.MethodGet, "/api/v1/tasks/kitchen", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	tasks := decode[[]api.TaskResponse](t, rec)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Burger", tasks[0].MenuItemName)
	assert.Equal(t, "T1", tasks[0].TableName)

	rec = h.do(t, http.MethodPut, "/api/v1/order-items/"+created.Items[0].ID.String()+"/in-preparation", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "in-preparation", decode[api.OrderItemResponse](t, rec).Status)

	rec = h.do(t, http.MethodPut, "/api/v1/orders/"+created.ID.String()+"/served", nil)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, decode[api.Error](t, rec).Message, "in status new")

	for _, item := range created.Items {
		rec = h.do(t, http.MethodPut, "/api/v1/order-items/"+item.ID.String()+"/ready", nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "ready", decode[api.OrderItemResponse](t, rec).Status)
	}

	select {
	case event := <-sub.C():
		assert.Equal(t, notification.NewOrderReady(created.ID, "T1"), event)
	case <-time.After(time.Second):
		t.Fatal("no order-ready event")
	}

	rec = h.do(t, http.MethodGet, "/api/v1/orders/"+created.ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	view := decode[api.OrderResponse](t, rec)
	assert.Equal(t, "ready-to-serve", view.Status)
	assert.Equal(t, "T1", view.TableName)

	rec = h.do(t, http.MethodPut, "/api/v1/orders/"+created.ID.String()+"/served", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = h.do(t, http.MethodPut, "/api/v1/orders/"+created.ID.String()+"/closed", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "closed", decode[api.OrderResponse](t, rec).Status)

	rec = h.do(t, http.MethodGet, "/api/v1/tables", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	tables := decode[[]api.TableResponse](t, rec)
	require.Len(t, tables, 1)
	assert.Equal(t, "free", tables[0].Occupancy)

	select {
	case event := <-sub.C():
		t.Fatalf("unexpected second event %+v", event)
	default:
	}
}

func TestServer_ErrorMapping(t *testing.T) {
	h := newHarness(t, nil)
	tableID, staffID, dishID, _ := h.seed(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
	}{
		{"unknown order", http.MethodGet, "/api/v1/orders/" + kernel.NewUUID().String(), nil, http.StatusNotFound},
		{"malformed id", http.MethodPut, "/api/v1/orders/not-a-uuid/closed", nil, http.StatusBadRequest},
		{"unknown item", http.MethodPut, "/api/v1/order-items/" + kernel.NewUUID().String() + "/ready", nil, http.StatusNotFound},
		{"unknown station", http.MethodGet, "/api/v1/tasks/patio", nil, http.StatusBadRequest},
		{"empty order", http.MethodPost, "/api/v1/orders", map[string]any{"table_id": tableID, "staff_id": staffID}, http.StatusBadRequest},
		{"zero quantity", http.MethodPost, "/api/v1/orders", map[string]any{
			"table_id": tableID, "staff_id": staffID,
			"items": []map[string]any{{"menu_item_id": dishID, "quantity": 0}},
		}, http.StatusBadRequest},
		{"unknown table", http.MethodPost, "/api/v1/orders", map[string]any{
			"table_id": kernel.NewUUID().String(), "staff_id": staffID,
			"items": []map[string]any{{"menu_item_id": dishID, "quantity": 1}},
		}, http.StatusNotFound},
		{"unknown menu item", http.MethodPost, "/api/v1/orders", map[string]any{
			"table_id": tableID, "staff_id": staffID,
			"items": []map[string]any{
				{"menu_item_id": dishID, "quantity": 1},
				{"menu_item_id": kernel.NewUUID().String(), "quantity": 1},
			},
		}, http.StatusBadRequest},
		{"duplicate table", http.MethodPost, "/api/v1/tables", map[string]any{"name": "T1"}, http.StatusBadRequest},
		{"unknown category", http.MethodPost, "/api/v1/menu-items", map[string]any{"name": "X", "price": 1, "category": "dessert"}, http.StatusBadRequest},
		{"negative price", http.MethodPost, "/api/v1/menu-items", map[string]any{"name": "X", "price": -1, "category": "food"}, http.StatusBadRequest},
		{"unknown role", http.MethodPost, "/api/v1/staff", map[string]any{"name": "Eve", "role": "chef"}, http.StatusBadRequest},
		{"availability required", http.MethodPut, "/api/v1/menu-items/" + dishID + "/availability", map[string]any{}, http.StatusBadRequest},
		{"bad uuid in body", http.MethodPost, "/api/v1/orders", map[string]any{"table_id": "nope"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := h.do(t, tt.method, tt.path, tt.body)

			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			body := decode[api.Error](t, rec)
			assert.Equal(t, tt.status, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}

	rec := h.do(t, http.MethodPost, "/api/v1/orders", map[string]any{
		"table_id": tableID, "staff_id": staffID,
		"items": []map[string]any{{"menu_item_id": dishID, "quantity": 1}},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = h.do(t, http.MethodPost, "/api/v1/orders", map[string]any{
		"table_id": tableID, "staff_id": staffID,
		"items": []map[string]any{{"menu_item_id": dishID, "quantity": 1}},
	})
	assert.Equal(t, http.StatusConflict, rec.Code, "occupied table")
}

func TestServer_MenuAvailability(t *testing.T) {
	h := newHarness(t, nil)
	_, _, dishID, _ := h.seed(t)

	rec := h.do(t, http.MethodPut, "/api/v1/menu-items/"+dishID+"/availability", map[string]any{"available": false})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.False(t, decode[api.MenuItemResponse](t, rec).Available)

	rec = h.do(t, http.MethodGet, "/api/v1/menu-items?available=true", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	items := decode[[]api.MenuItemResponse](t, rec)
	require.Len(t, items, 1)
	assert.Equal(t, "Cola", items[0].Name)

	rec = h.do(t, http.MethodGet, "/api/v1/menu-items", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]api.MenuItemResponse](t, rec), 2)

	rec = h.do(t, http.MethodGet, "/api/v1/staff", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	staff := decode[[]api.StaffResponse](t, rec)
	require.Len(t, staff, 1)
	assert.Equal(t, "waiter", staff[0].Role)
}

func TestServer_Health(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		h := newHarness(t, nil)
		sub := h.hub.Subscribe()
		defer h.hub.Unsubscribe(sub)

		rec := h.do(t, http.MethodGet, "/health", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode[api.HealthResponse](t, rec)
		assert.Equal(t, "ok", body.Status)
		assert.Equal(t, "successful", body.Database)
		assert.Equal(t, 1, body.Subscribers)
	})

	t.Run("database_down", func(t *testing.T) {
		h := newHarness(t, func(context.Context) error { return errors.New("connection refused") })

		rec := h.do(t, http.MethodGet, "/health", nil)

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		body := decode[api.HealthResponse](t, rec)
		assert.Equal(t, "failed", body.Database)
		assert.Equal(t, "connection refused", body.Detail)
	})
}

func TestServer_Notifications(t *testing.T) {
	h := newHarness(t, nil)
	srv := httptest.NewServer(h.echo)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/notifications"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("hello")))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"PONG","message":"Server received: hello"}`, string(raw))

	// the PONG proves the subscription exists
	require.Equal(t, 1, h.hub.Count())
	orderID := kernel.NewUUID()
	h.hub.Broadcast(notification.NewOrderReady(orderID, "T5"))

	_, raw, err = conn.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"order-ready","order_id":"`+orderID.String()+`","table_name":"T5"}`, string(raw))

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return h.hub.Count() == 0 }, 2*time.Second, 10*time.Millisecond)
}
