package services

import (
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
)

// OrderRouter decides which station prepares each order line.
//
// Routing rules:
//   - food goes to the kitchen
//   - general and alcoholic beverages go to the bar
//
// A category outside this table is a validation error rather than a default
// station, so adding a category forces a routing decision.
type OrderRouter struct {
	routes map[menu.Category]order.Destination
}

func NewOrderRouter() OrderRouter {
	return OrderRouter{
		routes: map[menu.Category]order.Destination{
			menu.Food:              order.Kitchen,
			menu.GeneralBeverage:   order.Bar,
			menu.AlcoholicBeverage: order.Bar,
		},
	}
}

// DestinationFor is the routing policy.
func (r OrderRouter) DestinationFor(category menu.Category) (order.Destination, error) {
	d, ok := r.routes[category]
	if !ok {
		return order.UnknownDestination, errs.NewValueIsInvalidErrorWithCause(
			"category",
			fmt.Errorf("no station prepares %s", category),
		)
	}
	return d, nil
}

// Line turns a menu item and a requested quantity into a pending order line.
// The menu item's current name and price are the snapshot; client-submitted
// prices never reach this point.
//
// Returns a validation error when the menu item is unavailable or the
// quantity is not positive.
func (r OrderRouter) Line(item *menu.MenuItem, quantity int) (*order.Item, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}
	if !item.IsAvailable() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"menu item",
			fmt.Errorf("%s (%s) is not available", item.Name(), item.ID()),
		)
	}

	destination, err := r.DestinationFor(item.Category())
	if err != nil {
		return nil, err
	}

	return order.NewItem(kernel.NewUUID(), item.ID(), item.Name(), quantity, item.Price(), destination)
}
