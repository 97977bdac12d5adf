package orders

import (
	"errors"
	"net/http"
	"tennisbot_server/handling"
	"tennisbot_server/lib"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// GetOrder returns a single order by its identifier.
func (orm *OrderRoutesManager) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderId := chi.URLParam(r, "id")

	order, err := orm.orderService.GetOrder(r.Context(), orderId)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("Order not found"),
				gecho.Send(),
			)
			return
		}
		handling.HandleError(err, "Failed to fetch order", orm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"order": order}),
		gecho.Send(),
	)
}

// GetCustomerOrders returns all orders placed under an email address, newest
// first. An email with no orders yields an empty list.
func (orm *OrderRoutesManager) GetCustomerOrders(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	orders, err := orm.orderService.GetCustomerOrders(r.Context(), email)
	if err != nil {
		handling.HandleError(err, "Failed to fetch customer orders", orm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"orders": orders,
			"count":  len(orders),
		}),
		gecho.Send(),
	)
}
