package admin

import (
	"errors"
	"net/http"
	"tennisbot_server/handling"
	"tennisbot_server/lib"
	"tennisbot_server/structs"
	"tennisbot_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// UpdateOrderStatus overwrites an order's status with one of the recognized
// states.
func (ar *AdminRoutesManager) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderId := chi.URLParam(r, "id")

	body, err := lib.ExtractAndValidateBody[structs.UpdateOrderStatusRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Status is required"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	order, err := ar.orderService.UpdateOrderStatus(r.Context(), orderId, tables.OrderStatus(body.Status))
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("Order not found"),
				gecho.Send(),
			)
			return
		}
		if errors.Is(err, lib.ErrInvalidStatus) {
			gecho.BadRequest(w,
				gecho.WithMessage("Unknown order status"),
				gecho.Send(),
			)
			return
		}
		handling.HandleError(err, "Failed to update order status", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"order": order}),
		gecho.Send(),
	)
}
