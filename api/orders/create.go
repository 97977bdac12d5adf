package orders

import (
	"net/http"
	"tennisbot_server/api/health"
	"tennisbot_server/handling"
	"tennisbot_server/lib"
	"tennisbot_server/structs"

	"github.com/MonkyMars/gecho"
)

func (orm *OrderRoutesManager) CreateOrder(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.OrderRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Missing required fields: name, email, phone"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	idempotencyKey := r.Header.Get("Idempotency-Key")

	order, err := orm.orderService.CreateOrder(r.Context(), body, idempotencyKey)
	if err != nil {
		handling.HandleError(err, "Failed to create order. Please try again.", orm.logger, w)
		return
	}

	health.OrdersCreated.Inc()

	gecho.Success(w,
		gecho.WithMessage("Order created successfully. We will contact you within 24 hours."),
		gecho.WithData(map[string]any{
			"order_id": order.Id,
			"status":   order.Status,
		}),
		gecho.Send(),
	)
}
