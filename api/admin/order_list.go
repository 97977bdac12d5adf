package admin

import (
	"net/http"
	"tennisbot_server/handling"
	"tennisbot_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

// ListOrders returns all orders newest first, optionally filtered by status.
func (ar *AdminRoutesManager) ListOrders(w http.ResponseWriter, r *http.Request) {
	var status *tables.OrderStatus
	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		s := tables.OrderStatus(statusStr)
		if !s.Valid() {
			gecho.BadRequest(w,
				gecho.WithMessage("Unknown status filter"),
				gecho.Send(),
			)
			return
		}
		status = &s
	}

	orders, err := ar.orderService.ListOrders(r.Context(), status)
	if err != nil {
		handling.HandleError(err, "Failed to fetch orders", ar.logger, w)
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

// ListInquiries returns all contact inquiries newest first.
func (ar *AdminRoutesManager) ListInquiries(w http.ResponseWriter, r *http.Request) {
	inquiries, err := ar.inquiryService.ListInquiries(r.Context())
	if err != nil {
		handling.HandleError(err, "Failed to fetch inquiries", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"inquiries": inquiries,
			"count":     len(inquiries),
		}),
		gecho.Send(),
	)
}
