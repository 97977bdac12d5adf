package admin

import (
	"tennisbot_server/api/middleware"
	"tennisbot_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AdminRoutesManager struct {
	logger         *gecho.Logger
	authService    *services.AuthService
	orderService   *services.OrderService
	inquiryService *services.InquiryService
	statsService   *services.StatsService
	mw             *middleware.Middleware
}

func NewAdminRoutesManager(
	logger *gecho.Logger,
	authService *services.AuthService,
	orderService *services.OrderService,
	inquiryService *services.InquiryService,
	statsService *services.StatsService,
	mw *middleware.Middleware,
) *AdminRoutesManager {
	return &AdminRoutesManager{
		logger:         logger,
		authService:    authService,
		orderService:   orderService,
		inquiryService: inquiryService,
		statsService:   statsService,
		mw:             mw,
	}
}

func (ar *AdminRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Post("/login", ar.Login)

		r.Group(func(r chi.Router) {
			r.Use(ar.mw.AdminAuthMiddleware)

			r.Get("/orders", ar.ListOrders)
			r.Put("/orders/{id}/status", ar.UpdateOrderStatus)
			r.Get("/inquiries", ar.ListInquiries)
			r.Get("/stats", ar.GetStats)
		})
	})
}
