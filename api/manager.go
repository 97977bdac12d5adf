package api

import (
	"tennisbot_server/api/admin"
	"tennisbot_server/api/contact"
	"tennisbot_server/api/health"
	"tennisbot_server/api/middleware"
	"tennisbot_server/api/orders"
	"tennisbot_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	orderRoutes   *orders.OrderRoutesManager
	contactRoutes *contact.ContactRoutesManager
	adminRoutes   *admin.AdminRoutesManager
	healthRoutes  *health.HealthRoutesManager
}

func NewRouterManager(logger *gecho.Logger, sm *services.ServiceManager, mw *middleware.Middleware) *routerManager {
	return &routerManager{
		orderRoutes:   orders.NewOrderRoutesManager(logger, sm.OrderService),
		contactRoutes: contact.NewContactRoutesManager(logger, sm.InquiryService),
		adminRoutes: admin.NewAdminRoutesManager(
			logger,
			sm.AuthService,
			sm.OrderService,
			sm.InquiryService,
			sm.StatsService,
			mw,
		),
		healthRoutes: health.NewHealthRoutesManager(sm.HealthService),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.orderRoutes.RegisterRoutes(r)
	rm.contactRoutes.RegisterRoutes(r)
	rm.adminRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
}
