package services

import (
	"tennisbot_server/database"
	"tennisbot_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	AuthService    *AuthService
	EmailService   *EmailService
	CacheService   *CacheService
	HealthService  *HealthService
	OrderService   *OrderService
	InquiryService *InquiryService
	StatsService   *StatsService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *ServiceManager {
	orderStore := database.NewOrderStore(db, cfg.Database.QueryTimeout)
	inquiryStore := database.NewInquiryStore(db, cfg.Database.QueryTimeout)

	authService := NewAuthService(logger, cfg)
	cacheService := NewCacheService(logger, cfg)
	emailService := NewEmailService(logger, cfg)
	healthService := NewHealthService(logger, db, cacheService)
	orderService := NewOrderService(logger, cfg, orderStore, cacheService, emailService)
	inquiryService := NewInquiryService(logger, inquiryStore, cacheService, emailService)
	statsService := NewStatsService(logger, cfg, orderStore, inquiryStore, cacheService)

	return &ServiceManager{
		AuthService:    authService,
		EmailService:   emailService,
		CacheService:   cacheService,
		HealthService:  healthService,
		OrderService:   orderService,
		InquiryService: inquiryService,
		StatsService:   statsService,
	}
}
