package contact

import (
	"tennisbot_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ContactRoutesManager struct {
	logger         *gecho.Logger
	inquiryService *services.InquiryService
}

func NewContactRoutesManager(logger *gecho.Logger, inquiryService *services.InquiryService) *ContactRoutesManager {
	return &ContactRoutesManager{
		logger:         logger,
		inquiryService: inquiryService,
	}
}

func (crm *ContactRoutesManager) RegisterRoutes(r chi.Router) {
	r.Post("/contact", crm.CreateInquiry)
}
