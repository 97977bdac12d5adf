package services

import (
	"context"
	"tennisbot_server/lib"
	"tennisbot_server/structs"
	"tennisbot_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
)

type InquiryService struct {
	logger *gecho.Logger
	store  InquiryStore
	cache  Cache
	mailer Mailer
}

func NewInquiryService(logger *gecho.Logger, store InquiryStore, cache Cache, mailer Mailer) *InquiryService {
	return &InquiryService{
		logger: logger,
		store:  store,
		cache:  cache,
		mailer: mailer,
	}
}

// CreateInquiry persists a contact-form submission. Subject falls back to
// the default when the customer leaves it empty.
func (is *InquiryService) CreateInquiry(ctx context.Context, req *structs.InquiryRequest) (*tables.Inquiry, error) {
	subject := req.Subject
	if subject == "" {
		subject = tables.DefaultInquirySubject
	}

	inquiry := &tables.Inquiry{
		Id:        lib.NewInquiryID(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   subject,
		Message:   req.Message,
		Status:    "new",
		CreatedAt: time.Now().UTC(),
	}

	if err := is.store.Insert(ctx, inquiry); err != nil {
		return nil, err
	}

	is.logger.Info("Inquiry created",
		gecho.Field("inquiry_id", inquiry.Id),
		gecho.Field("email", inquiry.Email))

	if is.cache != nil {
		if err := is.cache.Delete(statsCacheKey); err != nil {
			is.logger.Warn("Failed to invalidate stats cache", gecho.Field("error", err))
		}
	}

	if is.mailer != nil {
		is.mailer.SendInquiryAcknowledgement(inquiry)
	}

	return inquiry, nil
}

// ListInquiries returns all inquiries newest first.
func (is *InquiryService) ListInquiries(ctx context.Context) ([]tables.Inquiry, error) {
	inquiries, err := is.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if inquiries == nil {
		inquiries = []tables.Inquiry{}
	}
	return inquiries, nil
}
