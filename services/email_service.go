package services

import (
	"fmt"
	"sync"
	"tennisbot_server/structs"
	"tennisbot_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/resend/resend-go/v3"
)

var (
	emailClient     *resend.Client
	emailClientOnce = sync.Once{}
)

// EmailService sends customer-facing notification emails through resend.
// Without an API key configured every send becomes a logged no-op.
type EmailService struct {
	logger  *gecho.Logger
	cfg     *structs.Config
	client  *resend.Client
	enabled bool
}

func NewEmailService(logger *gecho.Logger, cfg *structs.Config) *EmailService {
	return &EmailService{
		logger:  logger,
		cfg:     cfg,
		client:  getEmailClient(cfg.Email.ApiKey),
		enabled: cfg.Email.ApiKey != "",
	}
}

func getEmailClient(apiKey string) *resend.Client {
	emailClientOnce.Do(func() {
		emailClient = resend.NewClient(apiKey)
	})
	return emailClient
}

func (es *EmailService) send(to []string, subject string, body string) {
	if !es.enabled {
		es.logger.Debug("Email sending disabled, skipping", gecho.Field("subject", subject))
		return
	}

	// Detached from the request: a slow or failing provider must not delay
	// the response, and failures are log-only.
	go func() {
		params := &resend.SendEmailRequest{
			From:    es.cfg.Email.From,
			To:      to,
			Html:    body,
			Subject: subject,
		}

		if _, err := es.client.Emails.Send(params); err != nil {
			es.logger.Error("Failed to send email",
				gecho.Field("error", err),
				gecho.Field("to", to),
				gecho.Field("subject", subject))
		}
	}()
}

// SendOrderConfirmation emails the customer that their order was received.
func (es *EmailService) SendOrderConfirmation(order *tables.Order) {
	body := fmt.Sprintf(`
		<h1>Thank you for your order, %s!</h1>
		<p>We received your order for the <strong>%s</strong> and will contact you within 24 hours.</p>
		<p>Order reference: <code>%s</code></p>
		<p>Price: %d %s</p>
	`, order.Name, order.Product, order.Id, order.Price, order.Currency)

	es.send([]string{order.Email}, "Your TennisBot Pro order", body)
}

// SendInquiryAcknowledgement emails the customer that their inquiry arrived.
func (es *EmailService) SendInquiryAcknowledgement(inquiry *tables.Inquiry) {
	body := fmt.Sprintf(`
		<h1>Thanks for reaching out, %s!</h1>
		<p>We received your message about "%s" and will respond within 24 hours.</p>
		<p>Reference: <code>%s</code></p>
	`, inquiry.Name, inquiry.Subject, inquiry.Id)

	es.send([]string{inquiry.Email}, "We received your inquiry", body)
}
