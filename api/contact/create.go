package contact

import (
	"net/http"
	"tennisbot_server/api/health"
	"tennisbot_server/handling"
	"tennisbot_server/lib"
	"tennisbot_server/structs"

	"github.com/MonkyMars/gecho"
)

func (crm *ContactRoutesManager) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.InquiryRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Missing required fields: name, email, message"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	inquiry, err := crm.inquiryService.CreateInquiry(r.Context(), body)
	if err != nil {
		handling.HandleError(err, "Failed to submit inquiry. Please try again.", crm.logger, w)
		return
	}

	health.InquiriesCreated.Inc()

	gecho.Success(w,
		gecho.WithMessage("Thank you for your inquiry. We will respond within 24 hours."),
		gecho.WithData(map[string]any{
			"inquiry_id": inquiry.Id,
		}),
		gecho.Send(),
	)
}
