package handling

import (
	"errors"
	"net/http"
	"tennisbot_server/lib"

	"github.com/MonkyMars/gecho"
	"github.com/MonkyMars/gecho/utils"
)

// HandleError converts an error into the matching JSON error response at the
// handler boundary. Internal detail is logged, never sent to the client.
func HandleError(err error, msg string, logger *gecho.Logger, w http.ResponseWriter) *utils.Response {
	var ve *lib.ValidationError
	if errors.As(err, &ve) {
		return gecho.BadRequest(w,
			gecho.WithMessage(msg),
			gecho.WithData(ve),
			gecho.Send(),
		)
	}

	if errors.Is(err, lib.ErrNotFound) {
		return gecho.NotFound(w,
			gecho.WithMessage(msg),
			gecho.Send(),
		)
	}

	logger.Error("An error occurred", gecho.Field("error", err), gecho.Field("msg", msg), gecho.WithCallerSkip(3))

	return gecho.InternalServerError(w, gecho.Send())
}
