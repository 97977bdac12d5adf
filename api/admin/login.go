package admin

import (
	"net/http"
	"tennisbot_server/lib"
	"tennisbot_server/structs"

	"github.com/MonkyMars/gecho"
)

// Login exchanges the admin password for a bearer access token.
func (ar *AdminRoutesManager) Login(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.LoginRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Password is required"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	token, expiresIn, err := ar.authService.Login(body.Password)
	if err != nil {
		// Always the same response regardless of failure reason
		gecho.Unauthorized(w,
			gecho.WithMessage("Invalid credentials"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"access_token": token,
			"token_type":   "Bearer",
			"expires_in":   int(expiresIn.Seconds()),
		}),
		gecho.Send(),
	)
}
