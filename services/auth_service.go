package services

import (
	"tennisbot_server/lib"
	"tennisbot_server/structs"
	"time"

	"github.com/MonkyMars/gecho"
)

// AuthService issues admin access tokens. There are no customer accounts;
// the only authenticated principal is the shop administrator.
type AuthService struct {
	logger *gecho.Logger
	cfg    *structs.Config
}

func NewAuthService(logger *gecho.Logger, cfg *structs.Config) *AuthService {
	return &AuthService{
		logger: logger,
		cfg:    cfg,
	}
}

// Login verifies the admin password against the configured Argon2id hash and
// returns a signed access token.
func (as *AuthService) Login(password string) (string, time.Duration, error) {
	hash := as.cfg.Auth.AdminPasswordHash
	if hash == "" {
		as.logger.Warn("Admin login attempted but no admin password hash is configured")
		return "", 0, lib.ErrInvalidCredentials
	}

	ok, err := lib.VerifyPassword(password, hash)
	if err != nil {
		as.logger.Error("Failed to verify admin password", gecho.Field("error", err))
		return "", 0, lib.ErrInvalidCredentials
	}
	if !ok {
		return "", 0, lib.ErrInvalidCredentials
	}

	token, err := lib.IssueAdminToken(as.cfg.Auth.AccessTokenSecret, as.cfg.Auth.AccessTokenExpiry)
	if err != nil {
		return "", 0, err
	}

	return token, as.cfg.Auth.AccessTokenExpiry, nil
}
