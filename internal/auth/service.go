package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgauth "github.com/KSunShin4/EcoMart/pkg/auth"
	"github.com/KSunShin4/EcoMart/pkg/config"
	"github.com/KSunShin4/EcoMart/pkg/db/models"
	pkgerrors "github.com/KSunShin4/EcoMart/pkg/errors"
	"github.com/KSunShin4/EcoMart/pkg/logger"
	"github.com/KSunShin4/EcoMart/pkg/security"
)

var phoneRe = regexp.MustCompile(`^\+?[0-9]{9,15}$`)

// RequestOTPResult reports the lifetime of a freshly issued code.
type RequestOTPResult struct {
	ExpiresIn int `json:"expiresIn"`
}

// SessionDTO is the signed-in session returned after verification.
type SessionDTO struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	UserID    string    `json:"userId"`
	Phone     string    `json:"phone"`
}

// Service exposes the passwordless phone login flow.
type Service interface {
	RequestOTP(ctx context.Context, phone, clientIP string) (*RequestOTPResult, error)
	VerifyOTP(ctx context.Context, phone, code string) (*SessionDTO, error)
}

type otpStore interface {
	Save(ctx context.Context, phone, hash string, ttl time.Duration) error
	Load(ctx context.Context, phone string) (string, error)
	Delete(ctx context.Context, phone string) error
	Allow(ctx context.Context, scope string, limit int64, window time.Duration) (bool, error)
}

type userStore interface {
	FindByPhone(ctx context.Context, phone string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// ServiceParams groups dependencies for the auth service.
type ServiceParams struct {
	OTPStore  otpStore
	Users     userStore
	JWTConfig config.JWTConfig
	OTPConfig config.OTPConfig
	RateLimit config.AuthRateLimitConfig
	Logger    *logger.Logger
}

type service struct {
	otp       otpStore
	users     userStore
	jwtCfg    config.JWTConfig
	otpCfg    config.OTPConfig
	rateLimit config.AuthRateLimitConfig
	logg      *logger.Logger
}

// NewService builds an auth service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.OTPStore == nil {
		return nil, fmt.Errorf("otp store required")
	}
	if params.Users == nil {
		return nil, fmt.Errorf("user store required")
	}
	if params.JWTConfig.Secret == "" {
		return nil, fmt.Errorf("jwt secret required")
	}
	return &service{
		otp:       params.OTPStore,
		users:     params.Users,
		jwtCfg:    params.JWTConfig,
		otpCfg:    params.OTPConfig,
		rateLimit: params.RateLimit,
		logg:      params.Logger,
	}, nil
}

// RequestOTP issues a one-time code for the phone number. Only the Argon2id
// hash is stored; delivery goes through the SMS provider, with the code
// logged in place of a real send in development setups.
func (s *service) RequestOTP(ctx context.Context, phone, clientIP string) (*RequestOTPResult, error) {
	phone, err := normalizePhone(phone)
	if err != nil {
		return nil, err
	}

	if err := s.enforceRateLimits(ctx, phone, clientIP); err != nil {
		return nil, err
	}

	code, err := security.GenerateOTP(s.otpCfg.Digits)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generating otp")
	}
	hash, err := security.HashOTP(code, s.otpCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hashing otp")
	}

	if err := s.otp.Save(ctx, phone, hash, s.otpCfg.TTL); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "storing otp")
	}

	if s.logg != nil {
		s.logg.Debug(s.logg.WithField(ctx, "otp_code", code), "otp issued")
	}

	return &RequestOTPResult{ExpiresIn: int(s.otpCfg.TTL.Seconds())}, nil
}

// VerifyOTP checks the code, consumes it, creates the user on first login
// and returns a signed session.
func (s *service) VerifyOTP(ctx context.Context, phone, code string) (*SessionDTO, error) {
	phone, err := normalizePhone(phone)
	if err != nil {
		return nil, err
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "otp code is required")
	}

	hash, err := s.otp.Load(ctx, phone)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading otp")
	}
	if hash == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "otp expired or not requested")
	}

	ok, err := security.VerifyOTP(code, hash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verifying otp")
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid otp code")
	}

	// Codes are single use.
	if err := s.otp.Delete(ctx, phone); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "consuming otp")
	}

	user, err := s.findOrCreateUser(ctx, phone)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	token, err := pkgauth.MintAccessToken(s.jwtCfg, now, pkgauth.AccessTokenPayload{
		UserID: user.ID,
		Phone:  user.Phone,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint jwt")
	}

	return &SessionDTO{
		Token:     token,
		ExpiresAt: now.Add(s.jwtCfg.Expiration()),
		UserID:    user.ID.String(),
		Phone:     user.Phone,
	}, nil
}

func (s *service) enforceRateLimits(ctx context.Context, phone, clientIP string) error {
	if s.rateLimit.OTPPhoneLimit > 0 {
		allowed, err := s.otp.Allow(ctx, "otp:phone:"+phone, int64(s.rateLimit.OTPPhoneLimit), s.rateLimit.OTPWindow)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "checking phone rate limit")
		}
		if !allowed {
			return pkgerrors.New(pkgerrors.CodeRateLimit, "too many otp requests for this phone")
		}
	}
	if clientIP != "" && s.rateLimit.OTPIPLimit > 0 {
		allowed, err := s.otp.Allow(ctx, "otp:ip:"+clientIP, int64(s.rateLimit.OTPIPLimit), s.rateLimit.OTPWindow)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "checking ip rate limit")
		}
		if !allowed {
			return pkgerrors.New(pkgerrors.CodeRateLimit, "too many otp requests from this address")
		}
	}
	return nil
}

func (s *service) findOrCreateUser(ctx context.Context, phone string) (*models.User, error) {
	user, err := s.users.FindByPhone(ctx, phone)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading user")
	}

	user = &models.User{ID: uuid.New(), Phone: phone}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating user")
	}
	return user, nil
}

func normalizePhone(phone string) (string, error) {
	phone = strings.TrimSpace(phone)
	if !phoneRe.MatchString(phone) {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "invalid phone number")
	}
	return phone, nil
}
