package services

import (
	"net/http"

	"github.com/civicalert/citizen-services/models"
	"github.com/rs/zerolog"
)

// SignUpService registers a new account with the identity provider and
// returns the generated subject id.
func SignUpService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var req models.SignUpRequest
	if err := DecodeRequest(r, &req); err != nil {
		logger.Error().Err(err).Msg("invalid signup payload")
		WriteResponse(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	phone := NormalizePhone(req.Phone)

	userSub, err := svc.Auth.SignUp(r.Context(), req.Email, req.Password, req.Name, phone)
	if err != nil {
		authErr := TranslateCognitoError(err)
		logger.Error().Err(err).Str("code", string(authErr.Code)).Msg("signup failed")
		WriteResponse(w, authErr.Status, models.ErrorResponse{Error: authErr.Message})
		return
	}

	logger.Info().Str("user_sub", userSub).Msg("user registered")
	WriteResponse(w, http.StatusOK, models.SignUpResponse{
		Message: "User registered successfully",
		UserSub: userSub,
	})
}

// LoginService performs a password authentication and returns the
// provider's tokens verbatim.
func LoginService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var req models.LoginRequest
	if err := DecodeRequest(r, &req); err != nil {
		logger.Error().Err(err).Msg("invalid login payload")
		WriteResponse(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := svc.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		authErr := TranslateCognitoError(err)
		logger.Error().Err(err).Str("code", string(authErr.Code)).Msg("login failed")
		WriteResponse(w, authErr.Status, models.ErrorResponse{Error: authErr.Message})
		return
	}

	if result == nil || result.AccessToken == nil {
		logger.Error().Msg("authentication result missing tokens")
		WriteResponse(w, http.StatusInternalServerError, models.ErrorResponse{Error: "authentication did not return tokens"})
		return
	}

	logger.Info().Msg("login succeeded")
	WriteResponse(w, http.StatusOK, models.LoginResponse{
		AccessToken:  *result.AccessToken,
		IDToken:      derefString(result.IdToken),
		RefreshToken: derefString(result.RefreshToken),
	})
}

// VerifyService submits the OTP confirmation code. Missing fields are
// rejected locally before any remote call.
func VerifyService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var req models.VerifyRequest
	if err := DecodeRequest(r, &req); err != nil {
		logger.Error().Err(err).Msg("invalid verify payload")
		WriteResponse(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	if req.Contact == "" || req.OTP == "" {
		logger.Error().Msg("verify request missing contact or otp")
		WriteResponse(w, http.StatusBadRequest, models.ErrorResponse{Error: "Contact and OTP code are required"})
		return
	}

	if err := svc.Auth.ConfirmSignUp(r.Context(), req.Contact, req.OTP); err != nil {
		authErr := TranslateCognitoError(err)
		logger.Error().Err(err).Str("code", string(authErr.Code)).Msg("verification failed")
		WriteResponse(w, authErr.Status, models.ErrorResponse{Error: authErr.Message})
		return
	}

	logger.Info().Str("contact", req.Contact).Msg("account verified")
	WriteResponse(w, http.StatusOK, models.VerifyResponse{Message: "Verification successful"})
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
