package services

import (
	"net/http"
	"time"

	"github.com/civicalert/citizen-services/internal/events"
	"github.com/civicalert/citizen-services/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SaveUserService persists the post-authentication profile. A User
// record is always written; role "citizen" adds Citizen and
// CitizenContact records, role "admin" adds an Admin record. The writes
// are not transactional, so a failure partway leaves earlier writes
// committed.
func SaveUserService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var req models.SaveUserRequest
	if err := DecodeRequest(r, &req); err != nil {
		logger.Error().Err(err).Msg("invalid save-user payload")
		WriteResponse(w, http.StatusBadRequest, models.SaveUserErrorResponse{Detail: err.Error()})
		return
	}

	if err := validateSaveUser(&req); err != nil {
		logger.Error().Err(err).Msg("save-user validation failed")
		WriteResponse(w, err.Status, models.SaveUserErrorResponse{Detail: err.Message})
		return
	}

	logger.Info().Str("sub", req.Sub).Str("role", req.Role).Msg("saving user profile")

	ctx := r.Context()

	if err := svc.Profiles.CreateUser(ctx, models.UserRecord{
		UserID: req.Sub,
		Email:  req.Email,
		Role:   req.Role,
	}); err != nil {
		logger.Error().Err(err).Msg("failed to create user record")
		WriteResponse(w, http.StatusInternalServerError, models.SaveUserErrorResponse{Detail: err.Error()})
		return
	}

	switch req.Role {
	case "citizen":
		err := svc.Profiles.CreateCitizen(ctx, models.CitizenRecord{
			CitizenID: req.Sub,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Mobile:    req.Mobile,
			City:      req.City,
			Address:   req.Address,
		})
		if err != nil {
			logger.Error().Err(err).Msg("failed to create citizen record")
			WriteResponse(w, http.StatusInternalServerError, models.SaveUserErrorResponse{Detail: err.Error()})
			return
		}
	case "admin":
		err := svc.Profiles.CreateAdmin(ctx, models.AdminRecord{
			AdminID:    req.Sub,
			FirstName:  req.FirstName,
			LastName:   req.LastName,
			Email:      req.Email,
			Mobile:     req.Mobile,
			Department: req.Department,
		})
		if err != nil {
			logger.Error().Err(err).Msg("failed to create admin record")
			WriteResponse(w, http.StatusInternalServerError, models.SaveUserErrorResponse{Detail: err.Error()})
			return
		}
	default:
		// Unrecognized roles register the bare User record only.
		logger.Warn().Str("role", req.Role).Msg("unrecognized role, only user record created")
	}

	publishRegistration(svc, r, req)

	logger.Info().Str("sub", req.Sub).Msg("user profile saved")
	WriteResponse(w, http.StatusOK, models.SaveUserResponse{Status: "saved"})
}

// publishRegistration emits a registration event when a broker is
// configured. Publish failures are logged but never fail the request;
// the profile is already committed.
func publishRegistration(svc *Service, r *http.Request, req models.SaveUserRequest) {
	if svc.Events == nil {
		return
	}

	logger := zerolog.Ctx(r.Context())

	event := events.RegistrationEvent{
		CorrelationID: uuid.NewString(),
		Sub:           req.Sub,
		Email:         req.Email,
		Role:          req.Role,
		FirstName:     req.FirstName,
		Timestamp:     time.Now().Unix(),
	}

	if err := svc.Events.Publish(r.Context(), event); err != nil {
		logger.Warn().Err(err).Str("sub", req.Sub).Msg("failed to publish registration event")
		return
	}

	logger.Debug().Str("correlationId", event.CorrelationID).Msg("registration event published")
}

func validateSaveUser(req *models.SaveUserRequest) *AuthError {
	switch {
	case req.Sub == "":
		return NewValidationError("field 'sub' is required")
	case req.Email == "":
		return NewValidationError("field 'email' is required")
	case req.Role == "":
		return NewValidationError("field 'role' is required")
	case req.FirstName == "":
		return NewValidationError("field 'firstName' is required")
	case req.LastName == "":
		return NewValidationError("field 'lastName' is required")
	case req.Mobile == "":
		return NewValidationError("field 'mobile' is required")
	}
	return nil
}
