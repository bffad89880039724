package handlers

import (
	"net/http"

	services "github.com/civicalert/citizen-services/api/services"
)

// @Summary Register a new account
// @Description Registers an account with the identity provider and returns the generated subject id.
// @Tags auth
// @Accept json
// @Produce json
// @Router /signup [post]
func SignUp(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.SignUpService(svc, w, r)
	}
}

// @Summary Authenticate with email and password
// @Description Performs a password login and returns the provider's access, id and refresh tokens.
// @Tags auth
// @Accept json
// @Produce json
// @Router /login [post]
func Login(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.LoginService(svc, w, r)
	}
}

// @Summary Confirm an account with an OTP code
// @Description Submits the emailed confirmation code for a pending account.
// @Tags auth
// @Accept json
// @Produce json
// @Router /verify [post]
func Verify(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.VerifyService(svc, w, r)
	}
}
