package handlers

import (
	"net/http"

	services "github.com/civicalert/citizen-services/api/services"
)

// @Summary Save a user profile
// @Description Persists the post-authentication profile. Citizens also get a contact-alert record.
// @Tags users
// @Accept json
// @Produce json
// @Router /save-user [post]
func SaveUser(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.SaveUserService(svc, w, r)
	}
}
