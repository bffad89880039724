package models

// SignUpResponse is the success body for /signup.
type SignUpResponse struct {
	Message string `json:"message"`
	UserSub string `json:"user_sub"`
}

// LoginResponse carries the Cognito tokens verbatim.
type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token"`
}

// VerifyResponse is the success body for /verify.
type VerifyResponse struct {
	Message string `json:"message"`
}

// SaveUserResponse is the success body for /save-user.
type SaveUserResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the failure body for the identity endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SaveUserErrorResponse is the failure body for /save-user.
type SaveUserErrorResponse struct {
	Detail string `json:"detail"`
}
