package models

// SignUpRequest is the payload for /signup.
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
}

// LoginRequest is the payload for /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VerifyRequest is the payload for /verify. Contact is the Cognito
// username (the email on this platform), OTP the confirmation code.
type VerifyRequest struct {
	Contact string `json:"contact"`
	OTP     string `json:"otp"`
}

// SaveUserRequest is the post-authentication profile payload for
// /save-user. City and Address apply to citizens, Department to admins.
type SaveUserRequest struct {
	Sub        string `json:"sub"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Mobile     string `json:"mobile"`
	City       string `json:"city,omitempty"`
	Address    string `json:"address,omitempty"`
	Department string `json:"department,omitempty"`
}

// UserRecord is the Users table item, keyed by the Cognito subject id.
type UserRecord struct {
	UserID    string `dynamodbav:"userId" json:"userId"`
	Email     string `dynamodbav:"email" json:"email"`
	Role      string `dynamodbav:"role" json:"role"`
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
}

// CitizenRecord is the Citizens table item. CitizenID equals the user's
// subject id.
type CitizenRecord struct {
	CitizenID string `dynamodbav:"citizenId" json:"citizenId"`
	FirstName string `dynamodbav:"firstName" json:"firstName"`
	LastName  string `dynamodbav:"lastName" json:"lastName"`
	Email     string `dynamodbav:"email" json:"email"`
	Mobile    string `dynamodbav:"mobile" json:"mobile"`
	City      string `dynamodbav:"city" json:"city"`
	Address   string `dynamodbav:"address" json:"address"`
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
}

// AdminRecord is the Admin table item. AdminID equals the user's
// subject id and Role is always "admin".
type AdminRecord struct {
	AdminID    string `dynamodbav:"adminId" json:"adminId"`
	FirstName  string `dynamodbav:"firstName" json:"firstName"`
	LastName   string `dynamodbav:"lastName" json:"lastName"`
	Email      string `dynamodbav:"email" json:"email"`
	Mobile     string `dynamodbav:"mobile" json:"mobile"`
	Department string `dynamodbav:"department" json:"department"`
	Role       string `dynamodbav:"role" json:"role"`
	CreatedAt  string `dynamodbav:"createdAt" json:"createdAt"`
}

// ContactRecord is the denormalized CitizenContact table item used for
// outbound alerting. It is keyed by mobile number only; a repeated
// mobile overwrites the previous item.
type ContactRecord struct {
	Mobile    string `dynamodbav:"mobile" json:"mobile"`
	FirstName string `dynamodbav:"firstName" json:"firstName"`
	LastName  string `dynamodbav:"lastName" json:"lastName"`
	City      string `dynamodbav:"city" json:"city"`
}
