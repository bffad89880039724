package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	cognitotypes "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
)

// countryCodePrefix is prefixed onto local-format phone numbers before
// they reach Cognito. The platform currently serves a single country,
// so this is not general E.164 normalization.
const countryCodePrefix = "+91"

// CognitoAPI is the slice of the Cognito identity provider client this
// service uses.
type CognitoAPI interface {
	SignUp(ctx context.Context, params *cognitoidentityprovider.SignUpInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.SignUpOutput, error)
	InitiateAuth(ctx context.Context, params *cognitoidentityprovider.InitiateAuthInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.InitiateAuthOutput, error)
	ConfirmSignUp(ctx context.Context, params *cognitoidentityprovider.ConfirmSignUpInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.ConfirmSignUpOutput, error)
}

// CognitoAuth wraps the Cognito app client. ClientSecret is empty for
// public app clients; for confidential clients every call carries a
// SECRET_HASH derived from it.
type CognitoAuth struct {
	Client       CognitoAPI
	ClientID     string
	ClientSecret string
}

// NewCognitoAuth creates a new instance of CognitoAuth.
func NewCognitoAuth(client CognitoAPI, clientID, clientSecret string) *CognitoAuth {
	return &CognitoAuth{
		Client:       client,
		ClientID:     clientID,
		ClientSecret: clientSecret,
	}
}

// SignUp registers a new user and returns the generated subject id.
func (c *CognitoAuth) SignUp(ctx context.Context, email, password, name, phone string) (string, error) {
	attributes := []cognitotypes.AttributeType{
		{Name: aws.String("email"), Value: aws.String(email)},
		{Name: aws.String("name"), Value: aws.String(name)},
	}
	if phone != "" {
		attributes = append(attributes, cognitotypes.AttributeType{
			Name:  aws.String("phone_number"),
			Value: aws.String(phone),
		})
	}

	input := &cognitoidentityprovider.SignUpInput{
		ClientId:       aws.String(c.ClientID),
		Username:       aws.String(email),
		Password:       aws.String(password),
		UserAttributes: attributes,
		SecretHash:     c.secretHash(email),
	}

	out, err := c.Client.SignUp(ctx, input)
	if err != nil {
		return "", err
	}

	return aws.ToString(out.UserSub), nil
}

// Login performs a USER_PASSWORD_AUTH flow and returns the provider's
// authentication result verbatim.
func (c *CognitoAuth) Login(ctx context.Context, email, password string) (*cognitotypes.AuthenticationResultType, error) {
	params := map[string]string{
		"USERNAME": email,
		"PASSWORD": password,
	}
	if hash := c.secretHash(email); hash != nil {
		params["SECRET_HASH"] = *hash
	}

	out, err := c.Client.InitiateAuth(ctx, &cognitoidentityprovider.InitiateAuthInput{
		ClientId:       aws.String(c.ClientID),
		AuthFlow:       cognitotypes.AuthFlowTypeUserPasswordAuth,
		AuthParameters: params,
	})
	if err != nil {
		return nil, err
	}

	return out.AuthenticationResult, nil
}

// ConfirmSignUp submits the OTP confirmation code for a username.
func (c *CognitoAuth) ConfirmSignUp(ctx context.Context, username, code string) error {
	_, err := c.Client.ConfirmSignUp(ctx, &cognitoidentityprovider.ConfirmSignUpInput{
		ClientId:         aws.String(c.ClientID),
		Username:         aws.String(username),
		ConfirmationCode: aws.String(code),
		SecretHash:       c.secretHash(username),
	})
	return err
}

// secretHash computes base64(HMAC-SHA256(username + clientId)) keyed by
// the app client secret, or nil for public clients.
func (c *CognitoAuth) secretHash(username string) *string {
	if c.ClientSecret == "" {
		return nil
	}

	mac := hmac.New(sha256.New, []byte(c.ClientSecret))
	mac.Write([]byte(username + c.ClientID))
	hash := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	return &hash
}

// NormalizePhone prefixes the fixed country code when the value is in
// local format. Numbers already starting with "+" pass through
// unchanged.
func NormalizePhone(phone string) string {
	if phone == "" || strings.HasPrefix(phone, "+") {
		return phone
	}
	return countryCodePrefix + phone
}
