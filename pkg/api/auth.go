package api

// RegisterRequest is the payload for creating a new producer account.
type RegisterRequest struct {
	Nome     string `json:"nome"      validate:"required,min=2"`
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8"`
	Telefone string `json:"telefone,omitempty"`
}

// Credentials is the form-encoded payload for the credential exchange.
// The API follows the OAuth2 password-flow convention and calls the
// e-mail field "username".
type Credentials struct {
	Username string `validate:"required,email"`
	Password string `validate:"required"`
}

// GoogleVerifyRequest carries an externally obtained Google ID token.
type GoogleVerifyRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// TokenResponse is returned by both login endpoints.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
