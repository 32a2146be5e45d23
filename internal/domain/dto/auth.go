package dto

// Role granted to callers allowed to mutate the pack size registry.
const RoleOperator = "operator"

// TokenResponse is returned by the token endpoint.
//
// @Description Signed access token for operator endpoints
// @Example {"access_token": "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...", "token_type": "Bearer", "expires_in": 900}
type TokenResponse struct {
	// AccessToken is the signed JWT.
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	// TokenType is always Bearer.
	TokenType string `json:"token_type" example:"Bearer"`
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in" example:"900"`
} // @name TokenResponse

// Claims is the verified identity carried by an access token.
type Claims struct {
	Subject string   `json:"sub"`
	Roles   []string `json:"roles"`
}

// HasRole reports whether the claims include role.
func (c *Claims) HasRole(role string) bool {
	if c == nil {
		return false
	}
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}
