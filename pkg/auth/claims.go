package auth

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/lokoloapp/lokolo-backend/pkg/enums"
)

// IdentityPayload captures the data available when minting a token.
type IdentityPayload struct {
	FirebaseUID string
	Email       string
	Role        enums.UserRole
}

// IdentityClaims represents the typed JWT presented by clients. The subject
// is the Firebase UID so the token maps directly onto the users table.
type IdentityClaims struct {
	Email string         `json:"email,omitempty"`
	Role  enums.UserRole `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// FirebaseUID returns the subject claim.
func (c *IdentityClaims) FirebaseUID() string {
	return c.Subject
}
