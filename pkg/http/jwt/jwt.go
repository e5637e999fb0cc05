package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims are the session-token claims. Organization context, role and
// membership id are baked in at mint time by login/org-switch; they go stale
// only within the token TTL.
type AuthClaims struct {
	UserId       string `json:"userId"`
	OrgId        string `json:"orgId,omitempty"`
	Role         string `json:"role,omitempty"`
	MembershipId string `json:"membershipId,omitempty"`
	jwt.RegisteredClaims
}

var issuer = "teamledger"

var ErrInvalidToken = errors.New("invalid token")

// GenToken mints a signed access token bound to the given organization
// context. Empty orgId is valid and means "pre-org-selection".
func GenToken(userId, orgId, role, membershipId string, secretKey []byte, expire time.Duration) (string, error) {
	claims := &AuthClaims{
		UserId:       userId,
		OrgId:        orgId,
		Role:         role,
		MembershipId: membershipId,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userId,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
			NotBefore: jwt.NewNumericDate(time.Now()),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secretKey)
}

// ParseToken verifies signature and expiry of an access token. Only HS256 is
// accepted; tokens signed with any other method (including "none") fail.
func ParseToken(aToken, secretKey string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(aToken, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if authClaims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return authClaims, nil
	}
	return nil, ErrInvalidToken
}
