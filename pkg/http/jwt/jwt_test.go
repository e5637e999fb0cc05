package jwt

import (
	"testing"
	"time"

	goJwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestGenAndParseToken(t *testing.T) {
	secretKey := "bf284d03-ba65-42d4-a9fe-0d2fbfe61060"

	aToken, err := GenToken("u-1", "o-1", "owner", "m-1", []byte(secretKey), time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, aToken)

	claims, err := ParseToken(aToken, secretKey)
	require.NoError(t, err)
	require.Equal(t, "u-1", claims.UserId)
	require.Equal(t, "o-1", claims.OrgId)
	require.Equal(t, "owner", claims.Role)
	require.Equal(t, "m-1", claims.MembershipId)
}

func TestParseTokenWithoutOrgContext(t *testing.T) {
	secretKey := "1111111111111111"

	aToken, err := GenToken("u-1", "", "", "", []byte(secretKey), time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(aToken, secretKey)
	require.NoError(t, err)
	require.Empty(t, claims.OrgId)
	require.Empty(t, claims.Role)
}

func TestParseTokenExpired(t *testing.T) {
	secretKey := "1111111111111111"

	aToken, err := GenToken("u-1", "o-1", "member", "m-1", []byte(secretKey), -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(aToken, secretKey)
	require.Error(t, err)
	require.ErrorIs(t, err, goJwt.ErrTokenExpired)
}

func TestParseTokenWrongKey(t *testing.T) {
	aToken, err := GenToken("u-1", "o-1", "member", "m-1", []byte("key-one"), time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(aToken, "key-two")
	require.Error(t, err)
}

func TestParseTokenRejectsUnsignedAlg(t *testing.T) {
	claims := &AuthClaims{UserId: "u-1", OrgId: "o-1"}
	unsigned, err := goJwt.NewWithClaims(goJwt.SigningMethodNone, claims).
		SignedString(goJwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseToken(unsigned, "any-key")
	require.Error(t, err)
}
