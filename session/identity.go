package session

import (
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/fintrack/go-finance-client/internal/utils"
)

// Identity is the user identity carried in the access token's claims.
type Identity struct {
	Username string
	UserID   int64
}

// DecodeIdentity extracts the identity claims from an access token without
// verifying the signature. Verification is the backend's job; the client only
// needs the claims, the same way the original web client used jwt-decode.
func DecodeIdentity(accessToken string) (*Identity, error) {
	token, _, err := jwtlib.NewParser().ParseUnverified(accessToken, jwtlib.MapClaims{})
	if err != nil {
		return nil, errors.Wrap(err, "[DecodeIdentity] parse token")
	}

	claims, ok := token.Claims.(jwtlib.MapClaims)
	if !ok {
		return nil, errors.New("[DecodeIdentity] error extracting claims")
	}

	username, _ := claims["username"].(string)
	if username == "" {
		return nil, errors.New("[DecodeIdentity] token missing username claim")
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, errors.New("[DecodeIdentity] token missing user_id claim")
	}

	return utils.Ptr(Identity{
		Username: username,
		UserID:   int64(userID),
	}), nil
}
