package jwt

import (
	"bytes"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/golang-jwt/jwt/v5"
)

var (
	pub  *ecdsa.PublicKey
	priv *ecdsa.PrivateKey
)

// ErrSignerNotSetup SetupSignerが呼ばれていない
var ErrSignerNotSetup = errors.New("jwt signer is not set up")

// SetupSigner JWTを発行・検証するためのSignerのセットアップ
func SetupSigner(privRaw []byte) error {
	_priv, err := jwt.ParseECPrivateKeyFromPEM(bytes.TrimSpace(privRaw))
	if err != nil {
		return err
	}

	pub = &_priv.PublicKey
	priv = _priv
	return nil
}

// Sign JWTの発行を行う
func Sign(claims jwt.Claims) (string, error) {
	if priv == nil {
		return "", ErrSignerNotSetup
	}
	return jwt.NewWithClaims(jwt.SigningMethodES256, claims).SignedString(priv)
}

// Verify JWTの検証を行う
func Verify(tokenString string, claims jwt.Claims) error {
	if pub == nil {
		return ErrSignerNotSetup
	}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (interface{}, error) {
		return pub, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodES256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return fmt.Errorf("failed to parse token: %w", err)
	}
	return nil
}

// IssueUserToken ユーザーのアクセストークンを発行します
func IssueUserToken(userID uuid.UUID, expiration time.Duration) (string, error) {
	now := time.Now()
	return Sign(jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(expiration)),
	})
}

// ParseUserToken アクセストークンを検証し、ユーザーIDを取り出します
func ParseUserToken(tokenString string) (uuid.UUID, error) {
	var claims jwt.RegisteredClaims
	if err := Verify(tokenString, &claims); err != nil {
		return uuid.Nil, err
	}
	userID, err := uuid.FromString(claims.Subject)
	if err != nil || userID == uuid.Nil {
		return uuid.Nil, errors.New("invalid subject")
	}
	return userID, nil
}
