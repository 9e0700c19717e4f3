package jwt

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"os"
	"time"

	"chatjack-server/internal/config"

	jwtgo "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Issuer issues the JWT
const Issuer = "chatjack-server"

// Audience is the intended JWT audience
const Audience = "chatjack"

var publicKey *rsa.PublicKey
var privateKey *rsa.PrivateKey

// actorClaims binds a display name to the standard registered claims. The
// subject is the actor ID.
type actorClaims struct {
	DisplayName string `json:"name"`
	jwtgo.RegisteredClaims
}

// LoadKeys will load the public and private keys
// this method should only be called once.
func LoadKeys() {
	cfg := config.Instance().JWT
	privateKey = loadPrivateKey(cfg.PrivateKey)
	publicKey = loadPublicKey(cfg.PublicKey)
}

// Sign will sign a JWT binding the actor ID and display name
func Sign(actorID, displayName string) (string, error) {
	if privateKey == nil {
		panic("LoadKeys() not called")
	}

	token := jwtgo.NewWithClaims(jwtgo.SigningMethodRS256, actorClaims{
		DisplayName: displayName,
		RegisteredClaims: jwtgo.RegisteredClaims{
			Audience: jwtgo.ClaimStrings{Audience},
			ID:       uuid.New().String(),
			IssuedAt: jwtgo.NewNumericDate(time.Now()),
			Issuer:   Issuer,
			Subject:  actorID,
		},
	})

	return token.SignedString(privateKey)
}

// ValidActor will validate a signed JWT and return the actor ID and display
// name it binds
func ValidActor(signedString string) (actorID, displayName string, err error) {
	if publicKey == nil {
		panic("LoadKeys() not called")
	}

	token, err := jwtgo.ParseWithClaims(signedString, &actorClaims{}, func(token *jwtgo.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwtgo.SigningMethodRSA); !ok {
			return nil, errors.New("expected RS256 signing method")
		}

		return publicKey, nil
	})

	if err != nil {
		return "", "", err
	}

	if token.Valid {
		if claims, ok := token.Claims.(*actorClaims); ok {
			if !containsAudience(claims.Audience, Audience) {
				return "", "", errors.New("invalid audience")
			}

			if claims.Issuer != Issuer {
				return "", "", errors.New("invalid issuer")
			}

			if claims.Subject == "" {
				return "", "", errors.New("missing subject")
			}

			return claims.Subject, claims.DisplayName, nil
		}

		return "", "", fmt.Errorf("expected actorClaims, got %T", token.Claims)
	}

	logrus.Warn("token claims were not valid. did not expect to reach this code")
	return "", "", errors.New("claims were not valid")
}

func loadPublicKey(path string) *rsa.PublicKey {
	b, err := os.ReadFile(path)
	if err != nil {
		logrus.WithError(err).Fatal("could not read file")
	}

	pem, err := jwtgo.ParseRSAPublicKeyFromPEM(b)
	if err != nil {
		logrus.WithError(err).Fatal("could not parse RSA public key")
	}

	return pem
}

func loadPrivateKey(path string) *rsa.PrivateKey {
	b, err := os.ReadFile(path)
	if err != nil {
		logrus.WithError(err).Fatal("could not read file")
	}

	pem, err := jwtgo.ParseRSAPrivateKeyFromPEM(b)
	if err != nil {
		logrus.WithError(err).Fatal("could not parse RSA private key")
	}

	return pem
}

func containsAudience(audiences jwtgo.ClaimStrings, target string) bool {
	for _, aud := range audiences {
		if aud == target {
			return true
		}
	}
	return false
}
