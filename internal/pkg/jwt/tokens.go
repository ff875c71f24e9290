package jwt

import (
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt/v5"
)

//go:generate mockgen -source=tokens.go -destination=../../../gen/mocks/jwt/tokens.go -package=mocks

var ErrInvalidAddressClaim = errors.New("token address claim is not a valid address")

type TokenIssuer interface {
	IssueToken(secret []byte, participant common.Address, timeLimit time.Duration) (string, error)
}

type TokenParser interface {
	ParseToken(secret []byte, tokenString string) (*Claims, error)
}

// Claims identifies the caller by the participant address the token was
// issued for.
type Claims struct {
	Address string `json:"addr"`
	jwt.RegisteredClaims
}

func (c *Claims) Participant() (common.Address, error) {
	if !common.IsHexAddress(c.Address) {
		return common.Address{}, ErrInvalidAddressClaim
	}

	return common.HexToAddress(c.Address), nil
}

type JWTTokenIssuer struct {
}

func NewJWTTokenIssuer() *JWTTokenIssuer {
	return &JWTTokenIssuer{}
}

func (ti *JWTTokenIssuer) IssueToken(secret []byte, participant common.Address, timeLimit time.Duration) (string, error) {
	now := time.Now()

	claims := Claims{
		Address: participant.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   participant.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(timeLimit)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

type JWTTokenParser struct {
}

func NewJWTTokenParser() *JWTTokenParser {
	return &JWTTokenParser{}
}

func (tp *JWTTokenParser) ParseToken(secret []byte, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}

		return secret, nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}
