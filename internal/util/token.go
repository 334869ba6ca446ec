package util

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	ErrNoAuthorizationHeader = errors.New("no authorization header specified")
	ErrWrongHeaderFormat     = errors.New("wrong authorization header format")
	ErrWrongTokenType        = errors.New("invalid token type; expected 'Bearer'")
)

// Read Authorization header from the request and return the token type and token
func ReadAuthorizationHeader(ctx *gin.Context) (string, string, error) {
	header := ctx.GetHeader("Authorization")
	if header == "" {
		return "", "", ErrNoAuthorizationHeader
	}

	tokenType, token, found := strings.Cut(header, " ")
	if !found || strings.TrimSpace(token) == "" {
		return "", "", ErrWrongHeaderFormat
	}

	return strings.ToUpper(tokenType), strings.TrimSpace(token), nil
}

// Read Bearer token from the request Authorization header and return the token
func ReadBearerToken(ctx *gin.Context) (string, error) {
	tokenType, token, err := ReadAuthorizationHeader(ctx)
	if err != nil {
		return "", err
	}

	if tokenType != "BEARER" {
		return "", ErrWrongTokenType
	}

	return token, nil
}
