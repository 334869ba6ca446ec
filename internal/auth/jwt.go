package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/SeakMengs/MaintCert/internal/config"
	constant "github.com/SeakMengs/MaintCert/internal/constant"
	"github.com/SeakMengs/MaintCert/internal/util"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

var (
	ErrMissingSecret = errors.New("jwt secret is not configured")
	ErrInvalidToken  = errors.New("jwt token is not valid")
)

type JWT struct {
	logger    *zap.SugaredLogger
	jwtSecret string
	ttl       time.Duration
}

type JWTInterface interface {
	GenerateAccessToken(payload JWTPayload) (*string, error)
	VerifyJwtToken(token string) (*JWTClaims, error)
}

func NewJwt(cfg config.AuthConfig, logger *zap.SugaredLogger) *JWT {
	// For unit test
	if logger == nil {
		logger = util.NewLogger("test")
	}

	ttl := cfg.AccessTokenTTL
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}

	return &JWT{
		jwtSecret: cfg.JWT_SECRET,
		logger:    logger,
		ttl:       ttl,
	}
}

// Identity of the actor carried by the access token
type JWTPayload struct {
	ID       uint              `json:"id"`
	Username string            `json:"username"`
	Nombre   string            `json:"nombre"`
	Role     constant.UserRole `json:"role"`
}

type JWTClaims struct {
	User JWTPayload `json:"user"`
	Type string     `json:"type"`
	jwt.RegisteredClaims
}

func (j JWT) GenerateAccessToken(payload JWTPayload) (*string, error) {
	j.logger.Debugf("Generate access token for user: %d (%s)", payload.ID, payload.Role)

	if j.jwtSecret == "" {
		return nil, ErrMissingSecret
	}

	now := time.Now()
	claims := JWTClaims{
		User: payload,
		Type: constant.JWT_TYPE_ACCESS,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(payload.ID), 10),
			Issuer:    util.GetAppName(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(j.jwtSecret))
	if err != nil {
		return nil, err
	}

	return &token, nil
}

func (j JWT) VerifyJwtToken(token string) (*JWTClaims, error) {
	if j.jwtSecret == "" {
		return nil, ErrMissingSecret
	}

	claims := &JWTClaims{}
	parsedToken, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(j.jwtSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(util.GetAppName()))
	if err != nil {
		j.logger.Debugf("Failed to verify jwt token. Error: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if !parsedToken.Valid {
		j.logger.Debug("Jwt token is not valid")
		return nil, ErrInvalidToken
	}

	if claims.Type != constant.JWT_TYPE_ACCESS || claims.User.ID == 0 || !claims.User.Role.IsValid() {
		return nil, fmt.Errorf("%w: user field is missing or malformed", ErrInvalidToken)
	}

	return claims, nil
}
