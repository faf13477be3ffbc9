package authenticating

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/pkg/apiErrors"
	"github.com/vfg2006/ads-report-api/pkg/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"
)

const sessionIssuer = "ads-report-api"

type Service struct {
	cfg       *config.Config
	oauth     *oauth2.Config
	validator TokenValidator
	sealer    sealer
	now       func() time.Time
}

// NewOAuthConfig monta o cliente OAuth do facebook a partir da configuração do app
func NewOAuthConfig(cfg *config.Config) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.Meta.AppID,
		ClientSecret: cfg.Meta.AppSecret,
		RedirectURL:  cfg.Meta.RedirectURL,
		Scopes:       cfg.Meta.Scopes,
		Endpoint:     facebook.Endpoint,
	}
}

func NewService(cfg *config.Config, oauth *oauth2.Config, validator TokenValidator) Authenticator {
	return &Service{
		cfg:       cfg,
		oauth:     oauth,
		validator: validator,
		sealer:    newSealer(cfg.Auth.Secret),
		now:       time.Now,
	}
}

func (s *Service) LoginURL() (string, string, error) {
	state, err := utils.GenerateState()
	if err != nil {
		return "", "", NewAuthError(ErrSessionIssue, apiErrors.ErrInternalServer, "erro ao gerar state")
	}

	return s.oauth.AuthCodeURL(state), state, nil
}

func (s *Service) Callback(ctx context.Context, code, state, expectedState string) (*domain.Session, error) {
	if code == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "code é obrigatório")
	}

	if state == "" || state != expectedState {
		return nil, NewAuthError(ErrInvalidState, apiErrors.ErrOAuthState, "")
	}

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, NewAuthError(ErrOAuthExchange, apiErrors.ErrOAuthExchange, err.Error())
	}

	accessToken := token.AccessToken
	var expiresIn int64
	if !token.Expiry.IsZero() {
		expiresIn = int64(token.Expiry.Sub(s.now()).Seconds())
	}

	// Com o token de longa duração a sessão pode durar até 60 dias; se a troca falhar seguimos com o curto
	longLived, longExpiresIn, err := s.validator.ExchangeToken(ctx, accessToken)
	if err != nil {
		logrus.WithError(err).Warn("Não foi possível obter token de longa duração, usando o token original")
	} else {
		accessToken = longLived
		if longExpiresIn > 0 {
			expiresIn = longExpiresIn
		}
	}

	user, err := s.verify(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	return s.issueSession(user, accessToken, expiresIn)
}

func (s *Service) TokenLogin(ctx context.Context, accessToken string) (*domain.Session, error) {
	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "accessToken é obrigatório")
	}

	user, err := s.verify(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	return s.issueSession(user, accessToken, 0)
}

func (s *Service) ValidateSession(tokenString string) (*domain.Claims, string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, "", NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, "", NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, "", NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	accessToken, err := s.sealer.Open(claims.SealedToken)
	if err != nil {
		return nil, "", NewUserAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, claims.UserID, err.Error())
	}

	return claims, accessToken, nil
}

// verify confere o token no Graph API e exige as permissões de anúncios
func (s *Service) verify(ctx context.Context, accessToken string) (*domain.User, error) {
	user, missing, err := s.validator.VerifyToken(ctx, accessToken)
	if err != nil {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	if len(missing) > 0 {
		logrus.WithFields(logrus.Fields{
			"user_id":             user.ID,
			"missing_permissions": missing,
		}).Warn("Token sem as permissões obrigatórias")

		return nil, NewUserAuthError(ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege, user.ID,
			"permissões ausentes: "+strings.Join(missing, ", "))
	}

	return user, nil
}

// issueSession gera o JWT de sessão. A sessão nunca dura mais que o token do facebook.
func (s *Service) issueSession(user *domain.User, accessToken string, expiresIn int64) (*domain.Session, error) {
	sealed, err := s.sealer.Seal(accessToken)
	if err != nil {
		return nil, NewUserAuthError(ErrSessionIssue, apiErrors.ErrInternalServer, user.ID, err.Error())
	}

	ttl := s.cfg.Auth.SessionTTL
	if expiresIn > 0 && time.Duration(expiresIn)*time.Second < ttl {
		ttl = time.Duration(expiresIn) * time.Second
	}

	sessionID, err := utils.GenerateID()
	if err != nil {
		return nil, NewUserAuthError(ErrSessionIssue, apiErrors.ErrInternalServer, user.ID, err.Error())
	}

	now := s.now()
	claims := domain.Claims{
		UserID:      user.ID,
		UserName:    user.Name,
		UserEmail:   user.Email,
		SealedToken: sealed,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Issuer:    sessionIssuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Auth.Secret))
	if err != nil {
		return nil, NewUserAuthError(ErrSessionIssue, apiErrors.ErrInternalServer, user.ID, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"user_id":     user.ID,
		"session_ttl": ttl.String(),
	}).Info("Sessão criada")

	return &domain.Session{Token: signed, User: *user}, nil
}
