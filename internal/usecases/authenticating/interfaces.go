package authenticating

import (
	"context"

	"github.com/vfg2006/ads-report-api/internal/domain"
)

// TokenValidator valida tokens do facebook (implementado por meta.MetaIntegrator)
type TokenValidator interface {
	// VerifyToken devolve o usuário dono do token e as permissões obrigatórias ausentes
	VerifyToken(ctx context.Context, accessToken string) (*domain.User, []string, error)

	// ExchangeToken troca o token por um de longa duração; expiresIn em segundos
	ExchangeToken(ctx context.Context, accessToken string) (string, int64, error)
}

type Authenticator interface {
	// LoginURL devolve a URL de autorização do facebook e o state gerado para ela
	LoginURL() (string, string, error)

	// Callback conclui o fluxo OAuth e abre a sessão
	Callback(ctx context.Context, code, state, expectedState string) (*domain.Session, error)

	// TokenLogin abre a sessão a partir de um access token informado pelo usuário
	TokenLogin(ctx context.Context, accessToken string) (*domain.Session, error)

	// ValidateSession valida o JWT de sessão e devolve as claims e o access token do facebook
	ValidateSession(tokenString string) (*domain.Claims, string, error)
}
