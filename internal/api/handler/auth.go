package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-report-api/pkg/apiErrors"
	"github.com/vfg2006/ads-report-api/pkg/log"
	"github.com/vfg2006/ads-report-api/pkg/middleware"
)

const (
	stateCookie    = "oauth_state"
	stateCookieTTL = 10 * time.Minute
)

type TokenLoginRequest struct {
	AccessToken string `json:"accessToken"`
}

// FacebookLogin redireciona para o diálogo OAuth do Facebook guardando o state em cookie
func FacebookLogin(service authenticating.Authenticator, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loginURL, state, err := service.LoginURL()
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     stateCookie,
			Value:    state,
			Path:     "/",
			MaxAge:   int(stateCookieTTL.Seconds()),
			HttpOnly: true,
			Secure:   cfg.Auth.CookieSecure,
			SameSite: http.SameSiteLaxMode,
		})

		http.Redirect(w, r, loginURL, http.StatusFound)
	}
}

func FacebookCallback(service authenticating.Authenticator, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		if oauthErr := q.Get("error"); oauthErr != "" {
			log.ForContext(r.Context()).WithFields(log.Fields{
				"oauth_error":       oauthErr,
				"error_description": q.Get("error_description"),
			}).Warn("Login recusado no Facebook")
			apiErrors.WriteError(w, apiErrors.ErrOAuthExchange, "Login no Facebook não autorizado", q.Get("error_description"))
			return
		}

		expectedState := ""
		if c, err := r.Cookie(stateCookie); err == nil {
			expectedState = c.Value
		}

		session, err := service.Callback(r.Context(), q.Get("code"), q.Get("state"), expectedState)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     stateCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   cfg.Auth.CookieSecure,
			SameSite: http.SameSiteLaxMode,
		})
		setSessionCookie(w, session, cfg)

		respondJSON(w, r, http.StatusOK, session)
	}
}

// TokenLogin cria uma sessão a partir de um access token do Facebook já obtido pelo cliente
func TokenLogin(service authenticating.Authenticator, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TokenLoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", err.Error())
			return
		}

		session, err := service.TokenLogin(r.Context(), req.AccessToken)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		setSessionCookie(w, session, cfg)
		respondJSON(w, r, http.StatusOK, session)
	}
}

func GetMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão não encontrada", nil)
			return
		}

		respondJSON(w, r, http.StatusOK, domain.User{
			ID:    claims.UserID,
			Name:  claims.UserName,
			Email: claims.UserEmail,
		})
	}
}

func setSessionCookie(w http.ResponseWriter, session *domain.Session, cfg *config.Config) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    session.Token,
		Path:     "/",
		MaxAge:   int(cfg.Auth.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   cfg.Auth.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
