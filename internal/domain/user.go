package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// User é o usuário do Facebook autenticado na sessão
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// Claims é o conteúdo do JWT de sessão. SealedToken guarda o access token do Facebook
// cifrado, nunca em texto puro.
type Claims struct {
	UserID      string `json:"uid"`
	UserName    string `json:"name"`
	UserEmail   string `json:"email,omitempty"`
	SealedToken string `json:"fbt"`
	jwt.RegisteredClaims
}

// Session é o resultado de um login bem sucedido
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// AdAccount é a conta de anúncios exposta pela API
type AdAccount struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AccountID string `json:"accountId"`
	Status    string `json:"status"`
}

const (
	AdAccountStatusActive   = "Active"
	AdAccountStatusInactive = "Inactive"
)
