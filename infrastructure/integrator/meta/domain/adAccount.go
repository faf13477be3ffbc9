package metadomain

const accountStatusActive = 1

type AdAccount struct {
	ID            string `json:"id"`
	AccountID     string `json:"account_id"`
	Name          string `json:"name"`
	AccountStatus int    `json:"account_status"`
}

// IsActive segue a convenção do Graph API: account_status 1 = ativa
func (a AdAccount) IsActive() bool {
	return a.AccountStatus == accountStatusActive
}

// User é o perfil retornado por /me
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// Permission é um item de /<user-id>/permissions
type Permission struct {
	Permission string `json:"permission"`
	Status     string `json:"status"`
}

// RequiredPermissions são as permissões exigidas para ler os relatórios de anúncios
var RequiredPermissions = []string{"ads_management", "ads_read", "business_management"}

// MissingPermissions retorna as permissões obrigatórias que não foram concedidas
func MissingPermissions(granted []Permission) []string {
	ok := make(map[string]bool, len(granted))
	for _, p := range granted {
		if p.Status == "granted" {
			ok[p.Permission] = true
		}
	}

	missing := make([]string, 0)
	for _, p := range RequiredPermissions {
		if !ok[p] {
			missing = append(missing, p)
		}
	}

	return missing
}
