package domain

type ActionType string

const (
	ActionLinkClick        ActionType = "link_click"
	ActionLandingPageView  ActionType = "landing_page_view"
	ActionViewContent      ActionType = "view_content"
	ActionAddToWishlist    ActionType = "add_to_wishlist"
	ActionAddToCart        ActionType = "add_to_cart"
	ActionInitiateCheckout ActionType = "initiate_checkout"
	ActionAddPaymentInfo   ActionType = "add_payment_info"
	ActionPurchase         ActionType = "purchase"
	ActionLead             ActionType = "lead"
	ActionContact          ActionType = "contact"
)

var knownActionTypes = map[ActionType]bool{
	ActionLinkClick:        true,
	ActionLandingPageView:  true,
	ActionViewContent:      true,
	ActionAddToWishlist:    true,
	ActionAddToCart:        true,
	ActionInitiateCheckout: true,
	ActionAddPaymentInfo:   true,
	ActionPurchase:         true,
	ActionLead:             true,
	ActionContact:          true,
}

// ParseActionType retorna false para tipos fora do vocabulário conhecido
func ParseActionType(s string) (ActionType, bool) {
	t := ActionType(s)
	return t, knownActionTypes[t]
}

// ActionIndex indexa uma coleção de ações por tipo. A primeira ocorrência de cada tipo
// prevalece; tipos desconhecidos são ignorados.
type ActionIndex map[ActionType]string

func NewActionIndex(size int) ActionIndex {
	return make(ActionIndex, size)
}

func (idx ActionIndex) Add(actionType, value string) {
	t, ok := ParseActionType(actionType)
	if !ok {
		return
	}
	if _, exists := idx[t]; exists {
		return
	}
	idx[t] = value
}

// Get devolve o valor do tipo ou "0" quando ausente
func (idx ActionIndex) Get(t ActionType) string {
	if v, ok := idx[t]; ok && v != "" {
		return v
	}
	return "0"
}
