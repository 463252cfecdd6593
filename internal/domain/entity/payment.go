package entity

// PaymentMethod método de pago guardado del cliente. El número completo solo
// viaja al crear; los listados traen la versión enmascarada.
type PaymentMethod struct {
	ID           int    `json:"payment_info_id"`
	CardType     string `json:"card_type"`
	HolderName   string `json:"card_holder_name"`
	CardNumber   string `json:"card_number,omitempty"`
	MaskedNumber string `json:"card_number_masked,omitempty"`
	ExpiryMonth  string `json:"expiry_month"`
	ExpiryYear   string `json:"expiry_year"`
	IsDefault    int    `json:"is_default"`
}

// DisplayNumber número enmascarado; si el backend solo mandó el crudo,
// enmascara localmente dejando los últimos 4 dígitos.
func (p PaymentMethod) DisplayNumber() string {
	if p.MaskedNumber != "" {
		return p.MaskedNumber
	}
	if len(p.CardNumber) >= 4 {
		return "**** **** **** " + p.CardNumber[len(p.CardNumber)-4:]
	}
	return "—"
}
