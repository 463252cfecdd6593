package payment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ashhabsport/storefront-web/internal/application/payment"
)

func TestNormalize_SoloDigitos(t *testing.T) {
	assert.Equal(t, "4111111111111111", payment.Normalize("4111 1111 1111 1111"))
	assert.Equal(t, "4111111111111111", payment.Normalize("4111-1111-1111-1111"))
	assert.Equal(t, "", payment.Normalize("abc"))
}

// El número se agrupa en bloques de 4 y nunca supera los 19 caracteres, igual
// que el campo de tarjeta mientras se escribe.
func TestFormat_BloquesDeCuatro(t *testing.T) {
	assert.Equal(t, "4111 1111 1111 1111", payment.Format("4111111111111111"))
	assert.Equal(t, "4111 1111", payment.Format("41111111"))
	assert.Equal(t, "411", payment.Format("411"))
}

func TestFormat_TruncaA19Caracteres(t *testing.T) {
	got := payment.Format("41111111111111112222")
	assert.LessOrEqual(t, len(got), 19)
	assert.Equal(t, "4111 1111 1111 1111", got)
}

func TestValidNumber_Rango(t *testing.T) {
	assert.False(t, payment.ValidNumber("41111111111"))      // 11 dígitos
	assert.True(t, payment.ValidNumber("411111111111"))      // 12
	assert.True(t, payment.ValidNumber("4111111111111111"))  // 16
	assert.True(t, payment.ValidNumber("4111111111111111123")) // 19
	assert.False(t, payment.ValidNumber("41111111111111111234")) // 20
}

func TestValidExpiryYear(t *testing.T) {
	assert.True(t, payment.ValidExpiryYear("2027"))
	assert.False(t, payment.ValidExpiryYear("27"))
	assert.False(t, payment.ValidExpiryYear("20X7"))
}

func TestValidCVV(t *testing.T) {
	assert.True(t, payment.ValidCVV("123"))
	assert.True(t, payment.ValidCVV("1234"))
	assert.False(t, payment.ValidCVV("12"))
	assert.False(t, payment.ValidCVV("12345"))
	assert.False(t, payment.ValidCVV("12a"))
}

func TestMask(t *testing.T) {
	assert.Equal(t, "**** **** **** 1111", payment.Mask("4111111111111111"))
	assert.Equal(t, "****", payment.Mask("12"))
}
