// Package payment saneo y validación local de datos de tarjeta. La validación
// real del pago vive en el backend; aquí solo se evita enviar basura obvia.
package payment

import "strings"

// maxFormattedLen longitud máxima del número agrupado (16 dígitos + 3 espacios;
// cubre tarjetas de hasta 19 dígitos una vez normalizadas).
const maxFormattedLen = 19

// Normalize deja solo los dígitos de la entrada.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Format reagrupa los dígitos en bloques de 4 separados por espacio y trunca
// a 19 caracteres, igual que el campo de tarjeta mientras se escribe.
func Format(raw string) string {
	digits := Normalize(raw)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	out := b.String()
	if len(out) > maxFormattedLen {
		out = out[:maxFormattedLen]
	}
	return strings.TrimSpace(out)
}

// ValidNumber un número normalizado plausible tiene entre 12 y 19 dígitos.
func ValidNumber(digits string) bool {
	return len(digits) >= 12 && len(digits) <= 19
}

// ValidExpiryYear exige año de 4 dígitos (YYYY).
func ValidExpiryYear(s string) bool {
	if len(s) != 4 {
		return false
	}
	return allDigits(s)
}

// ValidCVV exige 3 o 4 dígitos.
func ValidCVV(s string) bool {
	if len(s) < 3 || len(s) > 4 {
		return false
	}
	return allDigits(s)
}

// Mask deja visibles solo los últimos 4 dígitos.
func Mask(digits string) string {
	if len(digits) < 4 {
		return "****"
	}
	return "**** **** **** " + digits[len(digits)-4:]
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
