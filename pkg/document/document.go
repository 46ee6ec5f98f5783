package document

import "strings"

// Validación de documentos brasileños por dígito verificador.
// Los conductores se registran con CPF (11 dígitos) y las filiales con CNPJ (14 dígitos).

// onlyDigits elimina todo carácter no numérico (puntos, guiones, barras).
func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// allSame indica si todos los dígitos son iguales (111.111.111-11 es inválido aunque cierre el checksum).
func allSame(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

// IsValidCPF verifica los dos dígitos verificadores de un CPF.
// Acepta el documento con o sin máscara (###.###.###-##).
func IsValidCPF(cpf string) bool {
	cpf = onlyDigits(cpf)
	if len(cpf) != 11 || allSame(cpf) {
		return false
	}

	sum := 0
	for i := 1; i <= 9; i++ {
		sum += int(cpf[i-1]-'0') * (11 - i)
	}
	remainder := (sum * 10) % 11
	if remainder == 10 {
		remainder = 0
	}
	if remainder != int(cpf[9]-'0') {
		return false
	}

	sum = 0
	for i := 1; i <= 10; i++ {
		sum += int(cpf[i-1]-'0') * (12 - i)
	}
	remainder = (sum * 10) % 11
	if remainder == 10 {
		remainder = 0
	}
	return remainder == int(cpf[10]-'0')
}

// IsValidCNPJ verifica los dos dígitos verificadores de un CNPJ.
// Acepta el documento con o sin máscara (##.###.###/####-##).
func IsValidCNPJ(cnpj string) bool {
	cnpj = onlyDigits(cnpj)
	if len(cnpj) != 14 || allSame(cnpj) {
		return false
	}

	if cnpjCheckDigit(cnpj, 12) != int(cnpj[12]-'0') {
		return false
	}
	return cnpjCheckDigit(cnpj, 13) == int(cnpj[13]-'0')
}

// cnpjCheckDigit calcula el dígito verificador sobre los primeros length dígitos.
// Los pesos van de (length-7) bajando hasta 2 y reinician en 9.
func cnpjCheckDigit(cnpj string, length int) int {
	sum := 0
	pos := length - 7
	for i := 0; i < length; i++ {
		sum += int(cnpj[i]-'0') * pos
		pos--
		if pos < 2 {
			pos = 9
		}
	}
	if sum%11 < 2 {
		return 0
	}
	return 11 - sum%11
}
