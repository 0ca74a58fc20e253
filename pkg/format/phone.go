package format

import (
	"regexp"
	"strings"
)

// PhonePattern маска телефона после форматирования: (DD) NNNN-NNNN или (DD) NNNNN-NNNN
var PhonePattern = regexp.MustCompile(`^\([0-9]{2}\) [0-9]{4,5}-[0-9]{4}$`)

const maxPhoneDigits = 11

// Digits оставляет в строке только цифры
func Digits(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Phone форматирует ввод пользователя в маску телефона по мере набора.
// Неполный ввод форматируется частично, лишние цифры отбрасываются.
func Phone(value string) string {
	d := Digits(value)
	if len(d) > maxPhoneDigits {
		d = d[:maxPhoneDigits]
	}

	switch {
	case len(d) <= 2:
		return d
	case len(d) <= 6:
		return "(" + d[:2] + ") " + d[2:]
	case len(d) <= 10:
		return "(" + d[:2] + ") " + d[2:6] + "-" + d[6:]
	default:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	}
}

// IsValidPhone проверяет, что телефон полностью соответствует маске
func IsValidPhone(value string) bool {
	return PhonePattern.MatchString(value)
}
