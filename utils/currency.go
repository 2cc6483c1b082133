package utils

import "strconv"

// FormatCurrencyVND memformat nilai integer dong Vietnam dengan pemisah
// ribuan, mis. 130000 -> "130.000đ".
func FormatCurrencyVND(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}

	result := string(out) + "đ"
	if negative {
		result = "-" + result
	}
	return result
}
