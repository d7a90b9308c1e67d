package render

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencySymbol prefixes every displayed amount.
const CurrencySymbol = "₦"

var printer = message.NewPrinter(language.English)

// FormatMoney renders d as ₦1,234.50.
func FormatMoney(d decimal.Decimal) string {
	return CurrencySymbol + FormatAmount(d)
}

// FormatAmount renders d with thousands grouping and two decimals. The digits
// come from the decimal itself, so large amounts keep every cent.
func FormatAmount(d decimal.Decimal) string {
	fixed := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	whole, frac, _ := strings.Cut(fixed, ".")
	return sign + groupThousands(whole) + "." + frac
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var sb strings.Builder
	head := len(digits) % 3
	if head > 0 {
		sb.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}

// FormatCount renders n with thousands grouping.
func FormatCount(n int64) string {
	return printer.Sprintf("%d", n)
}
