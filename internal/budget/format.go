package budget

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Amounts in alert messages are grouped the Vietnamese way (2.500.000),
// matching the app's observed default locale and currency.
var alertPrinter = message.NewPrinter(language.Vietnamese)

// FormatAmount renders an amount for a human-readable alert message, e.g.
// "2.500.000 VND". Currency defaults to VND, which has no decimal subunits.
func FormatAmount(amount float64, currency string) string {
	if currency == "" {
		currency = "VND"
	}
	return alertPrinter.Sprintf("%v %s", number.Decimal(amount, number.MaxFractionDigits(0)), currency)
}
