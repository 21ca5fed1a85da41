// Package currency resolves a user's display currency symbol from their
// stored country code. Resolution is a static lookup that always succeeds:
// unknown or empty codes fall back to a configured default symbol. Symbols
// are display-only and never used for conversion or arithmetic.
package currency

// Country describes one entry of the static country table.
type Country struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Currency string `json:"currency"`
	Symbol   string `json:"currency_symbol"`
	Flag     string `json:"flag"`
}

// Countries is the static country table, queried by exact code match.
var Countries = []Country{
	{Code: "US", Name: "United States", Currency: "USD", Symbol: "$", Flag: "🇺🇸"},
	{Code: "CA", Name: "Canada", Currency: "CAD", Symbol: "$", Flag: "🇨🇦"},
	{Code: "GB", Name: "United Kingdom", Currency: "GBP", Symbol: "£", Flag: "🇬🇧"},
	{Code: "AU", Name: "Australia", Currency: "AUD", Symbol: "$", Flag: "🇦🇺"},
	{Code: "DE", Name: "Germany", Currency: "EUR", Symbol: "€", Flag: "🇩🇪"},
	{Code: "FR", Name: "France", Currency: "EUR", Symbol: "€", Flag: "🇫🇷"},
	{Code: "JP", Name: "Japan", Currency: "JPY", Symbol: "¥", Flag: "🇯🇵"},
	{Code: "IN", Name: "India", Currency: "INR", Symbol: "₹", Flag: "🇮🇳"},
	{Code: "BR", Name: "Brazil", Currency: "BRL", Symbol: "R$", Flag: "🇧🇷"},
	{Code: "ZA", Name: "South Africa", Currency: "ZAR", Symbol: "R", Flag: "🇿🇦"},
	{Code: "CN", Name: "China", Currency: "CNY", Symbol: "¥", Flag: "🇨🇳"},
	{Code: "RU", Name: "Russia", Currency: "RUB", Symbol: "₽", Flag: "🇷🇺"},
	{Code: "MX", Name: "Mexico", Currency: "MXN", Symbol: "$", Flag: "🇲🇽"},
	{Code: "NZ", Name: "New Zealand", Currency: "NZD", Symbol: "$", Flag: "🇳🇿"},
	{Code: "SG", Name: "Singapore", Currency: "SGD", Symbol: "$", Flag: "🇸🇬"},
	{Code: "CH", Name: "Switzerland", Currency: "CHF", Symbol: "CHF", Flag: "🇨🇭"},
	{Code: "NG", Name: "Nigeria", Currency: "NGN", Symbol: "₦", Flag: "🇳🇬"},
	{Code: "EG", Name: "Egypt", Currency: "EGP", Symbol: "E£", Flag: "🇪🇬"},
	{Code: "AR", Name: "Argentina", Currency: "ARS", Symbol: "$", Flag: "🇦🇷"},
	{Code: "SA", Name: "Saudi Arabia", Currency: "SAR", Symbol: "﷼", Flag: "🇸🇦"},
}

// CountryByCode returns the country record for the given code.
// The second return value reports whether it exists.
func CountryByCode(code string) (Country, bool) {
	for _, c := range Countries {
		if c.Code == code {
			return c, true
		}
	}
	return Country{}, false
}

// Resolve maps a country code to a display currency symbol, falling back to
// defaultSymbol for empty or unrecognized codes. It never fails.
func Resolve(code, defaultSymbol string) string {
	if c, ok := CountryByCode(code); ok {
		return c.Symbol
	}
	return defaultSymbol
}

// IsValidCode reports whether the code exists in the country table.
func IsValidCode(code string) bool {
	_, ok := CountryByCode(code)
	return ok
}
