package models

// Currency describes a display currency choice.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// UserSettings is the single per-user settings row. At most one row exists
// per user, keyed by UserID; writes use upsert semantics.
type UserSettings struct {
	UserID         int64  `json:"userId"`
	CurrencyCode   string `json:"currencyCode"`
	CurrencySymbol string `json:"currencySymbol"`
	CurrencyName   string `json:"currencyName"`
}

// TableName returns the name of the database table
// associated with the UserSettings model.
func (s UserSettings) TableName() string {
	return "user_settings"
}

// Currency converts the settings row back into a Currency value.
func (s UserSettings) Currency() Currency {
	return Currency{
		Code:   s.CurrencyCode,
		Symbol: s.CurrencySymbol,
		Name:   s.CurrencyName,
	}
}

// KnownCurrencies is the list offered by the web client's currency picker.
// The first entry is the provisioning default for new users. Codes outside
// this list are still stored as-is.
var KnownCurrencies = []Currency{
	{Code: "USD", Symbol: "$", Name: "US Dollar"},
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
	{Code: "AED", Symbol: "د.إ", Name: "UAE Dirham"},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen"},
	{Code: "AUD", Symbol: "A$", Name: "Australian Dollar"},
	{Code: "CAD", Symbol: "C$", Name: "Canadian Dollar"},
	{Code: "CHF", Symbol: "Fr", Name: "Swiss Franc"},
	{Code: "CNY", Symbol: "¥", Name: "Chinese Yuan"},
	{Code: "SEK", Symbol: "kr", Name: "Swedish Krona"},
}

// DefaultCurrency returns the currency provisioned for a user who has no
// settings row yet.
func DefaultCurrency() Currency {
	return KnownCurrencies[0]
}
