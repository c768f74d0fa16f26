package tafqit

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amt(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAmountInWords_English(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{"integer and cents", "1234.56", "one thousand two hundred and thirty four US dollars and fifty six cents"},
		{"round amount omits cents", "100.00", "one hundred US dollars"},
		{"zero", "0", "zero US dollars"},
		{"cents only", "0.50", "zero US dollars and fifty cents"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AmountInWords(amt(tt.amount), "USD", English))
		})
	}
}

func TestAmountInWords_ZeroHasNoCentClause(t *testing.T) {
	got := AmountInWords(amt("0"), "USD", English)
	assert.Contains(t, got, "zero")
	assert.Contains(t, got, "dollar")
	assert.NotContains(t, got, "cent")
}

func TestAmountInWords_RoundAmountHasNoCentClause(t *testing.T) {
	assert.NotContains(t, AmountInWords(amt("100.00"), "USD", English), "cent")
}

func TestAmountInWords_FractionalOnly(t *testing.T) {
	assert.Contains(t, AmountInWords(amt("0.5"), "USD", English), "cent")
}

func TestAmountInWords_Arabic(t *testing.T) {
	got := AmountInWords(amt("1234.56"), "USD", Arabic)
	assert.Contains(t, got, "ألف")
	assert.Contains(t, got, "دولار أمريكي")
	assert.Contains(t, got, "سنت")
}

func TestAmountInWords_Turkish(t *testing.T) {
	got := AmountInWords(amt("1000.25"), "TRY", Turkish)
	assert.Equal(t, "bin Türk lirası ve yirmi beş kuruş", got)
}

func TestAmountInWords_NegativeSpellsAbsoluteValue(t *testing.T) {
	// Policy: amounts are spelled unsigned, with no minus word.
	assert.Equal(t,
		AmountInWords(amt("1234.56"), "USD", English),
		AmountInWords(amt("-1234.56"), "USD", English))
}

func TestAmountInWords_CentsCarryIntoUnits(t *testing.T) {
	// A fractional part that rounds to a whole unit carries instead of
	// spelling one hundred cents.
	got := AmountInWords(amt("99.999"), "USD", English)
	assert.Equal(t, "one hundred US dollars", got)
}

func TestAmountInWords_UnknownCurrencyEchoesCode(t *testing.T) {
	got := AmountInWords(amt("5"), "XYZ", English)
	assert.Contains(t, got, "XYZ")
	assert.NotEmpty(t, got)
}

func TestAmountInWords_TotalOverSupportedDomain(t *testing.T) {
	amounts := []string{"0", "0.01", "1", "2.5", "999.99", "1000", "123456.78", "-42.42"}
	langs := []Language{Arabic, English, Turkish, Language("xx")}
	codes := append(SupportedCurrencyCodes(), "", "XYZ", "usd")

	for _, a := range amounts {
		for _, lang := range langs {
			for _, code := range codes {
				got := AmountInWords(amt(a), code, lang)
				require.NotEmpty(t, got, "amount=%s code=%q lang=%s", a, code, lang)
			}
		}
	}
}

func TestAmountInWords_Deterministic(t *testing.T) {
	first := AmountInWords(amt("1234.56"), "SAR", Arabic)
	second := AmountInWords(amt("1234.56"), "SAR", Arabic)
	assert.Equal(t, first, second)
}

func TestAmountInWordsFloat(t *testing.T) {
	assert.Equal(t,
		AmountInWords(amt("12.34"), "EUR", Turkish),
		AmountInWordsFloat(12.34, "EUR", "tr"))

	// Non-finite values are treated as missing amounts.
	got := AmountInWordsFloat(math.NaN(), "USD", "en")
	assert.Contains(t, got, "zero")
}
