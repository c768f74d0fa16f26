package tafqit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpellIntegerEnglish(t *testing.T) {
	tests := []struct {
		n    uint64
		want string
	}{
		{0, "zero"},
		{1, "one"},
		{13, "thirteen"},
		{20, "twenty"},
		{21, "twenty one"},
		{100, "one hundred"},
		{101, "one hundred and one"},
		{345, "three hundred and forty five"},
		{1000, "one thousand"},
		{1234, "one thousand two hundred and thirty four"},
		{1000000, "one million"},
		{2000001, "two million one"},
		{1000000000, "one billion"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SpellInteger(tt.n, English), "n=%d", tt.n)
	}
}

func TestSpellIntegerEnglish_ZeroWordOnlyForZero(t *testing.T) {
	// "zero" appears in the output iff n == 0.
	for n := uint64(1); n <= 2000; n++ {
		words := SpellInteger(n, English)
		assert.NotContains(t, words, "zero", "n=%d", n)
		assert.NotEmpty(t, words, "n=%d", n)
	}
	assert.Equal(t, "zero", SpellInteger(0, English))
}

func TestSpellIntegerTurkish(t *testing.T) {
	tests := []struct {
		n    uint64
		want string
	}{
		{0, "sıfır"},
		{1, "bir"},
		{11, "on bir"},
		{21, "yirmi bir"},
		{100, "yüz"},
		{200, "iki yüz"},
		{345, "üç yüz kırk beş"},
		{1000, "bin"},
		{1001, "bin bir"},
		{2000, "iki bin"},
		{21000, "yirmi bir bin"},
		{1000000, "bir milyon"},
		{1001000, "bir milyon bin"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SpellInteger(tt.n, Turkish), "n=%d", tt.n)
	}
}

func TestSpellIntegerTurkish_BareThousand(t *testing.T) {
	// 1000 is "bin", never "bir bin"; the rule applies only to the
	// thousands position (one million keeps its "bir").
	assert.Equal(t, "bin", SpellInteger(1000, Turkish))
	assert.NotContains(t, SpellInteger(1000, Turkish), "bir")
	assert.Equal(t, "bir milyon", SpellInteger(1000000, Turkish))
}

func TestSpellIntegerArabic(t *testing.T) {
	tests := []struct {
		name string
		n    uint64
		want string
	}{
		{"zero", 0, "صفر"},
		{"one", 1, "واحد"},
		{"teens", 13, "ثلاثة عشر"},
		{"ones and tens", 21, "واحد و عشرون"},
		{"round tens", 40, "أربعون"},
		{"hundred", 100, "مئة"},
		{"dual hundred", 200, "مئتان"},
		{"hundreds with remainder", 345, "ثلاثمئة و خمسة و أربعون"},
		{"singular thousand", 1000, "ألف"},
		{"dual thousand", 2000, "ألفان"},
		{"plural thousands", 3000, "ثلاثة آلاف"},
		{"reversed agreement thousands", 11000, "أحد عشر ألف"},
		{"singular million", 1000000, "مليون"},
		{"dual million", 2000000, "مليونان"},
		{"plural millions", 5000000, "خمسة ملايين"},
		{"mixed groups", 1234, "ألف و مئتان و أربعة و ثلاثون"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SpellInteger(tt.n, Arabic))
		})
	}
}

func TestSpellIntegerArabic_ScaleNounAgreement(t *testing.T) {
	// One thousand is the bare singular noun, not "واحد ألف".
	assert.NotContains(t, SpellInteger(1000, Arabic), "واحد")
	assert.Contains(t, SpellInteger(1000, Arabic), "ألف")
	assert.Contains(t, SpellInteger(2000, Arabic), "ألفان")
	assert.Contains(t, SpellInteger(3000, Arabic), "آلاف")

	eleven := SpellInteger(11000, Arabic)
	assert.Contains(t, eleven, "ألف")
	assert.True(t, strings.HasPrefix(eleven, "أحد عشر"), "11000 should lead with the spelled count")
}

func TestSpellIntegerUnknownLanguageFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, SpellInteger(42, English), SpellInteger(42, Language("de")))
}

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, Arabic, ParseLanguage("AR"))
	assert.Equal(t, Turkish, ParseLanguage(" tr "))
	assert.Equal(t, English, ParseLanguage("en"))
	assert.Equal(t, English, ParseLanguage(""))
	assert.Equal(t, English, ParseLanguage("fr"))
}
