package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlug_Deterministic(t *testing.T) {
	got := Slug("Jiangsu Anchor Chain Co., Ltd.", "CN")
	assert.Equal(t, "cn-jiangsu-anchor-chain-co-ltd", got)
	assert.Equal(t, got, Slug("Jiangsu Anchor Chain Co., Ltd.", "CN"))
}

func TestSlug_Examples(t *testing.T) {
	assert.Equal(t, "se-ramns-bruk-ab", Slug("Ramnäs Bruk AB", "SE"))
	assert.Equal(t, "us-peerless-chain-company", Slug("Peerless Chain Company", "US"))
}

func TestSlug_TotalOnDegenerateInput(t *testing.T) {
	// Inputs that strip to nothing leave the bare country prefix.
	assert.Equal(t, "cn-", Slug("", "CN"))
	assert.Equal(t, "jp-", Slug("株式会社", "JP"))
	assert.Equal(t, "de-", Slug("!!!...???", "DE"))
	assert.Equal(t, "fr-", Slug("   ---   ", "FR"))
}

func TestSlug_IdempotentOnOwnOutput(t *testing.T) {
	inputs := []string{
		"Jiangsu Anchor Chain Co., Ltd.",
		"CMP Group",
		"Daido Steel Co., Ltd.",
	}
	for _, in := range inputs {
		first := Slug(in, "CN")
		assert.Equal(t, "cn-"+first, Slug(first, "CN"))
	}
}

func TestSearchKeywords_OmitsEmptyEntries(t *testing.T) {
	got := SearchKeywords("X", "", nil, "CN")
	assert.Equal(t, []string{"X", "China"}, got)
}

func TestSearchKeywords_FullSet(t *testing.T) {
	got := SearchKeywords("Jiangsu Anchor Chain Co., Ltd.", "JAC",
		[]string{"JAC Chain", "", "Jiangsu Anchor"}, "CN")
	assert.Equal(t, []string{
		"Jiangsu Anchor Chain Co., Ltd.",
		"JAC",
		"JAC Chain",
		"Jiangsu Anchor",
		"China",
	}, got)
}

func TestSearchKeywords_UnknownCountryOmitted(t *testing.T) {
	got := SearchKeywords("X", "", nil, "XX")
	assert.Equal(t, []string{"X"}, got)
}

func TestCountryDisplayName_UnknownDegrades(t *testing.T) {
	assert.Equal(t, "China", CountryDisplayName("CN"))
	assert.Equal(t, "Unknown", CountryDisplayName("ZZ"))
}
