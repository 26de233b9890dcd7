package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KSunShin4/EcoMart/internal/catalog"
)

func TestSuggestEmptyQueryReturnsRecentHistory(t *testing.T) {
	history := []string{"chuối", "táo", "chuối", "thịt", "rau", "cá", "mít"}

	got := catalog.Suggest("", history, nil)

	// Deduplicated, newest-first, capped at five.
	assert.Equal(t, []string{"chuối", "táo", "thịt", "rau", "cá"}, got)
}

func TestSuggestUnionsHistoryAndTags(t *testing.T) {
	history := []string{"táo nhập khẩu", "thịt bò"}
	results := []catalog.Product{
		{ID: "p2", Tags: []string{"trái cây", "nhập khẩu"}},
	}

	got := catalog.Suggest("nhập", history, results)

	assert.Equal(t, []string{"táo nhập khẩu", "nhập khẩu"}, got)
}

func TestSuggestCaseInsensitive(t *testing.T) {
	history := []string{"Táo Envy"}

	got := catalog.Suggest("TÁO", history, nil)

	assert.Equal(t, []string{"Táo Envy"}, got)
}

func TestSuggestDeduplicatesFirstSeen(t *testing.T) {
	history := []string{"trái cây"}
	results := []catalog.Product{
		{ID: "p1", Tags: []string{"trái cây"}},
		{ID: "p4", Tags: []string{"trái cây"}},
	}

	got := catalog.Suggest("trái", history, results)

	assert.Equal(t, []string{"trái cây"}, got)
}

func TestSuggestTruncatesToCap(t *testing.T) {
	history := []string{"cam sành", "cam vàng", "cam canh", "cam xoàn"}
	results := []catalog.Product{
		{ID: "p9", Tags: []string{"cam tươi", "cam nhập"}},
	}

	got := catalog.Suggest("cam", history, results)

	assert.Len(t, got, catalog.MaxSuggestions)
	assert.Equal(t, []string{"cam sành", "cam vàng", "cam canh", "cam xoàn", "cam tươi"}, got)
}

func TestSuggestNoMatches(t *testing.T) {
	got := catalog.Suggest("sầu riêng", []string{"táo"}, nil)
	assert.Empty(t, got)
}
