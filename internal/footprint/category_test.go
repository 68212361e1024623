package footprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestCategories(t *testing.T) {
	assert.Equal(t, []Category{
		CategoryFood, CategoryCommute, CategoryWeekend, CategoryFlight,
		CategoryClothing, CategoryHousehold, CategoryWater, CategoryElectricity,
	}, Categories())
}

func TestCategoryLabel(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		tag      language.Tag
		want     string
	}{
		{name: "English", category: CategoryFood, tag: language.English, want: "Diet"},
		{name: "British English", category: CategoryFlight, tag: language.BritishEnglish, want: "Air travel"},
		{name: "Chinese", category: CategoryFood, tag: language.Chinese, want: "饮食"},
		{name: "Simplified Chinese", category: CategoryElectricity, tag: language.SimplifiedChinese, want: "用电"},
		{name: "Hong Kong Chinese", category: CategoryCommute, tag: language.MustParse("zh-HK"), want: "通勤"},
		{name: "Unsupported falls back to English", category: CategoryWater, tag: language.French, want: "Water"},
		{name: "Advisory category", category: CategoryOffset, tag: language.Chinese, want: "抵消"},
		{name: "Unknown category", category: Category("misc"), tag: language.English, want: "misc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.category.Label(tt.tag))
		})
	}
}

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, language.English, ParseLanguage(""))
	assert.Equal(t, language.English, ParseLanguage("not a tag!"))
	assert.Equal(t, language.Chinese, ParseLanguage("zh"))
	assert.Equal(t, "Diet", CategoryFood.Label(ParseLanguage("en-US")))
	assert.Equal(t, "饮食", CategoryFood.Label(ParseLanguage("zh-CN")))
}
