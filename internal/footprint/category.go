package footprint

import (
	"golang.org/x/text/language"
)

// Category names an emission source or an advisory topic.
type Category string

// Emission categories, in report order.
const (
	CategoryFood        Category = "food"
	CategoryCommute     Category = "commute"
	CategoryWeekend     Category = "weekend"
	CategoryFlight      Category = "flight"
	CategoryClothing    Category = "clothing"
	CategoryHousehold   Category = "household"
	CategoryWater       Category = "water"
	CategoryElectricity Category = "electricity"
)

// Advisory-only categories.
const (
	CategoryRecycling Category = "recycling"
	CategoryOffset    Category = "offset"
)

// Categories lists the eight emission categories in report order.
func Categories() []Category {
	return []Category{
		CategoryFood, CategoryCommute, CategoryWeekend, CategoryFlight,
		CategoryClothing, CategoryHousehold, CategoryWater, CategoryElectricity,
	}
}

// supportedLanguages lists the label languages; the first entry is the
// fallback. labelColumn maps each entry to a column of categoryLabels.
var supportedLanguages = []language.Tag{
	language.English,
	language.Chinese,
	language.TraditionalChinese,
}

var labelColumn = []int{0, 1, 1}

var labelMatcher = language.NewMatcher(supportedLanguages)

var categoryLabels = map[Category][2]string{
	CategoryFood:        {"Diet", "饮食"},
	CategoryCommute:     {"Commute", "通勤"},
	CategoryWeekend:     {"Weekend travel", "周末出行"},
	CategoryFlight:      {"Air travel", "航空"},
	CategoryClothing:    {"Clothing", "衣物"},
	CategoryHousehold:   {"Household goods", "家居用品"},
	CategoryWater:       {"Water", "用水"},
	CategoryElectricity: {"Electricity", "用电"},
	CategoryRecycling:   {"Recycling", "回收"},
	CategoryOffset:      {"Offset", "抵消"},
}

// Label returns the display label of the category in the closest supported
// language. Unsupported languages fall back to English.
func (c Category) Label(tag language.Tag) string {
	labels, ok := categoryLabels[c]
	if !ok {
		return string(c)
	}
	_, index, _ := labelMatcher.Match(tag)
	return labels[labelColumn[index]]
}

// ParseLanguage parses a BCP 47 tag such as "en" or "zh-HK". Empty or
// malformed input yields English.
func ParseLanguage(s string) language.Tag {
	if s == "" {
		return language.English
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.English
	}
	return tag
}
