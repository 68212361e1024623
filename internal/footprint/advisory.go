package footprint

// Recommendation is one advisory line.
type Recommendation struct {
	Category Category `json:"category" yaml:"category"`
	Title    string   `json:"title" yaml:"title"`
	Message  string   `json:"message" yaml:"message"`
}

// String renders the recommendation as "Title: Message".
func (r Recommendation) String() string {
	return r.Title + ": " + r.Message
}

// Advisory is an ordered list of recommendations. Threshold rules come first
// in rule order, followed by the unconditional recommendations.
type Advisory []Recommendation

// Messages returns the advisory as display strings.
func (a Advisory) Messages() []string {
	out := make([]string, len(a))
	for i, r := range a {
		out[i] = r.String()
	}
	return out
}

// Categories returns the category of every recommendation, in order.
func (a Advisory) Categories() []Category {
	out := make([]Category, len(a))
	for i, r := range a {
		out[i] = r.Category
	}
	return out
}

// AdvisoryRule fires when the rounded kilograms of Category are strictly
// greater than ThresholdKg.
type AdvisoryRule struct {
	Category    Category
	ThresholdKg float64
	Title       string
	Message     string
}

var advisoryRules = []AdvisoryRule{
	{
		Category:    CategoryFood,
		ThresholdKg: 50,
		Title:       "Diet",
		Message:     "Eat more vegetables; this can cut diet emissions by roughly 30-40%.",
	},
	{
		Category:    CategoryCommute,
		ThresholdKg: 30,
		Title:       "Commute",
		Message:     "Prefer public transport such as the MTR or trams.",
	},
	{
		Category:    CategoryFlight,
		ThresholdKg: 100,
		Title:       "Travel",
		Message:     "Cut non-essential flights, take high-speed rail where possible and fly economy rather than business.",
	},
	{
		Category:    CategoryClothing,
		ThresholdKg: 20,
		Title:       "Shopping",
		Message:     "Buy less and choose durable clothing.",
	},
	{
		Category:    CategoryElectricity,
		ThresholdKg: 100,
		Title:       "Electricity",
		Message:     "Use energy-efficient appliances and switch off devices that are not in use.",
	},
	{
		Category:    CategoryWater,
		ThresholdKg: 20,
		Title:       "Water",
		Message:     "Take shorter showers and reuse laundry water for flushing or mopping.",
	},
}

var generalAdvice = []Recommendation{
	{
		Category: CategoryRecycling,
		Title:    "Recycling",
		Message:  "Sort your waste and recycle paper, plastic bottles and other recyclables.",
	},
	{
		Category: CategoryOffset,
		Title:    "Offset",
		Message:  "Join a tree-planting activity to offset your carbon footprint.",
	},
}

// AdvisoryRules returns a copy of the threshold rules in evaluation order.
func AdvisoryRules() []AdvisoryRule {
	out := make([]AdvisoryRule, len(advisoryRules))
	copy(out, advisoryRules)
	return out
}

// GenerateAdvisory evaluates every rule against b independently and appends
// the recycling and offset recommendations.
func GenerateAdvisory(b Breakdown) Advisory {
	out := make(Advisory, 0, len(advisoryRules)+len(generalAdvice))
	for _, rule := range advisoryRules {
		if b.Value(rule.Category) > rule.ThresholdKg {
			out = append(out, Recommendation{
				Category: rule.Category,
				Title:    rule.Title,
				Message:  rule.Message,
			})
		}
	}
	return append(out, generalAdvice...)
}
