// Package moods holds the static mood option table: the symbols the
// picker offers by default and the display names the exporter uses.
// Custom symbols are allowed everywhere; unknown symbols display as
// themselves.
package moods

// Option pairs a mood symbol with its display name and suggested score.
type Option struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Score  int    `json:"score"`
}

// Defaults is the built-in mood palette.
var Defaults = []Option{
	{Symbol: "😊", Name: "Happy", Score: 5},
	{Symbol: "😄", Name: "Excited", Score: 5},
	{Symbol: "😐", Name: "Neutral", Score: 3},
	{Symbol: "😠", Name: "Angry", Score: 1},
	{Symbol: "😢", Name: "Sad", Score: 1},
	{Symbol: "😴", Name: "Tired", Score: 2},
}

// DisplayName returns the display name for a symbol, falling back to
// the symbol itself for custom moods.
func DisplayName(symbol string) string {
	for _, o := range Defaults {
		if o.Symbol == symbol {
			return o.Name
		}
	}
	return symbol
}
