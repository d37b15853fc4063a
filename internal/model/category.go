package model

// Category enumerates grammatical tags for a word. The empty string means
// "uncategorized"; any value outside the fixed set is treated the same way
// for lookup purposes.
type Category string

const (
	// CategoryNone marks an uncategorized word.
	CategoryNone Category = ""
	// CategorySustantivo is a noun.
	CategorySustantivo Category = "sustantivo"
	// CategoryAdjetivo is an adjective.
	CategoryAdjetivo Category = "adjetivo"
	// CategoryVerbo is a verb.
	CategoryVerbo Category = "verbo"
	// CategoryPhrasalVerb is an English phrasal verb.
	CategoryPhrasalVerb Category = "phrasal verb"
	// CategoryAdverbio is an adverb.
	CategoryAdverbio Category = "adverbio"
	// CategoryFraseHecha is a fixed phrase.
	CategoryFraseHecha Category = "frase hecha"
)

// Color is the display tag derived from a word's category. It is
// denormalized state: always recomputed from the category, never chosen
// independently.
type Color string

const (
	ColorNone   Color = ""
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorPurple Color = "purple"
	ColorOrange Color = "orange"
	ColorYellow Color = "yellow"
	ColorRed    Color = "red"
)

// CategoryInfo describes the display attributes of one category.
type CategoryInfo struct {
	Value Category
	Label string
	Emoji string
	Color Color
}

// categoryTable is the fixed closed set of categories. Order matters for
// presentation.
var categoryTable = []CategoryInfo{
	{Value: CategorySustantivo, Label: "Sustantivo", Emoji: "📦", Color: ColorBlue},
	{Value: CategoryAdjetivo, Label: "Adjetivo", Emoji: "✨", Color: ColorGreen},
	{Value: CategoryVerbo, Label: "Verbo", Emoji: "⚡", Color: ColorPurple},
	{Value: CategoryPhrasalVerb, Label: "Phrasal Verb", Emoji: "🔗", Color: ColorOrange},
	{Value: CategoryAdverbio, Label: "Adverbio", Emoji: "➡️", Color: ColorYellow},
	{Value: CategoryFraseHecha, Label: "Frase Hecha", Emoji: "💬", Color: ColorRed},
}

// Categories returns the fixed category set in presentation order.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(categoryTable))
	copy(out, categoryTable)
	return out
}

// LookupCategory returns the display attributes of c. The second return
// value is false for the empty category and for any value outside the set.
func LookupCategory(c Category) (CategoryInfo, bool) {
	for _, info := range categoryTable {
		if info.Value == c {
			return info, true
		}
	}
	return CategoryInfo{}, false
}

// ColorFor derives the display color of a category. Uncategorized and
// unknown values map to no color.
func ColorFor(c Category) Color {
	info, ok := LookupCategory(c)
	if !ok {
		return ColorNone
	}
	return info.Color
}

// ParseCategory normalizes a raw value: members of the fixed set come back
// as-is, everything else collapses to CategoryNone.
func ParseCategory(raw string) Category {
	if _, ok := LookupCategory(Category(raw)); ok {
		return Category(raw)
	}
	return CategoryNone
}
