// Package category assigns expenses to a fixed taxonomy via keyword matching.
package category

import "strings"

// Fallback is returned when no category keyword matches a description.
const Fallback = "other"

// Category pairs a category name with its trigger keywords.
type Category struct {
	Name     string
	Keywords []string
}

// Default is the built-in taxonomy. Order matters: when keywords from more
// than one category match a description, the first-declared category wins.
var Default = []Category{
	{Name: "food", Keywords: []string{
		"grocery", "groceries", "supermarket", "restaurant", "lunch",
		"dinner", "cafe", "coffee", "pizza", "takeaway",
	}},
	{Name: "transport", Keywords: []string{
		"bus", "train", "taxi", "uber", "fuel", "petrol", "metro", "parking",
	}},
	{Name: "entertainment", Keywords: []string{
		"netflix", "spotify", "cinema", "movie", "concert", "game", "streaming",
	}},
	{Name: "utilities", Keywords: []string{
		"electricity", "water", "internet", "phone", "bill",
	}},
	{Name: "health", Keywords: []string{
		"pharmacy", "doctor", "dentist", "gym", "medicine",
	}},
	{Name: "education", Keywords: []string{
		"course", "tuition", "book", "books", "exam",
	}},
	{Name: "housing", Keywords: []string{
		"rent", "mortgage",
	}},
}

// Categorizer maps free-text descriptions onto a taxonomy. It is pure and
// safe for concurrent use once constructed.
type Categorizer struct {
	order    []string
	keywords []map[string]struct{} // parallel to order
}

// New builds a Categorizer from an ordered taxonomy.
func New(taxonomy []Category) *Categorizer {
	c := &Categorizer{
		order:    make([]string, 0, len(taxonomy)),
		keywords: make([]map[string]struct{}, 0, len(taxonomy)),
	}
	for _, cat := range taxonomy {
		set := make(map[string]struct{}, len(cat.Keywords))
		for _, kw := range cat.Keywords {
			set[strings.ToLower(kw)] = struct{}{}
		}
		c.order = append(c.order, cat.Name)
		c.keywords = append(c.keywords, set)
	}
	return c
}

// Categorize returns the first category (in taxonomy order) whose keywords
// contain any whole word of the description, or Fallback if none match.
// Matching is case-insensitive and word-boundary delimited: "bus" matches
// "Bus fare" but not "business trip".
func (c *Categorizer) Categorize(description string) string {
	words := splitWords(description)
	if len(words) == 0 {
		return Fallback
	}

	for i, set := range c.keywords {
		for _, w := range words {
			if _, ok := set[w]; ok {
				return c.order[i]
			}
		}
	}
	return Fallback
}

// Names returns the category names in taxonomy order.
func (c *Categorizer) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// splitWords lower-cases a description and splits it on any non-alphanumeric
// boundary.
func splitWords(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	})
}
