// internal/engine/taxonomy/taxonomy.go
package taxonomy

import "strings"

// categoryKeywords maps each category identifier to its synonym/keyword set.
// The table is read-only after init, so extraction is safe for concurrent use.
var categoryKeywords = map[string][]string{
	"fashion":       {"fashion", "clothing", "apparel", "outfit", "style", "wardrobe", "streetwear"},
	"beauty":        {"beauty", "makeup", "cosmetic", "lipstick", "mascara", "salon"},
	"skincare":      {"skincare", "skin care", "serum", "moisturizer", "sunscreen", "dermat"},
	"food":          {"food", "foodie", "recipe", "cooking", "culinary", "snack", "street food"},
	"restaurants":   {"restaurant", "cafe", "dining", "eatery", "bistro"},
	"travel":        {"travel", "trip", "vacation", "wanderlust", "tourism", "backpack"},
	"fitness":       {"fitness", "gym", "workout", "exercise", "bodybuilding", "crossfit"},
	"health":        {"health", "nutrition", "diet", "ayurveda", "immunity"},
	"wellness":      {"wellness", "yoga", "meditation", "mindfulness", "self care", "self-care"},
	"tech":          {"tech", "technology", "software", "coding", "programming", "ai", "startup"},
	"gadgets":       {"gadget", "smartphone", "unboxing", "laptop", "earbuds", "accessories"},
	"gaming":        {"gaming", "gamer", "esports", "playstation", "xbox", "pubg", "bgmi"},
	"finance":       {"finance", "investing", "stock", "mutual fund", "trading", "personal finance", "fintech"},
	"education":     {"education", "learning", "study", "exam", "tutorial", "upsc", "coaching"},
	"parenting":     {"parenting", "mom", "dad", "baby", "kids", "toddler"},
	"lifestyle":     {"lifestyle", "daily life", "vlog", "routine", "minimalism"},
	"comedy":        {"comedy", "funny", "humor", "memes", "standup", "stand-up", "sketch"},
	"music":         {"music", "singer", "musician", "song", "rap", "playlist"},
	"dance":         {"dance", "dancer", "choreography", "hip hop", "classical dance"},
	"art":           {"art", "artist", "painting", "drawing", "illustration", "craft"},
	"photography":   {"photography", "photographer", "photo", "dslr", "portrait"},
	"automotive":    {"automotive", "car", "bike", "motorcycle", "ev", "supercar"},
	"sports":        {"sports", "cricket", "football", "badminton", "athlete"},
	"home":          {"home decor", "interior", "furniture", "organization", "diy"},
	"pets":          {"pet", "dog", "cat", "puppy", "animal"},
	"entertainment": {"entertainment", "movies", "bollywood", "series", "celebrity", "film"},
}

// Categories returns the full category identifier list.
func Categories() []string {
	out := make([]string, 0, len(categoryKeywords))
	for cat := range categoryKeywords {
		out = append(out, cat)
	}
	return out
}

// ExtractCategories lower-cases the input and returns every category for
// which at least one keyword occurs as a whole word. Set semantics, no
// ordering guarantee.
func ExtractCategories(text string) map[string]bool {
	found := make(map[string]bool)
	if text == "" {
		return found
	}

	lower := strings.ToLower(text)
	for cat, keywords := range categoryKeywords {
		for _, kw := range keywords {
			if ContainsWord(lower, kw) {
				found[cat] = true
				break
			}
		}
	}
	return found
}

// ContainsWord reports whether word occurs in text bounded by
// non-alphanumeric characters on both sides, so "car" does not fire on
// "skincare" and "men" does not fire on "women" or "comments". A simple
// trailing plural is accepted: "restaurant" matches "restaurants".
func ContainsWord(text, word string) bool {
	idx := 0
	for {
		i := strings.Index(text[idx:], word)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(word)
		if end < len(text) && text[end] == 's' {
			end++
		}
		beforeOK := start == 0 || !isAlnum(text[start-1])
		afterOK := end == len(text) || !isAlnum(text[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// Overlap returns the number of categories present in both sets.
func Overlap(a, b map[string]bool) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for cat := range a {
		if b[cat] {
			n++
		}
	}
	return n
}
