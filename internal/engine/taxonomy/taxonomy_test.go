// internal/engine/taxonomy/taxonomy_test.go
package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCategories(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "single category",
			text:     "Looking for a fashion creator",
			expected: []string{"fashion"},
		},
		{
			name:     "multiple categories",
			text:     "food blogger reviewing restaurants and cafes in Delhi",
			expected: []string{"food", "restaurants"},
		},
		{
			name:     "synonym match",
			text:     "posts gym workout sessions",
			expected: []string{"fitness"},
		},
		{
			name:     "case insensitive",
			text:     "SKINCARE and Makeup tips",
			expected: []string{"skincare", "beauty"},
		},
		{
			name:     "no categories",
			text:     "completely unrelated text about quantum mechanics",
			expected: []string{},
		},
		{
			name:     "empty input",
			text:     "",
			expected: []string{},
		},
		{
			// "car" inside "skincare" and "ev" inside "reviewing" must not
			// fire automotive
			name:     "keywords embedded in longer words ignored",
			text:     "reviewing street food stalls",
			expected: []string{"food"},
		},
		{
			name:     "ai inside email does not fire tech",
			text:     "contact via email for collabs",
			expected: []string{},
		},
		{
			name:     "art inside smart does not fire art",
			text:     "smart budget shopping hauls",
			expected: []string{},
		},
		{
			name:     "fintech does not fire tech",
			text:     "fintech investing tips",
			expected: []string{"finance"},
		},
		{
			name:     "plural keyword forms recognized",
			text:     "loves cars and superbikes",
			expected: []string{"automotive"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractCategories(tt.text)
			assert.Len(t, got, len(tt.expected))
			for _, cat := range tt.expected {
				assert.True(t, got[cat], "expected category %q", cat)
			}
		})
	}
}

func TestContainsWord(t *testing.T) {
	tests := []struct {
		text     string
		word     string
		expected bool
	}{
		{"find food influencers", "food", true},
		{"food,restaurants,lifestyle", "restaurant", true},
		{"likes cars", "car", true},
		{"skincare routine", "car", false},
		{"fintech startup", "tech", false},
		{"lifestyle vlogs", "style", false},
		{"based in mumbai", "ai", false},
		{"high engagement in comments", "men", false},
		{"for women only", "women", true},
		{"scars and stripes", "car", false},
	}

	for _, tt := range tests {
		t.Run(tt.text+"/"+tt.word, func(t *testing.T) {
			assert.Equal(t, tt.expected, ContainsWord(tt.text, tt.word))
		})
	}
}

func TestOverlap(t *testing.T) {
	tests := []struct {
		name     string
		a        map[string]bool
		b        map[string]bool
		expected int
	}{
		{
			name:     "full overlap",
			a:        map[string]bool{"food": true, "travel": true},
			b:        map[string]bool{"food": true, "travel": true},
			expected: 2,
		},
		{
			name:     "partial overlap",
			a:        map[string]bool{"food": true, "travel": true},
			b:        map[string]bool{"food": true, "tech": true},
			expected: 1,
		},
		{
			name:     "no overlap",
			a:        map[string]bool{"food": true},
			b:        map[string]bool{"tech": true},
			expected: 0,
		},
		{
			name:     "empty set",
			a:        map[string]bool{},
			b:        map[string]bool{"tech": true},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Overlap(tt.a, tt.b))
			assert.Equal(t, tt.expected, Overlap(tt.b, tt.a))
		})
	}
}

func TestCategories(t *testing.T) {
	cats := Categories()
	assert.Len(t, cats, len(categoryKeywords))
	assert.Contains(t, cats, "fashion")
	assert.Contains(t, cats, "entertainment")
}
