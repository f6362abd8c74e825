package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SalaryPatterns(t *testing.T) {
	tests := []struct {
		name  string
		input string
		min   *int
		max   *int
	}{
		{"above sets minimum", "developer above 50k", intPtr(50000), nil},
		{"minimum phrasing", "developer minimum 60000", intPtr(60000), nil},
		{"at least phrasing", "developer at least 50k", intPtr(50000), nil},
		{"under sets maximum", "developer under 30k", nil, intPtr(30000)},
		{"plus suffix sets minimum", "developer 70k+", intPtr(70000), nil},
		{"min and max together", "developer over 60k under 90k", intPtr(60000), intPtr(90000)},
		{"between range", "developer between 40k and 60k", intPtr(40000), intPtr(60000)},
		{"dash range", "developer 45k-65k", intPtr(45000), intPtr(65000)},
		{"to range", "developer 50000 to 90000", intPtr(50000), intPtr(90000)},
		{"exact salary treated as minimum", "developer salary 75000", intPtr(75000), nil},
		{"bare large number", "engineer 85000", intPtr(85000), nil},
		{"bare threshold boundary", "engineer 10k", intPtr(10000), nil},
		{"small bare number ignored", "team of 5 engineers", nil, nil},
		{"below threshold ignored", "engineer 9k", nil, nil},
		{"no number", "backend engineer", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Parse(tt.input)
			if tt.min != nil {
				require.NotNil(t, result.SalaryMin, "expected a minimum")
				assert.Equal(t, *tt.min, *result.SalaryMin)
			} else {
				assert.Nil(t, result.SalaryMin)
			}
			if tt.max != nil {
				require.NotNil(t, result.SalaryMax, "expected a maximum")
				assert.Equal(t, *tt.max, *result.SalaryMax)
			} else {
				assert.Nil(t, result.SalaryMax)
			}
		})
	}
}

func TestParse_SalaryRemovedFromCleanedQuery(t *testing.T) {
	result := Parse("backend engineer between 40k and 60k")
	assert.Equal(t, "backend engineer", result.CleanedQuery)

	result = Parse("backend engineer 85000")
	assert.Equal(t, "backend engineer", result.CleanedQuery)
}

func TestParseSalaryFigure(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
		ok       bool
	}{
		{"thousands suffix", "50k", 50000, true},
		{"decimal with suffix", "1.5k", 1500, true},
		{"dollar with commas", "$45,000", 45000, true},
		{"rupee symbol", "₹80,000", 80000, true},
		{"lakhs per annum", "5lpa", 500000, true},
		{"lakh short form", "3l", 300000, true},
		{"plain number", "90000", 90000, true},
		{"uppercase suffix", "50K", 50000, true},
		{"embedded space", "$ 45,000", 45000, true},
		{"not a number", "abc", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := parseSalaryFigure(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, v)
			}
		})
	}
}

func intPtr(v int) *int { return &v }
