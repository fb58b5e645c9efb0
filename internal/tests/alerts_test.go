package tests

import (
	"testing"

	"coffeeshop-pos/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestAlertLevelFor(t *testing.T) {
	tests := []struct {
		name     string
		stock    int
		minLevel int
		expected domain.AlertLevel
	}{
		{"well_stocked", 50, 10, domain.AlertNone},
		{"just_above_minimum", 11, 10, domain.AlertNone},
		{"at_minimum", 10, 10, domain.AlertLow},
		{"below_minimum", 7, 10, domain.AlertLow},
		{"at_half_minimum", 5, 10, domain.AlertCritical},
		{"below_half_minimum", 3, 10, domain.AlertCritical},
		{"half_of_odd_minimum_rounds_down", 4, 9, domain.AlertCritical},
		{"just_above_half_of_odd_minimum", 5, 9, domain.AlertLow},
		{"zero_stock", 0, 10, domain.AlertOutOfStock},
		{"negative_stock", -1, 10, domain.AlertOutOfStock},
		{"zero_minimum_with_stock", 5, 0, domain.AlertNone},
		{"zero_minimum_no_stock", 0, 0, domain.AlertOutOfStock},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, domain.AlertLevelFor(testCase.stock, testCase.minLevel))
		})
	}
}
