package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPack_TotalItems(t *testing.T) {
	tests := []struct {
		name     string
		pack     Pack
		expected int
	}{
		{
			name:     "single pack",
			pack:     Pack{Size: 500, Quantity: 1},
			expected: 500,
		},
		{
			name:     "multiple packs",
			pack:     Pack{Size: 250, Quantity: 4},
			expected: 1000,
		},
		{
			name:     "zero quantity",
			pack:     Pack{Size: 500, Quantity: 0},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.pack.TotalItems())
		})
	}
}

func TestPackPlan_Totals(t *testing.T) {
	tests := []struct {
		name          string
		plan          PackPlan
		expectedItems int
		expectedPacks int
	}{
		{
			name:          "empty plan",
			plan:          PackPlan{},
			expectedItems: 0,
			expectedPacks: 0,
		},
		{
			name:          "mixed sizes",
			plan:          PackPlan{5000: 2, 2000: 1, 250: 1},
			expectedItems: 12250,
			expectedPacks: 4,
		},
		{
			name:          "nil plan",
			plan:          nil,
			expectedItems: 0,
			expectedPacks: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedItems, tt.plan.TotalItems())
			assert.Equal(t, tt.expectedPacks, tt.plan.TotalPacks())
		})
	}
}

func TestPackPlan_Packs(t *testing.T) {
	plan := PackPlan{23: 2, 53: 9, 31: 7}

	assert.Equal(t, []Pack{
		{Size: 53, Quantity: 9},
		{Size: 31, Quantity: 7},
		{Size: 23, Quantity: 2},
	}, plan.Packs())
	assert.Empty(t, PackPlan{}.Packs())
}

func TestNewPackResult(t *testing.T) {
	result := NewPackResult(251, PackPlan{500: 1})

	assert.Equal(t, 251, result.OrderedItems)
	assert.Equal(t, 500, result.TotalItems)
	assert.Equal(t, 1, result.TotalPacks)
	assert.Equal(t, []Pack{{Size: 500, Quantity: 1}}, result.Packs)
}

func TestEmpty(t *testing.T) {
	result := Empty(100)

	assert.Equal(t, 100, result.OrderedItems)
	assert.Equal(t, 0, result.TotalItems)
	assert.Equal(t, 0, result.TotalPacks)
	assert.NotNil(t, result.Packs)
	assert.Empty(t, result.Packs)
}

func TestPackSizeSet_Contains(t *testing.T) {
	set := PackSizeSet{Sizes: []int{250, 500, 1000}, Version: 1}

	assert.Equal(t, 3, set.Len())
	assert.True(t, set.Contains(500))
	assert.False(t, set.Contains(750))
	assert.False(t, set.Contains(5000))
	assert.False(t, PackSizeSet{}.Contains(1))
}
