package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterEligible(t *testing.T) {
	whitelist := []uint{1, 2}

	assert.Equal(t, []uint{1, 2}, FilterEligible([]uint{1, 2, 3}, whitelist))
	assert.Equal(t, []uint{2, 1}, FilterEligible([]uint{3, 2, 1}, whitelist))
}

func TestFilterEligibleDropsDuplicates(t *testing.T) {
	assert.Equal(t, []uint{5}, FilterEligible([]uint{5, 6, 5}, []uint{5}))
}

func TestFilterEligibleEmpty(t *testing.T) {
	assert.Empty(t, FilterEligible(nil, []uint{1, 2}))
	assert.Empty(t, FilterEligible([]uint{1, 2}, nil))
	assert.Empty(t, FilterEligible([]uint{7, 8}, []uint{1, 2}))
}

func TestMergeIds(t *testing.T) {
	// Current first, then the new ones, no duplicates.
	assert.Equal(t, []uint{1, 2, 3, 4}, MergeIds([]uint{1, 2}, []uint{2, 3, 4}))
	assert.Equal(t, []uint{1, 2}, MergeIds([]uint{1, 2}, nil))
	assert.Equal(t, []uint{3, 4}, MergeIds(nil, []uint{3, 4}))
	assert.Equal(t, []uint{1}, MergeIds([]uint{1, 1}, []uint{1}))
}

func TestMergeThenFilterKeepsExistingItems(t *testing.T) {
	// An update that resubmits only new IDs must not drop what is
	// already attached.
	current := []uint{1, 2}
	requested := []uint{3}
	whitelist := []uint{1, 2, 3}

	assert.Equal(t, []uint{1, 2, 3}, FilterEligible(MergeIds(current, requested), whitelist))
}
