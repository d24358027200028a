package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrequencyTableOrdering(t *testing.T) {
	table := NewEmotionFrequencyTable()
	for _, emotion := range []string{"joy", "anger", "joy", "sadness", "joy", "anger"} {
		table.Add(emotion)
	}

	entries := table.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "joy", entries[0].Emotion, "first-appearance order")
	assert.Equal(t, "anger", entries[1].Emotion)
	assert.Equal(t, "sadness", entries[2].Emotion)
	assert.Equal(t, 3, entries[0].Count)
}

func TestFrequencyTableTotal(t *testing.T) {
	table := NewEmotionFrequencyTable()
	labels := []string{"joy", "joy", "anger", EmotionError, "joy"}
	for _, emotion := range labels {
		table.Add(emotion)
	}

	assert.Equal(t, len(labels), table.Total(), "sentinel labels count toward the total")
	assert.Equal(t, 1, table.Count(EmotionError))
	assert.Equal(t, 0, table.Count("fear"))
}

func TestFrequencyTableSortedEntries(t *testing.T) {
	table := NewEmotionFrequencyTable()
	for _, emotion := range []string{"sadness", "joy", "joy", "anger", "joy", "anger", "joy"} {
		table.Add(emotion)
	}

	sorted := table.SortedEntries()
	require.Len(t, sorted, 3)
	assert.Equal(t, []EmotionCount{
		{Emotion: "joy", Count: 4},
		{Emotion: "anger", Count: 2},
		{Emotion: "sadness", Count: 1},
	}, sorted)
}

func TestSentinelResults(t *testing.T) {
	unknown := UnknownResult()
	assert.Equal(t, EmotionUnknown, unknown.Emotion)
	assert.Zero(t, unknown.Confidence)
	assert.Empty(t, unknown.AllEmotions)

	errResult := ErrorResult(assert.AnError)
	assert.Equal(t, EmotionError, errResult.Emotion)
	assert.Zero(t, errResult.Confidence)
	assert.Equal(t, assert.AnError.Error(), errResult.Error)
}
