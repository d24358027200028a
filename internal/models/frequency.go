package models

import "sort"

// EmotionFrequencyTable counts emotion labels across one analysis run.
// Iteration order is the order labels first appeared.
type EmotionFrequencyTable struct {
	order  []string
	counts map[string]int
}

func NewEmotionFrequencyTable() *EmotionFrequencyTable {
	return &EmotionFrequencyTable{counts: make(map[string]int)}
}

func (t *EmotionFrequencyTable) Add(emotion string) {
	if _, seen := t.counts[emotion]; !seen {
		t.order = append(t.order, emotion)
	}
	t.counts[emotion]++
}

func (t *EmotionFrequencyTable) Count(emotion string) int {
	return t.counts[emotion]
}

func (t *EmotionFrequencyTable) Len() int {
	return len(t.order)
}

// Total is the number of comments counted, including sentinel labels.
func (t *EmotionFrequencyTable) Total() int {
	total := 0
	for _, c := range t.counts {
		total += c
	}
	return total
}

type EmotionCount struct {
	Emotion string `json:"emotion"`
	Count   int    `json:"count"`
}

// Entries returns counts in first-appearance order.
func (t *EmotionFrequencyTable) Entries() []EmotionCount {
	entries := make([]EmotionCount, 0, len(t.order))
	for _, emotion := range t.order {
		entries = append(entries, EmotionCount{Emotion: emotion, Count: t.counts[emotion]})
	}
	return entries
}

// SortedEntries returns counts descending by count, for bar charts.
// Ties keep first-appearance order.
func (t *EmotionFrequencyTable) SortedEntries() []EmotionCount {
	entries := t.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}
