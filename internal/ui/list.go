package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/wayfarer/internal/models"
)

var (
	_ list.Item = dayItem{}
	_ list.Item = moodItem{}
)

// dayItem wraps [models.Day] to implement [list.Item].
type dayItem struct {
	day models.Day
}

func (i dayItem) FilterValue() string { return fmt.Sprintf("Day %d %s", i.day.DayIndex, i.day.Summary) }
func (i dayItem) Title() string       { return fmt.Sprintf("Day %d", i.day.DayIndex) }
func (i dayItem) Description() string {
	if i.day.Summary != "" {
		return i.day.Summary
	}

	var titles []string
	for _, blockName := range models.BlockOrder {
		if block, ok := i.day.Blocks[blockName]; ok {
			titles = append(titles, block.Title)
		}
	}
	return strings.Join(titles, " • ")
}

// moodItem is one selectable mood tag in the reflection view.
type moodItem struct {
	mood     string
	selected func(string) bool
}

func (i moodItem) FilterValue() string { return i.mood }
func (i moodItem) Title() string {
	if i.selected(i.mood) {
		return fmt.Sprintf("[x] %s", i.mood)
	}
	return fmt.Sprintf("[ ] %s", i.mood)
}
func (i moodItem) Description() string { return "" }
