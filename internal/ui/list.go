package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/registrar/internal/models"
)

var _ list.Item = courseItem{}

// courseItem wraps [models.CourseRecord] to implement [list.Item].
type courseItem struct {
	course models.CourseRecord
}

func (i courseItem) FilterValue() string { return i.course.Code + " " + i.course.Title }
func (i courseItem) Title() string       { return fmt.Sprintf("%s • %s", i.course.Code, i.course.Title) }
func (i courseItem) Description() string {
	desc := fmt.Sprintf("%d/%d slots", i.course.AvailableSlots, i.course.Capacity)
	if i.course.Schedule != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.course.Schedule)
	}
	return desc
}

func courseItems(records []models.CourseRecord) []list.Item {
	items := make([]list.Item, len(records))
	for i, c := range records {
		items[i] = courseItem{course: c}
	}
	return items
}
