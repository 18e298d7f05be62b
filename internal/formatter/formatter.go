// package formatter renders registrar listings to various formats (plain text, CSV, Markdown, YAML, JSON)
package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/desertthunder/registrar/internal/models"
	"github.com/desertthunder/registrar/internal/shared"
	"gopkg.in/yaml.v3"
)

// Format names an output encoding accepted by [RenderCourses].
type Format string

const (
	FormatText     Format = "text"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
	FormatYAML     Format = "yaml"
	FormatJSON     Format = "json"
)

// Formats lists every supported [Format] in help-text order.
var Formats = []Format{FormatText, FormatCSV, FormatMarkdown, FormatYAML, FormatJSON}

// ParseFormat resolves a user-supplied format name. "md" and "yml" are accepted as aliases.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text", "txt":
		return FormatText, nil
	case "csv":
		return FormatCSV, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, name)
	}
}

// RenderCourses encodes the course listing in the requested format.
func RenderCourses(records []models.CourseRecord, format Format) ([]byte, error) {
	switch format {
	case FormatText:
		return CoursesToText(records), nil
	case FormatCSV:
		return CoursesToCSV(records)
	case FormatMarkdown:
		return CoursesToMarkdown(records), nil
	case FormatYAML:
		return ToYAML(records)
	case FormatJSON:
		return ToJSON(records, true)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format)
	}
}

// CoursesToText renders one block per course, separated by blank lines.
func CoursesToText(records []models.CourseRecord) []byte {
	var buf bytes.Buffer
	for _, c := range records {
		buf.WriteString(CourseToText(c))
		buf.WriteString("\n")
	}
	return buf.Bytes()
}

// CourseToText renders a single course as labelled lines.
func CourseToText(c models.CourseRecord) string {
	return fmt.Sprintf(
		"Course Code: %s\nTitle: %s\nDescription: %s\nSchedule: %s\nAvailable Slots: %d/%d\n",
		c.Code, c.Title, c.Description, c.Schedule, c.AvailableSlots, c.Capacity,
	)
}

// CoursesToCSV renders courses with columns: Code, Title, Description, Schedule, Available, Capacity
func CoursesToCSV(records []models.CourseRecord) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Code", "Title", "Description", "Schedule", "Available", "Capacity"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, c := range records {
		record := []string{
			c.Code,
			c.Title,
			c.Description,
			c.Schedule,
			strconv.Itoa(c.AvailableSlots),
			strconv.Itoa(c.Capacity),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// CoursesToMarkdown renders courses as a Markdown table.
func CoursesToMarkdown(records []models.CourseRecord) []byte {
	var buf bytes.Buffer

	buf.WriteString("# Available Courses\n\n")
	buf.WriteString("| Code | Title | Schedule | Available | Description |\n")
	buf.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, c := range records {
		fmt.Fprintf(&buf, "| %s | %s | %s | %d/%d | %s |\n",
			escapeCell(c.Code), escapeCell(c.Title), escapeCell(c.Schedule),
			c.AvailableSlots, c.Capacity, escapeCell(c.Description))
	}

	return buf.Bytes()
}

// StudentToText renders a student with the titles of their registered courses.
func StudentToText(d *models.StudentDetails) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Student ID: %s\nName: %s\nRegistered Courses:\n", d.ID, d.Name)
	for _, title := range d.Courses {
		buf.WriteString(title + "\n")
	}

	return buf.Bytes()
}

// ActivitiesToText renders the activity log, one line per entry.
func ActivitiesToText(records []models.ActivityRecord) []byte {
	var buf bytes.Buffer
	if len(records) == 0 {
		buf.WriteString("No activity recorded.\n")
	}
	for _, a := range records {
		fmt.Fprintf(&buf, "#%d %s %-8s %s %s: %s\n",
			a.Sequence, a.CreatedAt.Format("15:04:05"), a.Action, a.StudentID, a.CourseCode, a.Outcome)
	}
	return buf.Bytes()
}

// ToYAML encodes v as YAML with two-space indentation.
func ToYAML(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to marshal YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to flush YAML: %w", err)
	}
	return buf.Bytes(), nil
}

// ToJSON encodes v as JSON with a trailing newline.
func ToJSON(v any, pretty bool) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// WriteCourses renders the course listing and writes it to path.
func WriteCourses(records []models.CourseRecord, format Format, path string) error {
	data, err := RenderCourses(records, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s export: %w", format, err)
	}
	return nil
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
