package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies a plan document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// PlanSchema is the top-level structure of a plan document file.
type PlanSchema struct {
	Tasks    []TaskImport    `json:"tasks" yaml:"tasks"`
	Events   []EventImport   `json:"events,omitempty" yaml:"events,omitempty"`
	Defaults *DefaultsImport `json:"defaults,omitempty" yaml:"defaults,omitempty"`
	Goals    *GoalsImport    `json:"goals,omitempty" yaml:"goals,omitempty"`
}

// TaskImport defines a dated task in the plan file.
type TaskImport struct {
	ID        string   `json:"id,omitempty" yaml:"id,omitempty"`
	Title     string   `json:"title" yaml:"title"`
	Date      string   `json:"date" yaml:"date"`
	Start     string   `json:"start,omitempty" yaml:"start,omitempty"`
	End       string   `json:"end,omitempty" yaml:"end,omitempty"`
	Category  string   `json:"category,omitempty" yaml:"category,omitempty"`
	Duration  *int     `json:"duration,omitempty" yaml:"duration,omitempty"`
	Tags      []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	WeekTheme string   `json:"weekTheme,omitempty" yaml:"weekTheme,omitempty"`
}

// EventImport defines a bounded calendar event in the plan file.
type EventImport struct {
	Title    string `json:"title" yaml:"title"`
	Start    string `json:"start" yaml:"start"`
	End      string `json:"end" yaml:"end"`
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
	Type     string `json:"type,omitempty" yaml:"type,omitempty"`
	Notes    string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// DefaultsImport holds the per-period fallback actions.
type DefaultsImport struct {
	Daily   *DefaultImport `json:"daily,omitempty" yaml:"daily,omitempty"`
	Weekly  *DefaultImport `json:"weekly,omitempty" yaml:"weekly,omitempty"`
	Monthly *DefaultImport `json:"monthly,omitempty" yaml:"monthly,omitempty"`
}

// DefaultImport is one fallback action. Both duration spellings are accepted;
// durationMinutes wins when both are set.
type DefaultImport struct {
	Title           string `json:"title,omitempty" yaml:"title,omitempty"`
	Duration        *int   `json:"duration,omitempty" yaml:"duration,omitempty"`
	DurationMinutes *int   `json:"durationMinutes,omitempty" yaml:"durationMinutes,omitempty"`
}

// GoalsImport holds yearly, monthly and weekly goals.
type GoalsImport struct {
	Yearly  []string    `json:"yearly,omitempty" yaml:"yearly,omitempty"`
	Monthly *GoalImport `json:"monthly,omitempty" yaml:"monthly,omitempty"`
	Weekly  *GoalImport `json:"weekly,omitempty" yaml:"weekly,omitempty"`
}

type GoalImport struct {
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
}

// FormatForPath picks the decoder from the file extension. Unknown
// extensions are treated as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadPlanSchema reads and parses a plan document file.
func LoadPlanSchema(path string) (*PlanSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParsePlanSchema(data, FormatForPath(path))
}

// ParsePlanSchema decodes a plan document in the given format.
func ParsePlanSchema(data []byte, format Format) (*PlanSchema, error) {
	var schema PlanSchema
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("parsing plan file: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("parsing plan file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported plan format %q", format)
	}
	return &schema, nil
}
