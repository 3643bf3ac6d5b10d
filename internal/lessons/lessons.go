// Package lessons provides the built-in lesson catalog: short markdown
// readings paired with the command sequence the student should reproduce in
// the playground.
package lessons

import (
	"embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"gopkg.in/yaml.v3"
)

//go:embed lessons.yaml
var catalogFS embed.FS

// Lesson is one unit of the course.
type Lesson struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	// Body is markdown, rendered with glamour in the lesson panel.
	Body string `yaml:"body"`
	// Commands is the dispatch-key sequence that completes the lesson,
	// e.g. ["git init", "git add", "git commit"].
	Commands []string `yaml:"commands"`
}

type catalogFile struct {
	Lessons []Lesson `yaml:"lessons"`
}

// Catalog returns the built-in lessons in course order.
func Catalog() ([]Lesson, error) {
	data, err := catalogFS.ReadFile("lessons.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading lesson catalog: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing lesson catalog: %w", err)
	}

	seen := make(map[string]bool, len(file.Lessons))
	for _, l := range file.Lessons {
		if l.ID == "" || l.Title == "" {
			return nil, fmt.Errorf("lesson catalog entry missing id or title: %+v", l)
		}
		if seen[l.ID] {
			return nil, fmt.Errorf("duplicate lesson id %q", l.ID)
		}
		seen[l.ID] = true
	}
	return file.Lessons, nil
}

// RenderBody renders the lesson's markdown for terminal display at the
// given wrap width.
func (l Lesson) RenderBody(width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(l.Body)
	if err != nil {
		return "", fmt.Errorf("rendering lesson %q: %w", l.ID, err)
	}
	return strings.TrimRight(out, "\n"), nil
}
