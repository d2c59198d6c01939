package script

import (
	"os"
	"path/filepath"
	"strings"
)

// loadTemplateText reads a template part ("intro" or "outro") for the named
// template. Returns "" when the template directory or file is absent; missing
// templates are a normal condition, not an error.
func loadTemplateText(templateDir, name, part string) string {
	templateDir = strings.TrimSpace(templateDir)
	name = strings.TrimSpace(name)
	if templateDir == "" || name == "" {
		return ""
	}
	path := filepath.Join(templateDir, name+"_"+part+".md")
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// injectTemplates prepends an Intro and appends an Outro segment when the
// named template provides them. Runs before indexing, so injected segments
// participate in normal finalization.
func injectTemplates(segments []Segment, templateDir, name string) []Segment {
	if intro := loadTemplateText(templateDir, name, "intro"); intro != "" {
		segments = append([]Segment{{
			Title:  "Intro",
			Text:   intro,
			Source: SourceTemplate,
		}}, segments...)
	}
	if outro := loadTemplateText(templateDir, name, "outro"); outro != "" {
		segments = append(segments, Segment{
			Title:  "Outro",
			Text:   outro,
			Source: SourceTemplate,
		})
	}
	return segments
}
