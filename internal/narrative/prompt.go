package narrative

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"text/template"
)

var promptTmpl = template.Must(template.New("decision").Parse(`The user asked whether they can afford a {{.Kind}}{{if .Subject}} ({{.Subject}}){{end}}.

The numeric decision has already been made: {{if .Affordable}}YES, it fits their budget{{else}}NO, it does not fit their budget{{end}}.

Key figures:
{{range .Figures}}- {{.Name}}: {{printf "%.2f" .Value}}
{{end}}
Explain this outcome in two or three sentences. Be realistic and specific
about the financial impact, and mention concrete numbers. Do not contradict
the decision.`))

type promptFigure struct {
	Name  string
	Value float64
}

type promptData struct {
	Kind       string
	Subject    string
	Figures    []promptFigure
	Affordable bool
}

// buildPrompt renders the decision summary into the provider prompt. Figures
// are sorted so prompts are deterministic.
func buildPrompt(summary Summary) (string, error) {
	data := promptData{
		Kind:       strings.ReplaceAll(string(summary.Type), "_", " "),
		Subject:    summary.Subject,
		Affordable: summary.Affordable,
	}

	names := make([]string, 0, len(summary.Figures))
	for name := range summary.Figures {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		data.Figures = append(data.Figures, promptFigure{
			Name:  strings.ReplaceAll(name, "_", " "),
			Value: summary.Figures[name],
		})
	}

	var buf bytes.Buffer
	if err := promptTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render prompt: %w", err)
	}
	return buf.String(), nil
}
