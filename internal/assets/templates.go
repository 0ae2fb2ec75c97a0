package assets

import (
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/at-ishikawa/wordloop/internal/statistics"
)

const progressReportTemplateName = "progress-report.md.go.tmpl"

//go:embed templates/progress-report.md.go.tmpl
var fallbackProgressReportTemplate string

var funcMap = template.FuncMap{
	"join":    strings.Join,
	"percent": percent,
	"date":    date,
}

// ParseReportTemplate parses the report template at templatePath, or the embedded one
// when templatePath is empty, missing or invalid.
func ParseReportTemplate(templatePath string) (*template.Template, error) {
	return parseTemplateWithFallback(templatePath, progressReportTemplateName, fallbackProgressReportTemplate)
}

func parseTemplateWithFallback(templatePath, fallbackName, fallbackTemplate string) (*template.Template, error) {
	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			tmpl, err := template.New(filepath.Base(templatePath)).
				Funcs(funcMap).
				ParseFiles(templatePath)
			if err == nil {
				return tmpl, nil
			}
			slog.Default().Warn("failed to parse a templatePath",
				slog.String("templatePath", templatePath),
				slog.Any("error", err),
			)
		}
	}

	tmpl, err := template.New(fallbackName).
		Funcs(funcMap).
		Parse(fallbackTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}

// WriteReport renders a progress report as markdown.
func WriteReport(w io.Writer, tmpl *template.Template, report statistics.Report) error {
	if err := tmpl.Execute(w, report); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}

func percent(ratio float64) string {
	return fmt.Sprintf("%.0f%%", ratio*100)
}

func date(value any) string {
	switch t := value.(type) {
	case time.Time:
		return t.Format("2006-01-02")
	case *time.Time:
		if t == nil {
			return ""
		}
		return t.Format("2006-01-02")
	}
	return fmt.Sprint(value)
}
