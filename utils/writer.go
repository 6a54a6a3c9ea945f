package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"subnet-planner/models"
)

type ReportWriter struct {
	outputDir string
	indent    int
}

func NewReportWriter(outputDir string) *ReportWriter {
	return &ReportWriter{
		outputDir: outputDir,
		indent:    2,
	}
}

// WriteReport writes report into the output directory in the given format
// (yaml or json) and returns the path of the file it created.
func (w *ReportWriter) WriteReport(report *models.PlanReport, format string) (string, error) {
	if err := EnsureDirectory(w.outputDir); err != nil {
		return "", err
	}

	ext := "yml"
	if format == models.FormatJSON {
		ext = "json"
	}
	filename := filepath.Join(w.outputDir, w.generateReportFilename(report, ext))

	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("error creating report file: %w", err)
	}
	defer file.Close()

	if err := w.Encode(file, report, format); err != nil {
		return "", err
	}
	return filename, nil
}

// Encode writes v to out as json or yaml.
func (w *ReportWriter) Encode(out io.Writer, v any, format string) error {
	switch format {
	case models.FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", strings.Repeat(" ", w.indent))
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("error encoding json: %w", err)
		}
	case models.FormatYAML, "yml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(w.indent)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("error encoding yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("error encoding yaml: %w", err)
		}
	default:
		return fmt.Errorf("unsupported report format %q", format)
	}
	return nil
}

// generateReportFilename yields e.g. 10.0.0.0_24-x4_2026-01-02_15-04-05.yml
func (w *ReportWriter) generateReportFilename(report *models.PlanReport, ext string) string {
	base := strings.ReplaceAll(report.Parent, "/", "_") + "-x" + strconv.FormatUint(report.Requested, 10)
	return GenerateOutputFilename(base, ext, report.Generated)
}
