package handlers

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"sort"
	"strings"

	"github.com/user/fieldeditor/internal/config"
	"github.com/user/fieldeditor/internal/errors"
	"github.com/user/fieldeditor/internal/logging"
	"github.com/user/fieldeditor/internal/tui"
	"github.com/user/fieldeditor/internal/worker_pool"
)

// FileStatus is the check result of one schema file
type FileStatus struct {
	Path        string           `json:"path"`
	Valid       bool             `json:"valid"`
	Fields      int              `json:"fields"`
	IgnoredKeys map[int][]string `json:"ignored_keys,omitempty"`
	DroppedKeys map[int][]string `json:"dropped_keys,omitempty"`
	NotObjects  []int            `json:"not_objects,omitempty"`
	ErrorKind   string           `json:"error_kind,omitempty"`
	Error       string           `json:"error,omitempty"`
	Message     string           `json:"message,omitempty"`
}

// CheckReport is the result of checking a set of schema files
type CheckReport struct {
	Files   []FileStatus `json:"files"`
	Valid   int          `json:"valid"`
	Invalid int          `json:"invalid"`
}

// HasErrors reports whether any file was rejected
func (r *CheckReport) HasErrors() bool {
	return r.Invalid > 0
}

// CheckHandler imports schema files concurrently and reports which ones an
// editor would accept
type CheckHandler struct {
	*BaseHandler
	config   config.CheckConfig
	files    []string
	verbose  bool
	progress tui.ProgressReporter
}

// SetProgress routes per-file updates to r, which must be safe for
// concurrent use
func (h *CheckHandler) SetProgress(r tui.ProgressReporter) {
	if r == nil {
		r = &tui.NopProgressReporter{}
	}
	h.progress = r
}

// NewCheckHandler creates a new check handler
func NewCheckHandler(cfg config.CheckConfig, files []string, verbose bool, logger *logging.Logger) *CheckHandler {
	return &CheckHandler{
		BaseHandler: NewBaseHandler(logger),
		config:      cfg,
		files:       files,
		verbose:     verbose,
		progress:    &tui.NopProgressReporter{},
	}
}

// Handle checks every file. A rejected file is part of the report, not an
// error; the error return is kept for cancellation.
func (h *CheckHandler) Handle(ctx context.Context) (*CheckReport, error) {
	h.Logger.Info("Checking schema files",
		logging.Int("files", len(h.files)),
		logging.Int("max_workers", h.config.MaxWorkers))

	for _, path := range h.files {
		h.progress.AddTask(path, path, "")
	}

	tasks := make([]worker_pool.Task[FileStatus], len(h.files))
	for i, path := range h.files {
		tasks[i] = func(ctx context.Context) (FileStatus, error) {
			if err := ctx.Err(); err != nil {
				h.progress.SkipTask(path)
				return FileStatus{Path: path}, err
			}
			h.progress.StartTask(path)
			status := h.checkFile(path)
			if status.Valid {
				h.progress.CompleteTask(path)
			} else {
				h.progress.FailTask(path, stderrors.New(status.Message))
			}
			return status, nil
		}
	}

	pool := worker_pool.NewWorkerPool(h.config.MaxWorkers)
	results := worker_pool.Run(ctx, pool, tasks)

	report := &CheckReport{Files: make([]FileStatus, 0, len(results))}
	for _, r := range results {
		if r.Error != nil {
			return nil, r.Error
		}
		if r.Value.Valid {
			report.Valid++
		} else {
			report.Invalid++
		}
		report.Files = append(report.Files, r.Value)
	}

	h.Logger.Info("Check finished",
		logging.Int("valid", report.Valid),
		logging.Int("invalid", report.Invalid))
	return report, nil
}

func (h *CheckHandler) checkFile(path string) FileStatus {
	status := FileStatus{Path: path}

	_, report, err := h.loadSchema(path)
	if err != nil {
		status.Error = err.Error()
		if ee, ok := errors.AsEditorError(err); ok {
			status.ErrorKind = ee.Code.String()
			status.Message = ee.Message
		}
		return status
	}

	status.Valid = true
	status.Fields = report.Fields
	status.IgnoredKeys = report.IgnoredKeys
	status.DroppedKeys = report.DroppedKeys
	status.NotObjects = report.NotObjects
	return status
}

// FormatTextReport renders the report for a terminal
func (h *CheckHandler) FormatTextReport(report *CheckReport) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("Schema Check\n")
	sb.WriteString("============\n\n")

	for _, f := range report.Files {
		if f.Valid {
			sb.WriteString(fmt.Sprintf("✓ %s: %d field(s)\n", f.Path, f.Fields))
			if h.verbose {
				for _, line := range keyLines(f.IgnoredKeys) {
					sb.WriteString(fmt.Sprintf("    ignored %s\n", line))
				}
				for _, line := range keyLines(f.DroppedKeys) {
					sb.WriteString(fmt.Sprintf("    dropped %s\n", line))
				}
				for _, i := range f.NotObjects {
					sb.WriteString(fmt.Sprintf("    field %d: not an object, imported empty\n", i))
				}
			}
			continue
		}

		sb.WriteString(fmt.Sprintf("✗ %s: %s\n", f.Path, f.Message))
		if h.verbose && f.Error != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", f.Error))
		}
	}

	sb.WriteString(fmt.Sprintf("\n%d valid, %d invalid\n", report.Valid, report.Invalid))
	return sb.String()
}

// FormatJSONReport renders the report as indented JSON
func (h *CheckHandler) FormatJSONReport(report *CheckReport) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}
	return string(data), nil
}

func keyLines(keys map[int][]string) []string {
	indexes := make([]int, 0, len(keys))
	for i := range keys {
		indexes = append(indexes, i)
	}
	sort.Ints(indexes)

	lines := make([]string, 0, len(indexes))
	for _, i := range indexes {
		lines = append(lines, fmt.Sprintf("field %d: %s", i, strings.Join(keys[i], ", ")))
	}
	return lines
}
