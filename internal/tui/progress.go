package tui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// ProgressReporter receives task updates from concurrent workers.
type ProgressReporter interface {
	AddTask(id, name, description string)
	StartTask(id string)
	CompleteTask(id string)
	FailTask(id string, err error)
	SkipTask(id string)
}

type NopProgressReporter struct{}

func (n *NopProgressReporter) AddTask(id, name, description string) {}
func (n *NopProgressReporter) StartTask(id string)                  {}
func (n *NopProgressReporter) CompleteTask(id string)               {}
func (n *NopProgressReporter) FailTask(id string, err error)        {}
func (n *NopProgressReporter) SkipTask(id string)                   {}

type TaskStatus int

const (
	TaskPending TaskStatus = iota
	TaskRunning
	TaskSuccess
	TaskError
	TaskSkipped
)

type Task struct {
	ID          string
	Name        string
	Description string
	Status      TaskStatus
	Error       error
	StartTime   time.Time
	EndTime     time.Time
}

// Progress prints one line per finished task, in completion order.
type Progress struct {
	mu      sync.Mutex
	writer  io.Writer
	title   string
	tasks   []*Task
	taskMap map[string]*Task
	started bool
}

func NewProgress(title string) *Progress {
	return &Progress{
		title:   title,
		tasks:   make([]*Task, 0),
		taskMap: make(map[string]*Task),
	}
}

func (p *Progress) SetWriter(w io.Writer) {
	p.writer = w
}

func (p *Progress) getWriter() io.Writer {
	if p.writer == nil {
		return os.Stdout
	}
	return p.writer
}

func (p *Progress) AddTask(id, name, description string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.taskMap[id]; exists {
		return
	}
	task := &Task{
		ID:          id,
		Name:        name,
		Description: description,
		Status:      TaskPending,
	}
	p.tasks = append(p.tasks, task)
	p.taskMap[id] = task
}

func (p *Progress) StartTask(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	task, ok := p.taskMap[id]
	if !ok {
		return
	}
	task.Status = TaskRunning
	task.StartTime = time.Now()
}

func (p *Progress) CompleteTask(id string) {
	p.finish(id, TaskSuccess, nil)
}

func (p *Progress) FailTask(id string, err error) {
	p.finish(id, TaskError, err)
}

func (p *Progress) SkipTask(id string) {
	p.finish(id, TaskSkipped, nil)
}

func (p *Progress) finish(id string, status TaskStatus, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	task, ok := p.taskMap[id]
	if !ok {
		return
	}
	task.Status = status
	task.Error = err
	task.EndTime = time.Now()
	if p.started {
		_, _ = fmt.Fprintln(p.getWriter(), formatTaskLine(task))
	}
}

// Start prints the title; task lines follow as tasks finish.
func (p *Progress) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return
	}
	p.started = true

	_, _ = fmt.Fprintln(p.getWriter())
	_, _ = fmt.Fprintln(p.getWriter(), StyleTitle.Render(" "+p.title+" "))
	_, _ = fmt.Fprintln(p.getWriter())
}

func formatTaskLine(task *Task) string {
	var icon, status string
	var style lipgloss.Style

	switch task.Status {
	case TaskSuccess:
		style = StyleSuccess
		icon = style.Render(IconSuccess)
		status = task.Description
	case TaskError:
		style = StyleError
		icon = style.Render(IconError)
		status = "failed"
		if task.Error != nil {
			status = task.Error.Error()
		}
	case TaskSkipped:
		style = StyleMuted
		icon = style.Render(IconHidden)
		status = "skipped"
	default:
		style = StyleInfo
		icon = style.Render(IconBullet)
		status = "running"
	}

	line := fmt.Sprintf("  %s %s", icon, style.Render(task.Name))
	if status != "" {
		line += " " + StyleMuted.Render(status)
	}
	return line
}

// SetDescription replaces the text shown after the task name.
func (p *Progress) SetDescription(id, description string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if task, ok := p.taskMap[id]; ok {
		task.Description = description
	}
}

// Counts returns how many tasks succeeded, failed and were skipped.
func (p *Progress) Counts() (successful, failed, skipped int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, t := range p.tasks {
		switch t.Status {
		case TaskSuccess:
			successful++
		case TaskError:
			failed++
		case TaskSkipped:
			skipped++
		}
	}
	return successful, failed, skipped
}

func (p *Progress) PrintSummary() {
	successful, failed, skipped := p.Counts()

	p.mu.Lock()
	defer p.mu.Unlock()

	_, _ = fmt.Fprintln(p.getWriter())
	_, _ = fmt.Fprintln(p.getWriter(), strings.Repeat("─", 50))

	total := len(p.tasks)
	summary := fmt.Sprintf("Completed: %d/%d", successful, total-skipped)
	if failed > 0 {
		summary += fmt.Sprintf(", Failed: %d", failed)
	}
	if skipped > 0 {
		summary += fmt.Sprintf(", Skipped: %d", skipped)
	}

	if failed == 0 {
		_, _ = fmt.Fprintf(p.getWriter(), "%s %s\n",
			StyleSuccess.Render(IconSuccess),
			StyleSuccess.Render(summary))
	} else {
		_, _ = fmt.Fprintf(p.getWriter(), "%s %s\n",
			StyleError.Render(IconError),
			StyleWarning.Render(summary))
	}
	_, _ = fmt.Fprintln(p.getWriter())
}
