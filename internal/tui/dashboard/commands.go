package dashboard

import (
	"os"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/user/fieldeditor/internal/errors"
)

// ClipboardWriter puts text on the system clipboard.
type ClipboardWriter func(text string) error

// SystemClipboard writes through the OS clipboard utility.
func SystemClipboard(text string) error {
	return clipboard.WriteAll(text)
}

type schemaLoadedMsg struct {
	Path string
	Text string
	Err  error
}

type schemaWrittenMsg struct {
	Path string
	Err  error
}

type copyResultMsg struct {
	Err error
}

type copyExpiredMsg struct {
	Generation int
}

type quitAfterExportMsg struct{}

func readSchemaCmd(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return schemaLoadedMsg{Path: path, Err: errors.NewFileReadError(path, err)}
		}
		return schemaLoadedMsg{Path: path, Text: string(data)}
	}
}

func writeSchemaCmd(path, text string) tea.Cmd {
	return func() tea.Msg {
		if err := os.WriteFile(path, []byte(text+"\n"), 0644); err != nil {
			return schemaWrittenMsg{Path: path, Err: errors.NewFileWriteError(path, err)}
		}
		return schemaWrittenMsg{Path: path}
	}
}

func copyCmd(write ClipboardWriter, text string) tea.Cmd {
	return func() tea.Msg {
		if err := write(text); err != nil {
			return copyResultMsg{Err: errors.NewClipboardError(err)}
		}
		return copyResultMsg{}
	}
}

// expireCopyCmd clears the copy indicator after d unless a newer copy
// happened in the meantime.
func expireCopyCmd(d time.Duration, generation int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return copyExpiredMsg{Generation: generation}
	})
}

func ShowError(text string) tea.Cmd {
	return func() tea.Msg {
		return ShowMessageMsg{Text: text, Type: MessageError}
	}
}

func ShowSuccess(text string) tea.Cmd {
	return func() tea.Msg {
		return ShowMessageMsg{Text: text, Type: MessageSuccess}
	}
}

func ShowInfo(text string) tea.Cmd {
	return func() tea.Msg {
		return ShowMessageMsg{Text: text, Type: MessageInfo}
	}
}

// errorText is the short form of err for the status bar.
func errorText(err error) string {
	if ee, ok := errors.AsEditorError(err); ok {
		return ee.Message
	}
	return err.Error()
}
