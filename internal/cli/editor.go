package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/mrlokans/birdr/internal/utils"
)

// ErrEditorFailed is returned when the notes editor exits unsuccessfully.
var ErrEditorFailed = errors.New("editor exited unsuccessfully")

// NoteEditor captures free-form notes by opening a temporary file in an
// external editor.
type NoteEditor struct {
	Command string // e.g. "vi" or "code --wait"
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// NewNoteEditor returns an editor attached to the process's terminal.
func NewNoteEditor(command string) *NoteEditor {
	return &NoteEditor{
		Command: command,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Capture runs the editor on a fresh temporary file and returns what was
// written, with runs of whitespace collapsed to single spaces. The file is
// removed on every path out.
func (e *NoteEditor) Capture() (string, error) {
	args := strings.Fields(e.Command)
	if len(args) == 0 {
		return "", fmt.Errorf("%w: no editor configured", ErrEditorFailed)
	}

	f, err := os.CreateTemp("", "birdr-notes-*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to create notes file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to create notes file: %w", err)
	}

	cmd := exec.Command(args[0], append(args[1:], path)...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrEditorFailed, args[0], err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read notes file: %w", err)
	}
	return utils.CollapseWhitespace(string(data)), nil
}
