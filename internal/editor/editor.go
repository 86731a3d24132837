package editor

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// ResolveEditor determines which editor to use based on config, env vars, and fallback.
func ResolveEditor(configEditor string) string {
	if configEditor != "" {
		return configEditor
	}
	if ed := os.Getenv("EDITOR"); ed != "" {
		return ed
	}
	if ed := os.Getenv("VISUAL"); ed != "" {
		return ed
	}
	return "vi"
}

// Editor runs an external editor command on a temporary file.
type Editor struct {
	Command string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// New returns an Editor for the resolved editor command, attached to the
// terminal.
func New(configEditor string) *Editor {
	return &Editor{
		Command: ResolveEditor(configEditor),
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Edit opens initial in the editor and returns the saved text. When the
// file is left empty or unchanged, changed is false; an empty file
// returns "".
func (e *Editor) Edit(initial string) (content string, changed bool, err error) {
	tmp, err := os.CreateTemp("", "diary-*.md")
	if err != nil {
		return "", false, fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.WriteString(initial); err != nil {
		tmp.Close()
		return "", false, fmt.Errorf("writing temp file: %w", err)
	}
	tmp.Close()

	parts := strings.Fields(e.Command)
	if len(parts) == 0 {
		return "", false, fmt.Errorf("empty editor command")
	}

	cmd := exec.Command(parts[0], append(parts[1:], tmpName)...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	if err := cmd.Run(); err != nil {
		return "", false, fmt.Errorf("editor exited with error: %w", err)
	}

	data, err := os.ReadFile(tmpName)
	if err != nil {
		return "", false, fmt.Errorf("reading edited file: %w", err)
	}

	result := string(data)
	if strings.TrimSpace(result) == "" {
		return "", false, nil
	}
	if strings.TrimSpace(result) == strings.TrimSpace(initial) {
		return initial, false, nil
	}
	return result, true, nil
}
