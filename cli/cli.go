// Package cli provides the shared utilities the ledgerfmt command-line
// driver is built from: styled status output, a stdin-or-file argument
// type for kong, and terminal detection. Grounded on the teacher's cli
// package of the same shape (cli/cli.go).
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	successSymbol = "✓"
	errorSymbol   = "✗"
	infoSymbol    = "→"

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D787", Dark: "#00D787"})
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#5FAFFF", Dark: "#5FAFFF"})
)

func printSuccess(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", successStyle.Render(successSymbol), message)
}

func printError(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", errorStyle.Render(errorSymbol), errorStyle.Render(message))
}

func printInfof(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", infoStyle.Render(infoSymbol), fmt.Sprintf(format, args...))
}

// isTerminal reports whether stdin is an interactive terminal, so
// prompts and color default off under redirected/piped input.
func isTerminal() bool {
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// terminalWidth reports stdout's column width, falling back to 80 when
// it isn't a terminal (piped output, CI logs).
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// promptYesNo asks a yes/no question interactively, defaulting to
// false when stdin isn't a terminal (scripts, CI) rather than hanging.
func promptYesNo(question string) (bool, error) {
	if !isTerminal() {
		return false, nil
	}

	var confirm bool
	form := huh.NewConfirm().
		Title(question).
		WithButtonAlignment(lipgloss.Left).
		Value(&confirm)

	if err := form.Run(); err != nil {
		return false, fmt.Errorf("read response: %w", err)
	}
	return confirm, nil
}

// FileOrStdin accepts either a file path argument or "-"/omitted for
// stdin. For stdin, Filename is set to "<stdin>" and Contents is
// populated eagerly; for a real path, Contents is read lazily via
// GetSourceContent.
type FileOrStdin struct {
	Filename string
	Contents []byte
}

// Decode implements kong.MapperValue so FileOrStdin can be used
// directly as an optional positional argument.
func (f *FileOrStdin) Decode(ctx *kong.DecodeContext) error {
	var filename string
	if err := ctx.Scan.PopValueInto("filename", &filename); err != nil {
		return err
	}
	return f.set(filename)
}

func (f *FileOrStdin) set(filename string) error {
	if filename == "" || filename == "-" {
		contents, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		f.Filename = "<stdin>"
		f.Contents = contents
		return nil
	}
	if _, err := os.Stat(filename); err != nil {
		return err
	}
	f.Filename = filename
	return nil
}

// EnsureContents reads from stdin if no filename was ever set — the
// path taken when the positional argument is omitted entirely.
func (f *FileOrStdin) EnsureContents() error {
	if f.Filename == "" {
		return f.set("-")
	}
	return nil
}

// GetSourceContent returns the file's bytes, reading from disk for a
// real path or returning the already-buffered stdin contents.
func (f *FileOrStdin) GetSourceContent() ([]byte, error) {
	if f.Filename == "<stdin>" {
		return f.Contents, nil
	}
	return os.ReadFile(f.Filename)
}
