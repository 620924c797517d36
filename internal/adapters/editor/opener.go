package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"streetinterview/internal/ports"
)

var _ ports.EditorOpener = (*Opener)(nil)

// fallbackEditors are tried in order when neither config nor environment names one
var fallbackEditors = []string{"nvim", "vim", "vi", "nano"}

// Opener opens exported transcripts in the user's editor
type Opener struct {
	preferred string
	lookPath  func(string) (string, error)
	getenv    func(string) string
}

// NewOpener creates an opener. preferred may be empty, or a command line
// such as "code --wait"; it wins over $VISUAL and $EDITOR.
func NewOpener(preferred string) *Opener {
	return &Opener{
		preferred: preferred,
		lookPath:  exec.LookPath,
		getenv:    os.Getenv,
	}
}

// OpenFile opens a file and waits for the editor to exit
func (o *Opener) OpenFile(path string) error {
	cmd, err := o.Command(path)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns an exec.Cmd wired to the current terminal
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	argv := o.resolve()
	if len(argv) == 0 {
		return nil, fmt.Errorf("no editor found: set $EDITOR or editor.command")
	}

	cmd := exec.Command(argv[0], append(argv[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

func (o *Opener) resolve() []string {
	for _, candidate := range []string{o.preferred, o.getenv("VISUAL"), o.getenv("EDITOR")} {
		if fields := strings.Fields(candidate); len(fields) > 0 {
			return fields
		}
	}
	for _, name := range fallbackEditors {
		if path, err := o.lookPath(name); err == nil {
			return []string{path}
		}
	}
	return nil
}

// Available reports whether any editor can be launched
func (o *Opener) Available() bool {
	return len(o.resolve()) > 0
}
