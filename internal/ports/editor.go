package ports

import "os/exec"

// EditorOpener defines the interface for opening files in an external editor
type EditorOpener interface {
	// OpenFile opens the file in $EDITOR and waits for it to exit
	OpenFile(path string) error

	// Command returns an exec.Cmd for bubbletea's ExecProcess
	Command(path string) (*exec.Cmd, error)
}
