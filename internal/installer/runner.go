package installer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"syscall"
	"unicode/utf8"

	"github.com/omarchy/cybex-installer/internal/errdefs"
	"github.com/omarchy/cybex-installer/internal/log"
)

// EntrypointName is the executable expected inside the script directory.
const EntrypointName = "install"

// Event is one message from a running action. Exactly one terminal event
// (Completed or Error) is sent per invocation, after which the channel is
// closed.
type Event interface{ installerEvent() }

// OutputLine is a single line from the subprocess, stdout or stderr.
type OutputLine struct {
	Text string
}

// Completed reports the subprocess exit code. Terminal.
type Completed struct {
	ExitCode int
}

// Error reports that the subprocess could not be spawned or awaited.
// Terminal.
type Error struct {
	Message string
}

func (OutputLine) installerEvent() {}
func (Completed) installerEvent()  {}
func (Error) installerEvent()      {}

// ValidateScriptDir checks that the install entrypoint exists in dir.
func ValidateScriptDir(dir string) error {
	info, err := os.Stat(filepath.Join(dir, EntrypointName))
	if err != nil || info.IsDir() {
		return errdefs.NewCustomError(errdefs.ErrTypeMissingEntrypoint,
			fmt.Sprintf("no %q entrypoint found in %s", EntrypointName, dir))
	}
	return nil
}

// Run starts the install command for optionID and returns the event
// channel. The command runs with the script directory as its working
// directory and receives an optional leading "uninstall" argument followed
// by the option id. Output from stdout and stderr is forwarded line by
// line; ordering is preserved within each stream but not between them.
//
// The child runs in its own process group, so quitting the UI mid-action
// detaches from it rather than killing it.
func Run(scriptDir, optionID string, uninstall bool) <-chan Event {
	events := make(chan Event, 64)
	go execute(scriptDir, optionID, uninstall, events)
	return events
}

func execute(scriptDir, optionID string, uninstall bool, events chan<- Event) {
	defer close(events)

	var args []string
	if uninstall {
		args = append(args, "uninstall")
	}
	args = append(args, optionID)

	cmd := exec.Command(filepath.Join(scriptDir, EntrypointName), args...)
	cmd.Dir = scriptDir
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		events <- Error{Message: fmt.Sprintf("failed to open stdout pipe: %v", err)}
		return
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		events <- Error{Message: fmt.Sprintf("failed to open stderr pipe: %v", err)}
		return
	}

	if err := cmd.Start(); err != nil {
		events <- Error{Message: fmt.Sprintf("failed to spawn %s: %v", EntrypointName, err)}
		return
	}
	log.Infof("started %s %v (pid %d)", EntrypointName, args, cmd.Process.Pid)

	var readers sync.WaitGroup
	readers.Add(2)
	go streamLines(stdout, events, &readers)
	go streamLines(stderr, events, &readers)

	// The pipes must be fully drained before Wait reclaims them.
	readers.Wait()

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			events <- Completed{ExitCode: exitErr.ExitCode()}
			return
		}
		events <- Error{Message: fmt.Sprintf("failed waiting for %s: %v", EntrypointName, err)}
		return
	}
	events <- Completed{ExitCode: 0}
}

func streamLines(r io.Reader, events chan<- Event, wg *sync.WaitGroup) {
	defer wg.Done()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if !utf8.ValidString(line) {
			// Undecodable lines are dropped, not fatal to the stream.
			continue
		}
		events <- OutputLine{Text: line}
	}
}
