package app

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/computerscienceiscool/agent-workspace/internal/config"
	"github.com/computerscienceiscool/agent-workspace/internal/flow"
	"github.com/computerscienceiscool/agent-workspace/internal/memory"
	"github.com/computerscienceiscool/agent-workspace/internal/session"
	"github.com/computerscienceiscool/agent-workspace/internal/tools"
	"github.com/computerscienceiscool/agent-workspace/internal/workspace"
)

// App represents the main application
type App struct {
	config      *config.Config
	store       *workspace.Store
	mem         *memory.SQLiteMemory
	session     *session.Session
	interpreter *flow.Interpreter
	registry    *tools.Registry
}

// Run executes the application based on configuration: interactive mode
// processes flow scripts as they arrive on stdin, pipe mode reads the
// whole input and executes it as one script.
func (a *App) Run() error {
	if a.config.Verbose {
		a.printVerboseInfo()
	}

	if a.config.Interactive {
		return a.runInteractive()
	}
	return a.runPipeMode()
}

// Close releases the app's resources.
func (a *App) Close() error {
	return a.mem.Close()
}

// Store returns the workspace store.
func (a *App) Store() *workspace.Store {
	return a.store
}

// Memory returns the memory database.
func (a *App) Memory() *memory.SQLiteMemory {
	return a.mem
}

// Interpreter returns the flow interpreter.
func (a *App) Interpreter() *flow.Interpreter {
	return a.interpreter
}

// Registry returns the tool registry.
func (a *App) Registry() *tools.Registry {
	return a.registry
}

// Session returns the app's session.
func (a *App) Session() *session.Session {
	return a.session
}

// SessionStats renders the session counters for the status line shown
// after each executed flow.
func (a *App) SessionStats() string {
	return fmt.Sprintf("Commands executed: %d | Time elapsed: %s",
		a.session.CommandsRun(), a.session.Elapsed().Round(time.Millisecond))
}

// runPipeMode handles non-interactive mode (pipe/file input)
func (a *App) runPipeMode() error {
	var input []byte
	var err error

	if a.config.InputFile != "" {
		input, err = os.ReadFile(a.config.InputFile)
		if err != nil {
			return fmt.Errorf("cannot read input file: %w", err)
		}
	} else {
		input, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("cannot read stdin: %w", err)
		}
	}

	result := a.interpreter.Execute(string(input), "")

	if a.config.OutputFile != "" {
		if err := os.WriteFile(a.config.OutputFile, []byte(result), 0644); err != nil {
			return fmt.Errorf("cannot write output file: %w", err)
		}
	} else {
		fmt.Print(result)
	}

	if a.config.Verbose {
		fmt.Fprintln(os.Stderr, a.SessionStats())
	}

	return nil
}

// runInteractive handles interactive mode
func (a *App) runInteractive() error {
	scanner := bufio.NewScanner(os.Stdin)
	var buffer strings.Builder

	fmt.Fprintln(os.Stderr, "agent-workspace - Interactive Mode")
	fmt.Fprintln(os.Stderr, "Supports steps: <read filepath>, <write filepath>content</write>, <append filepath>content</append>, <delete filepath>, <search directory>, <ingest filepath>")

	for scanner.Scan() {
		line := scanner.Text()
		buffer.WriteString(line)
		buffer.WriteString("\n")

		if containsStep(line) {
			result := a.interpreter.Execute(buffer.String(), "")
			fmt.Print(result)
			buffer.Reset()

			fmt.Fprintln(os.Stderr, a.SessionStats())
			fmt.Fprintln(os.Stderr, "\nWaiting for more input...")
		}
	}

	if buffer.Len() > 0 {
		result := a.interpreter.Execute(buffer.String(), "")
		fmt.Print(result)
	}

	return scanner.Err()
}

// containsStep reports whether the line opens or closes a flow tag. Write
// and append blocks span lines, so those only fire on their closing tag.
func containsStep(line string) bool {
	for _, marker := range []string{"<read", "<delete", "<search", "<ingest", "</write>", "</append>"} {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}

// printVerboseInfo prints verbose configuration information
func (a *App) printVerboseInfo() {
	fmt.Fprintf(os.Stderr, "Workspace root: %s\n", a.store.Root())
	fmt.Fprintf(os.Stderr, "Restricted: %v\n", a.config.Restricted)
	fmt.Fprintf(os.Stderr, "Operation log: %s\n", a.store.Log().Path())
	fmt.Fprintf(os.Stderr, "Chunk max length: %d\n", a.config.ChunkMaxLength)
	fmt.Fprintf(os.Stderr, "Chunk overlap: %d\n", a.config.ChunkOverlap)
	fmt.Fprintf(os.Stderr, "Registered tools: %v\n", a.registry.Names())
}
