package flow

import (
	"fmt"
	"strings"

	"github.com/computerscienceiscool/agent-workspace/internal/session"
	"github.com/computerscienceiscool/agent-workspace/internal/tools"
)

// MaxResultLength caps the combined output returned to the agent.
const MaxResultLength = 1000

const truncationNotice = "...[Truncated, Content is too long]"

// tagTools maps script tags onto registered tool names.
var tagTools = map[string]string{
	"read":   "read_file",
	"write":  "write_to_file",
	"append": "append_to_file",
	"delete": "delete_file",
	"search": "search_files",
	"ingest": "ingest_file",
}

// Interpreter executes flow scripts by dispatching each step to the
// registered tool table. Submitted scripts are never evaluated as code;
// a step naming an unknown tool produces an error line in the output and
// the flow continues.
type Interpreter struct {
	registry        *tools.Registry
	parser          *Parser
	session         *session.Session
	maxResultLength int
}

// NewInterpreter creates an interpreter over the given tool registry.
func NewInterpreter(registry *tools.Registry, sess *session.Session) *Interpreter {
	return &Interpreter{
		registry:        registry,
		parser:          NewParser(),
		session:         sess,
		maxResultLength: MaxResultLength,
	}
}

// SetMaxResultLength overrides the default result cap.
func (it *Interpreter) SetMaxResultLength(n int) {
	if n > 0 {
		it.maxResultLength = n
	}
}

// Execute runs every step of the script in document order and returns the
// combined output, truncated at the result cap. plan, when non-empty, is
// echoed ahead of the output so the orchestration layer can show what the
// agent intended alongside what actually happened.
func (it *Interpreter) Execute(script, plan string) string {
	steps := it.parser.Parse(script)

	var out strings.Builder
	for _, step := range steps {
		result := it.runStep(step)
		out.WriteString(fmt.Sprintf("<%s %s> %s\n", step.Tag, step.Argument, result))
	}

	result := out.String()
	// The cap counts characters; truncation must not cut a rune in half.
	if runes := []rune(result); len(runes) > it.maxResultLength {
		result = string(runes[:it.maxResultLength]) + truncationNotice
	}

	if plan != "" {
		return fmt.Sprintf("Execution Plan:\n%s\n\nExecution Output:\n%s", plan, result)
	}
	return result
}

func (it *Interpreter) runStep(step Step) string {
	toolName, ok := tagTools[step.Tag]
	if !ok {
		// The parser only emits known tags, but dispatch still guards
		// against a tag with no registered tool.
		toolName = step.Tag
	}

	result := it.registry.Dispatch(toolName, argsFor(step))
	if it.session != nil {
		it.session.RecordCommand()
	}
	return result
}

// argsFor maps a parsed step onto the named arguments its tool declares.
func argsFor(step Step) map[string]string {
	switch step.Tag {
	case "search":
		return map[string]string{"directory": step.Argument}
	case "write", "append":
		return map[string]string{"filename": step.Argument, "text": step.Body}
	default:
		return map[string]string{"filename": step.Argument}
	}
}
