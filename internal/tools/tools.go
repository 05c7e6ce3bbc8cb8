package tools

import (
	"encoding/json"
	"fmt"

	apperrors "github.com/computerscienceiscool/agent-workspace/internal/errors"
)

// ParameterSpec declares one parameter of a tool in JSON-schema terms.
// The schema itself is an external contract consumed by the agent
// orchestration layer.
type ParameterSpec struct {
	Name        string
	Type        string
	Description string
	Required    bool
}

// Tool is a named operation the agent can invoke.
type Tool struct {
	Name        string
	Description string
	Parameters  []ParameterSpec
	Run         func(args map[string]string) (string, error)
}

// Schema marshals the tool's parameter declarations as a JSON-schema
// object: {"type":"object","properties":{...},"required":[...]}.
func (t Tool) Schema() ([]byte, error) {
	properties := make(map[string]interface{}, len(t.Parameters))
	required := []string{}

	for _, p := range t.Parameters {
		properties[p.Name] = map[string]string{
			"type":        p.Type,
			"description": p.Description,
		}
		if p.Required {
			required = append(required, p.Name)
		}
	}

	return json.Marshal(map[string]interface{}{
		"type":       "object",
		"properties": properties,
		"required":   required,
	})
}

// Registry holds the tool table the flow interpreter dispatches into.
// Only registered tools are reachable; there is no other execution path.
type Registry struct {
	tools map[string]Tool
	order []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds or replaces a tool by name.
func (r *Registry) Register(t Tool) {
	if _, exists := r.tools[t.Name]; !exists {
		r.order = append(r.order, t.Name)
	}
	r.tools[t.Name] = t
}

// Get looks up a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Names returns tool names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Dispatch runs the named tool and flattens any failure into the
// "Error: <detail>" text the orchestration layer expects. Unknown names
// produce an error result rather than a panic or fallthrough.
func (r *Registry) Dispatch(name string, args map[string]string) string {
	t, ok := r.tools[name]
	if !ok {
		return apperrors.Flatten(fmt.Errorf("%w: %s", apperrors.ErrUnknownTool, name))
	}

	result, err := t.Run(args)
	if err != nil {
		return apperrors.Flatten(err)
	}
	return result
}
