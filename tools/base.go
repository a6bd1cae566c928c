package tools

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
)

// Tool represents an MCP tool interface
type Tool interface {
	// Name returns the tool name
	Name() string

	// Description returns the tool description for the agent
	Description() string

	// InputSchema returns the JSON schema for the tool input
	InputSchema() map[string]interface{}

	// Execute runs the tool with the given input
	Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error)
}

// ToolRegistry holds all available tools
type ToolRegistry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

// NewToolRegistry creates a new tool registry
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool to the registry
func (r *ToolRegistry) Register(tool Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[tool.Name()] = tool
}

// Get retrieves a tool by name
func (r *ToolRegistry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns all registered tools sorted by name
func (r *ToolRegistry) List() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tools := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		tools = append(tools, tool)
	}
	sort.Slice(tools, func(i, j int) bool { return tools[i].Name() < tools[j].Name() })
	return tools
}

// GetToolDefinitions returns tool definitions in function-calling format
func (r *ToolRegistry) GetToolDefinitions() []map[string]interface{} {
	tools := r.List()
	definitions := make([]map[string]interface{}, 0, len(tools))
	for _, tool := range tools {
		def := map[string]interface{}{
			"name":        tool.Name(),
			"description": tool.Description(),
			"parameters":  tool.InputSchema(),
		}
		definitions = append(definitions, def)
	}
	return definitions
}

// ToolResult represents the result of a tool execution
type ToolResult struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// NewSuccessResult creates a successful tool result
func NewSuccessResult(data interface{}) (json.RawMessage, error) {
	result := ToolResult{Success: true}
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	result.Data = dataBytes
	return json.Marshal(result)
}

// NewErrorResult creates an error tool result
func NewErrorResult(errMsg string) (json.RawMessage, error) {
	result := ToolResult{
		Success: false,
		Error:   errMsg,
	}
	return json.Marshal(result)
}

// profileSchema is the JSON schema fragment shared by every tool taking a profile
func profileSchema() map[string]interface{} {
	stringList := map[string]interface{}{
		"type":  "array",
		"items": map[string]interface{}{"type": "string"},
	}
	return map[string]interface{}{
		"type":        "object",
		"description": "Student profile: education, department, sector, location, skills, optional preferences and biasMitigation",
		"properties": map[string]interface{}{
			"education":  map[string]interface{}{"type": "string"},
			"department": map[string]interface{}{"type": "string"},
			"sector":     map[string]interface{}{"type": "string"},
			"location":   map[string]interface{}{"type": "string"},
			"skills":     stringList,
			"interests":  stringList,
			"language":   map[string]interface{}{"type": "string", "description": "UI language code, e.g. en, hi"},
			"preferences": map[string]interface{}{
				"type":                 "object",
				"description":          "Factor weights 0-4 keyed by skills, education, department, sector, location, stipend",
				"additionalProperties": map[string]interface{}{"type": "integer", "minimum": 0, "maximum": 4},
			},
			"biasMitigation": map[string]interface{}{"type": "boolean"},
		},
	}
}
