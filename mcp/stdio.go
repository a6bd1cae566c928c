package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/internmatch/backend/tools"
)

// NewStdioServer mirrors every registry tool onto an mcp-go server
func NewStdioServer(registry *tools.ToolRegistry, name, version string) *server.MCPServer {
	s := server.NewMCPServer(name, version)

	for _, tool := range registry.List() {
		def := mcpgo.NewTool(tool.Name(),
			mcpgo.WithDescription(tool.Description()),
		)
		def.InputSchema = toInputSchema(tool.InputSchema())
		s.AddTool(def, toolHandler(tool))
	}

	return s
}

// ServeStdio serves the registry over stdin/stdout until EOF
func ServeStdio(registry *tools.ToolRegistry, name, version string) error {
	log.Printf("[MCP] Serving %d tools over stdio", len(registry.List()))
	return server.ServeStdio(NewStdioServer(registry, name, version))
}

func toInputSchema(schema map[string]interface{}) mcpgo.ToolInputSchema {
	out := mcpgo.ToolInputSchema{Type: "object"}
	if props, ok := schema["properties"].(map[string]interface{}); ok {
		out.Properties = props
	}
	if required, ok := schema["required"].([]string); ok {
		out.Required = required
	}
	return out
}

func toolHandler(tool tools.Tool) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
		args, ok := request.Params.Arguments.(map[string]interface{})
		if !ok && request.Params.Arguments != nil {
			return mcpgo.NewToolResultError("invalid arguments format"), nil
		}
		if args == nil {
			args = map[string]interface{}{}
		}

		input, err := json.Marshal(args)
		if err != nil {
			return mcpgo.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		log.Printf("[MCP] Executing tool: %s", tool.Name())
		raw, err := tool.Execute(ctx, input)
		if err != nil {
			return mcpgo.NewToolResultError(err.Error()), nil
		}

		var result tools.ToolResult
		if err := json.Unmarshal(raw, &result); err != nil {
			return mcpgo.NewToolResultError(fmt.Sprintf("malformed tool output: %v", err)), nil
		}
		if !result.Success {
			return mcpgo.NewToolResultError(result.Error), nil
		}
		return mcpgo.NewToolResultText(string(result.Data)), nil
	}
}
