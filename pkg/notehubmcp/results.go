package notehubmcp

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
)

type toolSuccess struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

// toolFailure carries the original tool name and arguments so a failed
// call can be reproduced from the response alone.
type toolFailure struct {
	Success   bool           `json:"success"`
	Tool      string         `json:"tool"`
	Arguments map[string]any `json:"arguments,omitempty"`
	Message   string         `json:"message"`
}

// bindArguments decodes the call's argument object into a per-tool
// param struct. Schemas are closed: an unrecognized argument is rejected
// here, before anything reaches the facades.
func bindArguments(req mcp.CallToolRequest, out any) error {
	raw, err := json.Marshal(req.GetArguments())
	if err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}

	return nil
}

func (ns *NoteHubServer) successResult(data any) (*mcp.CallToolResult, error) {
	payload, err := json.MarshalIndent(toolSuccess{Success: true, Data: data}, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf(`{"success":false,"message":"failed to encode result: %v"}`, err)), nil
	}

	return mcp.NewToolResultText(string(payload)), nil
}

func (ns *NoteHubServer) failureResult(req mcp.CallToolRequest, err error) (*mcp.CallToolResult, error) {
	ns.logger.Warn("tool call failed",
		zap.String("tool", req.Params.Name),
		zap.Error(err))

	failure := toolFailure{
		Tool:      req.Params.Name,
		Arguments: req.GetArguments(),
		Message:   err.Error(),
	}

	payload, marshalErr := json.MarshalIndent(failure, "", "  ")
	if marshalErr != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultError(string(payload)), nil
}
