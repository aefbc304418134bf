package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func prop(typ, description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        typ,
		"description": description,
	}
}

func object(properties map[string]interface{}, required ...string) map[string]interface{} {
	schema := map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

var sessionProp = prop("string", "Session id returned by editor_open")

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Sessions
		{
			Name:        "editor_open",
			Description: "Open an editing session on an image file (PNG, JPEG or GIF, converted to gray) or on a black raster of the given size. Returns the session id.",
			InputSchema: object(map[string]interface{}{
				"path":   prop("string", "Absolute path to the image file. Omit to open a blank raster"),
				"width":  prop("integer", "Blank raster width. Defaults to the configured blank width"),
				"height": prop("integer", "Blank raster height. Defaults to the configured blank height"),
			}),
		},
		{
			Name:        "editor_close",
			Description: "Close an editing session. Unsaved changes are lost.",
			InputSchema: object(map[string]interface{}{
				"session": sessionProp,
			}, "session"),
		},
		{
			Name:        "editor_sessions",
			Description: "List open sessions in the order they were opened.",
			InputSchema: object(map[string]interface{}{}),
		},
		{
			Name:        "editor_stat",
			Description: "Report an image file's dimensions, format and size, and whether editor_open would accept it, without opening a session.",
			InputSchema: object(map[string]interface{}{
				"path": prop("string", "Absolute path to the image file"),
			}, "path"),
		},

		// Effects
		{
			Name:        "editor_controls",
			Description: "List the effect controls of a session in application order: toggles with their state and sliders with their range and value.",
			InputSchema: object(map[string]interface{}{
				"session": sessionProp,
			}, "session"),
		},
		{
			Name:        "editor_set_control",
			Description: "Switch a toggle effect (enabled) or move a slider effect (value). Slider values outside the effect range are rejected.",
			InputSchema: object(map[string]interface{}{
				"session": sessionProp,
				"name":    prop("string", "Effect name"),
				"enabled": prop("boolean", "New toggle state, for toggle effects"),
				"value":   prop("integer", "New slider value, for slider effects"),
			}, "session", "name"),
		},
		{
			Name:        "editor_reset_controls",
			Description: "Turn every toggle off and move every slider back to its default.",
			InputSchema: object(map[string]interface{}{
				"session": sessionProp,
			}, "session"),
		},

		// Selection and view
		{
			Name:        "editor_click",
			Description: "Click at a point of the rendered view (pixels, including padding and zoom). The first click picks a corner, the second completes the rectangle, a third clears it. Clicks outside the image are ignored.",
			InputSchema: object(map[string]interface{}{
				"session": sessionProp,
				"x":       prop("integer", "View X coordinate"),
				"y":       prop("integer", "View Y coordinate"),
			}, "session", "x", "y"),
		},
		{
			Name:        "editor_clear_selection",
			Description: "Drop the current selection.",
			InputSchema: object(map[string]interface{}{
				"session": sessionProp,
			}, "session"),
		},
		{
			Name:        "editor_selection",
			Description: "Report the selection state and, when present, the selection in raster coordinates. A point selection has width and height -1.",
			InputSchema: object(map[string]interface{}{
				"session": sessionProp,
			}, "session"),
		},
		{
			Name:        "editor_hover",
			Description: "Probe the cell under a point of the rendered view: raster coordinates, tone and its swatch colors.",
			InputSchema: object(map[string]interface{}{
				"session": sessionProp,
				"x":       prop("integer", "View X coordinate"),
				"y":       prop("integer", "View Y coordinate"),
			}, "session", "x", "y"),
		},
		{
			Name:        "editor_zoom",
			Description: "Set the integer zoom factor of the view. Factors outside 1..max_zoom are ignored.",
			InputSchema: object(map[string]interface{}{
				"session": sessionProp,
				"factor":  prop("integer", "Zoom factor"),
			}, "session", "factor"),
		},
		{
			Name:        "editor_render",
			Description: "Render the view as base64 PNG: the displayed image zoomed and padded, with the selection outline and a size caption. Out-of-range tones show in red.",
			InputSchema: object(map[string]interface{}{
				"session": sessionProp,
			}, "session"),
		},
		{
			Name:        "editor_tone",
			Description: "Read the displayed tone at raster coordinates.",
			InputSchema: object(map[string]interface{}{
				"session": sessionProp,
				"x":       prop("integer", "Raster X coordinate (0-based)"),
				"y":       prop("integer", "Raster Y coordinate (0-based)"),
			}, "session", "x", "y"),
		},

		// Operations
		{
			Name:        "editor_operations",
			Description: "List the operations that editor_invoke can run.",
			InputSchema: object(map[string]interface{}{}),
		},
		{
			Name:        "editor_invoke",
			Description: "Run an operation on a session. Prompts are answered from inputs, confirmations from confirms and file choosers from paths, in order; running out cancels the operation and leaves the session unchanged. Returns the messages the operation showed.",
			InputSchema: object(map[string]interface{}{
				"session": sessionProp,
				"name":    prop("string", "Operation name"),
				"inputs": map[string]interface{}{
					"type":        "array",
					"description": "Answers to integer prompts. Entries that are not integers are skipped with a message",
				},
				"confirms": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "boolean"},
					"description": "Answers to yes/no questions",
				},
				"paths": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Answers to file choosers",
				},
			}, "session", "name"),
		},
		{
			Name:        "editor_save",
			Description: "Save the displayed image (effects applied) as PNG. An existing file is only replaced when overwrite is true.",
			InputSchema: object(map[string]interface{}{
				"session":   sessionProp,
				"path":      prop("string", "Destination path"),
				"overwrite": prop("boolean", "Replace an existing file"),
			}, "session", "path"),
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
