// Package server implements the MCP (Model Context Protocol) server that
// exposes greyditor editing sessions as tools.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Sessions:
//   - editor_open: Open an image file or a blank raster
//   - editor_close: Close a session
//   - editor_sessions: List open sessions
//   - editor_stat: Inspect an image file without opening it
//
// Effects:
//   - editor_controls: List effect controls and their state
//   - editor_set_control: Switch a toggle or move a slider
//   - editor_reset_controls: Return every control to its default
//
// Selection and view:
//   - editor_click: Click at a view-space point
//   - editor_clear_selection: Drop the selection
//   - editor_selection: Report the selection
//   - editor_hover: Probe the cell under a view-space point
//   - editor_zoom: Change the zoom factor
//   - editor_render: Render the view as base64 PNG
//   - editor_tone: Read a tone at raster coordinates
//
// Operations:
//   - editor_operations: List operations
//   - editor_invoke: Run an operation with scripted prompt answers
//   - editor_save: Save the displayed image
//
// # Prompts
//
// Operations that ask the user for input get their answers from the
// editor_invoke arguments, consumed in order. Running out of answers
// cancels the operation, which leaves the session unchanged.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// A failed or canceled operation is not a tool error: editor_invoke reports
// it in its result, along with any messages the operation showed.
package server
