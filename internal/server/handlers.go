package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"

	"github.com/ironsheep/greyditor/internal/editor"
	"github.com/ironsheep/greyditor/internal/operation"
	"github.com/ironsheep/greyditor/internal/ordered"
	"github.com/ironsheep/greyditor/internal/selection"
)

// ErrUnknownTool reports a tools/call for a tool that does not exist.
var ErrUnknownTool = errors.New("unknown tool")

// ErrInvalidArguments reports tool arguments that are missing or conflict.
var ErrInvalidArguments = errors.New("invalid arguments")

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "editor_open", "editor_invoke").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}
	if len(params.Arguments) == 0 {
		params.Arguments = json.RawMessage("{}")
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.log.WithError(err).WithField("tool", params.Name).Warn("tool failed")
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Sessions
	case "editor_open":
		return s.handleOpen(args)
	case "editor_close":
		return s.handleClose(args)
	case "editor_sessions":
		return s.ed.Sessions(), nil
	case "editor_stat":
		return s.handleStat(args)

	// Effects
	case "editor_controls":
		return s.handleControls(args)
	case "editor_set_control":
		return s.handleSetControl(args)
	case "editor_reset_controls":
		return s.handleResetControls(args)

	// Selection and view
	case "editor_click":
		return s.handleClick(args)
	case "editor_clear_selection":
		return s.handleClearSelection(args)
	case "editor_selection":
		return s.handleSelection(args)
	case "editor_hover":
		return s.handleHover(args)
	case "editor_zoom":
		return s.handleZoom(args)
	case "editor_render":
		return s.handleRender(args)
	case "editor_tone":
		return s.handleTone(args)

	// Operations
	case "editor_operations":
		return s.ed.Operations(), nil
	case "editor_invoke":
		return s.handleInvoke(args)
	case "editor_save":
		return s.handleSave(args)

	default:
		defs := GetToolDefinitions()
		names := make([]string, 0, len(defs))
		for _, t := range defs {
			names = append(names, t.Name)
		}
		return nil, ordered.NewUnknownError(ErrUnknownTool, "tool", name, ordered.Suggest(name, names))
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

type sessionArgs struct {
	Session string `json:"session"`
}

// session decodes args into dst, which must embed sessionArgs, and returns
// the session it names.
func (s *Server) session(args json.RawMessage, dst interface{ id() string }) (*editor.Session, error) {
	if err := json.Unmarshal(args, dst); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	if dst.id() == "" {
		return nil, fmt.Errorf("%w: session is required", ErrInvalidArguments)
	}
	return s.ed.Session(dst.id())
}

func (a *sessionArgs) id() string { return a.Session }

// sessionView describes a session after a change.
type sessionView struct {
	editor.Info
	Zoom    int `json:"zoom"`
	Padding int `json:"padding"`
}

func viewOf(ses *editor.Session) sessionView {
	vp := ses.Viewport()
	return sessionView{Info: ses.Info(), Zoom: vp.Zoom, Padding: vp.Padding}
}

// selectionView reports a selection phase and, when present, its geometry.
type selectionView struct {
	State     string               `json:"state"`
	Selection *selection.Selection `json:"selection,omitempty"`
	Ignored   bool                 `json:"ignored,omitempty"`
}

func selectionOf(ses *editor.Session) selectionView {
	v := selectionView{State: ses.SelectionState().String()}
	if sel, ok := ses.Selection(); ok {
		v.Selection = &sel
	}
	return v
}

// === Session Handlers ===

type openArgs struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func (s *Server) handleOpen(args json.RawMessage) (interface{}, error) {
	var a openArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}

	var (
		ses *editor.Session
		err error
	)
	if a.Path != "" {
		if a.Width != 0 || a.Height != 0 {
			return nil, fmt.Errorf("%w: give either path or width/height", ErrInvalidArguments)
		}
		ses, err = s.ed.OpenFile(a.Path)
	} else {
		if a.Width == 0 {
			a.Width = s.opts.BlankWidth
		}
		if a.Height == 0 {
			a.Height = s.opts.BlankHeight
		}
		ses, err = s.ed.OpenBlank(a.Width, a.Height)
	}
	if err != nil {
		return nil, err
	}
	return viewOf(ses), nil
}

type statArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleStat(args json.RawMessage) (interface{}, error) {
	var a statArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	if a.Path == "" {
		return nil, fmt.Errorf("%w: path is required", ErrInvalidArguments)
	}
	return s.ed.Store().Stat(a.Path)
}

func (s *Server) handleClose(args json.RawMessage) (interface{}, error) {
	var a sessionArgs
	ses, err := s.session(args, &a)
	if err != nil {
		return nil, err
	}
	if err := s.ed.Close(ses.ID()); err != nil {
		return nil, err
	}
	return map[string]interface{}{"closed": ses.ID(), "open": len(s.ed.Sessions())}, nil
}

// === Effect Handlers ===

func (s *Server) handleControls(args json.RawMessage) (interface{}, error) {
	var a sessionArgs
	ses, err := s.session(args, &a)
	if err != nil {
		return nil, err
	}
	return ses.Controls(), nil
}

type setControlArgs struct {
	sessionArgs
	Name    string `json:"name"`
	Enabled *bool  `json:"enabled"`
	Value   *int   `json:"value"`
}

func (s *Server) handleSetControl(args json.RawMessage) (interface{}, error) {
	var a setControlArgs
	ses, err := s.session(args, &a)
	if err != nil {
		return nil, err
	}

	switch {
	case a.Enabled != nil && a.Value != nil:
		return nil, fmt.Errorf("%w: give either enabled or value", ErrInvalidArguments)
	case a.Enabled != nil:
		err = ses.SetToggle(a.Name, *a.Enabled)
	case a.Value != nil:
		err = ses.SetValue(a.Name, *a.Value)
	default:
		return nil, fmt.Errorf("%w: enabled or value is required", ErrInvalidArguments)
	}
	if err != nil {
		return nil, err
	}
	return ses.Controls(), nil
}

func (s *Server) handleResetControls(args json.RawMessage) (interface{}, error) {
	var a sessionArgs
	ses, err := s.session(args, &a)
	if err != nil {
		return nil, err
	}
	ses.ResetControls()
	return ses.Controls(), nil
}

// === Selection and View Handlers ===

type pointArgs struct {
	sessionArgs
	X int `json:"x"`
	Y int `json:"y"`
}

func (s *Server) handleClick(args json.RawMessage) (interface{}, error) {
	var a pointArgs
	ses, err := s.session(args, &a)
	if err != nil {
		return nil, err
	}
	_, accepted := ses.Click(image.Pt(a.X, a.Y))
	v := selectionOf(ses)
	v.Ignored = !accepted
	return v, nil
}

func (s *Server) handleClearSelection(args json.RawMessage) (interface{}, error) {
	var a sessionArgs
	ses, err := s.session(args, &a)
	if err != nil {
		return nil, err
	}
	ses.ClearSelection()
	return selectionOf(ses), nil
}

func (s *Server) handleSelection(args json.RawMessage) (interface{}, error) {
	var a sessionArgs
	ses, err := s.session(args, &a)
	if err != nil {
		return nil, err
	}
	return selectionOf(ses), nil
}

func (s *Server) handleHover(args json.RawMessage) (interface{}, error) {
	var a pointArgs
	ses, err := s.session(args, &a)
	if err != nil {
		return nil, err
	}
	return ses.Hover(image.Pt(a.X, a.Y)), nil
}

type zoomArgs struct {
	sessionArgs
	Factor int `json:"factor"`
}

func (s *Server) handleZoom(args json.RawMessage) (interface{}, error) {
	var a zoomArgs
	ses, err := s.session(args, &a)
	if err != nil {
		return nil, err
	}
	accepted := ses.Zoom(a.Factor)
	return map[string]interface{}{"zoom": ses.ZoomFactor(), "accepted": accepted}, nil
}

func (s *Server) handleRender(args json.RawMessage) (interface{}, error) {
	var a sessionArgs
	ses, err := s.session(args, &a)
	if err != nil {
		return nil, err
	}
	return ses.Frame()
}

func (s *Server) handleTone(args json.RawMessage) (interface{}, error) {
	var a pointArgs
	ses, err := s.session(args, &a)
	if err != nil {
		return nil, err
	}
	tone, err := ses.Tone(a.X, a.Y)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"x": a.X, "y": a.Y, "tone": tone}, nil
}

// === Operation Handlers ===

type invokeArgs struct {
	sessionArgs
	Name     string            `json:"name"`
	Inputs   []json.RawMessage `json:"inputs"`
	Confirms []bool            `json:"confirms"`
	Paths    []string          `json:"paths"`
}

// InvokeResult reports the outcome of editor_invoke.
type InvokeResult struct {
	Committed bool     `json:"committed"`
	Canceled  bool     `json:"canceled,omitempty"`
	Error     string   `json:"error,omitempty"`
	Messages  []string `json:"messages"`
	Width     int      `json:"width"`
	Height    int      `json:"height"`
}

func (s *Server) handleInvoke(args json.RawMessage) (interface{}, error) {
	var a invokeArgs
	ses, err := s.session(args, &a)
	if err != nil {
		return nil, err
	}

	p := &scripted{inputs: a.Inputs, confirms: a.Confirms, paths: a.Paths}
	err = ses.Invoke(a.Name, editor.IO{Prompter: p, Files: p})
	if errors.Is(err, operation.ErrUnknownOperation) {
		return nil, err
	}

	res := InvokeResult{
		Committed: err == nil,
		Messages:  p.messages,
		Width:     ses.Info().Width,
		Height:    ses.Info().Height,
	}
	if res.Messages == nil {
		res.Messages = []string{}
	}
	if err != nil {
		res.Canceled = errors.Is(err, operation.ErrCanceled)
		res.Error = err.Error()
	}
	return res, nil
}

type saveArgs struct {
	sessionArgs
	Path      string `json:"path"`
	Overwrite bool   `json:"overwrite"`
}

func (s *Server) handleSave(args json.RawMessage) (interface{}, error) {
	var a saveArgs
	ses, err := s.session(args, &a)
	if err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("%w: path is required", ErrInvalidArguments)
	}
	if !a.Overwrite && s.ed.Store().Exists(a.Path) {
		return nil, fmt.Errorf("%w: %s exists (set overwrite to replace it)", ErrInvalidArguments, a.Path)
	}
	if err := ses.Save(a.Path); err != nil {
		return nil, err
	}
	return map[string]interface{}{"saved": a.Path}, nil
}
