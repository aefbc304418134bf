package server

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/ironsheep/greyditor/internal/operation"
)

// MsgNotAnInteger is shown for a prompt answer that is not an integer.
const MsgNotAnInteger = "value is not an integer"

// scripted answers an operation's prompts from the editor_invoke arguments
// and collects the messages it shows.
type scripted struct {
	inputs   []json.RawMessage
	confirms []bool
	paths    []string
	messages []string
}

// PromptInteger returns the next integer answer. JSON numbers and numeric
// strings count; anything else is skipped with a message, the way a user
// would be asked again after typing something unparseable.
func (p *scripted) PromptInteger(label string) (int, error) {
	for len(p.inputs) > 0 {
		raw := p.inputs[0]
		p.inputs = p.inputs[1:]
		if v, ok := parseInteger(raw); ok {
			return v, nil
		}
		p.Message(MsgNotAnInteger)
	}
	return 0, fmt.Errorf("%s: %w", label, operation.ErrCanceled)
}

func parseInteger(raw json.RawMessage) (int, bool) {
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return n, err == nil
}

func (p *scripted) Confirm(question string) (bool, error) {
	if len(p.confirms) == 0 {
		return false, fmt.Errorf("%s: %w", question, operation.ErrCanceled)
	}
	v := p.confirms[0]
	p.confirms = p.confirms[1:]
	return v, nil
}

func (p *scripted) Message(text string) {
	p.messages = append(p.messages, text)
}

func (p *scripted) nextPath() (string, error) {
	if len(p.paths) == 0 {
		return "", fmt.Errorf("no path given: %w", operation.ErrCanceled)
	}
	v := p.paths[0]
	p.paths = p.paths[1:]
	return v, nil
}

func (p *scripted) ChooseOpen() (string, error) { return p.nextPath() }

func (p *scripted) ChooseSave() (string, error) { return p.nextPath() }
