package lspwire

import (
	"encoding/json"
)

// Command represents a reference to a command: a title for the UI, the
// identifier of the handler, and the arguments it should be invoked with.
// Arguments are opaque wire values.
type Command struct {
	Title     string `json:"title"`
	Command   string `json:"command"`
	Arguments []any  `json:"arguments,omitempty"`
}

// UnmarshalJSON decodes a Command.
func (c *Command) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "Command")
	if err != nil {
		return err
	}
	title, err := reqString(obj, "Command", "title")
	if err != nil {
		return err
	}
	command, err := reqString(obj, "Command", "command")
	if err != nil {
		return err
	}
	arguments, err := decodeOptArray[any](obj, "Command", "arguments")
	if err != nil {
		return err
	}
	c.Title = title
	c.Command = command
	c.Arguments = arguments
	return nil
}

// CodeActionContext carries the diagnostics active in the range a code
// action was requested for.
type CodeActionContext struct {
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// MarshalJSON encodes a CodeActionContext, never emitting null for
// diagnostics.
func (c CodeActionContext) MarshalJSON() ([]byte, error) {
	type wire CodeActionContext
	w := wire(c)
	w.Diagnostics = nonNil(w.Diagnostics)
	return json.Marshal(w)
}

// UnmarshalJSON decodes a CodeActionContext.
func (c *CodeActionContext) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "CodeActionContext")
	if err != nil {
		return err
	}
	diagnostics, err := decodeArray[Diagnostic](obj, "CodeActionContext", "diagnostics")
	if err != nil {
		return err
	}
	c.Diagnostics = diagnostics
	return nil
}

// CodeActionParams are parameters for textDocument/codeAction.
type CodeActionParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Range        Range                  `json:"range"`
	Context      CodeActionContext      `json:"context"`
}

// UnmarshalJSON decodes a CodeActionParams.
func (p *CodeActionParams) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "CodeActionParams")
	if err != nil {
		return err
	}
	if err := decodeField(obj, "CodeActionParams", "textDocument", &p.TextDocument); err != nil {
		return err
	}
	if err := decodeField(obj, "CodeActionParams", "range", &p.Range); err != nil {
		return err
	}
	return decodeField(obj, "CodeActionParams", "context", &p.Context)
}

// CodeLensParams are parameters for textDocument/codeLens.
type CodeLensParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

// UnmarshalJSON decodes a CodeLensParams.
func (p *CodeLensParams) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "CodeLensParams")
	if err != nil {
		return err
	}
	return decodeField(obj, "CodeLensParams", "textDocument", &p.TextDocument)
}

// CodeLens represents a command shown along with source text, like the
// number of references or a way to run tests. A lens without a command is
// unresolved; Data is an opaque value reattached by the later resolve step.
type CodeLens struct {
	Range   Range    `json:"range"`
	Command *Command `json:"command,omitempty"`
	Data    any      `json:"data,omitempty"`
}

// UnmarshalJSON decodes a CodeLens.
func (l *CodeLens) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "CodeLens")
	if err != nil {
		return err
	}
	if err := decodeField(obj, "CodeLens", "range", &l.Range); err != nil {
		return err
	}
	var command Command
	ok, err := decodeOptField(obj, "CodeLens", "command", &command)
	if err != nil {
		return err
	}
	if ok {
		l.Command = &command
	} else {
		l.Command = nil
	}
	l.Data = nil
	v := obj.Get("data")
	if present(v) {
		if err := json.Unmarshal([]byte(v.Raw), &l.Data); err != nil {
			return &FieldError{Type: "CodeLens", Field: "data", Raw: trimRaw(v.Raw)}
		}
	}
	return nil
}

// ReferenceContext configures a references request.
type ReferenceContext struct {
	IncludeDeclaration bool `json:"includeDeclaration"`
}

// UnmarshalJSON decodes a ReferenceContext.
func (c *ReferenceContext) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "ReferenceContext")
	if err != nil {
		return err
	}
	includeDeclaration, err := reqBool(obj, "ReferenceContext", "includeDeclaration")
	if err != nil {
		return err
	}
	c.IncludeDeclaration = includeDeclaration
	return nil
}

// ReferenceParams are parameters for textDocument/references.
type ReferenceParams struct {
	TextDocumentPositionParams
	Context ReferenceContext `json:"context"`
}

// UnmarshalJSON decodes a ReferenceParams.
func (p *ReferenceParams) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "ReferenceParams")
	if err != nil {
		return err
	}
	if err := decodeField(obj, "ReferenceParams", "textDocument", &p.TextDocument); err != nil {
		return err
	}
	if err := decodeField(obj, "ReferenceParams", "position", &p.Position); err != nil {
		return err
	}
	return decodeField(obj, "ReferenceParams", "context", &p.Context)
}

// RenameParams are parameters for textDocument/rename. NewName is the
// requested new name of the symbol; validating it is the server's concern.
type RenameParams struct {
	TextDocumentPositionParams
	NewName string `json:"newName"`
}

// UnmarshalJSON decodes a RenameParams.
func (p *RenameParams) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "RenameParams")
	if err != nil {
		return err
	}
	if err := decodeField(obj, "RenameParams", "textDocument", &p.TextDocument); err != nil {
		return err
	}
	if err := decodeField(obj, "RenameParams", "position", &p.Position); err != nil {
		return err
	}
	newName, err := reqString(obj, "RenameParams", "newName")
	if err != nil {
		return err
	}
	p.NewName = newName
	return nil
}
