package lspwire

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// DocumentURI represents a URI as used in the protocol.
// It is typically a file:// URI and is treated as opaque text here.
type DocumentURI string

// Position in a text document expressed as zero-based line and character offset.
// Character offset is measured in UTF-16 code units.
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// UnmarshalJSON decodes a Position, requiring both offsets as non-negative integers.
func (p *Position) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "Position")
	if err != nil {
		return err
	}
	line, err := reqUint(obj, "Position", "line")
	if err != nil {
		return err
	}
	character, err := reqUint(obj, "Position", "character")
	if err != nil {
		return err
	}
	p.Line = line
	p.Character = character
	return nil
}

// Range in a text document expressed as start and end positions.
// The codec round-trips any pair; ordering is the consumer's concern.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// UnmarshalJSON decodes a Range, requiring both positions.
func (r *Range) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "Range")
	if err != nil {
		return err
	}
	if err := decodeField(obj, "Range", "start", &r.Start); err != nil {
		return err
	}
	return decodeField(obj, "Range", "end", &r.End)
}

// Location represents a location inside a resource.
type Location struct {
	URI   DocumentURI `json:"uri"`
	Range Range       `json:"range"`
}

// UnmarshalJSON decodes a Location.
func (l *Location) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "Location")
	if err != nil {
		return err
	}
	uri, err := reqString(obj, "Location", "uri")
	if err != nil {
		return err
	}
	if err := decodeField(obj, "Location", "range", &l.Range); err != nil {
		return err
	}
	l.URI = DocumentURI(uri)
	return nil
}

// TextDocumentIdentifier identifies a text document.
type TextDocumentIdentifier struct {
	URI DocumentURI `json:"uri"`
}

// UnmarshalJSON decodes a TextDocumentIdentifier.
func (t *TextDocumentIdentifier) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "TextDocumentIdentifier")
	if err != nil {
		return err
	}
	uri, err := reqString(obj, "TextDocumentIdentifier", "uri")
	if err != nil {
		return err
	}
	t.URI = DocumentURI(uri)
	return nil
}

// VersionedTextDocumentIdentifier identifies a specific version of a text
// document. The version counter is owned by the client and increases with
// every change, including undo/redo.
type VersionedTextDocumentIdentifier struct {
	TextDocumentIdentifier
	Version int `json:"version"`
}

// UnmarshalJSON decodes a VersionedTextDocumentIdentifier.
func (t *VersionedTextDocumentIdentifier) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "VersionedTextDocumentIdentifier")
	if err != nil {
		return err
	}
	uri, err := reqString(obj, "VersionedTextDocumentIdentifier", "uri")
	if err != nil {
		return err
	}
	version, err := reqUint(obj, "VersionedTextDocumentIdentifier", "version")
	if err != nil {
		return err
	}
	t.URI = DocumentURI(uri)
	t.Version = version
	return nil
}

// TextDocumentItem is an item to transfer a text document from the client to
// the server. Text carries the full document content and is used at open time.
type TextDocumentItem struct {
	URI        DocumentURI `json:"uri"`
	LanguageID string      `json:"languageId"`
	Version    int         `json:"version"`
	Text       string      `json:"text"`
}

// UnmarshalJSON decodes a TextDocumentItem.
func (t *TextDocumentItem) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "TextDocumentItem")
	if err != nil {
		return err
	}
	uri, err := reqString(obj, "TextDocumentItem", "uri")
	if err != nil {
		return err
	}
	languageID, err := reqString(obj, "TextDocumentItem", "languageId")
	if err != nil {
		return err
	}
	version, err := reqUint(obj, "TextDocumentItem", "version")
	if err != nil {
		return err
	}
	text, err := reqString(obj, "TextDocumentItem", "text")
	if err != nil {
		return err
	}
	t.URI = DocumentURI(uri)
	t.LanguageID = languageID
	t.Version = version
	t.Text = text
	return nil
}

// TextDocumentPositionParams is a parameter literal used in requests to pass
// a text document and a position inside that document.
type TextDocumentPositionParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Position     Position               `json:"position"`
}

// UnmarshalJSON decodes a TextDocumentPositionParams.
func (t *TextDocumentPositionParams) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "TextDocumentPositionParams")
	if err != nil {
		return err
	}
	if err := decodeField(obj, "TextDocumentPositionParams", "textDocument", &t.TextDocument); err != nil {
		return err
	}
	return decodeField(obj, "TextDocumentPositionParams", "position", &t.Position)
}

// TextEdit represents a textual edit applicable to a text document.
// An empty NewText deletes the range; a range with start == end inserts.
type TextEdit struct {
	Range   Range  `json:"range"`
	NewText string `json:"newText"`
}

// UnmarshalJSON decodes a TextEdit.
func (e *TextEdit) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "TextEdit")
	if err != nil {
		return err
	}
	if err := decodeField(obj, "TextEdit", "range", &e.Range); err != nil {
		return err
	}
	newText, err := reqString(obj, "TextEdit", "newText")
	if err != nil {
		return err
	}
	e.NewText = newText
	return nil
}

// WorkspaceEdit represents changes to many resources managed in the
// workspace. Edit order within a URI is preserved; application order across
// URIs is unspecified.
type WorkspaceEdit struct {
	Changes map[DocumentURI][]TextEdit `json:"changes"`
}

// MarshalJSON encodes a WorkspaceEdit, never emitting null for changes.
func (e WorkspaceEdit) MarshalJSON() ([]byte, error) {
	changes := make(map[DocumentURI][]TextEdit, len(e.Changes))
	for uri, edits := range e.Changes {
		changes[uri] = nonNil(edits)
	}
	type wire struct {
		Changes map[DocumentURI][]TextEdit `json:"changes"`
	}
	return json.Marshal(wire{Changes: changes})
}

// UnmarshalJSON decodes a WorkspaceEdit.
func (e *WorkspaceEdit) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "WorkspaceEdit")
	if err != nil {
		return err
	}
	v := obj.Get("changes")
	if !present(v) {
		return &FieldError{Type: "WorkspaceEdit", Field: "changes"}
	}
	if !v.IsObject() {
		return &FieldError{Type: "WorkspaceEdit", Field: "changes", Raw: trimRaw(v.Raw)}
	}
	changes := make(map[DocumentURI][]TextEdit)
	var derr error
	v.ForEach(func(key, val gjson.Result) bool {
		edits, err := decodeElems[TextEdit](val, "WorkspaceEdit", "changes")
		if err != nil {
			derr = err
			return false
		}
		changes[DocumentURI(key.String())] = edits
		return true
	})
	if derr != nil {
		return derr
	}
	e.Changes = changes
	return nil
}
