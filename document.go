package lspwire

import (
	"encoding/json"
	"fmt"
)

// --- Document Sync ---

// DidOpenTextDocumentParams are parameters for textDocument/didOpen.
type DidOpenTextDocumentParams struct {
	TextDocument TextDocumentItem `json:"textDocument"`
}

// UnmarshalJSON decodes a DidOpenTextDocumentParams.
func (p *DidOpenTextDocumentParams) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "DidOpenTextDocumentParams")
	if err != nil {
		return err
	}
	return decodeField(obj, "DidOpenTextDocumentParams", "textDocument", &p.TextDocument)
}

// DidChangeTextDocumentParams are parameters for textDocument/didChange.
// The version number points to the version after all provided content
// changes have been applied.
type DidChangeTextDocumentParams struct {
	TextDocument   VersionedTextDocumentIdentifier  `json:"textDocument"`
	ContentChanges []TextDocumentContentChangeEvent `json:"contentChanges"`
}

// MarshalJSON encodes a DidChangeTextDocumentParams, never emitting null
// for contentChanges.
func (p DidChangeTextDocumentParams) MarshalJSON() ([]byte, error) {
	type wire DidChangeTextDocumentParams
	w := wire(p)
	w.ContentChanges = nonNil(w.ContentChanges)
	return json.Marshal(w)
}

// UnmarshalJSON decodes a DidChangeTextDocumentParams.
func (p *DidChangeTextDocumentParams) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "DidChangeTextDocumentParams")
	if err != nil {
		return err
	}
	if err := decodeField(obj, "DidChangeTextDocumentParams", "textDocument", &p.TextDocument); err != nil {
		return err
	}
	changes, err := decodeArray[TextDocumentContentChangeEvent](obj, "DidChangeTextDocumentParams", "contentChanges")
	if err != nil {
		return err
	}
	p.ContentChanges = changes
	return nil
}

// TextDocumentContentChangeEvent describes a change to a text document.
// When Range is nil the event carries the full new content of the document;
// otherwise Text replaces the given range.
type TextDocumentContentChangeEvent struct {
	Range       *Range `json:"range,omitempty"`
	RangeLength *int   `json:"rangeLength,omitempty"`
	Text        string `json:"text"`
}

// IsFullReplacement reports whether the event replaces the entire document.
func (e TextDocumentContentChangeEvent) IsFullReplacement() bool {
	return e.Range == nil
}

// UnmarshalJSON decodes a TextDocumentContentChangeEvent.
func (e *TextDocumentContentChangeEvent) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "TextDocumentContentChangeEvent")
	if err != nil {
		return err
	}
	var rng Range
	ok, err := decodeOptField(obj, "TextDocumentContentChangeEvent", "range", &rng)
	if err != nil {
		return err
	}
	if ok {
		e.Range = &rng
	} else {
		e.Range = nil
	}
	length, err := optUint(obj, "TextDocumentContentChangeEvent", "rangeLength")
	if err != nil {
		return err
	}
	text, err := reqString(obj, "TextDocumentContentChangeEvent", "text")
	if err != nil {
		return err
	}
	e.RangeLength = length
	e.Text = text
	return nil
}

// DidCloseTextDocumentParams are parameters for textDocument/didClose.
type DidCloseTextDocumentParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

// UnmarshalJSON decodes a DidCloseTextDocumentParams.
func (p *DidCloseTextDocumentParams) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "DidCloseTextDocumentParams")
	if err != nil {
		return err
	}
	return decodeField(obj, "DidCloseTextDocumentParams", "textDocument", &p.TextDocument)
}

// DidSaveTextDocumentParams are parameters for textDocument/didSave.
type DidSaveTextDocumentParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

// UnmarshalJSON decodes a DidSaveTextDocumentParams.
func (p *DidSaveTextDocumentParams) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "DidSaveTextDocumentParams")
	if err != nil {
		return err
	}
	return decodeField(obj, "DidSaveTextDocumentParams", "textDocument", &p.TextDocument)
}

// --- Watched Files ---

// FileChangeType describes the kind of a watched-file event.
type FileChangeType int

const (
	FileChangeTypeCreated FileChangeType = 1
	FileChangeTypeChanged FileChangeType = 2
	FileChangeTypeDeleted FileChangeType = 3
)

var fileChangeTypeNames = map[FileChangeType]string{
	FileChangeTypeCreated: "Created",
	FileChangeTypeChanged: "Changed",
	FileChangeTypeDeleted: "Deleted",
}

// String returns the variant name.
func (t FileChangeType) String() string {
	if name, ok := fileChangeTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("FileChangeType(%d)", int(t))
}

// UnmarshalJSON decodes a FileChangeType, rejecting unknown codes.
func (t *FileChangeType) UnmarshalJSON(data []byte) error {
	n, err := decodeEnum(data, "FileChangeType", func(n int) bool {
		_, ok := fileChangeTypeNames[FileChangeType(n)]
		return ok
	})
	if err != nil {
		return err
	}
	*t = FileChangeType(n)
	return nil
}

// FileEvent describes a change to a watched file.
type FileEvent struct {
	URI  DocumentURI    `json:"uri"`
	Type FileChangeType `json:"type"`
}

// UnmarshalJSON decodes a FileEvent.
func (e *FileEvent) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "FileEvent")
	if err != nil {
		return err
	}
	uri, err := reqString(obj, "FileEvent", "uri")
	if err != nil {
		return err
	}
	if err := decodeField(obj, "FileEvent", "type", &e.Type); err != nil {
		return err
	}
	e.URI = DocumentURI(uri)
	return nil
}

// DidChangeWatchedFilesParams are parameters for workspace/didChangeWatchedFiles.
type DidChangeWatchedFilesParams struct {
	Changes []FileEvent `json:"changes"`
}

// MarshalJSON encodes a DidChangeWatchedFilesParams, never emitting null
// for changes.
func (p DidChangeWatchedFilesParams) MarshalJSON() ([]byte, error) {
	type wire DidChangeWatchedFilesParams
	w := wire(p)
	w.Changes = nonNil(w.Changes)
	return json.Marshal(w)
}

// UnmarshalJSON decodes a DidChangeWatchedFilesParams.
func (p *DidChangeWatchedFilesParams) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "DidChangeWatchedFilesParams")
	if err != nil {
		return err
	}
	changes, err := decodeArray[FileEvent](obj, "DidChangeWatchedFilesParams", "changes")
	if err != nil {
		return err
	}
	p.Changes = changes
	return nil
}

// --- Configuration ---

// DidChangeConfigurationParams are parameters for workspace/didChangeConfiguration.
// Settings is an opaque wire value owned by the client.
type DidChangeConfigurationParams struct {
	Settings any `json:"settings"`
}

// UnmarshalJSON decodes a DidChangeConfigurationParams. Settings may be any
// wire value, including null.
func (p *DidChangeConfigurationParams) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "DidChangeConfigurationParams")
	if err != nil {
		return err
	}
	v := obj.Get("settings")
	if !v.Exists() {
		return &FieldError{Type: "DidChangeConfigurationParams", Field: "settings"}
	}
	return json.Unmarshal([]byte(v.Raw), &p.Settings)
}
