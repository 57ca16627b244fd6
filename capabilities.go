package lspwire

import "fmt"

// --- Initialize ---

// InitializeParams are the parameters sent in an initialize request.
// RootPath is empty when no folder is open.
type InitializeParams struct {
	ProcessID    int                `json:"processId"`
	RootPath     string             `json:"rootPath,omitempty"`
	Capabilities ClientCapabilities `json:"capabilities"`
}

// UnmarshalJSON decodes an InitializeParams.
func (p *InitializeParams) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "InitializeParams")
	if err != nil {
		return err
	}
	processID, err := reqUint(obj, "InitializeParams", "processId")
	if err != nil {
		return err
	}
	rootPath, err := optString(obj, "InitializeParams", "rootPath")
	if err != nil {
		return err
	}
	if err := decodeField(obj, "InitializeParams", "capabilities", &p.Capabilities); err != nil {
		return err
	}
	p.ProcessID = processID
	p.RootPath = rootPath
	return nil
}

// ClientCapabilities describe what the client supports. The record is
// currently opaque: any object decodes, and no fields are projected.
type ClientCapabilities struct{}

// UnmarshalJSON decodes a ClientCapabilities, accepting any object.
func (c *ClientCapabilities) UnmarshalJSON(data []byte) error {
	_, err := parseObject(data, "ClientCapabilities")
	return err
}

// InitializeResult is the result of the initialize request.
type InitializeResult struct {
	Capabilities ServerCapabilities `json:"capabilities"`
}

// UnmarshalJSON decodes an InitializeResult.
func (r *InitializeResult) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "InitializeResult")
	if err != nil {
		return err
	}
	return decodeField(obj, "InitializeResult", "capabilities", &r.Capabilities)
}

// InitializeError is the error payload for a failed initialize request.
// Retry indicates whether the client should retry after showing the message
// in the response error.
type InitializeError struct {
	Retry bool `json:"retry"`
}

// UnmarshalJSON decodes an InitializeError.
func (e *InitializeError) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "InitializeError")
	if err != nil {
		return err
	}
	retry, err := reqBool(obj, "InitializeError", "retry")
	if err != nil {
		return err
	}
	e.Retry = retry
	return nil
}

// --- Text Document Sync ---

// TextDocumentSyncKind defines how the client should sync document changes
// to the server.
type TextDocumentSyncKind int

const (
	TextDocumentSyncKindNone        TextDocumentSyncKind = 0
	TextDocumentSyncKindFull        TextDocumentSyncKind = 1
	TextDocumentSyncKindIncremental TextDocumentSyncKind = 2
)

var textDocumentSyncKindNames = map[TextDocumentSyncKind]string{
	TextDocumentSyncKindNone:        "None",
	TextDocumentSyncKindFull:        "Full",
	TextDocumentSyncKindIncremental: "Incremental",
}

// String returns the variant name.
func (k TextDocumentSyncKind) String() string {
	if name, ok := textDocumentSyncKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TextDocumentSyncKind(%d)", int(k))
}

// UnmarshalJSON decodes a TextDocumentSyncKind, rejecting unknown codes.
func (k *TextDocumentSyncKind) UnmarshalJSON(data []byte) error {
	n, err := decodeEnum(data, "TextDocumentSyncKind", func(n int) bool {
		_, ok := textDocumentSyncKindNames[TextDocumentSyncKind(n)]
		return ok
	})
	if err != nil {
		return err
	}
	*k = TextDocumentSyncKind(n)
	return nil
}

// --- Server Capabilities ---

// ServerCapabilities define the features a server offers. Every field is
// independently optional; absence on the wire means the feature is not
// offered, never "offered with defaults".
type ServerCapabilities struct {
	TextDocumentSync                 *TextDocumentSyncKind            `json:"textDocumentSync,omitempty"`
	HoverProvider                    *bool                            `json:"hoverProvider,omitempty"`
	CompletionProvider               *CompletionOptions               `json:"completionProvider,omitempty"`
	SignatureHelpProvider            *SignatureHelpOptions            `json:"signatureHelpProvider,omitempty"`
	DefinitionProvider               *bool                            `json:"definitionProvider,omitempty"`
	ReferencesProvider               *bool                            `json:"referencesProvider,omitempty"`
	DocumentHighlightProvider        *bool                            `json:"documentHighlightProvider,omitempty"`
	DocumentSymbolProvider           *bool                            `json:"documentSymbolProvider,omitempty"`
	WorkspaceSymbolProvider          *bool                            `json:"workspaceSymbolProvider,omitempty"`
	CodeActionProvider               *bool                            `json:"codeActionProvider,omitempty"`
	CodeLensProvider                 *CodeLensOptions                 `json:"codeLensProvider,omitempty"`
	DocumentFormattingProvider       *bool                            `json:"documentFormattingProvider,omitempty"`
	DocumentRangeFormattingProvider  *bool                            `json:"documentRangeFormattingProvider,omitempty"`
	DocumentOnTypeFormattingProvider *DocumentOnTypeFormattingOptions `json:"documentOnTypeFormattingProvider,omitempty"`
	RenameProvider                   *bool                            `json:"renameProvider,omitempty"`
}

// UnmarshalJSON decodes a ServerCapabilities.
func (c *ServerCapabilities) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "ServerCapabilities")
	if err != nil {
		return err
	}
	*c = ServerCapabilities{}

	var syncKind TextDocumentSyncKind
	ok, err := decodeOptField(obj, "ServerCapabilities", "textDocumentSync", &syncKind)
	if err != nil {
		return err
	}
	if ok {
		c.TextDocumentSync = &syncKind
	}

	if c.HoverProvider, err = optBool(obj, "ServerCapabilities", "hoverProvider"); err != nil {
		return err
	}
	var completion CompletionOptions
	if ok, err = decodeOptField(obj, "ServerCapabilities", "completionProvider", &completion); err != nil {
		return err
	} else if ok {
		c.CompletionProvider = &completion
	}
	var sigHelp SignatureHelpOptions
	if ok, err = decodeOptField(obj, "ServerCapabilities", "signatureHelpProvider", &sigHelp); err != nil {
		return err
	} else if ok {
		c.SignatureHelpProvider = &sigHelp
	}
	if c.DefinitionProvider, err = optBool(obj, "ServerCapabilities", "definitionProvider"); err != nil {
		return err
	}
	if c.ReferencesProvider, err = optBool(obj, "ServerCapabilities", "referencesProvider"); err != nil {
		return err
	}
	if c.DocumentHighlightProvider, err = optBool(obj, "ServerCapabilities", "documentHighlightProvider"); err != nil {
		return err
	}
	if c.DocumentSymbolProvider, err = optBool(obj, "ServerCapabilities", "documentSymbolProvider"); err != nil {
		return err
	}
	if c.WorkspaceSymbolProvider, err = optBool(obj, "ServerCapabilities", "workspaceSymbolProvider"); err != nil {
		return err
	}
	if c.CodeActionProvider, err = optBool(obj, "ServerCapabilities", "codeActionProvider"); err != nil {
		return err
	}
	var codeLens CodeLensOptions
	if ok, err = decodeOptField(obj, "ServerCapabilities", "codeLensProvider", &codeLens); err != nil {
		return err
	} else if ok {
		c.CodeLensProvider = &codeLens
	}
	if c.DocumentFormattingProvider, err = optBool(obj, "ServerCapabilities", "documentFormattingProvider"); err != nil {
		return err
	}
	if c.DocumentRangeFormattingProvider, err = optBool(obj, "ServerCapabilities", "documentRangeFormattingProvider"); err != nil {
		return err
	}
	var onType DocumentOnTypeFormattingOptions
	if ok, err = decodeOptField(obj, "ServerCapabilities", "documentOnTypeFormattingProvider", &onType); err != nil {
		return err
	} else if ok {
		c.DocumentOnTypeFormattingProvider = &onType
	}
	if c.RenameProvider, err = optBool(obj, "ServerCapabilities", "renameProvider"); err != nil {
		return err
	}
	return nil
}

// CompletionOptions describe the server's completion support.
type CompletionOptions struct {
	ResolveProvider   *bool    `json:"resolveProvider,omitempty"`
	TriggerCharacters []string `json:"triggerCharacters,omitempty"`
}

// UnmarshalJSON decodes a CompletionOptions.
func (o *CompletionOptions) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "CompletionOptions")
	if err != nil {
		return err
	}
	if o.ResolveProvider, err = optBool(obj, "CompletionOptions", "resolveProvider"); err != nil {
		return err
	}
	o.TriggerCharacters, err = decodeStrings(obj, "CompletionOptions", "triggerCharacters")
	return err
}

// SignatureHelpOptions describe the server's signature help support.
type SignatureHelpOptions struct {
	TriggerCharacters []string `json:"triggerCharacters,omitempty"`
}

// UnmarshalJSON decodes a SignatureHelpOptions.
func (o *SignatureHelpOptions) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "SignatureHelpOptions")
	if err != nil {
		return err
	}
	o.TriggerCharacters, err = decodeStrings(obj, "SignatureHelpOptions", "triggerCharacters")
	return err
}

// CodeLensOptions describe the server's code lens support.
type CodeLensOptions struct {
	ResolveProvider *bool `json:"resolveProvider,omitempty"`
}

// UnmarshalJSON decodes a CodeLensOptions.
func (o *CodeLensOptions) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "CodeLensOptions")
	if err != nil {
		return err
	}
	o.ResolveProvider, err = optBool(obj, "CodeLensOptions", "resolveProvider")
	return err
}

// DocumentOnTypeFormattingOptions describe on-type formatting triggers,
// like `}` for brace languages.
type DocumentOnTypeFormattingOptions struct {
	FirstTriggerCharacter string   `json:"firstTriggerCharacter"`
	MoreTriggerCharacter  []string `json:"moreTriggerCharacter,omitempty"`
}

// UnmarshalJSON decodes a DocumentOnTypeFormattingOptions.
func (o *DocumentOnTypeFormattingOptions) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "DocumentOnTypeFormattingOptions")
	if err != nil {
		return err
	}
	first, err := reqString(obj, "DocumentOnTypeFormattingOptions", "firstTriggerCharacter")
	if err != nil {
		return err
	}
	more, err := decodeStrings(obj, "DocumentOnTypeFormattingOptions", "moreTriggerCharacter")
	if err != nil {
		return err
	}
	o.FirstTriggerCharacter = first
	o.MoreTriggerCharacter = more
	return nil
}
