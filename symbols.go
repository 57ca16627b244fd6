package lspwire

import "fmt"

// SymbolKind represents the kind of a programming construct.
type SymbolKind int

const (
	SymbolKindFile        SymbolKind = 1
	SymbolKindModule      SymbolKind = 2
	SymbolKindNamespace   SymbolKind = 3
	SymbolKindPackage     SymbolKind = 4
	SymbolKindClass       SymbolKind = 5
	SymbolKindMethod      SymbolKind = 6
	SymbolKindProperty    SymbolKind = 7
	SymbolKindField       SymbolKind = 8
	SymbolKindConstructor SymbolKind = 9
	SymbolKindEnum        SymbolKind = 10
	SymbolKindInterface   SymbolKind = 11
	SymbolKindFunction    SymbolKind = 12
	SymbolKindVariable    SymbolKind = 13
	SymbolKindConstant    SymbolKind = 14
	SymbolKindString      SymbolKind = 15
	SymbolKindNumber      SymbolKind = 16
	SymbolKindBoolean     SymbolKind = 17
	SymbolKindArray       SymbolKind = 18
)

var symbolKindNames = map[SymbolKind]string{
	SymbolKindFile:        "File",
	SymbolKindModule:      "Module",
	SymbolKindNamespace:   "Namespace",
	SymbolKindPackage:     "Package",
	SymbolKindClass:       "Class",
	SymbolKindMethod:      "Method",
	SymbolKindProperty:    "Property",
	SymbolKindField:       "Field",
	SymbolKindConstructor: "Constructor",
	SymbolKindEnum:        "Enum",
	SymbolKindInterface:   "Interface",
	SymbolKindFunction:    "Function",
	SymbolKindVariable:    "Variable",
	SymbolKindConstant:    "Constant",
	SymbolKindString:      "String",
	SymbolKindNumber:      "Number",
	SymbolKindBoolean:     "Boolean",
	SymbolKindArray:       "Array",
}

// String returns the variant name.
func (k SymbolKind) String() string {
	if name, ok := symbolKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("SymbolKind(%d)", int(k))
}

// UnmarshalJSON decodes a SymbolKind, rejecting unknown codes.
func (k *SymbolKind) UnmarshalJSON(data []byte) error {
	n, err := decodeEnum(data, "SymbolKind", func(n int) bool {
		_, ok := symbolKindNames[SymbolKind(n)]
		return ok
	})
	if err != nil {
		return err
	}
	*k = SymbolKind(n)
	return nil
}

// SymbolInformation represents information about a programming construct
// like a variable, class, or interface.
type SymbolInformation struct {
	Name          string     `json:"name"`
	Kind          SymbolKind `json:"kind"`
	Location      Location   `json:"location"`
	ContainerName string     `json:"containerName"`
}

// UnmarshalJSON decodes a SymbolInformation.
func (s *SymbolInformation) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "SymbolInformation")
	if err != nil {
		return err
	}
	name, err := reqString(obj, "SymbolInformation", "name")
	if err != nil {
		return err
	}
	if err := decodeField(obj, "SymbolInformation", "kind", &s.Kind); err != nil {
		return err
	}
	if err := decodeField(obj, "SymbolInformation", "location", &s.Location); err != nil {
		return err
	}
	containerName, err := reqString(obj, "SymbolInformation", "containerName")
	if err != nil {
		return err
	}
	s.Name = name
	s.ContainerName = containerName
	return nil
}

// DocumentSymbolParams are parameters for textDocument/documentSymbol.
type DocumentSymbolParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

// UnmarshalJSON decodes a DocumentSymbolParams.
func (p *DocumentSymbolParams) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "DocumentSymbolParams")
	if err != nil {
		return err
	}
	return decodeField(obj, "DocumentSymbolParams", "textDocument", &p.TextDocument)
}

// WorkspaceSymbolParams are parameters for workspace/symbol.
type WorkspaceSymbolParams struct {
	Query string `json:"query"`
}

// UnmarshalJSON decodes a WorkspaceSymbolParams.
func (p *WorkspaceSymbolParams) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "WorkspaceSymbolParams")
	if err != nil {
		return err
	}
	query, err := reqString(obj, "WorkspaceSymbolParams", "query")
	if err != nil {
		return err
	}
	p.Query = query
	return nil
}

// DocumentHighlightKind classifies a document highlight.
type DocumentHighlightKind int

const (
	DocumentHighlightKindText  DocumentHighlightKind = 1
	DocumentHighlightKindRead  DocumentHighlightKind = 2
	DocumentHighlightKindWrite DocumentHighlightKind = 3
)

var documentHighlightKindNames = map[DocumentHighlightKind]string{
	DocumentHighlightKindText:  "Text",
	DocumentHighlightKindRead:  "Read",
	DocumentHighlightKindWrite: "Write",
}

// String returns the variant name.
func (k DocumentHighlightKind) String() string {
	if name, ok := documentHighlightKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("DocumentHighlightKind(%d)", int(k))
}

// UnmarshalJSON decodes a DocumentHighlightKind, rejecting unknown codes.
func (k *DocumentHighlightKind) UnmarshalJSON(data []byte) error {
	n, err := decodeEnum(data, "DocumentHighlightKind", func(n int) bool {
		_, ok := documentHighlightKindNames[DocumentHighlightKind(n)]
		return ok
	})
	if err != nil {
		return err
	}
	*k = DocumentHighlightKind(n)
	return nil
}

// DocumentHighlight is a range inside a document that deserves special
// attention, usually visualized by changing the background color. Consumers
// treat a nil Kind as DocumentHighlightKindText.
type DocumentHighlight struct {
	Range Range                  `json:"range"`
	Kind  *DocumentHighlightKind `json:"kind,omitempty"`
}

// UnmarshalJSON decodes a DocumentHighlight.
func (h *DocumentHighlight) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "DocumentHighlight")
	if err != nil {
		return err
	}
	if err := decodeField(obj, "DocumentHighlight", "range", &h.Range); err != nil {
		return err
	}
	var kind DocumentHighlightKind
	ok, err := decodeOptField(obj, "DocumentHighlight", "kind", &kind)
	if err != nil {
		return err
	}
	if ok {
		h.Kind = &kind
	} else {
		h.Kind = nil
	}
	return nil
}
