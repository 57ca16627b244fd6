package lspwire

import (
	"encoding/json"
	"fmt"
)

// CompletionItemKind represents the kind of a completion entry. The editor
// picks an icon based on the kind.
type CompletionItemKind int

const (
	CompletionItemKindText        CompletionItemKind = 1
	CompletionItemKindMethod      CompletionItemKind = 2
	CompletionItemKindFunction    CompletionItemKind = 3
	CompletionItemKindConstructor CompletionItemKind = 4
	CompletionItemKindField       CompletionItemKind = 5
	CompletionItemKindVariable    CompletionItemKind = 6
	CompletionItemKindClass       CompletionItemKind = 7
	CompletionItemKindInterface   CompletionItemKind = 8
	CompletionItemKindModule      CompletionItemKind = 9
	CompletionItemKindProperty    CompletionItemKind = 10
	CompletionItemKindUnit        CompletionItemKind = 11
	CompletionItemKindValue       CompletionItemKind = 12
	CompletionItemKindEnum        CompletionItemKind = 13
	CompletionItemKindKeyword     CompletionItemKind = 14
	CompletionItemKindSnippet     CompletionItemKind = 15
	CompletionItemKindColor       CompletionItemKind = 16
	CompletionItemKindFile        CompletionItemKind = 17
	CompletionItemKindReference   CompletionItemKind = 18
)

var completionItemKindNames = map[CompletionItemKind]string{
	CompletionItemKindText:        "Text",
	CompletionItemKindMethod:      "Method",
	CompletionItemKindFunction:    "Function",
	CompletionItemKindConstructor: "Constructor",
	CompletionItemKindField:       "Field",
	CompletionItemKindVariable:    "Variable",
	CompletionItemKindClass:       "Class",
	CompletionItemKindInterface:   "Interface",
	CompletionItemKindModule:      "Module",
	CompletionItemKindProperty:    "Property",
	CompletionItemKindUnit:        "Unit",
	CompletionItemKindValue:       "Value",
	CompletionItemKindEnum:        "Enum",
	CompletionItemKindKeyword:     "Keyword",
	CompletionItemKindSnippet:     "Snippet",
	CompletionItemKindColor:       "Color",
	CompletionItemKindFile:        "File",
	CompletionItemKindReference:   "Reference",
}

// String returns the variant name.
func (k CompletionItemKind) String() string {
	if name, ok := completionItemKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("CompletionItemKind(%d)", int(k))
}

// UnmarshalJSON decodes a CompletionItemKind, rejecting unknown codes.
func (k *CompletionItemKind) UnmarshalJSON(data []byte) error {
	n, err := decodeEnum(data, "CompletionItemKind", func(n int) bool {
		_, ok := completionItemKindNames[CompletionItemKind(n)]
		return ok
	})
	if err != nil {
		return err
	}
	*k = CompletionItemKind(n)
	return nil
}

// CompletionItem represents a completion suggestion. Only Label is required:
// it is the fallback for both the inserted text and the filter/sort keys.
// When TextEdit is set it takes precedence over InsertText.
// Data is an opaque value preserved between completion and resolve requests.
type CompletionItem struct {
	Label         string              `json:"label"`
	Kind          *CompletionItemKind `json:"kind,omitempty"`
	Detail        string              `json:"detail,omitempty"`
	Documentation string              `json:"documentation,omitempty"`
	SortText      string              `json:"sortText,omitempty"`
	FilterText    string              `json:"filterText,omitempty"`
	InsertText    string              `json:"insertText,omitempty"`
	TextEdit      *TextEdit           `json:"textEdit,omitempty"`
	Data          any                 `json:"data,omitempty"`
}

// UnmarshalJSON decodes a CompletionItem.
func (c *CompletionItem) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "CompletionItem")
	if err != nil {
		return err
	}
	*c = CompletionItem{}

	if c.Label, err = reqString(obj, "CompletionItem", "label"); err != nil {
		return err
	}
	var kind CompletionItemKind
	ok, err := decodeOptField(obj, "CompletionItem", "kind", &kind)
	if err != nil {
		return err
	}
	if ok {
		c.Kind = &kind
	}
	if c.Detail, err = optString(obj, "CompletionItem", "detail"); err != nil {
		return err
	}
	if c.Documentation, err = optString(obj, "CompletionItem", "documentation"); err != nil {
		return err
	}
	if c.SortText, err = optString(obj, "CompletionItem", "sortText"); err != nil {
		return err
	}
	if c.FilterText, err = optString(obj, "CompletionItem", "filterText"); err != nil {
		return err
	}
	if c.InsertText, err = optString(obj, "CompletionItem", "insertText"); err != nil {
		return err
	}
	var edit TextEdit
	if ok, err = decodeOptField(obj, "CompletionItem", "textEdit", &edit); err != nil {
		return err
	} else if ok {
		c.TextEdit = &edit
	}
	v := obj.Get("data")
	if present(v) {
		if err := json.Unmarshal([]byte(v.Raw), &c.Data); err != nil {
			return &FieldError{Type: "CompletionItem", Field: "data", Raw: trimRaw(v.Raw)}
		}
	}
	return nil
}

// CompletionList represents a collection of completion items to be presented
// in the editor. IsIncomplete signals that further typing should recompute
// the list.
type CompletionList struct {
	IsIncomplete bool             `json:"isIncomplete"`
	Items        []CompletionItem `json:"items"`
}

// MarshalJSON encodes a CompletionList, never emitting null for items.
func (l CompletionList) MarshalJSON() ([]byte, error) {
	type wire CompletionList
	w := wire(l)
	w.Items = nonNil(w.Items)
	return json.Marshal(w)
}

// UnmarshalJSON decodes a CompletionList.
func (l *CompletionList) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "CompletionList")
	if err != nil {
		return err
	}
	isIncomplete, err := reqBool(obj, "CompletionList", "isIncomplete")
	if err != nil {
		return err
	}
	items, err := decodeArray[CompletionItem](obj, "CompletionList", "items")
	if err != nil {
		return err
	}
	l.IsIncomplete = isIncomplete
	l.Items = items
	return nil
}
