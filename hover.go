package lspwire

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// MarkedString is the content of a hover: either plain text or a code block
// tagged with a language identifier. The wire encoding carries no
// discriminant key; the value's shape (bare string vs object) decides the
// variant. The catalog is closed to exactly these two shapes.
type MarkedString interface {
	markedString()
}

// PlainString is the bare-string variant of MarkedString.
type PlainString string

func (PlainString) markedString() {}

// LanguageBlock is the code-block variant of MarkedString. It renders as a
// fenced code block for the given language.
type LanguageBlock struct {
	Language string `json:"language"`
	Value    string `json:"value"`
}

func (LanguageBlock) markedString() {}

// UnmarshalJSON decodes a LanguageBlock, requiring both keys.
func (b *LanguageBlock) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "MarkedString")
	if err != nil {
		return err
	}
	language, err := reqString(obj, "MarkedString", "language")
	if err != nil {
		return err
	}
	value, err := reqString(obj, "MarkedString", "value")
	if err != nil {
		return err
	}
	b.Language = language
	b.Value = value
	return nil
}

// ParseMarkedString decodes a wire value into the MarkedString variant
// matching its shape. Any shape other than a string or an object fails.
func ParseMarkedString(data []byte) (MarkedString, error) {
	if !gjson.ValidBytes(data) {
		return nil, &ShapeError{Type: "MarkedString", Raw: trimRaw(string(data))}
	}
	v := gjson.ParseBytes(data)
	switch {
	case v.Type == gjson.String:
		return PlainString(v.String()), nil
	case v.IsObject():
		var block LanguageBlock
		if err := block.UnmarshalJSON(data); err != nil {
			return nil, err
		}
		return block, nil
	default:
		return nil, &ShapeError{Type: "MarkedString", Raw: trimRaw(v.Raw)}
	}
}

// Hover is the result of a hover request.
type Hover struct {
	Contents []MarkedString `json:"contents"`
	Range    *Range         `json:"range,omitempty"`
}

// MarshalJSON encodes a Hover, never emitting null for contents.
func (h Hover) MarshalJSON() ([]byte, error) {
	type wire Hover
	w := wire(h)
	w.Contents = nonNil(w.Contents)
	return json.Marshal(w)
}

// UnmarshalJSON decodes a Hover.
func (h *Hover) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "Hover")
	if err != nil {
		return err
	}
	v := obj.Get("contents")
	if !present(v) {
		return &FieldError{Type: "Hover", Field: "contents"}
	}
	if !v.IsArray() {
		return &FieldError{Type: "Hover", Field: "contents", Raw: trimRaw(v.Raw)}
	}
	elems := v.Array()
	contents := make([]MarkedString, 0, len(elems))
	for _, el := range elems {
		ms, err := ParseMarkedString([]byte(el.Raw))
		if err != nil {
			return err
		}
		contents = append(contents, ms)
	}
	var rng Range
	ok, err := decodeOptField(obj, "Hover", "range", &rng)
	if err != nil {
		return err
	}
	h.Contents = contents
	if ok {
		h.Range = &rng
	} else {
		h.Range = nil
	}
	return nil
}
