package lspwire

import "encoding/json"

// SignatureHelp represents the signature of something callable. There can be
// multiple signatures but only one active signature and one active
// parameter. The indices reference positions in Signatures and the active
// signature's Parameters; the codec does not range-check them.
type SignatureHelp struct {
	Signatures      []SignatureInformation `json:"signatures"`
	ActiveSignature *int                   `json:"activeSignature,omitempty"`
	ActiveParameter *int                   `json:"activeParameter,omitempty"`
}

// MarshalJSON encodes a SignatureHelp, never emitting null for signatures.
func (h SignatureHelp) MarshalJSON() ([]byte, error) {
	type wire SignatureHelp
	w := wire(h)
	w.Signatures = nonNil(w.Signatures)
	return json.Marshal(w)
}

// UnmarshalJSON decodes a SignatureHelp.
func (h *SignatureHelp) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "SignatureHelp")
	if err != nil {
		return err
	}
	signatures, err := decodeArray[SignatureInformation](obj, "SignatureHelp", "signatures")
	if err != nil {
		return err
	}
	activeSignature, err := optUint(obj, "SignatureHelp", "activeSignature")
	if err != nil {
		return err
	}
	activeParameter, err := optUint(obj, "SignatureHelp", "activeParameter")
	if err != nil {
		return err
	}
	h.Signatures = signatures
	h.ActiveSignature = activeSignature
	h.ActiveParameter = activeParameter
	return nil
}

// SignatureInformation represents the signature of something callable: a
// label like a function name, a doc comment, and a set of parameters.
type SignatureInformation struct {
	Label         string                 `json:"label"`
	Documentation string                 `json:"documentation"`
	Parameters    []ParameterInformation `json:"parameters,omitempty"`
}

// UnmarshalJSON decodes a SignatureInformation.
func (s *SignatureInformation) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "SignatureInformation")
	if err != nil {
		return err
	}
	label, err := reqString(obj, "SignatureInformation", "label")
	if err != nil {
		return err
	}
	documentation, err := reqString(obj, "SignatureInformation", "documentation")
	if err != nil {
		return err
	}
	parameters, err := decodeOptArray[ParameterInformation](obj, "SignatureInformation", "parameters")
	if err != nil {
		return err
	}
	s.Label = label
	s.Documentation = documentation
	s.Parameters = parameters
	return nil
}

// ParameterInformation represents a parameter of a callable signature.
// Documentation is omitted from the wire when empty.
type ParameterInformation struct {
	Label         string `json:"label"`
	Documentation string `json:"documentation,omitempty"`
}

// UnmarshalJSON decodes a ParameterInformation.
func (p *ParameterInformation) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "ParameterInformation")
	if err != nil {
		return err
	}
	label, err := reqString(obj, "ParameterInformation", "label")
	if err != nil {
		return err
	}
	documentation, err := optString(obj, "ParameterInformation", "documentation")
	if err != nil {
		return err
	}
	p.Label = label
	p.Documentation = documentation
	return nil
}
