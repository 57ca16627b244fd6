package lspwire

import (
	"encoding/json"
	"fmt"
)

// DiagnosticSeverity represents the severity of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticSeverityError       DiagnosticSeverity = 1
	DiagnosticSeverityWarning     DiagnosticSeverity = 2
	DiagnosticSeverityInformation DiagnosticSeverity = 3
	DiagnosticSeverityHint        DiagnosticSeverity = 4
)

var diagnosticSeverityNames = map[DiagnosticSeverity]string{
	DiagnosticSeverityError:       "Error",
	DiagnosticSeverityWarning:     "Warning",
	DiagnosticSeverityInformation: "Information",
	DiagnosticSeverityHint:        "Hint",
}

// String returns the variant name.
func (s DiagnosticSeverity) String() string {
	if name, ok := diagnosticSeverityNames[s]; ok {
		return name
	}
	return fmt.Sprintf("DiagnosticSeverity(%d)", int(s))
}

// UnmarshalJSON decodes a DiagnosticSeverity, rejecting unknown codes.
func (s *DiagnosticSeverity) UnmarshalJSON(data []byte) error {
	n, err := decodeEnum(data, "DiagnosticSeverity", func(n int) bool {
		_, ok := diagnosticSeverityNames[DiagnosticSeverity(n)]
		return ok
	})
	if err != nil {
		return err
	}
	*s = DiagnosticSeverity(n)
	return nil
}

// Diagnostic represents a problem reported for a range in a document.
// When Severity is nil it is up to the client to pick an interpretation.
// Source names the producing tool, e.g. "typescript" or "super lint".
type Diagnostic struct {
	Range    Range               `json:"range"`
	Severity *DiagnosticSeverity `json:"severity,omitempty"`
	Code     string              `json:"code"`
	Source   string              `json:"source,omitempty"`
	Message  string              `json:"message"`
}

// UnmarshalJSON decodes a Diagnostic.
func (d *Diagnostic) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "Diagnostic")
	if err != nil {
		return err
	}
	if err := decodeField(obj, "Diagnostic", "range", &d.Range); err != nil {
		return err
	}
	var severity DiagnosticSeverity
	ok, err := decodeOptField(obj, "Diagnostic", "severity", &severity)
	if err != nil {
		return err
	}
	if ok {
		d.Severity = &severity
	} else {
		d.Severity = nil
	}
	code, err := reqString(obj, "Diagnostic", "code")
	if err != nil {
		return err
	}
	source, err := optString(obj, "Diagnostic", "source")
	if err != nil {
		return err
	}
	message, err := reqString(obj, "Diagnostic", "message")
	if err != nil {
		return err
	}
	d.Code = code
	d.Source = source
	d.Message = message
	return nil
}

// PublishDiagnosticsParams are parameters for textDocument/publishDiagnostics.
// Diagnostic order is server-determined and preserved as-is.
type PublishDiagnosticsParams struct {
	URI         DocumentURI  `json:"uri"`
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// MarshalJSON encodes a PublishDiagnosticsParams, never emitting null for
// diagnostics.
func (p PublishDiagnosticsParams) MarshalJSON() ([]byte, error) {
	type wire PublishDiagnosticsParams
	w := wire(p)
	w.Diagnostics = nonNil(w.Diagnostics)
	return json.Marshal(w)
}

// UnmarshalJSON decodes a PublishDiagnosticsParams.
func (p *PublishDiagnosticsParams) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "PublishDiagnosticsParams")
	if err != nil {
		return err
	}
	uri, err := reqString(obj, "PublishDiagnosticsParams", "uri")
	if err != nil {
		return err
	}
	diagnostics, err := decodeArray[Diagnostic](obj, "PublishDiagnosticsParams", "diagnostics")
	if err != nil {
		return err
	}
	p.URI = DocumentURI(uri)
	p.Diagnostics = diagnostics
	return nil
}
