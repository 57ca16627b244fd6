// Package lspwire implements the message schema of the Language Server
// Protocol: the typed entities exchanged between a development-tool client
// and a language-analysis server, and their lossless mapping to and from the
// untyped JSON wire encoding.
//
// The package is a pure codec. It owns the entity catalog (positions,
// ranges, document identity, diagnostics, completion, hover, signatures,
// symbols, code actions and lenses, edits, and window messages), the
// integer encoding of the protocol's closed enumerations, and the
// shape-based encoding of MarkedString. Transport framing, the JSON-RPC
// envelope, and the language analysis that produces these payloads live in
// the caller.
//
// # Decoding
//
// Every entity implements json.Unmarshaler with strict validation: required
// fields must be present with the matching shape, enumeration codes outside
// the protocol's tables are rejected, and unknown keys are ignored so newer
// peers never break older ones. Failures are reported as *FieldError,
// *EnumError, or *ShapeError carrying the entity name, the wire key, and
// the offending raw value:
//
//	var params lspwire.DidChangeTextDocumentParams
//	if err := json.Unmarshal(payload, &params); err != nil {
//	    var fe *lspwire.FieldError
//	    if errors.As(err, &fe) {
//	        // respond with an invalid-params error
//	    }
//	}
//
// Decoding never substitutes defaults: an invalid message fails as a whole.
//
// # Encoding
//
// Entities marshal with encoding/json. Optional fields are omitted from the
// wire when absent, and a handful of sequence fields are omitted when empty,
// matching the protocol's per-field omission rules. Encoding cannot fail for
// well-formed entities.
//
// # Positions and edits
//
// Wire positions are zero-based and count UTF-16 code units.
// PositionConverter translates between byte offsets and Positions, and
// ApplyContentChange/ApplyEdits apply the protocol's change and edit
// semantics to document content.
//
// # Concurrency
//
// The package holds no state beyond immutable tables; any number of encode
// and decode calls may run concurrently.
package lspwire
