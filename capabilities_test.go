package lspwire

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func boolPtr(b bool) *bool { return &b }

func intPtr(n int) *int { return &n }

func syncKindPtr(k TextDocumentSyncKind) *TextDocumentSyncKind { return &k }

func TestInitializeParams_Decode(t *testing.T) {
	input := `{"processId":1234,"rootPath":"/home/user/project","capabilities":{"workspace":{}}}`
	var p InitializeParams
	if err := json.Unmarshal([]byte(input), &p); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if p.ProcessID != 1234 {
		t.Errorf("ProcessID = %d, want 1234", p.ProcessID)
	}
	if p.RootPath != "/home/user/project" {
		t.Errorf("RootPath = %q, want /home/user/project", p.RootPath)
	}
}

func TestInitializeParams_NoRootPath(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"absent", `{"processId":1,"capabilities":{}}`},
		{"null", `{"processId":1,"rootPath":null,"capabilities":{}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p InitializeParams
			if err := json.Unmarshal([]byte(tt.input), &p); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if p.RootPath != "" {
				t.Errorf("RootPath = %q, want empty", p.RootPath)
			}
		})
	}

	// An absent rootPath stays absent when re-encoded.
	data, err := json.Marshal(InitializeParams{ProcessID: 1})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	got := wireTree(t, data).(map[string]any)
	if _, ok := got["rootPath"]; ok {
		t.Errorf("rootPath present in wire object: %s", data)
	}
}

func TestInitializeParams_MissingCapabilitiesFails(t *testing.T) {
	var p InitializeParams
	err := json.Unmarshal([]byte(`{"processId":1}`), &p)
	var fe *FieldError
	if !errors.As(err, &fe) || fe.Field != "capabilities" {
		t.Fatalf("Unmarshal() error = %v, want *FieldError on capabilities", err)
	}
}

func TestInitializeError_RoundTrip(t *testing.T) {
	in := InitializeError{Retry: true}
	var out InitializeError
	roundTrip(t, in, &out)
	if out != in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestTextDocumentSyncKind_Decode(t *testing.T) {
	tests := []struct {
		input string
		want  TextDocumentSyncKind
		ok    bool
	}{
		{"0", TextDocumentSyncKindNone, true},
		{"1", TextDocumentSyncKindFull, true},
		{"2", TextDocumentSyncKindIncremental, true},
		{"3", 0, false},
		{"-1", 0, false},
	}

	for _, tt := range tests {
		var k TextDocumentSyncKind
		err := json.Unmarshal([]byte(tt.input), &k)
		if tt.ok {
			if err != nil {
				t.Errorf("Unmarshal(%s) error = %v", tt.input, err)
			} else if k != tt.want {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.input, k, tt.want)
			}
			continue
		}
		var ee *EnumError
		if !errors.As(err, &ee) {
			t.Errorf("Unmarshal(%s) error = %v, want *EnumError", tt.input, err)
		}
	}
}

func TestServerCapabilities_EmptyEncodesEmptyObject(t *testing.T) {
	data, err := json.Marshal(ServerCapabilities{})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `{}` {
		t.Errorf("Marshal() = %s, want {}", data)
	}
}

func TestServerCapabilities_RoundTrip(t *testing.T) {
	in := ServerCapabilities{
		TextDocumentSync:   syncKindPtr(TextDocumentSyncKindIncremental),
		HoverProvider:      boolPtr(true),
		DefinitionProvider: boolPtr(false),
		CompletionProvider: &CompletionOptions{
			ResolveProvider:   boolPtr(true),
			TriggerCharacters: []string{".", ":"},
		},
		SignatureHelpProvider: &SignatureHelpOptions{
			TriggerCharacters: []string{"(", ","},
		},
		CodeLensProvider: &CodeLensOptions{ResolveProvider: boolPtr(false)},
		DocumentOnTypeFormattingProvider: &DocumentOnTypeFormattingOptions{
			FirstTriggerCharacter: "}",
			MoreTriggerCharacter:  []string{";", "\n"},
		},
		RenameProvider: boolPtr(true),
	}
	var out ServerCapabilities
	roundTrip(t, in, &out)
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestServerCapabilities_AbsentIsNotOffered(t *testing.T) {
	var caps ServerCapabilities
	if err := json.Unmarshal([]byte(`{"hoverProvider":true}`), &caps); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if caps.HoverProvider == nil || !*caps.HoverProvider {
		t.Errorf("HoverProvider = %v, want true", caps.HoverProvider)
	}
	if caps.DefinitionProvider != nil {
		t.Errorf("DefinitionProvider = %v, want nil", caps.DefinitionProvider)
	}
	if caps.TextDocumentSync != nil {
		t.Errorf("TextDocumentSync = %v, want nil", caps.TextDocumentSync)
	}
}

func TestServerCapabilities_FalseSurvivesRoundTrip(t *testing.T) {
	// Explicit false is distinct from absent on the wire.
	in := ServerCapabilities{CodeActionProvider: boolPtr(false)}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"codeActionProvider":false}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
	var out ServerCapabilities
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if out.CodeActionProvider == nil || *out.CodeActionProvider {
		t.Errorf("CodeActionProvider = %v, want false", out.CodeActionProvider)
	}
}

func TestServerCapabilities_BadSyncKindFails(t *testing.T) {
	var caps ServerCapabilities
	err := json.Unmarshal([]byte(`{"textDocumentSync":5}`), &caps)
	var ee *EnumError
	if !errors.As(err, &ee) {
		t.Fatalf("Unmarshal() error = %v, want *EnumError", err)
	}
	if ee.Type != "TextDocumentSyncKind" {
		t.Errorf("EnumError.Type = %q, want TextDocumentSyncKind", ee.Type)
	}
}

func TestCompletionOptions_Omission(t *testing.T) {
	tests := []struct {
		name string
		opts CompletionOptions
		want string
	}{
		{"empty", CompletionOptions{}, `{}`},
		{"nil triggers", CompletionOptions{TriggerCharacters: nil}, `{}`},
		{"empty triggers", CompletionOptions{TriggerCharacters: []string{}}, `{}`},
		{
			"one trigger",
			CompletionOptions{TriggerCharacters: []string{"."}},
			`{"triggerCharacters":["."]}`,
		},
		{
			"resolve only",
			CompletionOptions{ResolveProvider: boolPtr(true)},
			`{"resolveProvider":true}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.opts)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal() = %s, want %s", data, tt.want)
			}
		})
	}
}

func TestDocumentOnTypeFormattingOptions_Decode(t *testing.T) {
	input := `{"firstTriggerCharacter":"}","moreTriggerCharacter":[";"]}`
	var opts DocumentOnTypeFormattingOptions
	if err := json.Unmarshal([]byte(input), &opts); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if opts.FirstTriggerCharacter != "}" {
		t.Errorf("FirstTriggerCharacter = %q, want }", opts.FirstTriggerCharacter)
	}

	var missing DocumentOnTypeFormattingOptions
	err := json.Unmarshal([]byte(`{}`), &missing)
	var fe *FieldError
	if !errors.As(err, &fe) || fe.Field != "firstTriggerCharacter" {
		t.Fatalf("Unmarshal({}) error = %v, want *FieldError on firstTriggerCharacter", err)
	}
}
