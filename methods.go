package lspwire

// Method names for the messages covered by the catalog.
const (
	// Lifecycle
	MethodInitialize = "initialize"
	MethodShutdown   = "shutdown"
	MethodExit       = "exit"

	// Text document sync
	MethodDidOpen   = "textDocument/didOpen"
	MethodDidChange = "textDocument/didChange"
	MethodDidClose  = "textDocument/didClose"
	MethodDidSave   = "textDocument/didSave"

	// Language features
	MethodCompletion        = "textDocument/completion"
	MethodCompletionResolve = "completionItem/resolve"
	MethodHover             = "textDocument/hover"
	MethodSignatureHelp     = "textDocument/signatureHelp"
	MethodDefinition        = "textDocument/definition"
	MethodReferences        = "textDocument/references"
	MethodDocumentHighlight = "textDocument/documentHighlight"
	MethodDocumentSymbol    = "textDocument/documentSymbol"
	MethodCodeAction        = "textDocument/codeAction"
	MethodCodeLens          = "textDocument/codeLens"
	MethodCodeLensResolve   = "codeLens/resolve"
	MethodFormatting        = "textDocument/formatting"
	MethodRangeFormatting   = "textDocument/rangeFormatting"
	MethodOnTypeFormatting  = "textDocument/onTypeFormatting"
	MethodRename            = "textDocument/rename"

	// Workspace
	MethodWorkspaceSymbol        = "workspace/symbol"
	MethodDidChangeConfiguration = "workspace/didChangeConfiguration"
	MethodDidChangeWatchedFiles  = "workspace/didChangeWatchedFiles"

	// Server to client
	MethodPublishDiagnostics = "textDocument/publishDiagnostics"
	MethodShowMessage        = "window/showMessage"
	MethodShowMessageRequest = "window/showMessageRequest"
	MethodLogMessage         = "window/logMessage"
)
