package lspwire

import (
	"runtime"
	"testing"
)

func TestFilePathToURI(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix paths")
	}

	tests := []struct {
		path string
		want DocumentURI
	}{
		{"/home/user/main.go", "file:///home/user/main.go"},
		{"/tmp/file with spaces.txt", "file:///tmp/file%20with%20spaces.txt"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := FilePathToURI(tt.path); got != tt.want {
			t.Errorf("FilePathToURI(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestURIToFilePath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix paths")
	}

	tests := []struct {
		uri  DocumentURI
		want string
	}{
		{"file:///home/user/main.go", "/home/user/main.go"},
		{"file:///tmp/file%20with%20spaces.txt", "/tmp/file with spaces.txt"},
		{"untitled:Untitled-1", "untitled:Untitled-1"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := URIToFilePath(tt.uri); got != tt.want {
			t.Errorf("URIToFilePath(%q) = %q, want %q", tt.uri, got, tt.want)
		}
	}
}

func TestFilePathURIRoundTrip(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix paths")
	}

	paths := []string{
		"/home/user/project/main.go",
		"/var/log/app.log",
	}
	for _, path := range paths {
		if got := URIToFilePath(FilePathToURI(path)); got != path {
			t.Errorf("round trip of %q = %q", path, got)
		}
	}
}

func TestDetectLanguageID(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"main.go", "go"},
		{"lib.rs", "rust"},
		{"app.tsx", "typescriptreact"},
		{"script.PY", "python"},
		{"header.hpp", "cpp"},
		{"Dockerfile", "dockerfile"},
		{"Makefile", "makefile"},
		{"notes.txt", "plaintext"},
		{"no_extension", "plaintext"},
	}

	for _, tt := range tests {
		if got := DetectLanguageID(tt.path); got != tt.want {
			t.Errorf("DetectLanguageID(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
