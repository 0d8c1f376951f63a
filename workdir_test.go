package termcore

import "testing"

func TestWorkingDirectoryPath(t *testing.T) {
	tests := []struct {
		uri      string
		expected string
	}{
		{"file://myhost/home/user/project", "/home/user/project"},
		{"file:///tmp", "/tmp"},
		{"file://host", ""},
		{"http://example.com/x", ""},
		{"", ""},
	}

	term := New(80, 24)
	for _, tt := range tests {
		term.SetWorkingDirectory(tt.uri)
		if got := term.WorkingDirectoryPath(); got != tt.expected {
			t.Errorf("WorkingDirectoryPath(%q) = %q, want %q", tt.uri, got, tt.expected)
		}
	}
}

func TestWorkingDirectoryStoredVerbatim(t *testing.T) {
	term := New(80, 24)
	term.SetWorkingDirectory("file://host/a/b")

	if got := term.WorkingDirectory(); got != "file://host/a/b" {
		t.Errorf("WorkingDirectory() = %q, want raw URI", got)
	}
}
