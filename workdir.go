package termcore

import "strings"

// SetWorkingDirectory stores the working directory reported by the host,
// usually a file:// URI from OSC 7. Plain bookkeeping; nothing here depends
// on it.
func (t *Terminal) SetWorkingDirectory(uri string) {
	t.workingDirectory = uri
}

// WorkingDirectory returns the stored working directory URI.
func (t *Terminal) WorkingDirectory() string {
	return t.workingDirectory
}

// WorkingDirectoryPath extracts the path from a file://hostname/path working
// directory URI. Returns empty string when no path can be extracted.
func (t *Terminal) WorkingDirectoryPath() string {
	uri := t.workingDirectory

	const prefix = "file://"
	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	rest := uri[len(prefix):]

	slash := strings.IndexByte(rest, '/')
	if slash < 0 {
		return ""
	}
	return rest[slash:]
}
