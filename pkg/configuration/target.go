package configuration

// Target is the destination of a print-family option. The zero value is
// unset; StdOut is the standard-output sentinel, distinct from both unset
// and any real file.
type Target struct {
	path   string
	stdout bool
}

// StdOut directs output to standard output
var StdOut = Target{stdout: true}

// FileTarget directs output to a file
func FileTarget(path string) Target {
	return Target{path: path}
}

// IsSet reports whether the option was given at all
func (t Target) IsSet() bool {
	return t.stdout || t.path != ""
}

// IsStdOut reports whether the option points at standard output
func (t Target) IsStdOut() bool {
	return t.stdout
}

// File returns the trackable file, collapsing the standard-output sentinel
// and the unset state to ok == false.
func (t Target) File() (string, bool) {
	if t.stdout || t.path == "" {
		return "", false
	}
	return t.path, true
}

// String renders the target for logs and dumps
func (t Target) String() string {
	switch {
	case t.stdout:
		return "-"
	default:
		return t.path
	}
}
