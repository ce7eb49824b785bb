package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/keepspec/pkg/errors"
)

// FormatError renders err for the user: the message, then the details of
// the outermost structured error sorted by key.
func FormatError(f Format, err error) string {
	if err == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(Styled(f, ErrorStyle, "Error:") + " " + err.Error() + "\n")

	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "  %s %v\n", Styled(f, MutedStyle, k+":"), details[k])
	}
	return b.String()
}
