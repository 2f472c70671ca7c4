package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/gestures/pkg/errors"
)

// FormatError renders a command failure for stderr. Details attached to a
// GestureError follow the message, one per line in key order.
func FormatError(err error) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Error: %v\n", err)

	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "  %s: %v\n", k, details[k])
	}
	return b.String()
}
