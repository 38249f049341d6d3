package leafbind

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeEmptyName          = "empty_name"
	CodeDuplicateType      = "duplicate_type"
	CodeUndeclaredType     = "undeclared_type"
	CodeUndefinedType      = "undefined_type"
	CodeUnresolvedRef      = "unresolved_ref"
	CodeDuplicateEvent     = "duplicate_event"
	CodeDuplicateField     = "duplicate_field"
	CodeMissingZeroCtor    = "missing_zero_ctor"
	CodeDuplicateResource  = "duplicate_resource"
	CodeUnknownResourceDep = "unknown_resource_dep"
	CodeMissingAlias       = "missing_alias"
)

// Issue represents a single registration diagnostic.
type Issue struct {
	Path    string // slash path into the registry (for example: /Map/members/setView)
	Code    string // one of the codes listed above
	Message string
	Hint    string // optional: the offending name, remediation hints
}

// Issues is a collection of build diagnostics that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. duplicate_event at /Map/events/click
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
