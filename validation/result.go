package validation

import "strings"

// Result accumulates human-readable rule violations in the order the rules
// ran. An empty Result means the entity passed every check.
type Result struct {
	errors []string
}

// AddError records a violation. Blank or whitespace-only messages are ignored.
func (r *Result) AddError(msg string) {
	if strings.TrimSpace(msg) == "" {
		return
	}
	r.errors = append(r.errors, msg)
}

func (r *Result) IsValid() bool {
	return len(r.errors) == 0
}

// Errors returns the recorded messages in insertion order.
func (r *Result) Errors() []string {
	out := make([]string, len(r.errors))
	copy(out, r.errors)
	return out
}

// ErrorText joins all messages with newlines. This joined form is what the
// service layer surfaces to callers on a validation failure.
func (r *Result) ErrorText() string {
	return strings.Join(r.errors, "\n")
}
