package devsettings

import (
	"fmt"
	"strings"
)

// DebuggingMethod selects how the host attaches a debugger.
type DebuggingMethod string

const (
	// MethodUnspecified lets EnableDebugging reuse the last stored method,
	// falling back to MethodWeb.
	MethodUnspecified DebuggingMethod = ""
	MethodDirect      DebuggingMethod = "direct"
	MethodWeb         DebuggingMethod = "web"
)

// DefaultDebuggingMethod is used when no method was ever stored.
const DefaultDebuggingMethod = MethodWeb

// ParseDebuggingMethod accepts "direct" or "web" in any case. An empty
// string parses as MethodUnspecified.
func ParseDebuggingMethod(s string) (DebuggingMethod, error) {
	switch m := DebuggingMethod(strings.ToLower(strings.TrimSpace(s))); m {
	case MethodUnspecified, MethodDirect, MethodWeb:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q (expected direct or web)", ErrInvalidDebuggingMethod, s)
	}
}

func (m DebuggingMethod) String() string {
	if m == MethodUnspecified {
		return "unspecified"
	}
	return string(m)
}

// DevSettings is the logical record held per add-in, with defaults applied.
type DevSettings struct {
	DebuggingEnabled bool `json:"debuggingEnabled"`
	// DebuggingMethod is the last method used. It is kept while debugging
	// is disabled so re-enabling restores it.
	DebuggingMethod   DebuggingMethod `json:"debuggingMethod"`
	LiveReloadEnabled bool            `json:"liveReloadEnabled"`
	SourceBundleURL   URLParts        `json:"sourceBundleUrl"`
}

// DefaultDevSettings is what an add-in with no stored settings reads as.
func DefaultDevSettings() DevSettings {
	return DevSettings{
		DebuggingMethod: DefaultDebuggingMethod,
		SourceBundleURL: URLParts{}.WithDefaults(),
	}
}
