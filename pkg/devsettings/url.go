package devsettings

import (
	"net"
	"strings"
)

// Built-in source bundle url defaults.
const (
	DefaultHost      = "localhost"
	DefaultPort      = "9229"
	DefaultPath      = ""
	DefaultExtension = ".bundle"
)

// URLParts are the components of the source bundle url. Empty parts take
// their defaults when composed.
type URLParts struct {
	Host      string `json:"host"`
	Port      string `json:"port"`
	Path      string `json:"path"`
	Extension string `json:"extension"`
}

// WithDefaults fills empty parts with the built-in defaults and normalizes
// the path and extension.
func (p URLParts) WithDefaults() URLParts {
	return ResolveURL(p)
}

func (p URLParts) String() string {
	return ComposeURL(p)
}

// ResolveURL picks each part from the first layer where it is non-empty,
// then applies the built-in default. Pass layers highest precedence first,
// e.g. caller values then persisted values.
func ResolveURL(layers ...URLParts) URLParts {
	var out URLParts
	for _, l := range layers {
		if out.Host == "" {
			out.Host = l.Host
		}
		if out.Port == "" {
			out.Port = l.Port
		}
		if out.Path == "" {
			out.Path = normalizePath(l.Path)
		}
		if out.Extension == "" {
			out.Extension = NormalizeExtension(l.Extension)
		}
	}
	if out.Host == "" {
		out.Host = DefaultHost
	}
	if out.Port == "" {
		out.Port = DefaultPort
	}
	if out.Extension == "" {
		out.Extension = DefaultExtension
	}
	return out
}

// ComposeURL builds http://host:port[/path]extension. The path segment is
// only emitted when the path is non-empty.
func ComposeURL(p URLParts) string {
	p = p.WithDefaults()

	var b strings.Builder
	b.WriteString("http://")
	b.WriteString(net.JoinHostPort(p.Host, p.Port))
	if p.Path != "" {
		b.WriteByte('/')
		b.WriteString(p.Path)
	}
	b.WriteString(p.Extension)
	return b.String()
}

// DecomposeURL splits a url produced by ComposeURL back into its parts.
// The extension is taken from the last '.' of the final path segment, so a
// multi-dot extension comes back with its leading part in the path. A host
// containing '/' does not survive ComposeURL and is rejected here.
func DecomposeURL(raw string) (URLParts, error) {
	rest, ok := strings.CutPrefix(raw, "http://")
	if !ok {
		return URLParts{}, &URLComponentError{Field: "url", Value: raw}
	}

	authority, path, hasPath := strings.Cut(rest, "/")
	host, portAndExt, err := net.SplitHostPort(authority)
	if err != nil || host == "" {
		return URLParts{}, &URLComponentError{Field: "url", Value: raw}
	}

	var p URLParts
	p.Host = host
	if hasPath {
		p.Port = portAndExt
		p.Path, p.Extension = splitExtension(path)
	} else {
		n := len(portAndExt) - len(strings.TrimLeft(portAndExt, "0123456789"))
		p.Port, p.Extension = portAndExt[:n], portAndExt[n:]
	}

	if err := ValidatePort(p.Port); err != nil || p.Port == "" {
		return URLParts{}, &URLComponentError{Field: "port", Value: p.Port}
	}
	return p, nil
}

func splitExtension(path string) (string, string) {
	slash := strings.LastIndexByte(path, '/')
	dot := strings.LastIndexByte(path, '.')
	if dot <= slash {
		return path, ""
	}
	return path[:dot], path[dot:]
}

// ValidatePort accepts an empty port (meaning default) or decimal digits.
func ValidatePort(port string) error {
	for _, r := range port {
		if r < '0' || r > '9' {
			return &URLComponentError{Field: "port", Value: port}
		}
	}
	return nil
}

// NormalizeExtension prefixes a missing leading '.'.
func NormalizeExtension(ext string) string {
	if ext == "" || strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}

func normalizePath(path string) string {
	return strings.TrimLeft(path, "/")
}
