// Package placeholder substitutes {json_data(...)} markers in command
// arguments with values from the script's active JSON document.
package placeholder

import (
	"os"
	"strings"

	"github.com/tidwall/gjson"
)

const (
	marker    = "{json_data("
	markerEnd = ")}"
)

// Resolver replaces placeholder accessors using the document at the active
// path. The document is read once and cached; setting a new path drops the
// cache. A Resolver belongs to a single interpreter run.
type Resolver struct {
	path string
	doc  []byte
	ok   bool
}

// New returns a Resolver with no active document; Resolve passes arguments
// through unchanged until SetDocument is called.
func New() *Resolver {
	return &Resolver{}
}

// SetDocument points the resolver at a new document path, unconditionally
// replacing any previous one.
func (r *Resolver) SetDocument(path string) {
	r.path = path
	r.doc = nil
	r.ok = false
	if data, err := os.ReadFile(path); err == nil && gjson.ValidBytes(data) {
		r.doc = data
		r.ok = true
	}
}

// Active reports whether a document path has been set.
func (r *Resolver) Active() bool {
	return r.path != ""
}

// Resolve replaces every {json_data(a.b.c)} occurrence in arg with the string
// form of the value at that dot path. Accessors that reach nothing, and any
// arg when the document could not be read, are left literal.
func (r *Resolver) Resolve(arg string) string {
	if !r.ok || !strings.Contains(arg, marker) {
		return arg
	}

	var out strings.Builder
	rest := arg
	for {
		start := strings.Index(rest, marker)
		if start == -1 {
			out.WriteString(rest)
			break
		}
		end := strings.Index(rest[start:], markerEnd)
		if end == -1 {
			out.WriteString(rest)
			break
		}
		end += start

		accessor := rest[start+len(marker) : end]
		value := gjson.GetBytes(r.doc, accessor)

		out.WriteString(rest[:start])
		if value.Exists() {
			out.WriteString(value.String())
		} else {
			out.WriteString(rest[start : end+len(markerEnd)])
		}
		rest = rest[end+len(markerEnd):]
	}
	return out.String()
}
