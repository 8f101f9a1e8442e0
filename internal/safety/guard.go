package safety

import "strings"

// dangerousTokens are path fragments that risk escaping the directory a
// script was scoped to: parent traversal and home references.
var dangerousTokens = []string{"..", "~"}

// wildcardSuffixes, appended directly to a protected root, select everything
// underneath it in one operation.
var wildcardSuffixes = []string{"*", "*/"}

// Guard decides whether a path is too dangerous for a destructive command.
// Protection comes in two tiers: ultra-protected roots are refused outright,
// protected roots allow subpaths as long as no segment carries a dangerous
// token. Both tiers are fixed at construction.
type Guard struct {
	storageRoot    string
	protected      []string
	ultraProtected []string
}

// New builds a Guard. storageRoot is the generic volume prefix (for the
// console layout, "sdmc:/"); protected should be a superset of ultra.
func New(storageRoot string, protected, ultra []string) *Guard {
	return &Guard{
		storageRoot:    storageRoot,
		protected:      protected,
		ultraProtected: ultra,
	}
}

// IsDangerous reports whether a destructive operation on path must be
// refused. Pure and stateless; the dispatcher calls it for delete and move.
func (g *Guard) IsDangerous(path string) bool {
	for _, folder := range g.ultraProtected {
		if strings.HasPrefix(path, folder) {
			return true
		}
	}

	for _, folder := range g.protected {
		if path == folder {
			return true
		}

		if strings.HasPrefix(path, folder) {
			if anySegmentContainsToken(path[len(folder):]) {
				return true
			}
		}

		for _, suffix := range wildcardSuffixes {
			if path == folder+suffix {
				return true
			}
		}
	}

	if strings.HasPrefix(path, g.storageRoot) {
		if anySegmentIsToken(path[len(g.storageRoot):]) {
			return true
		}
	}

	if idx := strings.Index(path, ":/"); idx != -1 {
		if strings.ContainsRune(path[:idx+2], '*') {
			return true
		}
	}

	for _, token := range dangerousTokens {
		if strings.Contains(path, token) {
			return true
		}
	}

	return false
}

// anySegmentContainsToken splits rel on '/' and reports whether any
// non-empty segment contains a dangerous token as a substring.
func anySegmentContainsToken(rel string) bool {
	for _, segment := range strings.Split(rel, "/") {
		if segment == "" {
			continue
		}
		for _, token := range dangerousTokens {
			if strings.Contains(segment, token) {
				return true
			}
		}
	}
	return false
}

// anySegmentIsToken is the stricter storage-root rule: a segment must equal
// a dangerous token exactly.
func anySegmentIsToken(rel string) bool {
	for _, segment := range strings.Split(rel, "/") {
		if segment == "" {
			continue
		}
		for _, token := range dangerousTokens {
			if segment == token {
				return true
			}
		}
	}
	return false
}
