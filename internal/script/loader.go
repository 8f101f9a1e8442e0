// Package script loads package automation files. A package file is INI-like:
// [section] headers name command lists, and every other non-empty line is one
// command, tokenized on whitespace with quote handling.
package script

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/ovlhand/packrun/pkg/types"
)

// Package maps section names to their command lists, preserving section
// order for menu-style consumers.
type Package struct {
	Order    []string
	Sections map[string]types.CommandList
}

// Load reads and tokenizes a package file.
func Load(path string) (*Package, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open package: %w", err)
	}
	defer f.Close()

	pkg := &Package{Sections: make(map[string]types.CommandList)}
	current := ""

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			current = strings.TrimSpace(line[1 : len(line)-1])
			if _, seen := pkg.Sections[current]; !seen {
				pkg.Order = append(pkg.Order, current)
				pkg.Sections[current] = nil
			}
			continue
		}
		if current == "" {
			// Commands before any section header belong to an implicit
			// unnamed list.
			current = "global"
			pkg.Order = append(pkg.Order, current)
		}
		pkg.Sections[current] = append(pkg.Sections[current], Tokenize(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read package: %w", err)
	}
	return pkg, nil
}

// Section returns the command list for name.
func (p *Package) Section(name string) (types.CommandList, bool) {
	list, ok := p.Sections[name]
	return list, ok
}

// Tokenize splits one command line on whitespace. Quoted spans (single or
// double) hold together as one token; the quotes stay attached so path
// preprocessing can see them.
func Tokenize(line string) types.Command {
	var (
		tokens types.Command
		buf    strings.Builder
		quote  byte
	)
	flush := func() {
		if buf.Len() > 0 {
			tokens = append(tokens, buf.String())
			buf.Reset()
		}
	}
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quote != 0:
			buf.WriteByte(c)
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
			buf.WriteByte(c)
		case c == ' ' || c == '\t':
			flush()
		default:
			buf.WriteByte(c)
		}
	}
	flush()
	return tokens
}
