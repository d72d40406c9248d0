package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// Lookup navigates a dotted path such as "a.b[0].c" from y. Name segments
// index objects, bracketed integers index arrays. An empty path returns y.
func Lookup(y *Node, path string) (*Node, error) {
	cur := y
	rest := path
	for rest != "" {
		var seg string
		switch {
		case rest[0] == '.':
			rest = rest[1:]
			continue
		case rest[0] == '[':
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return nil, fmt.Errorf("bad path %q: unterminated index", path)
			}
			idx, err := strconv.Atoi(rest[1:end])
			if err != nil {
				return nil, fmt.Errorf("bad path %q: %w", path, err)
			}
			child, err := cur.At(idx)
			if err != nil {
				return nil, fmt.Errorf("path %q at [%d]: %w", path, idx, err)
			}
			cur = child
			rest = rest[end+1:]
		default:
			end := strings.IndexAny(rest, ".[")
			if end < 0 {
				seg, rest = rest, ""
			} else {
				seg, rest = rest[:end], rest[end:]
			}
			child, err := cur.Get(seg)
			if err != nil {
				return nil, fmt.Errorf("path %q at %q: %w", path, seg, err)
			}
			cur = child
		}
	}
	return cur, nil
}
