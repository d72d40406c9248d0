package token

// The eight escapable characters and their escape letters. Forward slash
// escapes on output and unescapes on input, per the JSON grammar.
var escapePairs = [...]struct {
	raw byte
	esc byte
}{
	{'\\', '\\'},
	{'/', '/'},
	{'"', '"'},
	{'\n', 'n'},
	{'\t', 't'},
	{'\b', 'b'},
	{'\f', 'f'},
	{'\r', 'r'},
}

func escaped(c byte) (byte, bool) {
	for _, p := range escapePairs {
		if p.raw == c {
			return p.esc, true
		}
	}
	return 0, false
}

func unescaped(c byte) (byte, bool) {
	for _, p := range escapePairs {
		if p.esc == c {
			return p.raw, true
		}
	}
	return 0, false
}

// Escape replaces each escapable character with its two-character sequence
// and copies everything else verbatim.
func Escape(s string) string {
	d := make([]byte, 0, len(s)+2)
	for i := 0; i < len(s); i++ {
		if e, ok := escaped(s[i]); ok {
			d = append(d, '\\', e)
			continue
		}
		d = append(d, s[i])
	}
	return string(d)
}

// Unescape is the inverse of Escape: backslash pairs from the table become
// their single literal character, everything else copies verbatim.
// Unescape(Escape(s)) == s for all s.
func Unescape(s string) string {
	d := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			if r, ok := unescaped(s[i+1]); ok {
				d = append(d, r)
				i++
				continue
			}
		}
		d = append(d, s[i])
	}
	return string(d)
}
