package styling

import "strings"

// Parse parses a style in CSS syntax, "key1: value1; key2: value2; ...".
//
// Whitespace around keys and values is insignificant and empty statements,
// as produced by a trailing or repeated ';', are skipped. Within one
// statement the first ':' separates key from value. Each raw value is
// coerced through the Styler's coerce function, with the key as type hint.
//
// Input which is empty, or contains no statement, yields a nil mapping and
// no error: "no style", as opposed to an empty one. A statement without a
// colon, or with an empty key or value, fails with a *SyntaxError.
func (s Styler) Parse(text string) (*Mapping, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	var m *Mapping
	for _, part := range strings.Split(text, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		sep := strings.IndexByte(part, ':')
		if sep < 0 {
			return nil, &SyntaxError{Part: part, Reason: "missing colon"}
		}
		key := strings.TrimSpace(part[:sep])
		raw := strings.TrimSpace(part[sep+1:])
		if key == "" {
			return nil, &SyntaxError{Part: part, Reason: "missing key"}
		}
		if raw == "" {
			return nil, &SyntaxError{Part: part, Reason: "missing value"}
		}
		v, err := s.coerceToken(key, raw)
		if err != nil {
			return nil, err
		}
		if m == nil {
			m = NewMapping()
		}
		m.Set(key, v)
	}
	return m, nil
}
