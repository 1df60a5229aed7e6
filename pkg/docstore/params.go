package docstore

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Bind rewrites @name references in query to positional $n placeholders and
// returns the matching argument list. References inside quoted literals and
// identifiers are left untouched. Every reference must be supplied and every
// supplied parameter must be referenced.
func Bind(query string, params []Parameter) (string, []any, error) {
	values := make(map[string]any, len(params))
	for _, p := range params {
		if !strings.HasPrefix(p.Name, "@") || len(p.Name) < 2 {
			return "", nil, fmt.Errorf("%w: parameter name %q must start with @", ErrInvalidQuery, p.Name)
		}
		if _, dup := values[p.Name]; dup {
			return "", nil, fmt.Errorf("%w: duplicate parameter %s", ErrInvalidQuery, p.Name)
		}
		values[p.Name] = p.Value
	}

	var (
		b        strings.Builder
		args     []any
		position = map[string]int{}
	)

	for i := 0; i < len(query); i++ {
		ch := query[i]

		switch {
		case ch == '\'' || ch == '"':
			end := closingQuote(query, i)
			b.WriteString(query[i:end])
			i = end - 1

		case ch == '@' && i+1 < len(query) && isNameStart(query[i+1]):
			j := i + 1
			for j < len(query) && isNamePart(query[j]) {
				j++
			}
			name := query[i:j]

			n, seen := position[name]
			if !seen {
				v, ok := values[name]
				if !ok {
					return "", nil, fmt.Errorf("%w: parameter %s not supplied", ErrInvalidQuery, name)
				}
				args = append(args, v)
				n = len(args)
				position[name] = n
			}

			b.WriteString("$" + strconv.Itoa(n))
			i = j - 1

		default:
			b.WriteByte(ch)
		}
	}

	if len(position) != len(values) {
		unused := make([]string, 0)
		for name := range values {
			if _, ok := position[name]; !ok {
				unused = append(unused, name)
			}
		}
		sort.Strings(unused)
		return "", nil, fmt.Errorf("%w: unused parameters %s", ErrInvalidQuery, strings.Join(unused, ", "))
	}

	return b.String(), args, nil
}

// closingQuote returns the index just past the literal opened at start.
// Doubled quotes are escapes; an unterminated literal runs to the end.
func closingQuote(s string, start int) int {
	q := s[start]
	for i := start + 1; i < len(s); i++ {
		if s[i] != q {
			continue
		}
		if i+1 < len(s) && s[i+1] == q {
			i++
			continue
		}
		return i + 1
	}
	return len(s)
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNamePart(c byte) bool {
	return isNameStart(c) || (c >= '0' && c <= '9')
}
