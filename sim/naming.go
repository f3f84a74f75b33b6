package sim

import (
	"strings"
	"unicode"
)

// A Named object is an object that has a name.
type Named interface {
	Name() string
}

// NameMustBeValid panics if the name does not follow the naming convention.
// Names are organized hierarchically, with tokens separated by dots. Each
// token must be a non-empty, capitalized CamelCase identifier, optionally
// followed by square-bracket indices (e.g., "FIFO.TopPort" or "RAM.Bank[3]").
func NameMustBeValid(name string) {
	if name == "" {
		panic("name must not be empty")
	}

	tokens := strings.Split(name, ".")
	for _, token := range tokens {
		nameTokenMustBeValid(name, token)
	}
}

func nameTokenMustBeValid(name, token string) {
	elem, indices, ok := splitToken(token)
	if !ok {
		panic("name " + name + " is not valid: brackets must match")
	}

	if elem == "" {
		panic("name " + name + " is not valid: token must not be empty")
	}

	if !unicode.IsUpper(rune(elem[0])) {
		panic("name " + name + " is not valid: token must be capitalized")
	}

	for _, r := range elem {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			panic("name " + name +
				" is not valid: token must be alphanumeric")
		}
	}

	for _, index := range indices {
		if index == "" {
			panic("name " + name + " is not valid: index must not be empty")
		}

		for _, r := range index {
			if !unicode.IsDigit(r) {
				panic("name " + name +
					" is not valid: index must be an integer")
			}
		}
	}
}

func splitToken(token string) (elem string, indices []string, ok bool) {
	open := strings.IndexByte(token, '[')
	if open < 0 {
		if strings.ContainsRune(token, ']') {
			return "", nil, false
		}
		return token, nil, true
	}

	elem = token[:open]
	rest := token[open:]

	for rest != "" {
		if rest[0] != '[' {
			return "", nil, false
		}

		closing := strings.IndexByte(rest, ']')
		if closing < 0 {
			return "", nil, false
		}

		indices = append(indices, rest[1:closing])
		rest = rest[closing+1:]
	}

	return elem, indices, true
}
