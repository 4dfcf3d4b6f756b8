package i18n

import (
	"fmt"
	"strings"
)

// Expand substitutes bracketed placeholders in a translation template with
// values from params. Placeholder syntax is [name]. The key identifies the
// template's token for error reporting and may be empty.
//
// Expansion is a single left-to-right pass: substituted values are never
// re-scanned, so a value containing brackets cannot trigger further
// expansion. A placeholder with no supplied value fails with
// *UnboundParameterError; an unterminated or empty bracket fails with
// *MalformedTemplateError. Placeholders do not nest.
func Expand(key, template string, params map[string]any) (string, error) {
	if !strings.ContainsRune(template, '[') {
		return template, nil
	}

	var out strings.Builder
	out.Grow(len(template))

	for i := 0; i < len(template); {
		open := strings.IndexByte(template[i:], '[')
		if open < 0 {
			out.WriteString(template[i:])
			break
		}
		open += i
		out.WriteString(template[i:open])

		end := strings.IndexByte(template[open+1:], ']')
		if end < 0 {
			return "", &MalformedTemplateError{Key: key, Template: template, Pos: open}
		}
		name := template[open+1 : open+1+end]
		if name == "" || strings.ContainsRune(name, '[') {
			return "", &MalformedTemplateError{Key: key, Template: template, Pos: open}
		}

		value, ok := params[name]
		if !ok {
			return "", &UnboundParameterError{Key: key, Placeholder: name}
		}
		fmt.Fprintf(&out, "%v", value)

		i = open + end + 2
	}

	return out.String(), nil
}
