package logger

import (
	"fmt"
	"strings"
)

// Format renders a positional template.
//
// Placeholders are substituted by args in order:
//
//   - `{}` formats the argument with %v
//   - `{:?}` formats the argument with %+v
//   - `{:#?}` formats the argument with %#v
//
// `{{` and `}}` produce literal braces. A placeholder without a matching argument renders as
// "%!v(MISSING)", and arguments left over after the last placeholder are appended as
// "%!(EXTRA ...)", following the conventions of the fmt package.
func Format(template string, args ...any) string {
	var sb strings.Builder
	sb.Grow(len(template) + 8*len(args))

	argIdx := 0
	for i := 0; i < len(template); i++ {
		ch := template[i]
		switch ch {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				sb.WriteByte('{')
				i++
				continue
			}

			end := strings.IndexByte(template[i:], '}')
			if end < 0 {
				sb.WriteString(template[i:])
				return appendExtra(&sb, args[argIdx:])
			}

			verb, ok := placeholderVerb(template[i+1 : i+end])
			if !ok {
				// not a placeholder, keep it verbatim
				sb.WriteString(template[i : i+end+1])
				i += end
				continue
			}

			if argIdx < len(args) {
				fmt.Fprintf(&sb, verb, args[argIdx])
				argIdx++
			} else {
				sb.WriteString("%!v(MISSING)")
			}
			i += end
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				i++
			}
			sb.WriteByte('}')
		default:
			sb.WriteByte(ch)
		}
	}

	return appendExtra(&sb, args[argIdx:])
}

func placeholderVerb(spec string) (string, bool) {
	switch spec {
	case "":
		return "%v", true
	case ":?":
		return "%+v", true
	case ":#?":
		return "%#v", true
	}

	return "", false
}

func appendExtra(sb *strings.Builder, extra []any) string {
	if len(extra) == 0 {
		return sb.String()
	}

	sb.WriteString("%!(EXTRA ")
	for i, arg := range extra {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(sb, "%T=%v", arg, arg)
	}
	sb.WriteByte(')')

	return sb.String()
}
