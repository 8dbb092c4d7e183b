// Package recordfile parses a persisted optimization-record document into
// the same Remark value the live collector produces, using a hand-rolled
// heuristic scanner rather than a general YAML library. The format is
// YAML-shaped but not YAML (repeated keys inside "Args:", ad hoc quoting),
// and a real parser would choke on or silently mis-handle both.
package recordfile

import (
	"os"
	"strconv"
	"strings"

	"github.com/Serosh-commits/Aion/internal/support"
)

// Parse reads a record-file document from disk.
func Parse(path string) ([]support.Remark, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, support.WrapError(support.IoError, "failed to open record file "+path, err)
	}
	return ParseString(string(data)), nil
}

// ParseString parses a record-file document already in memory. Malformed
// or unrecognized records are skipped silently; this stage never fails.
func ParseString(content string) []support.Remark {
	var remarks []support.Remark
	pos := 0

	for {
		recordStart := strings.Index(content[pos:], "---")
		if recordStart < 0 {
			break
		}
		recordStart += pos

		bodyStart := recordStart + 3
		end := len(content)
		if next := strings.Index(content[bodyStart:], "\n---"); next >= 0 {
			end = bodyStart + next + 1
		}

		record := content[recordStart:end]
		pos = end

		kind, ok := recordKind(record)
		if !ok {
			continue
		}

		var r support.Remark
		r.Kind = kind
		r.PassName = extractField(record, "Pass:")
		r.RemarkName = extractField(record, "Name:")
		r.FunctionName = extractField(record, "Function:")
		r.Message = extractMessage(record)

		if strings.Contains(record, "DebugLoc:") {
			r.Loc.File = extractField(record, "File:")
			if lineStr := extractField(record, "Line:"); lineStr != "" {
				if v, err := strconv.ParseUint(lineStr, 10, 64); err == nil {
					r.Loc.Line = uint(v)
				}
			}
			if colStr := extractField(record, "Column:"); colStr != "" {
				if v, err := strconv.ParseUint(colStr, 10, 64); err == nil {
					r.Loc.Column = uint(v)
				}
			}
		}

		if r.PassName != "" {
			remarks = append(remarks, r)
		}
	}

	return remarks
}

func recordKind(record string) (support.RemarkKind, bool) {
	switch {
	case strings.HasPrefix(record, "--- !Missed"):
		return support.Missed, true
	case strings.HasPrefix(record, "--- !Passed"):
		return support.Applied, true
	case strings.HasPrefix(record, "--- !Analysis"):
		return support.Analysis, true
	default:
		return 0, false
	}
}

// extractField finds the first occurrence of field where the preceding
// byte is a record-start, newline, space, or '{' (a best-effort defense
// against matching the same text inside a message body), then returns the
// rest of that line, single-quote-stripped and trimmed.
func extractField(record, field string) string {
	searchFrom := 0
	for {
		idx := strings.Index(record[searchFrom:], field)
		if idx < 0 {
			return ""
		}
		idx += searchFrom
		if idx == 0 || isBoundaryByte(record[idx-1]) {
			lineEnd := strings.IndexByte(record[idx+len(field):], '\n')
			var line string
			if lineEnd < 0 {
				line = record[idx+len(field):]
			} else {
				line = record[idx+len(field) : idx+len(field)+lineEnd]
			}
			return unquote(line)
		}
		searchFrom = idx + len(field)
	}
}

func isBoundaryByte(b byte) bool {
	return b == '\n' || b == ' ' || b == '{'
}

func unquote(line string) string {
	if q := strings.IndexByte(line, '\''); q >= 0 {
		rest := line[q+1:]
		if q2 := strings.IndexByte(rest, '\''); q2 >= 0 {
			return rest[:q2]
		}
		return ""
	}
	return strings.TrimSpace(line)
}

// extractMessage reconstructs the human message from the "Args:" section:
// a sequence of "Key: Value" map items, one per line in the block form a
// live pass manager emits, or packed onto one line as "[ {Key: 'v'}, ... ]"
// in the compact form a hand-authored record file might use. Each item
// contributes one value, concatenated with a single separating space
// inserted only where neither side already has one.
func extractMessage(record string) string {
	argsPos := strings.Index(record, "Args:")
	if argsPos < 0 {
		return ""
	}

	section := record[argsPos+len("Args:"):]

	var full strings.Builder
	cursor := 0
	for {
		sep := strings.Index(section[cursor:], ": ")
		if sep < 0 {
			break
		}
		sep += cursor

		// The key is the run of identifier bytes immediately before sep.
		keyStart := sep
		for keyStart > 0 && isIdentByte(section[keyStart-1]) {
			keyStart--
		}
		if keyStart == sep {
			cursor = sep + 2
			continue
		}

		valueStart := sep + 2
		for valueStart < len(section) && section[valueStart] == ' ' {
			valueStart++
		}
		var value string
		var next int
		if valueStart < len(section) && section[valueStart] == '\'' {
			closing := strings.IndexByte(section[valueStart+1:], '\'')
			if closing < 0 {
				break
			}
			value = section[valueStart+1 : valueStart+1+closing]
			next = valueStart + 1 + closing + 1
		} else {
			end := len(section)
			for _, stop := range []byte{',', '}', '\n'} {
				if idx := strings.IndexByte(section[valueStart:], stop); idx >= 0 && valueStart+idx < end {
					end = valueStart + idx
				}
			}
			value = strings.TrimSpace(section[valueStart:end])
			next = end
		}

		if value != "" {
			current := full.String()
			if current != "" && !strings.HasSuffix(current, " ") && !strings.HasPrefix(value, " ") {
				full.WriteString(" ")
			}
			full.WriteString(value)
		}

		cursor = next
	}

	return full.String()
}

func isIdentByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
