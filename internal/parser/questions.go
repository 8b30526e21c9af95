// Package parser turns raw AI completion text into validated interview
// questions. The upstream text is prose that embeds a JSON-like array behind a
// variable assignment (interviewQuestions = [...]), usually in relaxed literal
// syntax, so extraction and normalization both have to be defensive.
package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/bhagatankit05/NextHire/pkg/model"
)

var (
	// ErrNoPayloadFound means no "identifier = [...]" region exists in the text.
	ErrNoPayloadFound = errors.New("parser: no question payload found in response")
	// ErrNoValidQuestions means a payload was parsed but no element carried a
	// usable question string.
	ErrNoValidQuestions = errors.New("parser: no valid questions in payload")
)

// MalformedPayloadError carries the offending substring for diagnostics. Raw
// json errors never escape this package.
type MalformedPayloadError struct {
	Payload string
	Err     error
}

func (e *MalformedPayloadError) Error() string {
	snippet := e.Payload
	if len(snippet) > 120 {
		snippet = snippet[:120] + "..."
	}
	return fmt.Sprintf("parser: malformed question payload: %v (payload: %q)", e.Err, snippet)
}

func (e *MalformedPayloadError) Unwrap() error { return e.Err }

// Result is a validated, ordered question list. Dropped counts elements that
// were discarded for missing a question string.
type Result struct {
	Questions []model.QuestionItem
	Dropped   int
}

// assignment head: an identifier, "=", then the opening bracket of an array.
var payloadHead = regexp.MustCompile(`[A-Za-z_$][A-Za-z0-9_$]*\s*=\s*\[`)

// ParseQuestions extracts and validates the question list embedded in raw
// completion text. Surrounding prose is ignored; the first assignment-shaped
// payload wins.
func ParseQuestions(raw string) (*Result, error) {
	loc := payloadHead.FindStringIndex(raw)
	if loc == nil {
		return nil, ErrNoPayloadFound
	}

	// The match ends at the opening bracket. Scan forward for its balanced
	// close; a lazy regex would truncate nested arrays.
	start := loc[1] - 1
	payload, ok := balancedArray(raw[start:])
	if !ok {
		return nil, &MalformedPayloadError{Payload: raw[start:], Err: errors.New("unterminated array")}
	}

	normalized := normalizeLiteral(payload)

	var items []map[string]interface{}
	if err := json.Unmarshal([]byte(normalized), &items); err != nil {
		return nil, &MalformedPayloadError{Payload: payload, Err: err}
	}

	res := &Result{}
	for _, item := range items {
		q, _ := item["question"].(string)
		if strings.TrimSpace(q) == "" {
			res.Dropped++
			continue
		}
		t, _ := item["type"].(string)
		res.Questions = append(res.Questions, model.QuestionItem{Question: q, Type: t})
	}

	if len(res.Questions) == 0 {
		return nil, ErrNoValidQuestions
	}
	return res, nil
}

// balancedArray returns the substring from the leading '[' through its
// matching ']', honoring nesting and quoted strings. s must start with '['.
func balancedArray(s string) (string, bool) {
	depth := 0
	var quote byte
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			if escaped {
				escaped = false
			} else if c == '\\' {
				escaped = true
			} else if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"':
			quote = c
		case '[', '{':
			depth++
		case ']', '}':
			depth--
			if depth == 0 {
				return s[:i+1], true
			}
		}
	}
	return "", false
}

// normalizeLiteral rewrites the relaxed array literals LLMs produce (unquoted
// keys, single-quoted strings, trailing commas) into strict JSON. Anything it
// cannot account for is left for json.Unmarshal to reject.
func normalizeLiteral(s string) string {
	var out strings.Builder
	out.Grow(len(s) + 16)

	i := 0
	for i < len(s) {
		c := s[i]

		switch {
		case c == '"' || c == '\'':
			lit, n := readString(s[i:])
			out.WriteString(lit)
			i += n

		case isIdentByte(c):
			j := i
			for j < len(s) && isIdentByte(s[j]) {
				j++
			}
			word := s[i:j]
			// keywords and numbers pass through; bare keys and bare string
			// values get quoted
			if word == "true" || word == "false" || word == "null" || isNumeric(word) {
				out.WriteString(word)
			} else {
				out.WriteByte('"')
				out.WriteString(word)
				out.WriteByte('"')
			}
			i = j

		case c == ',':
			// drop trailing commas before a closing delimiter
			k := i + 1
			for k < len(s) && (s[k] == ' ' || s[k] == '\t' || s[k] == '\n' || s[k] == '\r') {
				k++
			}
			if k < len(s) && (s[k] == ']' || s[k] == '}') {
				i++
				continue
			}
			out.WriteByte(c)
			i++

		default:
			out.WriteByte(c)
			i++
		}
	}
	return out.String()
}

// readString consumes one quoted string starting at s[0] and returns its
// strict-JSON form plus the number of input bytes consumed. Single-quoted
// strings are converted; inner double quotes get escaped.
func readString(s string) (string, int) {
	quote := s[0]
	var out strings.Builder
	out.WriteByte('"')

	i := 1
	for i < len(s) {
		c := s[i]
		if c == '\\' && i+1 < len(s) {
			next := s[i+1]
			if quote == '\'' && next == '\'' {
				out.WriteByte('\'')
			} else {
				out.WriteByte('\\')
				out.WriteByte(next)
			}
			i += 2
			continue
		}
		if c == quote {
			i++
			break
		}
		if c == '"' && quote == '\'' {
			out.WriteString(`\"`)
			i++
			continue
		}
		out.WriteByte(c)
		i++
	}

	out.WriteByte('"')
	return out.String(), i
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+'
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && c != '.' && c != '-' && c != '+' && c != 'e' && c != 'E' {
			return false
		}
	}
	return true
}
