package tags

import (
	"bytes"
	"strings"

	"github.com/viant/parsly"
)

// Values represents tag values
type Values string

// MatchPairs match pairs separated by ',', a pair is either key or key=value,
// value can be wrapped with {...} or '...' to contain ','
func (v Values) MatchPairs(onMatch func(key, value string) error) error {
	cursor := parsly.NewCursor("", []byte(v), 0)
	for cursor.Pos < len(cursor.Input) {
		key, value := matchPair(cursor)
		if key == "" {
			continue
		}
		if err := onMatch(key, value); err != nil {
			return err
		}
	}
	return nil
}

func matchPair(cursor *parsly.Cursor) (string, string) {
	rest := cursor.Input[cursor.Pos:]
	eqIndex := bytes.IndexByte(rest, '=')
	comaIndex := bytes.IndexByte(rest, ',')
	if eqIndex == -1 || (comaIndex != -1 && comaIndex < eqIndex) {
		return splitPair(matchValue(cursor))
	}
	match := cursor.MatchOne(eqTerminatorMatcher)
	if match.Code != eqTerminatorToken {
		return splitPair(remainder(cursor))
	}
	key := strings.TrimSpace(strings.TrimSuffix(match.Text(cursor), "="))
	return key, unwrap(matchValue(cursor))
}

func matchValue(cursor *parsly.Cursor) string {
	match := cursor.MatchAny(scopeBlockMatcher, quotedMatcher, comaTerminatorMatcher)
	switch match.Code {
	case scopeBlockToken, quotedToken:
		value := match.Text(cursor)
		cursor.MatchOne(comaTerminatorMatcher)
		return value
	case comaTerminatorToken:
		return strings.TrimSuffix(match.Text(cursor), ",")
	}
	return remainder(cursor)
}

func remainder(cursor *parsly.Cursor) string {
	if cursor.Pos >= len(cursor.Input) {
		return ""
	}
	value := string(cursor.Input[cursor.Pos:])
	cursor.Pos = len(cursor.Input)
	return value
}

func splitPair(literal string) (string, string) {
	literal = strings.TrimSpace(literal)
	if index := strings.Index(literal, "="); index != -1 {
		return strings.TrimSpace(literal[:index]), unwrap(literal[index+1:])
	}
	return literal, ""
}

func unwrap(value string) string {
	value = strings.TrimSpace(value)
	if len(value) < 2 {
		return value
	}
	if (value[0] == '{' && value[len(value)-1] == '}') || (value[0] == '\'' && value[len(value)-1] == '\'') {
		return value[1 : len(value)-1]
	}
	return value
}
