package tags

import (
	"bytes"
	"github.com/viant/parsly"
	"strings"
)

// Elements represents comma separated tag elements
type Elements string

// Pair represents tag element, value is empty for flags and bare names
type Pair struct {
	Key   string
	Value string
}

// Each calls onPair for every non blank element in declaration order
func (e Elements) Each(onPair func(position int, pair Pair) error) error {
	cursor := parsly.NewCursor("", []byte(e), 0)
	position := 0
	for cursor.Pos < len(cursor.Input) {
		pair := nextPair(cursor)
		if pair.Key == "" {
			continue
		}
		if err := onPair(position, pair); err != nil {
			return err
		}
		position++
	}
	return nil
}

// nextPair consumes key[=value] element with its trailing comma,
// quoted and {...} values may contain commas
func nextPair(cursor *parsly.Cursor) Pair {
	rest := cursor.Input[cursor.Pos:]
	eqIndex := bytes.IndexByte(rest, '=')
	comaIndex := bytes.IndexByte(rest, ',')
	if eqIndex == -1 || (comaIndex != -1 && comaIndex < eqIndex) {
		return Pair{Key: strings.TrimSpace(upTo(cursor, comaTerminatorMatcher))}
	}
	key := strings.TrimSpace(upTo(cursor, eqTerminatorMatcher))
	for cursor.Pos < len(cursor.Input) && cursor.Input[cursor.Pos] == ' ' {
		cursor.Pos++
	}
	match := cursor.MatchAny(quotedMatcher, scopeBlockMatcher)
	switch match.Code {
	case quotedToken, scopeBlockToken:
		value := match.Text(cursor)
		upTo(cursor, comaTerminatorMatcher)
		return Pair{Key: key, Value: value}
	}
	return Pair{Key: key, Value: strings.TrimSpace(upTo(cursor, comaTerminatorMatcher))}
}

// upTo consumes input up to and including terminator, or the remaining input, terminator is excluded from result
func upTo(cursor *parsly.Cursor, terminator *parsly.Token) string {
	if match := cursor.MatchAny(terminator); match.Code == terminator.Code {
		text := match.Text(cursor)
		return text[:len(text)-1]
	}
	text := string(cursor.Input[cursor.Pos:])
	cursor.Pos = len(cursor.Input)
	return text
}
