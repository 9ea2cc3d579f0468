package reltime

import (
	"errors"
	"reflect"
	"testing"
)

func lexAll(input string) ([]Token, error) {
	l := NewLexer(input)
	var tokens []Token
	for l.Scan() {
		tokens = append(tokens, l.Token())
	}
	return tokens, l.Err()
}

func TestLexer(t *testing.T) {
	tests := []struct {
		input string
		want  []Token
	}{
		{
			input: "now+1y",
			want: []Token{
				{Kind: TokenNow, Pos: 0},
				{Kind: TokenAdd, Pos: 3},
				{Kind: TokenValue, Pos: 4, Value: 1},
				{Kind: TokenYear, Pos: 5},
			},
		},
		{
			input: "now-5d",
			want: []Token{
				{Kind: TokenNow, Pos: 0},
				{Kind: TokenSub, Pos: 3},
				{Kind: TokenValue, Pos: 4, Value: 5},
				{Kind: TokenDay, Pos: 5},
			},
		},
		{
			input: "now/w",
			want: []Token{
				{Kind: TokenNow, Pos: 0},
				{Kind: TokenFloor, Pos: 3},
				{Kind: TokenWeek, Pos: 4},
			},
		},
		{
			input: "now+4294967295y",
			want: []Token{
				{Kind: TokenNow, Pos: 0},
				{Kind: TokenAdd, Pos: 3},
				{Kind: TokenValue, Pos: 4, Value: 4294967295},
				{Kind: TokenYear, Pos: 14},
			},
		},
		{
			input: "now - now",
			want: []Token{
				{Kind: TokenNow, Pos: 0},
				{Kind: TokenSub, Pos: 4},
				{Kind: TokenNow, Pos: 6},
			},
		},
		{input: "", want: nil},
		{
			// The lexer aggressively does not care about structure.
			input: "now+-//nownow1nowmMm",
			want: []Token{
				{Kind: TokenNow, Pos: 0},
				{Kind: TokenAdd, Pos: 3},
				{Kind: TokenSub, Pos: 4},
				{Kind: TokenFloor, Pos: 5},
				{Kind: TokenFloor, Pos: 6},
				{Kind: TokenNow, Pos: 7},
				{Kind: TokenNow, Pos: 10},
				{Kind: TokenValue, Pos: 13, Value: 1},
				{Kind: TokenNow, Pos: 14},
				{Kind: TokenMinute, Pos: 17},
				{Kind: TokenMonth, Pos: 18},
				{Kind: TokenMinute, Pos: 19},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := lexAll(tt.input)
			if err != nil {
				t.Fatalf("lexAll(%q) error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("lexAll(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLexerNumberOverflow(t *testing.T) {
	_, err := lexAll("now+4294967297y")
	var numErr *NumberError
	if !errors.As(err, &numErr) {
		t.Fatalf("want NumberError, got %v", err)
	}
	if numErr.Literal != "4294967297" || numErr.Pos != 4 {
		t.Errorf("unexpected number error details: %+v", numErr)
	}
}

func TestLexerUnexpectedCharacter(t *testing.T) {
	_, err := lexAll("(´･ω･`)")
	var charErr *CharError
	if !errors.As(err, &charErr) {
		t.Fatalf("want CharError, got %v", err)
	}
	if charErr.Pos != 0 || charErr.Char != '(' {
		t.Errorf("unexpected char error details: %+v", charErr)
	}
}

func TestLexerTruncatedNow(t *testing.T) {
	tests := []struct {
		input   string
		wantPos int
	}{
		{"n", 1},
		{"no", 2},
		{"nah", 1},
		{"now+nox", 6},
	}
	for _, tt := range tests {
		_, err := lexAll(tt.input)
		var charErr *CharError
		if !errors.As(err, &charErr) {
			t.Fatalf("lexAll(%q): want CharError, got %v", tt.input, err)
		}
		if charErr.Pos != tt.wantPos {
			t.Errorf("lexAll(%q): error at %d, want %d", tt.input, charErr.Pos, tt.wantPos)
		}
	}
}
