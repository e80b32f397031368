package lexer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	err "github.com/ava12/dice/errors"
)

type tokenRec struct {
	Type      Type
	Text      string
	Value     int
	Line, Col int
}

func rec(t *Token) tokenRec {
	return tokenRec{t.Type(), t.Text(), t.Value(), t.Line(), t.Col()}
}

func fetchAll(t *testing.T, l *Lexer, src string) []tokenRec {
	t.Helper()
	l.SetInput(src)
	var res []tokenRec
	for {
		tok, e := l.Next()
		if e != nil {
			t.Fatalf("source %q: unexpected error: %s", src, e)
		}

		res = append(res, rec(tok))
		if tok.Type() == End {
			return res
		}
	}
}

func TestEmpty(t *testing.T) {
	samples := []struct {
		src       string
		line, col int
	}{
		{"", 1, 1},
		{" ", 1, 2},
		{"\t\t", 1, 3},
		{" \t\r\n ", 2, 2},
		{"\n\n", 3, 1},
	}

	l := New(0)
	for i, s := range samples {
		l.SetInput(s.src)
		for j := 0; j < 3; j++ {
			tok, e := l.Next()
			if e != nil {
				t.Fatalf("sample #%d: unexpected error %s", i, e)
			}
			if tok.Type() != End || tok.TypeName() != "END" {
				t.Fatalf("sample #%d: unexpected token %s", i, tok.TypeName())
			}
			if tok.Line() != s.line || tok.Col() != s.col {
				t.Fatalf("sample #%d: expecting END at line %d col %d, got %d, %d", i, s.line, s.col, tok.Line(), tok.Col())
			}
		}
	}
}

func TestTokenSequence(t *testing.T) {
	expected := []tokenRec{
		{Integer, "2", 2, 1, 1},
		{Die, "d", 0, 1, 2},
		{Integer, "6", 6, 1, 3},
		{Plus, "+", 0, 1, 5},
		{Integer, "3", 3, 1, 7},
		{End, "", 0, 1, 8},
	}

	l := New(0)
	got := fetchAll(t, l, "2d6 + 3")
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Fatalf("token mismatch (-expected +got):\n%s", diff)
	}

	for i := 0; i < 3; i++ {
		tok, e := l.Next()
		if e != nil || tok.Type() != End {
			t.Fatalf("expecting repeated END, got %v, %v", tok, e)
		}
	}
}

func TestAllTokenTypes(t *testing.T) {
	expected := []tokenRec{
		{LeftParenthesis, "(", 0, 1, 1},
		{Integer, "0", 0, 1, 2},
		{Plus, "+", 0, 1, 3},
		{Integer, "10", 10, 1, 4},
		{RightParenthesis, ")", 0, 1, 6},
		{Minus, "-", 0, 1, 7},
		{Multiply, "*", 0, 2, 2},
		{Divide, "/", 0, 2, 3},
		{Die, "D", 0, 2, 4},
		{Die, "d", 0, 2, 5},
		{Integer, "1234567", 1234567, 3, 1},
		{End, "", 0, 3, 8},
	}

	got := fetchAll(t, New(0), "(0+10)-\n\t*/Dd\n1234567")
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Fatalf("token mismatch (-expected +got):\n%s", diff)
	}
}

func TestComparisons(t *testing.T) {
	expected := []Type{Integer, Less, Integer, LessEqual, Integer, NotEqual, Integer, GreaterEqual, Integer, Greater, Integer, Equal, Integer, End}
	recs := fetchAll(t, New(Comparisons), "1<2<=3<>4>=5>6=7")
	got := make([]Type, len(recs))
	for i, r := range recs {
		got[i] = r.Type
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Fatalf("token type mismatch (-expected +got):\n%s", diff)
	}

	texts := make([]string, len(recs))
	for i, r := range recs {
		texts[i] = r.Text
	}
	if strings.Join(texts, " ") != "1 < 2 <= 3 <> 4 >= 5 > 6 = 7 " {
		t.Fatalf("unexpected token texts: %q", texts)
	}
}

func TestErrors(t *testing.T) {
	samples := []struct {
		src             string
		flags           Flags
		code, line, col int
	}{
		{"01", 0, LeadingZeroError, 1, 1},
		{"1 + 007", 0, LeadingZeroError, 1, 5},
		{"2 + x", 0, WrongCharError, 1, 5},
		{"1\n  #", 0, WrongCharError, 2, 3},
		{"1 < 2", 0, WrongCharError, 1, 3},
		{"1 ! 2", Comparisons, WrongCharError, 1, 3},
		{"é", 0, WrongCharError, 1, 1},
		{"99999999999999999999999", 0, IntegerRangeError, 1, 1},
	}

	for i, s := range samples {
		l := New(s.flags)
		l.SetNamedInput("src", s.src)
		tok, e := l.Next()
		for e == nil && tok.Type() != End {
			tok, e = l.Next()
		}

		if e == nil {
			t.Errorf("sample #%d: expecting an error, got END", i)
			continue
		}

		ee, f := e.(*err.Error)
		if !f {
			t.Errorf("sample #%d: expecting *errors.Error, got: %s", i, e)
			continue
		}

		tail := fmt.Sprintf("in src at line %d col %d", s.line, s.col)
		if ee.Code != s.code || !strings.HasSuffix(ee.Message, tail) {
			t.Errorf("sample #%d: expecting err %d at line %d col %d, got: %s", i, s.code, s.line, s.col, ee.Message)
		}
	}
}

func TestErrorIsRepeatable(t *testing.T) {
	l := New(0)
	l.SetInput("1 ?")
	tok, e := l.Next()
	if e != nil || tok.Value() != 1 {
		t.Fatalf("expecting integer 1, got %v, %v", tok, e)
	}

	for i := 0; i < 2; i++ {
		tok, e = l.Next()
		if tok != nil || err.Code(e) != WrongCharError {
			t.Fatalf("step %d: expecting wrong char error, got %v, %v", i, tok, e)
		}
		if !strings.Contains(e.Error(), "'?'") {
			t.Fatalf("step %d: expecting offending char in message, got %q", i, e.Error())
		}
	}
}

func TestSetInputResets(t *testing.T) {
	l := New(0)
	fetchAll(t, l, "1\n2\n3")
	got := fetchAll(t, l, "42")
	expected := []tokenRec{{Integer, "42", 42, 1, 1}, {End, "", 0, 1, 3}}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Fatalf("token mismatch (-expected +got):\n%s", diff)
	}
}

func TestTokenString(t *testing.T) {
	if s := NewToken(End, "", 0, "", 1, 1).String(); s != "<END>" {
		t.Fatalf("expecting <END>, got %q", s)
	}
	if s := NewToken(Die, "D", 0, "", 1, 1).String(); s != "D" {
		t.Fatalf("expecting D, got %q", s)
	}
	if s := Type(100).String(); s != "Type(100)" {
		t.Fatalf("expecting Type(100), got %q", s)
	}
}

func TestFlags(t *testing.T) {
	if New(0).Flags() != 0 {
		t.Fatalf("expecting no flags, got %d", New(0).Flags())
	}

	l := New(Comparisons)
	l.SetInput("1")
	if l.Flags()&Comparisons == 0 {
		t.Fatalf("expecting Comparisons flag kept after SetInput, got %d", l.Flags())
	}
}
