package splitter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want []Fragment
	}{
		{
			name: "empty input",
			sql:  "",
			want: nil,
		},
		{
			name: "whitespace only",
			sql:  "  \n\t ",
			want: nil,
		},
		{
			name: "semicolons only",
			sql:  " ; ;; ",
			want: nil,
		},
		{
			name: "single terminated statement",
			sql:  "SELECT 1;",
			want: []Fragment{
				{Text: "SELECT 1;", Terminated: true},
			},
		},
		{
			name: "single unterminated statement",
			sql:  "SELECT 1",
			want: []Fragment{
				{Text: "SELECT 1", Terminated: false},
			},
		},
		{
			name: "two statements",
			sql:  "SELECT 1; SELECT 2;",
			want: []Fragment{
				{Text: "SELECT 1;", Terminated: true},
				{Text: "SELECT 2;", Terminated: true},
			},
		},
		{
			name: "trailing statement without semicolon",
			sql:  "SELECT 1;\nSELECT 2",
			want: []Fragment{
				{Text: "SELECT 1;", Terminated: true},
				{Text: "SELECT 2", Terminated: false},
			},
		},
		{
			name: "semicolon inside single-quoted string",
			sql:  "SELECT 'a;b' FROM t;",
			want: []Fragment{
				{Text: "SELECT 'a;b' FROM t;", Terminated: true},
			},
		},
		{
			name: "escaped quote inside string",
			sql:  "SELECT 'it''s;fine' FROM t;",
			want: []Fragment{
				{Text: "SELECT 'it''s;fine' FROM t;", Terminated: true},
			},
		},
		{
			name: "semicolon inside double-quoted identifier",
			sql:  `SELECT "a;b" FROM t;`,
			want: []Fragment{
				{Text: `SELECT "a;b" FROM t;`, Terminated: true},
			},
		},
		{
			name: "semicolon inside backtick identifier",
			sql:  "SELECT `a;b` FROM t;",
			want: []Fragment{
				{Text: "SELECT `a;b` FROM t;", Terminated: true},
			},
		},
		{
			name: "semicolon inside parentheses",
			sql:  "CREATE PROCEDURE p() BEGIN (SELECT 1;) END",
			want: []Fragment{
				{Text: "CREATE PROCEDURE p() BEGIN (SELECT 1;) END", Terminated: false},
			},
		},
		{
			name: "blank fragment between semicolons dropped",
			sql:  "SELECT 1; ; SELECT 2;",
			want: []Fragment{
				{Text: "SELECT 1;", Terminated: true},
				{Text: "SELECT 2;", Terminated: true},
			},
		},
		{
			name: "unterminated string runs to end",
			sql:  "SELECT 'abc; SELECT 2;",
			want: []Fragment{
				{Text: "SELECT 'abc; SELECT 2;", Terminated: false},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.sql)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestSplitStrayCloserDoesNotUnderflow(t *testing.T) {
	// A closing paren with no opener must not swallow later semicolons.
	got := Split("SELECT ) FROM t; SELECT 1;")
	require.Len(t, got, 2)
	require.True(t, got[0].Terminated)
	require.True(t, got[1].Terminated)
}
