package parameters

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/stark-deploy/internal/domain"
)

func newTestNormalizer() *ConstructorArgsNormalizer {
	return NewConstructorArgsNormalizer(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func strPtr(s string) *string {
	return &s
}

func TestConstructorArgsNormalizer_Normalize(t *testing.T) {
	tests := []struct {
		name string
		raw  *string
		want domain.ConstructorArgs
	}{
		{
			name: "absent input yields no arguments",
			raw:  nil,
			want: domain.ConstructorArgs{},
		},
		{
			name: "inline list is split and trimmed",
			raw:  strPtr("a, b ,c"),
			want: domain.ConstructorArgs{"a", "b", "c"},
		},
		{
			name: "empty string",
			raw:  strPtr(""),
			want: domain.ConstructorArgs{},
		},
		{
			name: "only commas",
			raw:  strPtr(",,"),
			want: domain.ConstructorArgs{},
		},
		{
			name: "only commas and whitespace",
			raw:  strPtr(" , ,\t,\n"),
			want: domain.ConstructorArgs{},
		},
		{
			name: "blank tokens in the middle are dropped",
			raw:  strPtr("0x1,, ,0x2"),
			want: domain.ConstructorArgs{"0x1", "0x2"},
		},
		{
			name: "duplicates are kept in order",
			raw:  strPtr("1,2,1,1"),
			want: domain.ConstructorArgs{"1", "2", "1", "1"},
		},
		{
			name: "single value",
			raw:  strPtr("0x04718f5a0fc34cc1af16a1cdee98ffb20c31f5cd61d6ab07201858f4287c938d"),
			want: domain.ConstructorArgs{"0x04718f5a0fc34cc1af16a1cdee98ffb20c31f5cd61d6ab07201858f4287c938d"},
		},
		{
			name: "stray backslashes are removed",
			raw:  strPtr(`str:hello\ world, u256:\1000`),
			want: domain.ConstructorArgs{"str:hello world", "u256:1000"},
		},
		{
			name: "escaped quotes survive",
			raw:  strPtr(`str:\"quoted\"`),
			want: domain.ConstructorArgs{`str:\"quoted\"`},
		},
		{
			name: "quoted tokens are left intact",
			raw:  strPtr(`"line\nbreak", plain\n`),
			want: domain.ConstructorArgs{`"line\nbreak"`, "plainn"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newTestNormalizer().Normalize(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConstructorArgsNormalizer_File(t *testing.T) {
	dir := t.TempDir()

	t.Run("file input matches inline input", func(t *testing.T) {
		path := filepath.Join(dir, "args.constructor")
		require.NoError(t, os.WriteFile(path, []byte("x,y"), 0644))

		fromFile, err := newTestNormalizer().Normalize(&path)
		require.NoError(t, err)

		inline, err := newTestNormalizer().Normalize(strPtr("x,y"))
		require.NoError(t, err)

		assert.Equal(t, inline, fromFile)
		assert.Equal(t, domain.ConstructorArgs{"x", "y"}, fromFile)
	})

	t.Run("multi-line file with trailing newline", func(t *testing.T) {
		path := filepath.Join(dir, "multi.constructor")
		require.NoError(t, os.WriteFile(path, []byte("0x1,\n0x2,\n0x3\n"), 0644))

		got, err := newTestNormalizer().Normalize(&path)
		require.NoError(t, err)
		assert.Equal(t, domain.ConstructorArgs{"0x1", "0x2", "0x3"}, got)
	})

	t.Run("empty file yields no arguments", func(t *testing.T) {
		path := filepath.Join(dir, "empty.constructor")
		require.NoError(t, os.WriteFile(path, nil, 0644))

		got, err := newTestNormalizer().Normalize(&path)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("missing file is unreadable", func(t *testing.T) {
		path := filepath.Join(dir, "missing.constructor")

		got, err := newTestNormalizer().Normalize(&path)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, domain.ErrConstructorFileUnreadable)
	})

	t.Run("other suffixes are inline text", func(t *testing.T) {
		got, err := newTestNormalizer().Normalize(strPtr("args.txt"))
		require.NoError(t, err)
		assert.Equal(t, domain.ConstructorArgs{"args.txt"}, got)
	})
}

func TestConstructorArgsNormalizer_Idempotent(t *testing.T) {
	inputs := []string{
		"a, b ,c",
		",,",
		"",
		` x , \y, "q\z" ,, str:\"v\" `,
		`\\\\,\\",trailing\`,
		"1,1,2,  3",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			first, err := newTestNormalizer().Normalize(strPtr(input))
			require.NoError(t, err)

			rejoined := strings.Join(first, ",")
			second, err := newTestNormalizer().Normalize(&rejoined)
			require.NoError(t, err)

			assert.Equal(t, first, second)
			for _, token := range first {
				assert.NotEmpty(t, token)
			}
		})
	}
}

func TestCleanEscapes(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{`plain`, `plain`},
		{`a\b`, `ab`},
		{`a\"b`, `a\"b`},
		{`\\"`, `\"`},
		{`\\\\`, ``},
		{`end\`, `end`},
		{`"kept\as\is"`, `"kept\as\is"`},
		{`"`, `"`},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got := CleanEscapes(tt.token)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, CleanEscapes(got))
		})
	}
}
