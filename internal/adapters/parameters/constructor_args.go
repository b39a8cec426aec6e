package parameters

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/trebuchet-org/stark-deploy/internal/domain"
	"github.com/trebuchet-org/stark-deploy/internal/usecase"
)

// ConstructorFileSuffix marks a constructor input as a file reference
const ConstructorFileSuffix = ".constructor"

// ConstructorArgsNormalizer turns --constructor input into positional tokens.
// Input is either inline comma separated text or the path of a file holding it.
type ConstructorArgsNormalizer struct {
	log *slog.Logger
}

// NewConstructorArgsNormalizer creates a new normalizer
func NewConstructorArgsNormalizer(log *slog.Logger) *ConstructorArgsNormalizer {
	return &ConstructorArgsNormalizer{
		log: log.With("component", "ConstructorArgsNormalizer"),
	}
}

// Normalize returns the ordered constructor tokens for raw.
// A nil input means the contract takes no constructor arguments.
func (n *ConstructorArgsNormalizer) Normalize(raw *string) (domain.ConstructorArgs, error) {
	if raw == nil {
		return domain.ConstructorArgs{}, nil
	}

	text := *raw
	if IsConstructorFile(text) {
		data, err := os.ReadFile(text)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrConstructorFileUnreadable, text, err)
		}
		n.log.Debug("read constructor file", "path", text, "bytes", len(data))
		text = strings.TrimSpace(string(data))
	}

	args := SplitConstructorArgs(text)
	n.log.Debug("normalized constructor arguments", "count", len(args))
	return args, nil
}

// IsConstructorFile reports whether raw references a constructor file
func IsConstructorFile(raw string) bool {
	return strings.HasSuffix(raw, ConstructorFileSuffix)
}

// SplitConstructorArgs splits comma separated text into cleaned tokens.
// Tokens are split and trimmed, then split and trimmed once more so values
// that were joined upstream are flattened; tokens left blank are dropped.
// Order and duplicates are preserved.
func SplitConstructorArgs(text string) domain.ConstructorArgs {
	args := domain.ConstructorArgs{}
	for _, part := range strings.Split(text, ",") {
		for _, token := range strings.Split(strings.TrimSpace(part), ",") {
			token = strings.TrimSpace(CleanEscapes(strings.TrimSpace(token)))
			if token == "" {
				continue
			}
			args = append(args, token)
		}
	}
	return args
}

// CleanEscapes removes stray backslashes left over from shell quoting.
//
// A backslash is dropped unless the next character is a double quote, so
// `\"` survives while `\n` becomes `n` and `\\x` becomes `x`. A token wrapped
// in double quotes is a string literal and is returned untouched. The result
// never contains a removable backslash, so cleaning twice changes nothing.
func CleanEscapes(token string) string {
	if isQuoted(token) || !strings.Contains(token, `\`) {
		return token
	}

	var b strings.Builder
	b.Grow(len(token))
	for i := 0; i < len(token); i++ {
		c := token[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		if i+1 < len(token) && token[i+1] == '"' {
			b.WriteString(`\"`)
			i++
		}
	}
	return b.String()
}

func isQuoted(token string) bool {
	return len(token) >= 2 && token[0] == '"' && token[len(token)-1] == '"'
}

// Ensure the normalizer implements the interface
var _ usecase.ConstructorArgsNormalizer = (*ConstructorArgsNormalizer)(nil)
