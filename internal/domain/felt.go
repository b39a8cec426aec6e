package domain

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// feltPrime is the Starknet field modulus, 2^251 + 17*2^192 + 1
var feltPrime = func() *big.Int {
	p := new(big.Int).Lsh(big.NewInt(1), 251)
	p.Add(p, new(big.Int).Mul(big.NewInt(17), new(big.Int).Lsh(big.NewInt(1), 192)))
	return p.Add(p, big.NewInt(1))
}()

var (
	feltTokenPattern = regexp.MustCompile(`0x[0-9a-fA-F]{1,64}\b`)
	hexDigits        = regexp.MustCompile(`^[0-9a-fA-F]{1,64}$`)
)

// ParseFelt parses a 0x-prefixed hex field element into its 32-byte form
func ParseFelt(s string) (common.Hash, error) {
	s = strings.TrimSpace(s)
	digits, ok := strings.CutPrefix(strings.ToLower(s), "0x")
	if !ok || !hexDigits.MatchString(digits) {
		return common.Hash{}, fmt.Errorf("%w: %q", ErrInvalidFelt, s)
	}

	h := common.HexToHash(digits)
	if h.Big().Cmp(feltPrime) >= 0 {
		return common.Hash{}, fmt.Errorf("%w: %q exceeds field modulus", ErrInvalidFelt, s)
	}
	return h, nil
}

// IsFelt reports whether s is a valid hex field element
func IsFelt(s string) bool {
	_, err := ParseFelt(s)
	return err == nil
}

// CanonicalFelt returns the zero-padded 0x form of a felt, or s unchanged if invalid
func CanonicalFelt(s string) string {
	h, err := ParseFelt(s)
	if err != nil {
		return s
	}
	return h.Hex()
}

// ExtractClassHash finds the class hash printed by the declare subcommand.
// A line holding only a felt wins; otherwise the first felt token found is used.
func ExtractClassHash(stdout string) (ClassHash, bool) {
	lines := nonEmptyLines(stdout)
	for _, line := range lines {
		if IsFelt(line) {
			return ClassHash(line), true
		}
	}
	for _, line := range lines {
		if token, ok := firstFelt(line); ok {
			return ClassHash(token), true
		}
	}
	return "", false
}

// ExtractContractAddress finds the deployed address in deploy output.
// The deploy subcommand prints the address as its last stdout line.
func ExtractContractAddress(stdout string) string {
	lines := nonEmptyLines(stdout)
	for i := len(lines) - 1; i >= 0; i-- {
		if IsFelt(lines[i]) {
			return lines[i]
		}
	}
	for _, line := range lines {
		if idx := strings.Index(strings.ToLower(line), "deployed at address"); idx != -1 {
			if token, ok := firstFelt(line[idx:]); ok {
				return token
			}
		}
	}
	return ""
}

func firstFelt(line string) (string, bool) {
	for _, token := range feltTokenPattern.FindAllString(line, -1) {
		if IsFelt(token) {
			return token, true
		}
	}
	return "", false
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
