package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFelt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "short", input: "0x1"},
		{name: "mixed case", input: "0xAbCdEf"},
		{name: "surrounding space", input: "  0x0123 "},
		{name: "largest felt", input: "0x800000000000011000000000000000000000000000000000000000000000000"},
		{name: "field modulus", input: "0x800000000000011000000000000000000000000000000000000000000000001", wantErr: true},
		{name: "missing prefix", input: "123abc", wantErr: true},
		{name: "prefix only", input: "0x", wantErr: true},
		{name: "not hex", input: "0xzz", wantErr: true},
		{name: "too long", input: "0x" + "1" + "0000000000000000000000000000000000000000000000000000000000000000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFelt(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFelt)
				return
			}
			require.NoError(t, err)
			assert.True(t, IsFelt(tt.input))
		})
	}
}

func TestCanonicalFelt(t *testing.T) {
	assert.Equal(t, "0x0000000000000000000000000000000000000000000000000000000000000def", CanonicalFelt("0xDEF"))
	assert.Equal(t, CanonicalFelt("0x0def"), CanonicalFelt("0x00000def"))
	assert.Equal(t, "Counter", CanonicalFelt("Counter"))
}

func TestExtractClassHash(t *testing.T) {
	tests := []struct {
		name   string
		stdout string
		want   ClassHash
		found  bool
	}{
		{
			name:   "hash on its own line",
			stdout: "Sierra compiled class hash: 0x0111\nDeclaring Cairo 1 class: 0x0222\n0x0222\n",
			want:   "0x0222",
			found:  true,
		},
		{
			name:   "already declared message",
			stdout: "Not declaring class as it's already declared. Class hash:\n0x04ad\n",
			want:   "0x04ad",
			found:  true,
		},
		{
			name:   "first token when no bare line",
			stdout: "Class hash declared: 0x0333 (tx 0x0444)",
			want:   "0x0333",
			found:  true,
		},
		{
			name:   "no hash",
			stdout: "Declaring...\ndone\n",
		},
		{
			name: "empty output",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractClassHash(tt.stdout)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractContractAddress(t *testing.T) {
	tests := []struct {
		name   string
		stdout string
		want   string
	}{
		{
			name:   "last bare line",
			stdout: "Deploying class 0x0abc with salt 0x0999\nThe contract will be deployed at address 0x0def\nContract deployed:\n0x0def\n",
			want:   "0x0def",
		},
		{
			name:   "inline address",
			stdout: "Contract deployed at address 0x0fed, waiting",
			want:   "0x0fed",
		},
		{
			name:   "nothing",
			stdout: "Transaction sent",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractContractAddress(tt.stdout))
		})
	}
}
