package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Commands(t *testing.T) {
	root := NewRootCmd()

	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}

	for _, want := range []string{"deploy", "list", "show", "networks", "config", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestDeployCmd_RequiredFlags(t *testing.T) {
	cmd := NewDeployCmd()

	for _, name := range []string{"path", "wallet-address", "contract-name"} {
		f := cmd.Flags().Lookup(name)
		require.NotNil(t, f, name)
		assert.Equal(t, []string{"true"}, f.Annotations[cobra.BashCompOneRequiredFlag], name)
	}

	assert.Equal(t, "p", cmd.Flags().Lookup("path").Shorthand)
	assert.Equal(t, "d", cmd.Flags().Lookup("wallet-address").Shorthand)
	assert.Equal(t, "c", cmd.Flags().Lookup("contract-name").Shorthand)
	assert.Equal(t, "n", cmd.Flags().Lookup("network").Shorthand)
}

func TestSkipsApp(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{name: "version", want: true},
		{name: "help", want: true},
		{name: "completion", want: true},
		{name: "deploy", want: false},
		{name: "list", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, skipsApp(&cobra.Command{Use: tt.name}))
		})
	}
}

func TestProjectRootFor(t *testing.T) {
	t.Run("explicit path", func(t *testing.T) {
		dir := t.TempDir()
		cmd := NewDeployCmd()
		require.NoError(t, cmd.Flags().Set("path", dir))

		got, err := projectRootFor(cmd)
		require.NoError(t, err)
		assert.Equal(t, dir, got)
	})

	t.Run("walks up to Scarb.toml", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "Scarb.toml"), []byte("[package]\nname = \"demo\"\n"), 0644))
		nested := filepath.Join(dir, "src")
		require.NoError(t, os.Mkdir(nested, 0755))
		testChdir(t, nested)

		got, err := projectRootFor(NewListCmd())
		require.NoError(t, err)

		want, err := filepath.EvalSymlinks(dir)
		require.NoError(t, err)
		gotResolved, err := filepath.EvalSymlinks(got)
		require.NoError(t, err)
		assert.Equal(t, want, gotResolved)
	})
}

func TestVersionCmd(t *testing.T) {
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "stark-deploy version")
}

func TestValidateFormat(t *testing.T) {
	assert.NoError(t, validateFormat("table"))
	assert.NoError(t, validateFormat("yaml"))
	assert.Error(t, validateFormat("json"))
}

func TestSilentError(t *testing.T) {
	cause := errors.New("declare failed")
	err := error(&SilentError{Err: cause})

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "declare failed", err.Error())
}
