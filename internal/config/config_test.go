package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prettybytes/internal/dirs"
	"prettybytes/internal/util/format"
)

// isolate keeps the user's real config dir and environment out of the test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("PRETTYBYTES_USE_1024_INSTEAD_OF_1000", "")
	t.Setenv("PRETTYBYTES_NUMBER_OF_DECIMAL", "")
	t.Setenv("PRETTYBYTES_REMOVE_ZERO_DECIMAL", "")
	return dir
}

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Bool(KeyUseBinaryBase, format.DefaultUseBinaryBase, "")
	fs.Uint(KeyDecimalPlaces, format.DefaultDecimalPlaces, "")
	fs.Bool(KeySuppressZero, format.DefaultSuppressZero, "")
	return fs
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadNothingSet(t *testing.T) {
	isolate(t)

	opts, err := Load(newFlags(), "")

	require.NoError(t, err)
	assert.Equal(t, format.Options{}, opts)
}

func TestLoadFromFlags(t *testing.T) {
	isolate(t)
	fs := newFlags()
	require.NoError(t, fs.Parse([]string{"--number-of-decimal", "3", "--use-1024-instead-of-1000=false"}))

	opts, err := Load(fs, "")

	require.NoError(t, err)
	require.NotNil(t, opts.DecimalPlaces)
	require.NotNil(t, opts.UseBinaryBase)
	assert.Equal(t, uint(3), *opts.DecimalPlaces)
	assert.False(t, *opts.UseBinaryBase)
	assert.Nil(t, opts.SuppressTrailingZero)
}

func TestLoadFromEnv(t *testing.T) {
	isolate(t)
	t.Setenv("PRETTYBYTES_REMOVE_ZERO_DECIMAL", "true")
	t.Setenv("PRETTYBYTES_NUMBER_OF_DECIMAL", "4")

	opts, err := Load(newFlags(), "")

	require.NoError(t, err)
	require.NotNil(t, opts.SuppressTrailingZero)
	require.NotNil(t, opts.DecimalPlaces)
	assert.True(t, *opts.SuppressTrailingZero)
	assert.Equal(t, uint(4), *opts.DecimalPlaces)
	assert.Nil(t, opts.UseBinaryBase)
}

func TestLoadFromConfigDir(t *testing.T) {
	dir := isolate(t)
	cfgDir, err := dirs.ConfigDir()
	require.NoError(t, err)
	if !strings.HasPrefix(cfgDir, dir) {
		t.Skipf("config dir %q is not redirected on this platform", cfgDir)
	}
	writeFile(t, filepath.Join(cfgDir, "config.yaml"), "use-1024-instead-of-1000: false\nnumber-of-decimal: 1\n")

	opts, err := Load(newFlags(), "")

	require.NoError(t, err)
	require.NotNil(t, opts.UseBinaryBase)
	require.NotNil(t, opts.DecimalPlaces)
	assert.False(t, *opts.UseBinaryBase)
	assert.Equal(t, uint(1), *opts.DecimalPlaces)
}

func TestLoadExplicitConfigFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.toml")
	writeFile(t, path, "remove-zero-decimal = true\n")

	opts, err := Load(newFlags(), path)

	require.NoError(t, err)
	require.NotNil(t, opts.SuppressTrailingZero)
	assert.True(t, *opts.SuppressTrailingZero)
}

func TestLoadExplicitConfigFileMissing(t *testing.T) {
	dir := isolate(t)

	_, err := Load(newFlags(), filepath.Join(dir, "missing.yaml"))

	assert.Error(t, err)
}

func TestPrecedence(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.yaml")
	writeFile(t, path, "number-of-decimal: 1\n")
	t.Setenv("PRETTYBYTES_NUMBER_OF_DECIMAL", "2")

	// env beats file
	opts, err := Load(newFlags(), path)
	require.NoError(t, err)
	require.NotNil(t, opts.DecimalPlaces)
	assert.Equal(t, uint(2), *opts.DecimalPlaces)

	// flag beats env
	fs := newFlags()
	require.NoError(t, fs.Parse([]string{"--number-of-decimal=5"}))
	opts, err = Load(fs, path)
	require.NoError(t, err)
	require.NotNil(t, opts.DecimalPlaces)
	assert.Equal(t, uint(5), *opts.DecimalPlaces)
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  string
		val  string
	}{
		{name: "negative decimals", env: "PRETTYBYTES_NUMBER_OF_DECIMAL", val: "-1"},
		{name: "non-numeric decimals", env: "PRETTYBYTES_NUMBER_OF_DECIMAL", val: "two"},
		{name: "hex decimals", env: "PRETTYBYTES_NUMBER_OF_DECIMAL", val: "0x10"},
		{name: "bad base bool", env: "PRETTYBYTES_USE_1024_INSTEAD_OF_1000", val: "maybe"},
		{name: "bad suppress bool", env: "PRETTYBYTES_REMOVE_ZERO_DECIMAL", val: "sometimes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			t.Setenv(tt.env, tt.val)

			_, err := Load(newFlags(), "")

			assert.Error(t, err)
		})
	}
}

func TestLoadDecimalsAreBase10(t *testing.T) {
	isolate(t)
	t.Setenv("PRETTYBYTES_NUMBER_OF_DECIMAL", "010")

	opts, err := Load(newFlags(), "")

	require.NoError(t, err)
	require.NotNil(t, opts.DecimalPlaces)
	assert.Equal(t, uint(10), *opts.DecimalPlaces)
}

func TestParseDecimalPlaces(t *testing.T) {
	tests := []struct {
		in      string
		want    uint
		wantErr bool
	}{
		{in: "0", want: 0},
		{in: "3", want: 3},
		{in: "010", want: 10},
		{in: " 4 ", want: 4},
		{in: "", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "0x10", wantErr: true},
		{in: "1.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDecimalPlaces(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
