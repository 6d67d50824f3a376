package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"prettybytes/internal/dirs"
	"prettybytes/internal/util/format"
)

// Keys mirror the CLI flag names. Config files use them verbatim; the
// environment uses PRETTYBYTES_ plus the upper-cased key with '-' as '_'.
const (
	KeyUseBinaryBase = "use-1024-instead-of-1000"
	KeyDecimalPlaces = "number-of-decimal"
	KeySuppressZero  = "remove-zero-decimal"
)

const envPrefix = "PRETTYBYTES"

// New wires a Viper instance with config paths, env, and flag bindings.
// configFile overrides the search in the app config dir. A missing config
// file is not an error unless it was named explicitly.
func New(flags *pflag.FlagSet, configFile string) (*viper.Viper, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		if cfgDir, err := dirs.ConfigDir(); err == nil {
			v.AddConfigPath(cfgDir)
		}
		v.SetConfigName("config") // supports config.{yaml|yml|json|toml}
	}

	// Environment variables: PRETTYBYTES_*
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, key := range []string{KeyUseBinaryBase, KeyDecimalPlaces, KeySuppressZero} {
		if f := flags.Lookup(key); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", key, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

// FormatOptions extracts the formatting options that are set in v. Keys that
// are set nowhere stay nil so the formatter applies its defaults.
func FormatOptions(v *viper.Viper) (format.Options, error) {
	var opts format.Options

	if v.IsSet(KeyUseBinaryBase) {
		b, err := cast.ToBoolE(v.Get(KeyUseBinaryBase))
		if err != nil {
			return format.Options{}, fmt.Errorf("invalid %s: %v", KeyUseBinaryBase, v.Get(KeyUseBinaryBase))
		}
		opts.UseBinaryBase = format.Bool(b)
	}

	if v.IsSet(KeyDecimalPlaces) {
		n, err := decimalPlaces(v.Get(KeyDecimalPlaces))
		if err != nil {
			return format.Options{}, fmt.Errorf("invalid %s: %v (want a non-negative integer)", KeyDecimalPlaces, v.Get(KeyDecimalPlaces))
		}
		opts.DecimalPlaces = format.Uint(n)
	}

	if v.IsSet(KeySuppressZero) {
		b, err := cast.ToBoolE(v.Get(KeySuppressZero))
		if err != nil {
			return format.Options{}, fmt.Errorf("invalid %s: %v", KeySuppressZero, v.Get(KeySuppressZero))
		}
		opts.SuppressTrailingZero = format.Bool(b)
	}

	return opts, nil
}

// ParseDecimalPlaces parses a decimal place count in base 10, so "010" is 10.
func ParseDecimalPlaces(s string) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid decimal places %q: want a non-negative base 10 integer", s)
	}
	return uint(n), nil
}

// decimalPlaces converts a value from env, config file, or flag. Strings
// are always read in base 10; typed numbers come from config file parsers.
func decimalPlaces(raw any) (uint, error) {
	if s, ok := raw.(string); ok {
		return ParseDecimalPlaces(s)
	}
	n, err := cast.ToIntE(raw)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative decimal places %d", n)
	}
	return uint(n), nil
}

// Load is New followed by FormatOptions.
func Load(flags *pflag.FlagSet, configFile string) (format.Options, error) {
	v, err := New(flags, configFile)
	if err != nil {
		return format.Options{}, err
	}
	return FormatOptions(v)
}
