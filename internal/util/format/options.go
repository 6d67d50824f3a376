package format

const (
	DefaultUseBinaryBase        = true
	DefaultDecimalPlaces   uint = 2
	DefaultSuppressZero         = false
)

// Options holds user-supplied formatting options. A nil field falls back to
// its default, so callers only set what they want to change.
type Options struct {
	UseBinaryBase        *bool // 1024 when true, 1000 when false
	DecimalPlaces        *uint
	SuppressTrailingZero *bool // print no decimals when the scaled value is whole
}

// Config is the resolved form of Options with every field set.
type Config struct {
	UseBinaryBase        bool
	DecimalPlaces        uint
	SuppressTrailingZero bool
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		UseBinaryBase:        DefaultUseBinaryBase,
		DecimalPlaces:        DefaultDecimalPlaces,
		SuppressTrailingZero: DefaultSuppressZero,
	}
}

// Resolve merges opts over the defaults field by field. opts may be nil.
func Resolve(opts *Options) Config {
	cfg := DefaultConfig()
	if opts == nil {
		return cfg
	}
	if opts.UseBinaryBase != nil {
		cfg.UseBinaryBase = *opts.UseBinaryBase
	}
	if opts.DecimalPlaces != nil {
		cfg.DecimalPlaces = *opts.DecimalPlaces
	}
	if opts.SuppressTrailingZero != nil {
		cfg.SuppressTrailingZero = *opts.SuppressTrailingZero
	}
	return cfg
}

// Options returns a fully populated Options equivalent to c.
func (c Config) Options() *Options {
	return &Options{
		UseBinaryBase:        Bool(c.UseBinaryBase),
		DecimalPlaces:        Uint(c.DecimalPlaces),
		SuppressTrailingZero: Bool(c.SuppressTrailingZero),
	}
}

// Base returns the multiplier between successive units.
func (c Config) Base() uint64 {
	if c.UseBinaryBase {
		return 1024
	}
	return 1000
}

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// Uint returns a pointer to v.
func Uint(v uint) *uint { return &v }
