package cmd

import (
	"strconv"

	"github.com/spf13/pflag"

	"prettybytes/internal/cli"
	"prettybytes/internal/config"
	"prettybytes/internal/util/format"
)

// boolValue is a boolean flag that always takes a value, so both
// "--flag false" and "--flag=false" are accepted.
type boolValue bool

func (b *boolValue) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*b = boolValue(v)
	return nil
}

func (b *boolValue) String() string { return strconv.FormatBool(bool(*b)) }

func (b *boolValue) Type() string { return "boolean" }

func newBoolValue(def bool) *boolValue {
	b := boolValue(def)
	return &b
}

// byteCountValue parses like stdin input: base 10 only, so "0100" is 100
// and "0x400" is rejected.
type byteCountValue uint64

func (b *byteCountValue) Set(s string) error {
	n, err := cli.ParseByteCount(s)
	if err != nil {
		return err
	}
	*b = byteCountValue(n)
	return nil
}

func (b *byteCountValue) String() string { return strconv.FormatUint(uint64(*b), 10) }

func (b *byteCountValue) Type() string { return "uint64" }

// decimalsValue is a base 10 unsigned flag for the number of decimals.
type decimalsValue uint

func (d *decimalsValue) Set(s string) error {
	n, err := config.ParseDecimalPlaces(s)
	if err != nil {
		return err
	}
	*d = decimalsValue(n)
	return nil
}

func (d *decimalsValue) String() string { return strconv.FormatUint(uint64(*d), 10) }

func (d *decimalsValue) Type() string { return "uint" }

func newDecimalsValue(def uint) *decimalsValue {
	d := decimalsValue(def)
	return &d
}

// byteCountFlag returns the parsed --bytes value from fs.
func byteCountFlag(fs *pflag.FlagSet) uint64 {
	f := fs.Lookup("bytes")
	if f == nil {
		return 0
	}
	if v, ok := f.Value.(*byteCountValue); ok {
		return uint64(*v)
	}
	return 0
}

func bindFormatFlags(fs *pflag.FlagSet) {
	fs.VarP(new(byteCountValue), "bytes", "b", "Byte count to format (required when stdin is a terminal)")
	fs.VarP(newBoolValue(format.DefaultUseBinaryBase), config.KeyUseBinaryBase, "u", "Divide by 1024 instead of 1000")
	fs.VarP(newDecimalsValue(format.DefaultDecimalPlaces), config.KeyDecimalPlaces, "n", "Number of decimal places")
	fs.VarP(newBoolValue(format.DefaultSuppressZero), config.KeySuppressZero, "r", "Print no decimals when the value is a whole number")
}
