package format

import (
	"log/slog"
	"math"
	"strconv"
)

// ByteUnits are the printed unit symbols, index 0 being unscaled bytes.
var ByteUnits = [...]string{"B", "kB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

// BitUnits is the table selected for base 1024. It only bounds the unit
// index; symbols are always taken from ByteUnits.
var BitUnits = [...]string{"b", "kbit", "Mbit", "Gbit", "Tbit", "Pbit", "Ebit", "Zbit", "Ybit"}

// Bytes converts a byte count into a human-readable string (e.g., "5.05 MB").
// opts may be nil or partially set; unset fields take their defaults.
//
// The unit symbol always comes from ByteUnits, even when the binary base is
// selected, so 1024 bytes renders as "1.00 kB" rather than "1.00 KiB".
func Bytes(n uint64, opts *Options) string {
	cfg := Resolve(opts)
	base := cfg.Base()

	maxIndex := len(ByteUnits) - 1
	if cfg.UseBinaryBase {
		maxIndex = len(BitUnits) - 1
	}
	idx := UnitIndex(n, base, maxIndex)
	v := Scale(n, base, idx)

	slog.Debug("format bytes",
		"bytes", n,
		"base", base,
		"index", idx,
		"scaled", v,
		"decimals", cfg.DecimalPlaces,
		"suppress_zero", cfg.SuppressTrailingZero,
	)

	return FormatNumber(v, cfg.DecimalPlaces, cfg.SuppressTrailingZero) + " " + ByteUnits[idx]
}

// UnitIndex returns the largest i such that n >= base^i, capped at maxIndex.
func UnitIndex(n, base uint64, maxIndex int) int {
	if base < 2 || maxIndex <= 0 {
		return 0
	}
	idx := 0
	for q := n / base; q > 0 && idx < maxIndex; q /= base {
		idx++
	}
	return idx
}

// Scale divides n by base^index in floating point.
func Scale(n, base uint64, index int) float64 {
	div := 1.0
	for i := 0; i < index; i++ {
		div *= float64(base)
	}
	return float64(n) / div
}

// FormatNumber renders v with the given number of decimals. When suppressZero
// is set and v has no fractional part, no decimals are printed.
func FormatNumber(v float64, decimals uint, suppressZero bool) string {
	prec := int(decimals)
	if suppressZero && math.Trunc(v) == v {
		prec = 0
	}
	// Fixed buffer avoids an allocation for typical precisions
	var buf [32]byte
	return string(strconv.AppendFloat(buf[:0], v, 'f', prec, 64))
}
