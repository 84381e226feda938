package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based index to a node ID. Implementations must be pure.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal index: "0", "1", ...
func DefaultIDFn(idx int) string { return strconv.Itoa(idx) }

// SymbolIDFn maps 0..25 to "A".."Z". It panics outside that range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string(rune('A' + idx))
}

// ExcelColumnIDFn maps 0 → "A", 25 → "Z", 26 → "AA", ...
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var out []byte
	for i := idx; i >= 0; i = i/26 - 1 {
		out = append([]byte{byte('A' + i%26)}, out...)
	}

	return string(out)
}

// PrefixIDFn returns an IDFn producing prefix+index ("v0", "v1", ...).
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}

// WithSymbolIDs is WithIDScheme(SymbolIDFn).
func WithSymbolIDs() BuilderOption { return WithIDScheme(SymbolIDFn) }

// WithExcelColumnIDs is WithIDScheme(ExcelColumnIDFn).
func WithExcelColumnIDs() BuilderOption { return WithIDScheme(ExcelColumnIDFn) }

// WithPrefixIDs is WithIDScheme(PrefixIDFn(prefix)).
func WithPrefixIDs(prefix string) BuilderOption { return WithIDScheme(PrefixIDFn(prefix)) }
