package formatters

import (
	"fmt"
	"maps"
	"math/big"
	"reflect"

	"github.com/willibrandon/botlog/core"
	"github.com/willibrandon/botlog/selflog"
)

// BNWordSize is the word size bn.js-style numbers report for their digit words.
const BNWordSize = 26

// bigNumberMarker matches numbers that flag themselves, like ethers v5 BigNumber.
type bigNumberMarker interface {
	IsBigNumber() bool
}

// wordedNumber matches numbers shaped like bn.js: a word size and a slice of digit words.
type wordedNumber interface {
	WordSize() int
	Words() []uint32
}

// IsBigNumberLike reports whether value should be logged as the string form
// of an arbitrary precision number. Recognition is by method set, not by
// concrete type: the value must be a non-nil fmt.Stringer and either flag
// itself through IsBigNumber, or expose bn.js-style words with a word size
// of BNWordSize. The math/big number types are always recognized.
func IsBigNumberLike(value any) bool {
	if isNil(value) {
		return false
	}
	if _, ok := value.(fmt.Stringer); !ok {
		return false
	}

	switch value.(type) {
	case *big.Int, *big.Float, *big.Rat:
		return true
	}

	if marker, ok := value.(bigNumberMarker); ok && marker.IsBigNumber() {
		return true
	}
	if words, ok := value.(wordedNumber); ok && words.WordSize() == BNWordSize && words.Words() != nil {
		return true
	}
	return false
}

// ReplaceBigNumbers walks obj depth first and replaces every big-number-like
// value with its String() result. Only map[string]any values are descended
// into; slices and other values are left as they are.
//
// When nothing changes the same map is returned. Otherwise a new map is built
// for every level that contains a change, and untouched sibling values are
// shared with the input. obj itself is never modified.
func ReplaceBigNumbers(obj map[string]any) map[string]any {
	out, _ := replaceBigNumbers(obj)
	return out
}

func replaceBigNumbers(obj map[string]any) (map[string]any, bool) {
	var out map[string]any
	for key, value := range obj {
		replacement, changed := replaceBigNumber(value)
		if !changed {
			continue
		}
		if out == nil {
			out = make(map[string]any, len(obj))
			maps.Copy(out, obj)
		}
		out[key] = replacement
	}
	if out == nil {
		return obj, false
	}
	return out, true
}

func replaceBigNumber(value any) (any, bool) {
	if IsBigNumberLike(value) {
		return value.(fmt.Stringer).String(), true
	}
	if nested, ok := value.(map[string]any); ok && nested != nil {
		return replaceBigNumbers(nested)
	}
	return value, false
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// BigNumberFormatter replaces big-number-like property values with their
// string form so they serialize readably.
type BigNumberFormatter struct{}

// NewBigNumberFormatter creates a new big number formatter.
func NewBigNumberFormatter() *BigNumberFormatter {
	return &BigNumberFormatter{}
}

// Format returns the event unchanged when it holds no big numbers, and a copy
// with normalized properties otherwise. If normalization panics the original
// event is returned.
func (f *BigNumberFormatter) Format(event *core.LogEvent) (out *core.LogEvent) {
	defer func() {
		if r := recover(); r != nil {
			if selflog.IsEnabled() {
				selflog.Printf("[bignumber] normalization failed, event left unchanged: %v", r)
			}
			out = event
		}
	}()

	props, changed := replaceBigNumbers(event.Properties)
	if !changed {
		return event
	}
	return event.WithProperties(props)
}
