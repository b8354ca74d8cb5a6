package validator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Min validates that a numeric value is greater than or equal to the minimum.
func Min[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %v", min),
			TranslationKey: "validation.min",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// Max validates that a numeric value is less than or equal to the maximum.
func Max[T Numeric](field string, value T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %v", max),
			TranslationKey: "validation.max",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// Between is inclusive on both ends.
func Between[T Numeric](field string, value T, min, max T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min && value <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be between %v and %v", min, max),
			TranslationKey: "validation.between",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
				"max":   max,
			},
		},
	}
}

// NonNegative is Min(field, value, 0) with its own message.
func NonNegative[T Numeric](field string, value T) Rule {
	var zero T
	return Rule{
		Check: func() bool {
			return value >= zero
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must not be negative",
			TranslationKey: "validation.non_negative",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MaxDecimalPlaces inspects the shortest decimal representation of value, so
// a sum computed at runtime such as 0.1+0.2 is reported with its real 17
// digits rather than rounded away.
func MaxDecimalPlaces(field string, value float64, places int) Rule {
	return Rule{
		Check: func() bool {
			return decimalPlaces(value) <= places
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("value cannot have more than %d decimal places", places),
			TranslationKey: "validation.decimal_places",
			TranslationValues: map[string]any{
				"field":  field,
				"places": places,
			},
		},
	}
}

func decimalPlaces(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return math.MaxInt
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return 0
	}
	return len(s) - i - 1
}
