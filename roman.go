package leytext

import "strings"

// ordinalNumbers maps the Spanish ordinal words used in book headings
// ("LIBRO PRIMERO", "LIBRO SEGUNDO", ...) to their numeric value.
var ordinalNumbers = map[string]int{
	"PRIMERO":   1,
	"SEGUNDO":   2,
	"TERCERO":   3,
	"CUARTO":    4,
	"QUINTO":    5,
	"SEXTO":     6,
	"SÉPTIMO":   7,
	"SEPTIMO":   7,
	"OCTAVO":    8,
	"NOVENO":    9,
	"DÉCIMO":    10,
	"DECIMO":    10,
	"UNDÉCIMO":  11,
	"UNDECIMO":  11,
	"DUODÉCIMO": 12,
	"DUODECIMO": 12,
}

// OrdinalToInt converts a Spanish ordinal word to its numeric value.
// Returns 0 if the word is not a known ordinal.
func OrdinalToInt(word string) int {
	return ordinalNumbers[strings.ToUpper(strings.TrimSpace(word))]
}

var romanValues = map[rune]int{
	'I': 1,
	'V': 5,
	'X': 10,
	'L': 50,
	'C': 100,
	'D': 500,
	'M': 1000,
}

// RomanToInt converts a roman numeral (as used in chapter headings,
// "CAPITULO IV") to an integer. Characters outside the roman alphabet
// contribute zero, so malformed input degrades rather than panics.
func RomanToInt(roman string) int {
	roman = strings.ToUpper(strings.TrimSpace(roman))

	total := 0
	prev := 0
	runes := []rune(roman)
	for i := len(runes) - 1; i >= 0; i-- {
		val := romanValues[runes[i]]
		if val < prev {
			total -= val
		} else {
			total += val
			prev = val
		}
	}
	return total
}
