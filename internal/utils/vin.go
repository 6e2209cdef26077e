package utils

import "strings"

// vinValues maps VIN characters to their numeric value per ISO 3779.
// I, O and Q are not valid VIN characters.
var vinValues = map[byte]int{
	'A': 1, 'B': 2, 'C': 3, 'D': 4, 'E': 5, 'F': 6, 'G': 7, 'H': 8,
	'J': 1, 'K': 2, 'L': 3, 'M': 4, 'N': 5, 'P': 7, 'R': 9,
	'S': 2, 'T': 3, 'U': 4, 'V': 5, 'W': 6, 'X': 7, 'Y': 8, 'Z': 9,
	'0': 0, '1': 1, '2': 2, '3': 3, '4': 4, '5': 5, '6': 6, '7': 7, '8': 8, '9': 9,
}

// vinWeights are the per-position weights used for the check digit
var vinWeights = [17]int{8, 7, 6, 5, 4, 3, 2, 10, 0, 9, 8, 7, 6, 5, 4, 3, 2}

// ValidateVIN reports whether the string is a well-formed 17-character VIN
// with a correct check digit (position 9).
func ValidateVIN(vin string) bool {
	vin = strings.ToUpper(strings.TrimSpace(vin))
	if len(vin) != 17 {
		return false
	}

	sum := 0
	for i := 0; i < 17; i++ {
		value, ok := vinValues[vin[i]]
		if !ok {
			return false
		}
		sum += value * vinWeights[i]
	}

	check := sum % 11
	expected := byte('0' + check)
	if check == 10 {
		expected = 'X'
	}

	return vin[8] == expected
}
