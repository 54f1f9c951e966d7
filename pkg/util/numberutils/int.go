package numberutils

import "strconv"

// IsInt checks if the given string can be converted to a valid integer.
func IsInt(str string) bool {
	_, err := strconv.Atoi(str)
	return err == nil
}

// ToInt converts the given string to an integer.
// If the string cannot be converted, it returns 0.
func ToInt(s string) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return 0
}

// ToIntWithDefault converts the given string to an integer.
// If the string cannot be converted, it returns the provided default value.
func ToIntWithDefault(s string, defaultVal int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return defaultVal
}

// ToIntWithError converts the given string to an integer and returns any error
// that occurred during conversion.
func ToIntWithError(str string) (int, error) {
	return strconv.Atoi(str)
}

// ClampInt limits num to the inclusive range [min, max].
func ClampInt(num, min, max int) int {
	if num < min {
		return min
	}
	if num > max {
		return max
	}
	return num
}
