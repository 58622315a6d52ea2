package errors

import (
	"fmt"
	"strings"
)

// SuggestKey suggests possible key names when an unknown rule key is found.
// It uses Levenshtein distance to find the closest valid key.
func SuggestKey(unknown string, validKeys []string) string {
	if len(validKeys) == 0 {
		return ""
	}

	minDistance := 1000
	var bestMatch string

	for _, key := range validKeys {
		dist := levenshteinDistance(unknown, key)
		if dist < minDistance {
			minDistance = dist
			bestMatch = key
		}
	}

	// Only suggest if the distance is reasonable (< 5 edits)
	if minDistance < 5 {
		return fmt.Sprintf("Did you mean '%s'?", bestMatch)
	}

	return fmt.Sprintf("Valid keys: %s", strings.Join(validKeys, ", "))
}

// SuggestValue suggests a valid value for a field when an unrecognized one
// was given, such as a wrong-case status.
func SuggestValue(unknown string, validValues []string) string {
	if len(validValues) == 0 {
		return ""
	}

	for _, value := range validValues {
		if strings.EqualFold(unknown, value) {
			return fmt.Sprintf("Did you mean '%s'? Values are matched case-sensitively", value)
		}
	}

	minDistance := 1000
	var bestMatch string
	for _, value := range validValues {
		dist := levenshteinDistance(unknown, value)
		if dist < minDistance {
			minDistance = dist
			bestMatch = value
		}
	}

	if minDistance < 5 {
		return fmt.Sprintf("Did you mean '%s'?", bestMatch)
	}

	return fmt.Sprintf("Valid values: %s", strings.Join(validValues, ", "))
}

// levenshteinDistance computes the Levenshtein distance between two strings.
// This is used for finding similar key and value names for suggestions.
func levenshteinDistance(s1, s2 string) int {
	if s1 == s2 {
		return 0
	}

	len1 := len(s1)
	len2 := len(s2)

	matrix := make([][]int, len1+1)
	for i := range matrix {
		matrix[i] = make([]int, len2+1)
	}

	for i := 0; i <= len1; i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len2; j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len1; i++ {
		for j := 1; j <= len2; j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}

			matrix[i][j] = min(
				matrix[i-1][j]+1,      // Deletion
				matrix[i][j-1]+1,      // Insertion
				matrix[i-1][j-1]+cost, // Substitution
			)
		}
	}

	return matrix[len1][len2]
}
