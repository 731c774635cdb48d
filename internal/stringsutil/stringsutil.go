package stringsutil

import "strings"

// SplitNonEmpty splits s by sep and returns only non-empty parts.
func SplitNonEmpty(s, sep string) []string {
	parts := strings.Split(s, sep)
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

// UniqueStrings returns a new slice with duplicates removed, preserving first-seen order.
func UniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	unique := make([]string, 0, len(values))
	for _, value := range values {
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		unique = append(unique, value)
	}
	return unique
}

// Difference returns the values present in a but not in b, preserving order.
func Difference(a, b []string) []string {
	exclude := make(map[string]struct{}, len(b))
	for _, v := range b {
		exclude[v] = struct{}{}
	}

	var diff []string
	for _, v := range a {
		if _, ok := exclude[v]; !ok {
			diff = append(diff, v)
		}
	}
	return diff
}

// Contains reports whether values includes target.
func Contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
