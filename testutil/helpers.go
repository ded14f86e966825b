// Package testutil holds assertion helpers shared by the botlog tests.
package testutil

import (
	"reflect"
	"slices"
	"strings"
	"testing"
)

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error, message string) {
	t.Helper()
	if err != nil {
		if message != "" {
			t.Fatalf("%s: %v", message, err)
		} else {
			t.Fatalf("Unexpected error: %v", err)
		}
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error, message string) {
	t.Helper()
	if err == nil {
		if message != "" {
			t.Fatal(message)
		} else {
			t.Fatal("Expected error but got nil")
		}
	}
}

// AssertEqual fails the test if actual != expected.
func AssertEqual[T comparable](t *testing.T, actual, expected T, message string) {
	t.Helper()
	if actual != expected {
		if message != "" {
			t.Fatalf("%s: expected %v, got %v", message, expected, actual)
		} else {
			t.Fatalf("Expected %v, got %v", expected, actual)
		}
	}
}

// AssertContains fails the test if the slice doesn't contain the value.
func AssertContains[T comparable](t *testing.T, slice []T, value T, message string) {
	t.Helper()
	if slices.Contains(slice, value) {
		return
	}
	if message != "" {
		t.Fatalf("%s: %v not found in slice", message, value)
	} else {
		t.Fatalf("%v not found in slice", value)
	}
}

// AssertStringContains fails the test if s doesn't contain substr.
func AssertStringContains(t *testing.T, s, substr, message string) {
	t.Helper()
	if strings.Contains(s, substr) {
		return
	}
	if message != "" {
		t.Fatalf("%s: %q not found in %q", message, substr, s)
	} else {
		t.Fatalf("%q not found in %q", substr, s)
	}
}

// SameMap reports whether a and b are the same map instance. Two nil maps
// are the same.
func SameMap[K comparable, V any](a, b map[K]V) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return reflect.ValueOf(a).UnsafePointer() == reflect.ValueOf(b).UnsafePointer()
}
