package driver

import "fmt"

// The five (plus config/history, see internal/config and
// internal/history) diagnostic shapes spec.md §6 mandates, collected
// here so every call site renders them identically.

func diagUnableToParse(residue string) string {
	return fmt.Sprintf("Unable to parse: %q", residue)
}

func diagShadowing(name string) string {
	return "Warning: Shadowing binding `" + name + "`"
}

func diagIncludeShadowing(name, file string) string {
	return "Include warning: Shadowing binding `" + name + "` while including " + file
}

func diagIncludeOpenFailed(basename string) string {
	return fmt.Sprintf("Include Error: Failed to open file: %q", basename+".lambda")
}

func diagEvaluationError(message string) string {
	return "Evaluation error: " + message
}
