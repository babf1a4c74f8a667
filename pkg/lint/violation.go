package lint

import (
	"fmt"
	"sort"
	"strings"
)

// Severity ranks a violation.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Violation is a single finding.
type Violation struct {
	File     string   `json:"file"`
	Location string   `json:"location"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// String formats the violation as `file: location -> [severity] message`.
func (v Violation) String() string {
	return fmt.Sprintf("%s: %s -> [%s] %s", v.File, v.Location, v.Severity, v.Message)
}

// HasErrors reports whether any violation is error severity.
func HasErrors(violations []Violation) bool {
	for _, v := range violations {
		if v.Severity == SeverityError {
			return true
		}
	}
	return false
}

func sortViolations(violations []Violation) {
	sort.SliceStable(violations, func(i, j int) bool {
		if violations[i].File == violations[j].File {
			if violations[i].Location == violations[j].Location {
				return violations[i].Message < violations[j].Message
			}
			return violations[i].Location < violations[j].Location
		}
		return violations[i].File < violations[j].File
	})
}

func appendPath(path []string, segment string) []string {
	next := append([]string(nil), path...)
	next = append(next, segment)
	return next
}

func formatLocation(path []string) string {
	return strings.Join(path, " > ")
}
