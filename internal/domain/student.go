// Package domain contains core value types for the gradebook.
package domain

// Student is a named entry on the roster. Roster entries live only in memory.
type Student struct {
	Name  string
	Grade Grade
}

// NewStudent creates a roster entry from an unvalidated score
func NewStudent(name string, raw int) Student {
	return Student{Name: name, Grade: NewGrade(raw)}
}

// WithGrade returns a copy of s carrying g
func (s Student) WithGrade(g Grade) Student {
	s.Grade = g
	return s
}
