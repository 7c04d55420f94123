// Package navigation provides cursor state for the roster
package navigation

import (
	"github.com/riordanpawley/gradebook/internal/domain"
)

// Position represents a computed position in the roster
type Position struct {
	Index int  // Row within the roster
	Valid bool // Whether the position is valid
}

// Cursor tracks the selected student by name (survives roster reloads)
type Cursor struct {
	Name          string // Primary state: selected student name
	FallbackIndex int    // Row to use when Name is not found
}

// FindPosition computes the position of the cursor's student in the roster
func (c *Cursor) FindPosition(roster []domain.Student) Position {
	if len(roster) == 0 {
		return Position{}
	}

	if c.Name != "" {
		for i, s := range roster {
			if s.Name == c.Name {
				return Position{Index: i, Valid: true}
			}
		}
	}

	// Student not found (renamed or removed), use fallback
	return Position{Index: clamp(c.FallbackIndex, 0, len(roster)-1), Valid: true}
}

// MoveVertical moves up or down, returns the new student name
func (c *Cursor) MoveVertical(roster []domain.Student, delta int) string {
	pos := c.FindPosition(roster)
	if !pos.Valid {
		return c.Name
	}

	idx := clamp(pos.Index+delta, 0, len(roster)-1)
	c.Name = roster[idx].Name
	c.FallbackIndex = idx
	return c.Name
}

// JumpToStart moves to the first student
func (c *Cursor) JumpToStart(roster []domain.Student) string {
	if len(roster) > 0 {
		c.Name = roster[0].Name
		c.FallbackIndex = 0
	}
	return c.Name
}

// JumpToEnd moves to the last student
func (c *Cursor) JumpToEnd(roster []domain.Student) string {
	if len(roster) > 0 {
		c.Name = roster[len(roster)-1].Name
		c.FallbackIndex = len(roster) - 1
	}
	return c.Name
}

// Service manages navigation state
type Service struct {
	cursor Cursor
}

// NewService creates a new navigation service
func NewService() *Service {
	return &Service{
		cursor: Cursor{},
	}
}

// GetCursor returns the current cursor (for read access)
func (s *Service) GetCursor() *Cursor {
	return &s.cursor
}

// GetPosition returns the computed position of the cursor in the roster
func (s *Service) GetPosition(roster []domain.Student) Position {
	return s.cursor.FindPosition(roster)
}

// GetCurrent returns the selected student, or nil for an empty roster
func (s *Service) GetCurrent(roster []domain.Student) *domain.Student {
	pos := s.cursor.FindPosition(roster)
	if !pos.Valid {
		return nil
	}
	student := roster[pos.Index]
	return &student
}

// MoveUp moves the cursor up one row
func (s *Service) MoveUp(roster []domain.Student) {
	s.cursor.MoveVertical(roster, -1)
}

// MoveDown moves the cursor down one row
func (s *Service) MoveDown(roster []domain.Student) {
	s.cursor.MoveVertical(roster, 1)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
