package models

import (
	"dishrank-menu/enums"
	"io"
)

// Describable is anything that can write a human-readable, line-oriented description
// of itself.
type Describable interface {
	Render(w io.Writer) error
}

// Course is a menu item built on a Dish. *Dish, *Appetizer, *MainCourse and
// *Dessert all satisfy it.
type Course interface {
	Describable
	Base() *Dish
	Kind() enums.CourseKind
}

var (
	_ Course = (*Dish)(nil)
	_ Course = (*Appetizer)(nil)
	_ Course = (*MainCourse)(nil)
	_ Course = (*Dessert)(nil)
)

// Describe writes the shared Dish block followed by the course's own block.
// A plain Dish is written once.
func Describe(w io.Writer, c Course) error {
	base := c.Base()
	if err := base.Render(w); err != nil {
		return err
	}
	if d, ok := c.(*Dish); ok && d == base {
		return nil
	}
	return c.Render(w)
}

func formatBool(v bool) string {
	if v {
		return "True"
	}
	return "False"
}
