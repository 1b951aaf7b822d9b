package models

import (
	"dishrank-menu/enums"
	"fmt"
	"io"
	"os"
	"strings"
)

// SideDish is served alongside a MainCourse.
type SideDish struct {
	Name     string                 `json:"name"`
	Category enums.SideDishCategory `json:"category"`
}

func (s SideDish) String() string {
	return fmt.Sprintf("%s (%s)", s.Name, s.Category)
}

type MainCourse struct {
	Dish
	cookingMethod enums.CookingMethod
	proteinType   string
	sideDishes    []SideDish
	glutenFree    bool
}

type MainCourseParams struct {
	DishParams
	CookingMethod enums.CookingMethod `json:"cooking_method"`
	ProteinType   string              `json:"protein_type"`
	SideDishes    []SideDish          `json:"side_dishes"`
	GlutenFree    bool                `json:"gluten_free"`
}

const DefaultProteinType = "UNKNOWN"

// NewMainCourse returns a default Dish that is GRILLED with an unknown protein and
// no side dishes. It is not gluten free.
func NewMainCourse() MainCourse {
	return MainCourse{
		Dish:          NewDish(),
		cookingMethod: enums.CookingGrilled,
		proteinType:   DefaultProteinType,
		sideDishes:    []SideDish{},
		glutenFree:    false,
	}
}

func NewMainCourseWith(p MainCourseParams) MainCourse {
	return MainCourse{
		Dish:          NewDishWith(p.DishParams),
		cookingMethod: p.CookingMethod,
		proteinType:   p.ProteinType,
		sideDishes:    cloneSideDishes(p.SideDishes),
		glutenFree:    p.GlutenFree,
	}
}

func (m *MainCourse) CookingMethod() enums.CookingMethod {
	return m.cookingMethod
}

func (m *MainCourse) SetCookingMethod(cookingMethod enums.CookingMethod) {
	m.cookingMethod = cookingMethod
}

func (m *MainCourse) ProteinType() string {
	return m.proteinType
}

func (m *MainCourse) SetProteinType(proteinType string) {
	m.proteinType = proteinType
}

// AddSideDish appends sideDish; duplicates are kept.
func (m *MainCourse) AddSideDish(sideDish SideDish) {
	// full slice expression forces a new array, so copies of m never share appends
	m.sideDishes = append(m.sideDishes[:len(m.sideDishes):len(m.sideDishes)], sideDish)
}

// SideDishes returns a copy of the side dishes in insertion order.
func (m *MainCourse) SideDishes() []SideDish {
	return cloneSideDishes(m.sideDishes)
}

func (m *MainCourse) SetSideDishes(sideDishes []SideDish) {
	m.sideDishes = cloneSideDishes(sideDishes)
}

func (m *MainCourse) IsGlutenFree() bool {
	return m.glutenFree
}

func (m *MainCourse) SetGlutenFree(glutenFree bool) {
	m.glutenFree = glutenFree
}

func (m *MainCourse) Kind() enums.CourseKind {
	return enums.KindMainCourse
}

// Render writes the main course's own fields only.
func (m *MainCourse) Render(w io.Writer) error {
	sides := make([]string, 0, len(m.sideDishes))
	for _, s := range m.sideDishes {
		sides = append(sides, s.String())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Cooking Method: %s\n", m.cookingMethod)
	fmt.Fprintf(&b, "Protein Type: %s\n", m.proteinType)
	b.WriteString("Side Dishes:")
	if len(sides) > 0 {
		b.WriteString(" " + strings.Join(sides, ", "))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Gluten-Free: %s\n", formatBool(m.glutenFree))
	_, err := io.WriteString(w, b.String())
	return err
}

func (m *MainCourse) DisplayMainCourse() {
	_ = m.Render(os.Stdout)
}

func cloneSideDishes(s []SideDish) []SideDish {
	out := make([]SideDish, len(s))
	copy(out, s)
	return out
}
