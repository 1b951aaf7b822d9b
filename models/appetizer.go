package models

import (
	"dishrank-menu/enums"
	"fmt"
	"io"
	"os"
	"strings"
)

// Appetizer is a Dish with a serving style, a spiciness level and a vegetarian flag.
type Appetizer struct {
	Dish
	servingStyle   enums.ServingStyle
	spicinessLevel int
	vegetarian     bool
}

type AppetizerParams struct {
	DishParams
	ServingStyle   enums.ServingStyle `json:"serving_style"`
	SpicinessLevel int                `json:"spiciness_level"`
	Vegetarian     bool               `json:"vegetarian"`
}

// NewAppetizer returns a default Dish that is PLATED, not spicy and not vegetarian.
func NewAppetizer() Appetizer {
	return Appetizer{
		Dish:           NewDish(),
		servingStyle:   enums.ServingPlated,
		spicinessLevel: 0,
		vegetarian:     false,
	}
}

func NewAppetizerWith(p AppetizerParams) Appetizer {
	return Appetizer{
		Dish:           NewDishWith(p.DishParams),
		servingStyle:   p.ServingStyle,
		spicinessLevel: p.SpicinessLevel,
		vegetarian:     p.Vegetarian,
	}
}

func (a *Appetizer) ServingStyle() enums.ServingStyle {
	return a.servingStyle
}

func (a *Appetizer) SetServingStyle(servingStyle enums.ServingStyle) {
	a.servingStyle = servingStyle
}

func (a *Appetizer) SpicinessLevel() int {
	return a.spicinessLevel
}

// SetSpicinessLevel has no range check.
func (a *Appetizer) SetSpicinessLevel(spicinessLevel int) {
	a.spicinessLevel = spicinessLevel
}

func (a *Appetizer) IsVegetarian() bool {
	return a.vegetarian
}

func (a *Appetizer) SetVegetarian(vegetarian bool) {
	a.vegetarian = vegetarian
}

func (a *Appetizer) Kind() enums.CourseKind {
	return enums.KindAppetizer
}

// Render writes the appetizer's own fields only. Use Describe for the Dish fields too.
func (a *Appetizer) Render(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Spiciness Level: %d\n", a.spicinessLevel)
	fmt.Fprintf(&b, "Serving Style: %s\n", a.servingStyle)
	fmt.Fprintf(&b, "Vegetarian: %s\n", formatBool(a.vegetarian))
	_, err := io.WriteString(w, b.String())
	return err
}

func (a *Appetizer) DisplayAppetizer() {
	_ = a.Render(os.Stdout)
}
