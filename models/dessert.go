package models

import (
	"dishrank-menu/enums"
	"fmt"
	"io"
	"os"
	"strings"
)

type Dessert struct {
	Dish
	flavorProfile  enums.FlavorProfile
	sweetnessLevel int
	containsNuts   bool
}

type DessertParams struct {
	DishParams
	FlavorProfile  enums.FlavorProfile `json:"flavor_profile"`
	SweetnessLevel int                 `json:"sweetness_level"`
	ContainsNuts   bool                `json:"contains_nuts"`
}

func NewDessert() Dessert {
	return Dessert{
		Dish:           NewDish(),
		flavorProfile:  enums.FlavorSweet,
		sweetnessLevel: 0,
		containsNuts:   false,
	}
}

func NewDessertWith(p DessertParams) Dessert {
	return Dessert{
		Dish:           NewDishWith(p.DishParams),
		flavorProfile:  p.FlavorProfile,
		sweetnessLevel: p.SweetnessLevel,
		containsNuts:   p.ContainsNuts,
	}
}

func (d *Dessert) FlavorProfile() enums.FlavorProfile {
	return d.flavorProfile
}

func (d *Dessert) SetFlavorProfile(flavorProfile enums.FlavorProfile) {
	d.flavorProfile = flavorProfile
}

func (d *Dessert) SweetnessLevel() int {
	return d.sweetnessLevel
}

func (d *Dessert) SetSweetnessLevel(sweetnessLevel int) {
	d.sweetnessLevel = sweetnessLevel
}

func (d *Dessert) ContainsNuts() bool {
	return d.containsNuts
}

func (d *Dessert) SetContainsNuts(containsNuts bool) {
	d.containsNuts = containsNuts
}

func (d *Dessert) Kind() enums.CourseKind {
	return enums.KindDessert
}

func (d *Dessert) Render(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Flavor Profile: %s\n", d.flavorProfile)
	fmt.Fprintf(&b, "Sweetness Level: %d\n", d.sweetnessLevel)
	fmt.Fprintf(&b, "Contains Nuts: %s\n", formatBool(d.containsNuts))
	_, err := io.WriteString(w, b.String())
	return err
}

func (d *Dessert) DisplayDessert() {
	_ = d.Render(os.Stdout)
}
