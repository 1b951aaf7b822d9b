package models

import (
	"dishrank-menu/enums"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const (
	// DefaultDishName is the name of a default constructed Dish. It is stored as is.
	DefaultDishName = "UNKNOWN"

	// FallbackDishName replaces any name that fails validation.
	FallbackDishName = "Unknown Dish"
)

// Dish is a generic menu item. Build it with NewDish or NewDishWith; the zero value
// has an empty name.
type Dish struct {
	name        string
	ingredients []string
	prepTime    int
	price       float64
	cuisineType enums.CuisineType
}

// DishParams carries every Dish field for NewDishWith.
type DishParams struct {
	Name        string            `json:"name"`
	Ingredients []string          `json:"ingredients"`
	PrepTime    int               `json:"prep_time"`
	Price       float64           `json:"price"`
	CuisineType enums.CuisineType `json:"cuisine_type"`
}

func NewDish() Dish {
	return Dish{
		name:        DefaultDishName,
		ingredients: []string{},
		prepTime:    0,
		price:       0.0,
		cuisineType: enums.CuisineOther,
	}
}

// NewDishWith builds a Dish from explicit values. The name goes through SetName.
func NewDishWith(p DishParams) Dish {
	var d Dish
	d.SetName(p.Name)
	d.SetIngredients(p.Ingredients)
	d.SetPrepTime(p.PrepTime)
	d.SetPrice(p.Price)
	d.SetCuisineType(p.CuisineType)
	return d
}

func (d *Dish) Name() string {
	return d.name
}

// SetName trims the name and stores it in title case. A name that is empty after
// trimming, or that holds anything other than letters and whitespace, is replaced
// by FallbackDishName without reporting an error.
func (d *Dish) SetName(name string) {
	d.name = NormalizeName(name)
}

// Ingredients returns a copy of the ingredient list.
func (d *Dish) Ingredients() []string {
	return cloneStrings(d.ingredients)
}

func (d *Dish) SetIngredients(ingredients []string) {
	d.ingredients = cloneStrings(ingredients)
}

func (d *Dish) PrepTime() int {
	return d.prepTime
}

// SetPrepTime accepts any value, negative included.
func (d *Dish) SetPrepTime(prepTime int) {
	d.prepTime = prepTime
}

func (d *Dish) Price() float64 {
	return d.price
}

// SetPrice accepts any value, negative included.
func (d *Dish) SetPrice(price float64) {
	d.price = price
}

func (d *Dish) CuisineType() enums.CuisineType {
	return d.cuisineType
}

func (d *Dish) SetCuisineType(cuisineType enums.CuisineType) {
	d.cuisineType = cuisineType
}

// Base returns the Dish itself. Specializations embedding a Dish get it promoted,
// which hands back their shared fields.
func (d *Dish) Base() *Dish {
	return d
}

func (d *Dish) Kind() enums.CourseKind {
	return enums.KindDish
}

// Render writes the Dish fields, one labeled line each.
func (d *Dish) Render(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Dish Name: %s\n", d.name)
	b.WriteString("Ingredients:")
	if len(d.ingredients) > 0 {
		b.WriteString(" " + strings.Join(d.ingredients, ", "))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Preparation Time: %d minutes\n", d.prepTime)
	fmt.Fprintf(&b, "Price: $%.2f\n", d.price)
	fmt.Fprintf(&b, "Cuisine Type: %s\n", d.cuisineType)
	_, err := io.WriteString(w, b.String())
	return err
}

// Display renders the Dish fields to standard output.
func (d *Dish) Display() {
	_ = d.Render(os.Stdout)
}

// NormalizeName applies the Dish name rules to name and returns the stored form.
// Input is composed to NFC first, so "crème" validates the same in either form.
func NormalizeName(name string) string {
	trimmed := strings.TrimSpace(norm.NFC.String(name))
	if !onlyLetters(trimmed) {
		return FallbackDishName
	}
	return titleCase(trimmed)
}

// IsValidName reports whether name survives SetName without the fallback: it has
// at least one letter and nothing but letters and whitespace.
func IsValidName(name string) bool {
	return onlyLetters(strings.TrimSpace(norm.NFC.String(name)))
}

func onlyLetters(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// titleCase uses simple one-rune case mappings. Special casing would turn "İ"
// into "i" plus a combining dot, which is not a letter.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	wordStart := true
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			wordStart = true
		case wordStart:
			r = unicode.ToUpper(r)
			wordStart = false
		default:
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

func cloneStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
