package models

import (
	"bytes"
	"dishrank-menu/enums"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDessert_Defaults(t *testing.T) {
	d := NewDessert()

	assert.Equal(t, enums.FlavorSweet, d.FlavorProfile())
	assert.Equal(t, 0, d.SweetnessLevel())
	assert.False(t, d.ContainsNuts())
	assert.Equal(t, enums.KindDessert, d.Kind())
	assert.Equal(t, 0.0, d.Price())
}

func TestNewDessertWith(t *testing.T) {
	d := NewDessertWith(DessertParams{
		DishParams: DishParams{
			Name:        "baklava",
			Ingredients: []string{"Phyllo", "Walnuts", "Honey"},
			PrepTime:    90,
			Price:       4.75,
			CuisineType: enums.CuisineOther,
		},
		FlavorProfile:  enums.FlavorSweet,
		SweetnessLevel: 11,
		ContainsNuts:   true,
	})

	assert.Equal(t, "Baklava", d.Name())
	assert.Equal(t, 90, d.PrepTime())
	assert.Equal(t, 11, d.SweetnessLevel())
	assert.True(t, d.ContainsNuts())
}

func TestDessert_Setters(t *testing.T) {
	d := NewDessert()
	d.SetFlavorProfile(enums.FlavorBitter)
	d.SetSweetnessLevel(-4)
	d.SetContainsNuts(true)

	assert.Equal(t, enums.FlavorBitter, d.FlavorProfile())
	assert.Equal(t, -4, d.SweetnessLevel())
	assert.True(t, d.ContainsNuts())
}

func TestDessert_Render(t *testing.T) {
	d := NewDessert()
	d.SetFlavorProfile(enums.FlavorSweet)
	d.SetSweetnessLevel(9)
	d.SetContainsNuts(false)

	var buf bytes.Buffer
	require.NoError(t, d.Render(&buf))
	assert.Equal(t, "Flavor Profile: SWEET\nSweetness Level: 9\nContains Nuts: False\n", buf.String())
}

func TestDessert_Render_SourAndSaltyDistinct(t *testing.T) {
	render := func(f enums.FlavorProfile) string {
		d := NewDessert()
		d.SetFlavorProfile(f)
		var buf bytes.Buffer
		require.NoError(t, d.Render(&buf))
		return strings.SplitN(buf.String(), "\n", 2)[0]
	}

	assert.Equal(t, "Flavor Profile: SOUR", render(enums.FlavorSour))
	assert.Equal(t, "Flavor Profile: SALTY", render(enums.FlavorSalty))
	assert.Equal(t, "Flavor Profile: UMAMI", render(enums.FlavorUmami))
}
