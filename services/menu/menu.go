package menu

import (
	"dishrank-menu/enums"
	"dishrank-menu/models"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// MenuService walks courses through their accessors and renders them.
type MenuService struct {
	logger logrus.FieldLogger
}

func NewMenuService(logger logrus.FieldLogger) *MenuService {
	return &MenuService{logger: logger}
}

// DemoMenu returns the demonstration courses: a default dish, an appetizer, a main
// course and a dessert, each filled in through its setters.
func DemoMenu() []models.Course {
	dish := models.NewDish()
	dish.SetName("UNKNOWN")
	dish.SetIngredients([]string{})
	dish.SetPrepTime(0)
	dish.SetPrice(0.00)
	dish.SetCuisineType(enums.CuisineOther)

	appetizer := models.NewAppetizer()
	appetizer.SetSpicinessLevel(7)
	appetizer.SetServingStyle(enums.ServingFamilyStyle)
	appetizer.SetVegetarian(true)

	mainCourse := models.NewMainCourseWith(models.MainCourseParams{
		DishParams: models.DishParams{
			Name:        "Grilled Chicken",
			Ingredients: []string{"Chicken", "Olive Oil", "Garlic", "Rosemary"},
			PrepTime:    30,
			Price:       18.99,
			CuisineType: enums.CuisineAmerican,
		},
	})
	mainCourse.SetCookingMethod(enums.CookingGrilled)
	mainCourse.SetProteinType("Chicken")
	mainCourse.AddSideDish(models.SideDish{Name: "Mashed Potatoes", Category: enums.CategoryStarches})
	mainCourse.AddSideDish(models.SideDish{Name: "Green Beans", Category: enums.CategoryVegetable})
	mainCourse.SetGlutenFree(true)

	dessert := models.NewDessertWith(models.DessertParams{
		DishParams: models.DishParams{
			Name:        "Chocolate Cake",
			Ingredients: []string{"Flour", "Sugar", "Cocoa Powder", "Eggs"},
			PrepTime:    45,
			Price:       7.99,
			CuisineType: enums.CuisineFrench,
		},
	})
	dessert.SetFlavorProfile(enums.FlavorSweet)
	dessert.SetSweetnessLevel(9)
	dessert.SetContainsNuts(false)

	return []models.Course{&dish, &appetizer, &mainCourse, &dessert}
}

// Present writes every course in full, a blank line between courses.
func (m *MenuService) Present(w io.Writer, courses ...models.Course) error {
	for i, course := range courses {
		entry := m.logger.WithFields(logrus.Fields{"task": "menu", "kind": course.Kind(), "name": course.Base().Name()})

		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				entry.Error("寫入分隔行失敗: ", err.Error())
				return fmt.Errorf("write separator: %w", err)
			}
		}
		if err := models.Describe(w, course); err != nil {
			entry.Error("顯示餐點失敗: ", err.Error())
			return fmt.Errorf("render %s %q: %w", course.Kind(), course.Base().Name(), err)
		}
		entry.Debug("rendered")
	}
	m.logger.WithFields(logrus.Fields{"task": "menu", "count": len(courses)}).Info("menu presented")
	return nil
}

// Rename sets the course name. When the name is rejected it still takes the
// fallback, as SetName does, and a warning is logged.
func (m *MenuService) Rename(course models.Course, name string) {
	course.Base().SetName(name)
	if !models.IsValidName(name) {
		m.logger.WithFields(logrus.Fields{"task": "menu", "kind": course.Kind(), "input": name}).
			Warn("dish name rejected, fallback applied")
	}
}
