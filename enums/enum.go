package enums

// Unknown is the label returned for values outside an enumeration.
const Unknown = "UNKNOWN"

type CuisineType int

const (
	CuisineItalian CuisineType = iota
	CuisineMexican
	CuisineChinese
	CuisineIndian
	CuisineAmerican
	CuisineFrench
	CuisineOther
)

func (c CuisineType) String() string {
	switch c {
	case CuisineItalian:
		return "ITALIAN"
	case CuisineMexican:
		return "MEXICAN"
	case CuisineChinese:
		return "CHINESE"
	case CuisineIndian:
		return "INDIAN"
	case CuisineAmerican:
		return "AMERICAN"
	case CuisineFrench:
		return "FRENCH"
	case CuisineOther:
		return "OTHER"
	}
	return Unknown
}

// 前菜
type ServingStyle int

const (
	ServingPlated ServingStyle = iota
	ServingFamilyStyle
	ServingBuffet
)

func (s ServingStyle) String() string {
	switch s {
	case ServingPlated:
		return "PLATED"
	case ServingFamilyStyle:
		return "FAMILY_STYLE"
	case ServingBuffet:
		return "BUFFET"
	}
	return Unknown
}

// 主餐
type CookingMethod int

const (
	CookingGrilled CookingMethod = iota
	CookingBaked
	CookingFried
	CookingSteamed
	CookingRaw
)

func (c CookingMethod) String() string {
	switch c {
	case CookingGrilled:
		return "GRILLED"
	case CookingBaked:
		return "BAKED"
	case CookingFried:
		return "FRIED"
	case CookingSteamed:
		return "STEAMED"
	case CookingRaw:
		return "RAW"
	}
	return Unknown
}

// SideDishCategory labels are rendered in parentheses after the side dish name,
// so they use title case rather than the upper-case labels of the other enums.
type SideDishCategory int

const (
	CategoryGrain SideDishCategory = iota
	CategoryPasta
	CategoryLegume
	CategoryBread
	CategorySalad
	CategorySoup
	CategoryStarches
	CategoryVegetable
)

func (c SideDishCategory) String() string {
	switch c {
	case CategoryGrain:
		return "Grain"
	case CategoryPasta:
		return "Pasta"
	case CategoryLegume:
		return "Legume"
	case CategoryBread:
		return "Bread"
	case CategorySalad:
		return "Salad"
	case CategorySoup:
		return "Soup"
	case CategoryStarches:
		return "Starches"
	case CategoryVegetable:
		return "Vegetable"
	}
	return Unknown
}

// 甜點
type FlavorProfile int

const (
	FlavorSweet FlavorProfile = iota
	FlavorBitter
	FlavorSour
	FlavorSalty
	FlavorUmami
)

func (f FlavorProfile) String() string {
	switch f {
	case FlavorSweet:
		return "SWEET"
	case FlavorBitter:
		return "BITTER"
	case FlavorSour:
		return "SOUR"
	case FlavorSalty:
		return "SALTY"
	case FlavorUmami:
		return "UMAMI"
	}
	return Unknown
}

// CourseKind tells the menu driver which specialization a course is.
type CourseKind string

const (
	KindDish       CourseKind = "dish"
	KindAppetizer  CourseKind = "appetizer"
	KindMainCourse CourseKind = "main-course"
	KindDessert    CourseKind = "dessert"
)
