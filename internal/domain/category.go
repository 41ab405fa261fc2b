package domain

import (
	"fmt"
	"time"
)

// Competition categories.
const (
	CategoryWomenU18     = "W-U18"
	CategoryWomenSen50   = "W-Sen50+"
	CategoryWomenUnder70 = "W-70-"
	CategoryWomenOver70  = "W-70+"
	CategoryMenU18       = "M-U18"
	CategoryMenSen50     = "M-Sen50+"
	CategoryMenUnder80   = "M-80-"
	CategoryMenUnder95   = "M-95-"
	CategoryMenOver95    = "M-95+"
)

// Age limits of the category table, both inclusive.
const (
	JuniorMaxAge = 18
	SeniorMinAge = 50
)

// ClassifyCategory derives a category from gender, year of birth and weight
// as of currentYear. Juniors (18 or younger) and seniors (50 or older) are
// grouped regardless of weight; everyone else is split by weight class.
func ClassifyCategory(gender Gender, yearOfBirth, weight, currentYear int) (string, error) {
	age := currentYear - yearOfBirth

	switch gender {
	case GenderFemale:
		switch {
		case age <= JuniorMaxAge:
			return CategoryWomenU18, nil
		case age >= SeniorMinAge:
			return CategoryWomenSen50, nil
		case weight < 70:
			return CategoryWomenUnder70, nil
		case weight >= 70:
			return CategoryWomenOver70, nil
		}
	case GenderMale:
		switch {
		case age <= JuniorMaxAge:
			return CategoryMenU18, nil
		case age >= SeniorMinAge:
			return CategoryMenSen50, nil
		case weight < 80:
			return CategoryMenUnder80, nil
		case weight >= 80 && weight < 95:
			return CategoryMenUnder95, nil
		case weight >= 95:
			return CategoryMenOver95, nil
		}
	default:
		return "", fmt.Errorf("%w: %d", ErrInvalidGender, gender)
	}

	return "", fmt.Errorf("%w: gender %d, age %d, weight %d", ErrNoCategory, gender, age, weight)
}

// GenerateCategory recomputes the competitor's category for the current
// year. On error the category is left unchanged.
func (c *Competitor) GenerateCategory() error {
	return c.GenerateCategoryFor(time.Now().Year())
}

// GenerateCategoryFor recomputes the competitor's category as of year.
func (c *Competitor) GenerateCategoryFor(year int) error {
	category, err := ClassifyCategory(c.Gender, c.YearOfBirth, c.Weight, year)
	if err != nil {
		return err
	}
	c.Category = category
	return nil
}
