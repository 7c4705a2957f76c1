package domain

import (
	"strings"
	"time"
)

// Weekday enumerates the seven plan days, Monday first.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// AllWeekdays lists the weekdays in plan order.
var AllWeekdays = [7]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// String returns the short weekday name used on the wire ("Mon".."Sun").
func (d Weekday) String() string {
	switch d {
	case Monday:
		return "Mon"
	case Tuesday:
		return "Tue"
	case Wednesday:
		return "Wed"
	case Thursday:
		return "Thu"
	case Friday:
		return "Fri"
	case Saturday:
		return "Sat"
	case Sunday:
		return "Sun"
	default:
		return "unknown"
	}
}

var weekdayNames = map[string]Weekday{
	"mon": Monday, "monday": Monday,
	"tue": Tuesday, "tues": Tuesday, "tuesday": Tuesday,
	"wed": Wednesday, "wednesday": Wednesday,
	"thu": Thursday, "thur": Thursday, "thurs": Thursday, "thursday": Thursday,
	"fri": Friday, "friday": Friday,
	"sat": Saturday, "saturday": Saturday,
	"sun": Sunday, "sunday": Sunday,
}

// WeekdayFromString parses a weekday name leniently ("mon", "Monday").
// The second return is false for unrecognized names.
func WeekdayFromString(name string) (Weekday, bool) {
	d, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
	return d, ok
}

// MealRef references a recipe scheduled for a day. Servings is positive.
type MealRef struct {
	RecipeID string
	Title    string
	Servings int
}

// MealDay holds the meals planned for one weekday.
type MealDay struct {
	Day   Weekday
	Meals []MealRef
}

// MealPlan is a full week of meals plus the consolidated shopping list.
// Days always has exactly seven entries, one per weekday in order.
// ShoppingList is derived from Days via the consolidator and is recomputed,
// never mutated on its own.
type MealPlan struct {
	Days         []MealDay
	ShoppingList []ShoppingListEntry
	Warnings     []string
}

// ShoppingListEntry is one consolidated line of the shopping list.
// TotalQuantity and Unit are nil when contributions could not be merged
// (unit mismatch or unknown quantity); the entry is kept so nothing is
// silently dropped. SourceCount records how many (ingredient, servings)
// contributions were merged, for auditability.
type ShoppingListEntry struct {
	Name          string
	TotalQuantity *float64
	Unit          *string
	SourceCount   int
}

// Post is a community feed entry: a photo with an AI-generated (or
// user-edited) caption.
type Post struct {
	ID        string
	Author    string
	ImageURI  string
	Caption   string
	Tags      []string
	Likes     int
	CreatedAt time.Time
}
