package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/hazemq/souschef/internal/domain"
)

// Units the line parser recognizes, mapped to their canonical spelling.
var unitAliases = map[string]string{
	"cup": "cup", "cups": "cup",
	"tbsp": "tbsp", "tablespoon": "tbsp", "tablespoons": "tbsp",
	"tsp": "tsp", "teaspoon": "tsp", "teaspoons": "tsp",
	"g": "g", "gram": "g", "grams": "g",
	"kg": "kg",
	"ml": "ml",
	"l": "l", "liter": "l", "liters": "l", "litre": "l", "litres": "l",
	"oz": "oz", "ounce": "oz", "ounces": "oz",
	"lb": "lb", "lbs": "lb", "pound": "lb", "pounds": "lb",
	"pcs": "pcs", "piece": "pcs", "pieces": "pcs",
	"clove": "clove", "cloves": "clove",
	"slice": "slice", "slices": "slice",
	"can": "can", "cans": "can",
	"pinch": "pinch", "pinches": "pinch",
}

// "2", "1.5", "1/2", "1 1/2", optionally glued to a unit ("200g").
var quantityPattern = regexp.MustCompile(`^(\d+\s+\d+/\d+|\d+/\d+|\d+(?:\.\d+)?)\s*`)

// ParseIngredientLine parses a free-form shopping-list line such as
// "2 cups flour" or "200g butter" into an Ingredient. Quantity and unit are
// nil when the line has no recognizable figure; the whole line then becomes
// the name. Parsing never fails.
func ParseIngredientLine(line string) domain.Ingredient {
	line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "-"))
	if line == "" {
		return domain.Ingredient{}
	}

	m := quantityPattern.FindStringSubmatch(line)
	if m == nil {
		return domain.Ingredient{Name: line}
	}

	qty, ok := parseQuantity(m[1])
	if !ok {
		return domain.Ingredient{Name: line}
	}

	rest := strings.TrimSpace(line[len(m[0]):])
	if rest == "" {
		return domain.Ingredient{Name: line}
	}

	// Optional unit token right after the number.
	fields := strings.Fields(rest)
	if canonical, isUnit := unitAliases[strings.ToLower(fields[0])]; isUnit && len(fields) > 1 {
		name := strings.TrimSpace(strings.TrimPrefix(rest, fields[0]))
		name = strings.TrimPrefix(name, "of ")
		return domain.Ingredient{Name: strings.TrimSpace(name), Quantity: &qty, Unit: &canonical}
	}

	return domain.Ingredient{Name: rest, Quantity: &qty}
}

// parseQuantity handles plain numbers, fractions and mixed numbers.
func parseQuantity(s string) (float64, bool) {
	s = strings.TrimSpace(s)

	if parts := strings.Fields(s); len(parts) == 2 {
		whole, ok1 := parseQuantity(parts[0])
		frac, ok2 := parseQuantity(parts[1])
		if ok1 && ok2 {
			return whole + frac, true
		}
		return 0, false
	}

	if num, den, found := strings.Cut(s, "/"); found {
		n, err1 := strconv.ParseFloat(num, 64)
		d, err2 := strconv.ParseFloat(den, 64)
		if err1 != nil || err2 != nil || d == 0 {
			return 0, false
		}
		return n / d, true
	}

	n, err := strconv.ParseFloat(s, 64)
	return n, err == nil
}
