package planner

import "strings"

// Appliances the step scanner recognizes. Multi-word names come first so
// "air fryer" is not reported as a bare "fryer".
var knownAppliances = []string{
	"air fryer",
	"food processor",
	"slow cooker",
	"pressure cooker",
	"stand mixer",
	"rice cooker",
	"deep fryer",
	"oven",
	"stove",
	"microwave",
	"blender",
	"grill",
	"toaster",
	"kettle",
	"wok",
}

// requiredAppliances scans step text for appliance mentions. Detection is
// keyword-based; a recipe that never names its equipment simply requires
// nothing, which errs on the side of keeping it plannable.
func requiredAppliances(steps []string) []string {
	var found []string
	seen := make(map[string]struct{})

	for _, step := range steps {
		text := strings.ToLower(step)
		for _, appliance := range knownAppliances {
			if _, dup := seen[appliance]; dup {
				continue
			}
			if strings.Contains(text, appliance) {
				seen[appliance] = struct{}{}
				found = append(found, appliance)
			}
		}
	}
	return found
}
