package cook

import (
	"regexp"
	"strconv"
	"strings"
)

// CommandType classifies what the cook wants to do. The same vocabulary
// will back voice commands once speech input lands.
type CommandType int

const (
	CommandUnknown CommandType = iota
	CommandNext
	CommandPrevious
	CommandRepeat
	CommandJump
	CommandIngredients
	CommandQuit
)

// String returns a human-readable command type.
func (c CommandType) String() string {
	switch c {
	case CommandNext:
		return "next"
	case CommandPrevious:
		return "previous"
	case CommandRepeat:
		return "repeat"
	case CommandJump:
		return "jump"
	case CommandIngredients:
		return "ingredients"
	case CommandQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Command is a parsed cook-mode instruction. Step carries the one-based
// target for CommandJump.
type Command struct {
	Type CommandType
	Step int
}

var commandPatterns = []struct {
	regex *regexp.Regexp
	cmd   CommandType
}{
	{regexp.MustCompile(`(?i)^(next|done|continue|n|forward)$`), CommandNext},
	{regexp.MustCompile(`(?i)^(previous|prev|back|b)$`), CommandPrevious},
	{regexp.MustCompile(`(?i)^(repeat|again|what\??|r)$`), CommandRepeat},
	{regexp.MustCompile(`(?i)^(ingredients|list|what do i need)$`), CommandIngredients},
	{regexp.MustCompile(`(?i)^(quit|exit|stop|q)$`), CommandQuit},
}

var jumpPattern = regexp.MustCompile(`(?i)^(?:jump(?: to)?|go to|step)\s+(\d+)$`)

// ParseCommand maps free-form cook-mode input ("next", "go to 3") onto a
// Command. Unrecognized input parses as CommandUnknown, never an error.
func ParseCommand(input string) Command {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Command{Type: CommandUnknown}
	}

	for _, rule := range commandPatterns {
		if rule.regex.MatchString(trimmed) {
			return Command{Type: rule.cmd}
		}
	}

	if m := jumpPattern.FindStringSubmatch(trimmed); m != nil {
		step, err := strconv.Atoi(m[1])
		if err == nil {
			return Command{Type: CommandJump, Step: step}
		}
	}

	return Command{Type: CommandUnknown}
}
