package terminal

import "strings"

// Command is a mini-terminal command.
type Command int

const (
	CommandUnrecognized Command = iota
	CommandHelp
	CommandSkills
	CommandContact
	CommandPubs
	CommandCoffee
	CommandClear
)

// Commands lists the recognised commands in help order.
func Commands() []Command {
	return []Command{
		CommandHelp,
		CommandSkills,
		CommandContact,
		CommandPubs,
		CommandCoffee,
		CommandClear,
	}
}

// ParseCommand normalises input (trimmed, lower-cased) and resolves it.
func ParseCommand(input string) Command {
	switch normalize(input) {
	case "help":
		return CommandHelp
	case "skills":
		return CommandSkills
	case "contact":
		return CommandContact
	case "pubs":
		return CommandPubs
	case "coffee":
		return CommandCoffee
	case "clear":
		return CommandClear
	default:
		return CommandUnrecognized
	}
}

func normalize(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

func (c Command) String() string {
	switch c {
	case CommandHelp:
		return "help"
	case CommandSkills:
		return "skills"
	case CommandContact:
		return "contact"
	case CommandPubs:
		return "pubs"
	case CommandCoffee:
		return "coffee"
	case CommandClear:
		return "clear"
	default:
		return "unrecognized"
	}
}

// Description is the help line for c.
func (c Command) Description() string {
	switch c {
	case CommandHelp:
		return "show this message"
	case CommandSkills:
		return "what I work with"
	case CommandContact:
		return "how to reach me"
	case CommandPubs:
		return "publication highlights"
	case CommandCoffee:
		return "important info"
	case CommandClear:
		return "clear terminal"
	default:
		return ""
	}
}
