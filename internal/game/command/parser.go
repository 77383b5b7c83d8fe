package command

import "strings"

// Input is one player line split into a command verb and its argument words.
type Input struct {
	// Verb is the first word, lower-cased. Empty for a blank line.
	Verb string
	// Args are the remaining words as typed.
	Args []string
}

// Parse splits line into a verb and argument words.
//
// Postcondition: a blank line yields the zero Input; otherwise Verb is non-empty and lower case.
func Parse(line string) Input {
	words := strings.Fields(line)
	if len(words) == 0 {
		return Input{}
	}
	in := Input{Verb: strings.ToLower(words[0])}
	if len(words) > 1 {
		in.Args = words[1:]
	}
	return in
}

// Target returns the arguments as a content ID: lower-cased and joined with
// underscores, so "Big Potion" and "big_potion" both name big_potion.
// Returns "" when there are no arguments.
func (in Input) Target() string {
	return strings.ToLower(strings.Join(in.Args, "_"))
}
