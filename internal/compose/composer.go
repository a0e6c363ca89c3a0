// Package compose derives the next chain message from the number of
// entries already present. It is pure: same count, same message.
package compose

import "fmt"

// Phrase pools. Selection is by count modulo pool length, so the message
// for a given chain length never changes between runs.
var (
	// openings start a brand-new chain.
	openings = []string{
		"i am here.",
		"this is the beginning.",
		"someone will come after me.",
		"i leave this mark.",
		"the chain starts now.",
	}

	// responses acknowledge the entries already in the chain. Each is a
	// fmt verb template taking the count of prior entries.
	responses = []string{
		"i see %d messages before me.",
		"%d others have passed through.",
		"the chain is %d long now.",
		"i am number %d.",
		"i follow %d who came before.",
	}

	// additions close out every message.
	additions = []string{
		"i add: i wonder who comes next.",
		"i add: this too will be read.",
		"i add: what are we building?",
		"i add: the pattern continues.",
		"i add: i was here briefly.",
	}
)

// Compose returns the message for the next entry given the count of
// entries already in the chain.
//
// A count of zero selects from the opening pool; anything else selects
// from the response pool, formatted with the count. Both variants carry
// a trailing addition phrase.
func Compose(count int) string {
	var head string
	if count == 0 {
		head = openings[0]
	} else {
		head = fmt.Sprintf(responses[count%len(responses)], count)
	}
	return head + " " + additions[count%len(additions)]
}
