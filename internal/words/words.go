package words

import "strings"

type Difficulty string

const (
	Beginner     Difficulty = "Beginner"
	Intermediate Difficulty = "Intermediate"
	Advanced     Difficulty = "Advanced"
)

var Levels = []Difficulty{Beginner, Intermediate, Advanced}

var Categories = []string{
	"School Objects",
	"Daily Activities",
	"Sports & Hobbies",
	"Food & Drinks",
	"Animals",
	"Jobs & Careers",
	"Places in Town",
	"Nature",
}

// GameWord is one round's word. Immutable once handed out; a new one is
// fetched wholesale at the start of each turn.
type GameWord struct {
	Word     string     `json:"word"`
	Hint     string     `json:"hint"`
	Level    Difficulty `json:"level"`
	Category string     `json:"category"`
}

// CheckGuess compares a guess against the active word. Case-insensitive and
// insensitive to leading/trailing whitespace; everything else must match.
func CheckGuess(guess, word string) bool {
	return strings.EqualFold(strings.TrimSpace(guess), strings.TrimSpace(word))
}

// Fallback is the deterministic word used whenever the generative source
// fails. Turn starts must never block on the word fetch.
func Fallback(level Difficulty, category string) GameWord {
	return GameWord{
		Word:     "Backpack",
		Hint:     "You carry books in this to school.",
		Level:    level,
		Category: category,
	}
}
