package words

import (
	"context"
	"math/rand"
)

type entry struct {
	word string
	hint string
}

// A small built-in list so the game works with no API key configured.
var offlineList = map[string][]entry{
	"School Objects": {
		{"Pencil", "You write with this."},
		{"Eraser", "It removes pencil marks."},
		{"Ruler", "You draw straight lines with this."},
	},
	"Daily Activities": {
		{"Sleeping", "You do this in bed at night."},
		{"Brushing teeth", "You do this after eating."},
		{"Cooking", "Making food in the kitchen."},
	},
	"Sports & Hobbies": {
		{"Soccer", "You kick a ball in this sport."},
		{"Swimming", "You do this in a pool."},
		{"Fishing", "Catching animals from a river."},
	},
	"Food & Drinks": {
		{"Pizza", "A round food with cheese on top."},
		{"Milk", "A white drink from cows."},
		{"Rice", "Small white food, eaten with chopsticks."},
	},
	"Animals": {
		{"Elephant", "A big gray animal with a long nose."},
		{"Penguin", "A black and white bird that cannot fly."},
		{"Rabbit", "A small animal with long ears."},
	},
	"Jobs & Careers": {
		{"Doctor", "This person helps sick people."},
		{"Firefighter", "This person stops fires."},
		{"Teacher", "This person works at a school."},
	},
	"Places in Town": {
		{"Library", "A quiet place with many books."},
		{"Hospital", "Sick people go here."},
		{"Supermarket", "You buy food here."},
	},
	"Nature": {
		{"Rainbow", "Colors in the sky after rain."},
		{"Mountain", "Very high land, good for climbing."},
		{"Ocean", "Very big water with waves."},
	},
}

// Offline serves words from the built-in list. Used when no API key is set
// or the Gemini client cannot be constructed.
type Offline struct{}

func NewOffline() *Offline {
	return &Offline{}
}

func (o *Offline) Generate(_ context.Context, level Difficulty, category string) GameWord {
	entries, ok := offlineList[category]
	if !ok || len(entries) == 0 {
		return Fallback(level, category)
	}
	e := entries[rand.Intn(len(entries))]
	return GameWord{Word: e.word, Hint: e.hint, Level: level, Category: category}
}
