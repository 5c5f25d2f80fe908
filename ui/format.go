package ui

import (
	"strconv"

	"github.com/vadiminshakov/faktorial/core/query"
)

// Texts shown to the user.
const (
	Prompt      = "Zadejte cislo pro vypocet faktorialu: "
	ParseError  = "Chyba pri nacitani celeho cisla!"
	DomainError = "Faktorial nelze spocitat!"
	ResultLabel = "Vysledek je: "
)

// Outcome renders the single line reported for a resolved query.
// With color, errors are red and the result is green.
func Outcome(q *query.Query, color bool) string {
	paint := func(text string, fn func(string) string) string {
		if color {
			return fn(text)
		}
		return text
	}

	if res, ok := q.Result(); ok {
		return paint(ResultLabel+strconv.FormatInt(res, 10), BrightGreen)
	}

	if q.State() == query.InputNegative {
		return paint(DomainError, BrightRed)
	}
	return paint(ParseError, BrightRed)
}
