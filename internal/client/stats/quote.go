package stats

import (
	"strconv"
	"strings"
)

// Quote is an affirmation shown on the dashboard.
type Quote struct {
	Text   string
	Author string
}

const quoteAuthor = "MoodKeeper"

var quotes = []Quote{
	{Text: "Small steps count. Show up gently.", Author: quoteAuthor},
	{Text: "You don't have to feel okay to care for yourself.", Author: quoteAuthor},
	{Text: "Breathe in. Breathe out. Start again.", Author: quoteAuthor},
	{Text: "Your feelings are information, not instructions.", Author: quoteAuthor},
	{Text: "Rest is productive when it helps you return to yourself.", Author: quoteAuthor},
	{Text: "Notice one thing you did right today.", Author: quoteAuthor},
	{Text: "It's okay to take life one hour at a time.", Author: quoteAuthor},
}

// DailyQuote picks a quote from the date alone: the digits of dateISO,
// read as a number, modulo the number of quotes. Dates that do not reduce
// to a number get the first quote.
func DailyQuote(dateISO string) Quote {
	seed, err := strconv.ParseUint(strings.ReplaceAll(dateISO, "-", ""), 10, 64)
	if err != nil {
		return quotes[0]
	}
	return quotes[seed%uint64(len(quotes))]
}
