// Package assistant answers free-text questions about the expense collection
// with keyword matching against precomputed aggregates. There is no natural
// language understanding: the query is lowercased and tested against an
// ordered rule list, first match wins.
package assistant

import (
	"fmt"
	"strings"
	"time"

	"spendtrack/internal/core"
)

// DefaultReplyDelay paces chat replies for conversational feel. Purely
// cosmetic; callers apply it themselves and may use zero.
const DefaultReplyDelay = 500 * time.Millisecond

const emptyReply = "You don't have any expenses recorded yet."

const helpReply = "I can help you with expense tracking. Try asking questions like:\n" +
	"- How much did I spend last week?\n" +
	"- What's my total spending?\n" +
	"- How much did I spend on food?\n" +
	"- What was my biggest expense?\n" +
	"- What's my most recent expense?"

// Greeting is the canned message shown when the chat panel opens.
const Greeting = `Hello! I'm your expense assistant. Ask me questions like "How much did I spend last week?"`

type rule struct {
	match  func(q string) bool
	answer func(a *Assistant, q string, expenses []core.Expense) string
}

// Assistant matches queries against the rule chain. The category list and the
// money formatter are supplied by the caller so replies follow the active
// profile currency.
type Assistant struct {
	categories func() []string
	format     func(amount float64) string
	now        func() time.Time
	rules      []rule
}

// New builds an assistant. categories supplies the known category names for
// the per-category rule; format renders money amounts.
func New(categories func() []string, format func(amount float64) string) *Assistant {
	a := &Assistant{
		categories: categories,
		format:     format,
		now:        time.Now,
	}
	// Order is significant: the total rule sits before the category rule, so
	// a query like "total food spending" answers the grand total, not the
	// food total.
	a.rules = []rule{
		{matchAny("last week", "past week"), (*Assistant).answerLastWeek},
		{matchAny("this month", "current month"), (*Assistant).answerThisMonth},
		{matchAny("today"), (*Assistant).answerToday},
		{matchAny("total", "overall", "all time"), (*Assistant).answerTotal},
		{matchAny("recent", "latest", "last expense"), (*Assistant).answerMostRecent},
		{a.matchCategory, (*Assistant).answerCategory},
		{matchAny("biggest", "largest", "most expensive"), (*Assistant).answerBiggest},
	}
	return a
}

// Respond maps a free-text query over the current expense collection to a
// reply string. Unmatched queries get the fixed help message.
func (a *Assistant) Respond(query string, expenses []core.Expense) string {
	q := strings.ToLower(query)
	for _, r := range a.rules {
		if r.match(q) {
			return r.answer(a, q, expenses)
		}
	}
	return helpReply
}

func matchAny(needles ...string) func(string) bool {
	return func(q string) bool {
		for _, n := range needles {
			if strings.Contains(q, n) {
				return true
			}
		}
		return false
	}
}

func (a *Assistant) matchCategory(q string) bool {
	return a.categoryIn(q) != ""
}

// categoryIn returns the first known category mentioned in the query.
func (a *Assistant) categoryIn(q string) string {
	for _, cat := range a.categories() {
		if strings.Contains(q, strings.ToLower(cat)) {
			return cat
		}
	}
	return ""
}

func sumCount(expenses []core.Expense, keep func(core.Expense) bool) (float64, int) {
	var total float64
	var count int
	for _, e := range expenses {
		if keep(e) {
			total += e.Amount
			count++
		}
	}
	return total, count
}

func (a *Assistant) answerLastWeek(_ string, expenses []core.Expense) string {
	today := core.DateOf(a.now())
	weekAgo := today.AddDays(-7)
	total, count := sumCount(expenses, func(e core.Expense) bool {
		return !e.Date.Before(weekAgo) && !e.Date.After(today)
	})
	return fmt.Sprintf("You spent %s last week across %d transactions.", a.format(total), count)
}

func (a *Assistant) answerThisMonth(_ string, expenses []core.Expense) string {
	now := a.now()
	firstOfMonth := core.NewDate(now.Year(), now.Month(), 1)
	total, count := sumCount(expenses, func(e core.Expense) bool {
		return !e.Date.Before(firstOfMonth)
	})
	return fmt.Sprintf("You've spent %s this month across %d transactions.", a.format(total), count)
}

func (a *Assistant) answerToday(_ string, expenses []core.Expense) string {
	today := core.DateOf(a.now())
	total, count := sumCount(expenses, func(e core.Expense) bool {
		return e.Date.Equal(today)
	})
	return fmt.Sprintf("You've spent %s today across %d transactions.", a.format(total), count)
}

func (a *Assistant) answerTotal(_ string, expenses []core.Expense) string {
	total := core.Total(expenses)
	return fmt.Sprintf("Your total expenses amount to %s across %d transactions.", a.format(total), len(expenses))
}

func (a *Assistant) answerMostRecent(_ string, expenses []core.Expense) string {
	if len(expenses) == 0 {
		return emptyReply
	}
	recent := expenses[0]
	for _, e := range expenses[1:] {
		// Ties resolve to the latest in iteration order.
		if !e.Date.Before(recent.Date) {
			recent = e
		}
	}
	return fmt.Sprintf("Your most recent expense was %s for %s on %s.",
		recent.Title, a.format(recent.Amount), recent.Date.Format("Jan 2, 2006"))
}

func (a *Assistant) answerCategory(q string, expenses []core.Expense) string {
	cat := a.categoryIn(q)
	total, count := sumCount(expenses, func(e core.Expense) bool {
		return e.Category == cat
	})
	return fmt.Sprintf("You've spent %s on %s across %d transactions.",
		a.format(total), strings.ToLower(cat), count)
}

func (a *Assistant) answerBiggest(_ string, expenses []core.Expense) string {
	if len(expenses) == 0 {
		return emptyReply
	}
	biggest := expenses[0]
	for _, e := range expenses[1:] {
		// Strict comparison: the first maximum wins on ties.
		if e.Amount > biggest.Amount {
			biggest = e
		}
	}
	return fmt.Sprintf("Your biggest expense was %s for %s on %s.",
		biggest.Title, a.format(biggest.Amount), biggest.Date.Format("Jan 2, 2006"))
}
