// Package respond renders query results into a human-readable text body and
// a structured payload. All rendering is a stateless pure computation over
// the immutable data store; issuing the same query twice yields identical
// output.
package respond

import (
	"fmt"
	"strings"

	"beacon/internal/data"
)

// OpportunityPayload is the structured result accompanying an opportunity
// search: the full matching records plus the general volunteer contact.
type OpportunityPayload struct {
	Count          int                `json:"count"`
	Opportunities  []data.Opportunity `json:"opportunities"`
	GeneralContact data.Contact       `json:"general_contact"`
}

// Opportunities renders a filtered result set. Zero matches is a valid
// outcome and produces an apology with the general contact, not an error.
func Opportunities(matches []data.Opportunity, general data.Contact) (string, OpportunityPayload) {
	payload := OpportunityPayload{
		Count:          len(matches),
		Opportunities:  matches,
		GeneralContact: general,
	}
	if matches == nil {
		payload.Opportunities = []data.Opportunity{}
	}

	if len(matches) == 0 {
		text := fmt.Sprintf(
			"I'm sorry, I couldn't find any volunteer opportunities matching your search. "+
				"Our volunteer team would love to help you find a good fit: call %s or email %s.",
			general.Phone, general.Email)
		return text, payload
	}

	var b strings.Builder
	fmt.Fprintf(&b, "I found %d volunteer %s:\n", len(matches), pluralize(len(matches), "opportunity", "opportunities"))
	for i, opp := range matches {
		b.WriteString("\n")
		b.WriteString(formatOpportunity(i+1, opp))
	}
	fmt.Fprintf(&b, "\nQuestions? Contact our volunteer coordinator at %s or %s.", general.Phone, general.Email)
	return b.String(), payload
}

func formatOpportunity(n int, opp data.Opportunity) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d. %s (%s)\n", n, opp.Title, opp.Location.City)
	fmt.Fprintf(&b, "   %s\n", opp.Description)
	fmt.Fprintf(&b, "   Schedule: %s\n", opp.Schedule.Details)

	req := opp.Requirements
	fmt.Fprintf(&b, "   Age %d+.", req.MinAge)
	if req.GroupFriendly {
		if req.MaxGroupSize > 0 {
			fmt.Fprintf(&b, " Group friendly (up to %d people).", req.MaxGroupSize)
		} else {
			b.WriteString(" Group friendly.")
		}
	}
	if len(req.Skills) > 0 {
		fmt.Fprintf(&b, " Skills: %s.", strings.Join(req.Skills, ", "))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "   Contact: %s or %s\n", opp.Contact.Phone, opp.Contact.Email)
	if opp.SignupURL != "" {
		fmt.Fprintf(&b, "   Sign up: %s\n", opp.SignupURL)
	}
	return b.String()
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
