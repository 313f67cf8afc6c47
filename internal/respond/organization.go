package respond

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"beacon/internal/data"
)

// InfoBlock is one self-contained heading+body+source unit returned by the
// organization-search path.
type InfoBlock struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
	Source  string `json:"source"`
}

// blockSeparator visually divides rendered info blocks.
const blockSeparator = "\n\n---\n\n"

// The fixed keyword sets. Each set triggers its category independently: a
// single query may trigger zero, one, or several categories at once.
var (
	missionTerms = []string{"mission", "about", "purpose", "history", "founded", "story"}
	serviceTerms = []string{"service", "program", "help", "assist", "shelter", "meal", "food", "housing", "recovery"}
	contactTerms = []string{"contact", "location", "address", "phone", "email", "hours", "where", "visit", "call"}
	eventTerms   = []string{"event", "calendar", "upcoming", "happening"}
	statTerms    = []string{"stat", "impact", "number", "served", "how many"}
)

// Organization evaluates a free-text query against the fixed keyword sets
// and returns the rendered text plus the ordered result blocks. A query
// matching no category yields a single default about block.
func Organization(st *data.Store, query string) (string, []InfoBlock) {
	org := st.Organization
	q := strings.ToLower(query)

	var blocks []InfoBlock

	if matchesAny(q, missionTerms) {
		blocks = append(blocks, missionBlock(org), historyBlock(org))
	}
	if matchesAny(q, serviceTerms) {
		blocks = append(blocks, serviceBlocks(org, q)...)
	}
	if matchesAny(q, contactTerms) {
		blocks = append(blocks, contactBlock(st), locationsBlock(org))
	}
	if matchesAny(q, eventTerms) {
		blocks = append(blocks, eventsBlock(org))
	}
	if matchesAny(q, statTerms) {
		blocks = append(blocks, impactBlock(org))
	}

	if len(blocks) == 0 {
		blocks = append(blocks, aboutBlock(org))
	}

	rendered := make([]string, 0, len(blocks))
	for _, blk := range blocks {
		rendered = append(rendered, fmt.Sprintf("%s\n\n%s\n\nSource: %s", blk.Heading, blk.Body, blk.Source))
	}
	return strings.Join(rendered, blockSeparator), blocks
}

func matchesAny(q string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(q, t) {
			return true
		}
	}
	return false
}

func missionBlock(org data.OrganizationInfo) InfoBlock {
	return InfoBlock{
		Heading: "Our Mission",
		Body:    org.Mission,
		Source:  org.SourceURL,
	}
}

func historyBlock(org data.OrganizationInfo) InfoBlock {
	body := fmt.Sprintf("%s\n\nFounded in %d, we have served the community for %d years.",
		org.About.History, org.About.Founded, org.YearsOperating())
	return InfoBlock{
		Heading: "Our History",
		Body:    body,
		Source:  org.SourceURL,
	}
}

// serviceBlocks matches each whitespace token of the query against service
// names, descriptions, and keywords. When no individual service matches, a
// single overview block lists everything.
func serviceBlocks(org data.OrganizationInfo, q string) []InfoBlock {
	tokens := strings.Fields(q)
	var blocks []InfoBlock
	for _, svc := range org.Services {
		if serviceMatches(svc, tokens) {
			blocks = append(blocks, InfoBlock{
				Heading: svc.Name,
				Body:    svc.Description,
				Source:  org.SourceURL,
			})
		}
	}
	if len(blocks) > 0 {
		return blocks
	}

	var b strings.Builder
	b.WriteString("Here is everything we offer:\n")
	for _, svc := range org.Services {
		fmt.Fprintf(&b, "\n- %s: %s", svc.Name, svc.Description)
	}
	return []InfoBlock{{
		Heading: "Our Services",
		Body:    b.String(),
		Source:  org.SourceURL,
	}}
}

func serviceMatches(svc data.Service, tokens []string) bool {
	haystack := strings.ToLower(svc.Name + " " + svc.Description)
	for _, kw := range svc.Keywords {
		haystack += " " + strings.ToLower(kw)
	}
	for _, tok := range tokens {
		if strings.Contains(haystack, tok) {
			return true
		}
	}
	return false
}

func contactBlock(st *data.Store) InfoBlock {
	org := st.Organization
	var b strings.Builder
	fmt.Fprintf(&b, "Phone: %s\n", org.Contact.Phone)
	fmt.Fprintf(&b, "Email: %s\n", org.Contact.Email)
	fmt.Fprintf(&b, "Hours: %s\n", org.Contact.Hours)
	fmt.Fprintf(&b, "Volunteer inquiries: %s or %s\n", st.Volunteer.Contact.Phone, st.Volunteer.Contact.Email)
	fmt.Fprintf(&b, "Donation inquiries: %s or %s", st.Donations.Online.Contact.Phone, st.Donations.Online.Contact.Email)
	return InfoBlock{
		Heading: "Contact Us",
		Body:    strings.TrimRight(b.String(), "\n"),
		Source:  org.SourceURL,
	}
}

func locationsBlock(org data.OrganizationInfo) InfoBlock {
	var b strings.Builder
	for i, loc := range org.Locations {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "%s\n  %s", loc.Name, loc.Address)
		if loc.Phone != "" {
			fmt.Fprintf(&b, "\n  Phone: %s", loc.Phone)
		}
	}
	return InfoBlock{
		Heading: "Our Locations",
		Body:    b.String(),
		Source:  org.SourceURL,
	}
}

func eventsBlock(org data.OrganizationInfo) InfoBlock {
	var b strings.Builder
	if len(org.Events) == 0 {
		b.WriteString("No upcoming events are scheduled right now. Check back soon!")
	}
	for i, ev := range org.Events {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "%s (%s)\n%s", ev.Name, ev.Date, ev.Description)
		if ev.URL != "" {
			fmt.Fprintf(&b, "\n%s", ev.URL)
		}
	}
	return InfoBlock{
		Heading: "Upcoming Events",
		Body:    b.String(),
		Source:  org.SourceURL,
	}
}

func impactBlock(org data.OrganizationInfo) InfoBlock {
	s := org.Stats
	body := fmt.Sprintf(
		"Each year:\n"+
			"  - People served: %s\n"+
			"  - Meals served: %s\n"+
			"  - Nights of housing: %s\n"+
			"  - Volunteers: %s\n"+
			"  - Volunteer hours: %s\n"+
			"  - Years serving the community: %s",
		humanize.Comma(int64(s.PeopleServed)),
		humanize.Comma(int64(s.MealsServed)),
		humanize.Comma(int64(s.NightsOfHousing)),
		humanize.Comma(int64(s.Volunteers)),
		humanize.Comma(int64(s.VolunteerHours)),
		humanize.Comma(int64(org.YearsOperating())),
	)
	return InfoBlock{
		Heading: "Our Impact",
		Body:    body,
		Source:  org.SourceURL,
	}
}

func aboutBlock(org data.OrganizationInfo) InfoBlock {
	body := fmt.Sprintf("%s\n\nServing %s since %d.\n\nReach us at %s or %s.",
		org.Mission, org.ServiceArea, org.About.Founded,
		org.Contact.Phone, org.Contact.Email)
	return InfoBlock{
		Heading: fmt.Sprintf("About %s", org.Name),
		Body:    body,
		Source:  org.SourceURL,
	}
}
