// Package filter narrows the opportunity list by caller-supplied criteria.
// Filtering is a pure read over the immutable data store: no criterion
// combination is invalid, and an empty result is a normal outcome.
package filter

import (
	"strings"

	"beacon/internal/data"
)

// Criteria is the optional set of constraints for an opportunity search.
// Nil or zero-valued fields impose no constraint; supplied fields combine
// with AND semantics.
type Criteria struct {
	// Keyword matches case-insensitively against title plus description.
	Keyword string
	// City matches case-insensitively as a substring of the location city.
	City string
	// ScheduleType must match the opportunity's schedule type exactly.
	ScheduleType data.ScheduleType
	// MaxAge keeps an opportunity only if its minimum-age requirement is
	// less than or equal to this value. The caller names the oldest age
	// bracket they will accept; anything requiring that age or younger
	// qualifies. This is an inclusive upper bound, not an exact match.
	MaxAge *int
	// GroupFriendly, when set, must equal the opportunity's flag.
	GroupFriendly *bool
	// Skill matches case-insensitively against any listed required skill.
	Skill string
}

// Apply returns the ordered subsequence of opps satisfying every supplied
// criterion. The input slice is never modified and ordering is preserved.
func Apply(opps []data.Opportunity, c Criteria) []data.Opportunity {
	matched := make([]data.Opportunity, 0, len(opps))
	for _, opp := range opps {
		if Matches(opp, c) {
			matched = append(matched, opp)
		}
	}
	return matched
}

// Matches reports whether a single opportunity satisfies all supplied criteria.
func Matches(opp data.Opportunity, c Criteria) bool {
	if c.Keyword != "" {
		haystack := strings.ToLower(opp.Title + " " + opp.Description)
		if !strings.Contains(haystack, strings.ToLower(c.Keyword)) {
			return false
		}
	}
	if c.City != "" {
		if !strings.Contains(strings.ToLower(opp.Location.City), strings.ToLower(c.City)) {
			return false
		}
	}
	if c.ScheduleType != "" && opp.Schedule.Type != c.ScheduleType {
		return false
	}
	if c.MaxAge != nil && opp.Requirements.MinAge > *c.MaxAge {
		return false
	}
	if c.GroupFriendly != nil && opp.Requirements.GroupFriendly != *c.GroupFriendly {
		return false
	}
	if c.Skill != "" && !matchesSkill(opp.Requirements.Skills, c.Skill) {
		return false
	}
	return true
}

func matchesSkill(skills []string, want string) bool {
	want = strings.ToLower(want)
	for _, s := range skills {
		if strings.Contains(strings.ToLower(s), want) {
			return true
		}
	}
	return false
}
