package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"beacon/internal/data"
	"beacon/internal/filter"
	"beacon/internal/format"
	"beacon/internal/respond"
)

var searchFlags struct {
	keyword  string
	city     string
	schedule string
	age      int
	group    bool
	skill    string
	table    bool
	markdown bool
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search volunteer opportunities",
	Long: `Search the volunteer opportunity list. All filters are optional and
combine with AND. --age keeps opportunities whose minimum-age requirement
is at or below the given value.`,
	RunE: runSearch,
}

func init() {
	f := searchCmd.Flags()
	f.StringVar(&searchFlags.keyword, "keyword", "", "Keyword matched against title and description")
	f.StringVar(&searchFlags.city, "city", "", "City name or fragment")
	f.StringVar(&searchFlags.schedule, "schedule", "", "Schedule type (one-time, weekly, flexible, ongoing)")
	f.IntVar(&searchFlags.age, "age", -1, "Oldest minimum-age requirement to accept")
	f.BoolVar(&searchFlags.group, "group-friendly", false, "Only group-friendly opportunities (use =false to invert)")
	f.StringVar(&searchFlags.skill, "skill", "", "Required skill to look for")
	f.BoolVar(&searchFlags.table, "table", false, "Render results as a table instead of prose")
	f.BoolVar(&searchFlags.markdown, "markdown", false, "Render the table as Markdown (implies --table)")
}

func runSearch(cmd *cobra.Command, _ []string) error {
	st, err := loadStore()
	if err != nil {
		return err
	}

	criteria := filter.Criteria{
		Keyword: searchFlags.keyword,
		City:    searchFlags.city,
		Skill:   searchFlags.skill,
	}
	if searchFlags.schedule != "" {
		sched := data.ScheduleType(searchFlags.schedule)
		if !sched.Valid() {
			return fmt.Errorf("invalid --schedule %q (valid: one-time, weekly, flexible, ongoing)", searchFlags.schedule)
		}
		criteria.ScheduleType = sched
	}
	if searchFlags.age >= 0 {
		criteria.MaxAge = &searchFlags.age
	}
	if cmd.Flags().Changed("group-friendly") {
		criteria.GroupFriendly = &searchFlags.group
	}

	matches := filter.Apply(st.Volunteer.Opportunities, criteria)

	if searchFlags.table || searchFlags.markdown {
		fmt.Fprintln(cmd.OutOrStdout(), searchTable(matches))
		return nil
	}

	text, _ := respond.Opportunities(matches, st.Volunteer.Contact)
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}

func searchTable(matches []data.Opportunity) string {
	mode := format.ASCII
	if searchFlags.markdown {
		mode = format.Markdown
	}
	tb := format.NewTable(mode)
	tb.Header("ID", "Title", "City", "Schedule", "Age", "Skills")
	for _, opp := range matches {
		tb.Row(
			opp.ID,
			opp.Title,
			opp.Location.City,
			string(opp.Schedule.Type),
			fmt.Sprintf("%d+", opp.Requirements.MinAge),
			format.Truncate(strings.Join(opp.Requirements.Skills, ", "), 40),
		)
	}
	tb.Footer("", fmt.Sprintf("%d match(es)", len(matches)), "", "", "", "")
	tb.Columns(format.ColumnConfig{Number: 5, Right: true})
	return tb.String()
}
