package data

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validJSON = `{
  "volunteer": {
    "opportunities": [
      {
        "id": "kitchen-prep",
        "title": "Kitchen Prep Volunteer",
        "description": "Help prepare and serve meals in the community kitchen.",
        "location": {"city": "Springfield", "facility": "Main Shelter", "address": "100 Hope St"},
        "schedule": {"type": "weekly", "details": "Tuesdays 8am-12pm"},
        "requirements": {"min_age": 14, "background_check": false, "skills": [], "group_friendly": true, "max_group_size": 8},
        "contact": {"phone": "555-0100", "email": "volunteer@example.org"},
        "signup_url": "https://example.org/signup/kitchen",
        "source_url": "https://example.org/volunteer"
      }
    ],
    "contact": {"phone": "555-0100", "email": "volunteer@example.org"}
  },
  "donations": {
    "online": {
      "portal_url": "https://example.org/give",
      "modes": ["one-time", "monthly"],
      "notes": "Gifts are tax deductible.",
      "contact": {"phone": "555-0101", "email": "giving@example.org"}
    },
    "in_kind": {
      "accepted": [{"category": "Clothing", "details": "Coats, shoes, socks", "restrictions": "clean and gently used"}],
      "not_accepted": ["mattresses"],
      "drop_off": [{"name": "Main Shelter", "address": "100 Hope St", "hours": "9am-5pm", "phone": "555-0102", "email": "donate@example.org"}],
      "policies": ["No drop-offs after hours"],
      "wishlist_url": "https://example.org/wishlist"
    },
    "vehicle": {
      "process": "Call to schedule a free pickup; a receipt is mailed after sale.",
      "phone": "555-0103",
      "program_url": "https://example.org/vehicles"
    }
  },
  "organization": {
    "name": "Harborlight Mission",
    "mission": "Feeding and housing our neighbors in need.",
    "about": {"history": "Founded by a coalition of local churches.", "founded": 1952},
    "stats": {"people_served": 12450, "meals_served": 286000, "nights_of_housing": 41200, "volunteers": 1800, "volunteer_hours": 96500},
    "services": [{"name": "Community Kitchen", "description": "Hot meals every day.", "keywords": ["meals", "food"]}],
    "locations": [{"name": "Main Shelter", "address": "100 Hope St, Springfield", "phone": "555-0100"}],
    "events": [{"name": "Coat Drive", "date": "2026-11-01", "description": "Annual winter coat drive.", "url": "https://example.org/events/coat-drive"}],
    "contact": {"phone": "555-0100", "email": "info@example.org", "hours": "Mon-Fri 9am-5pm"},
    "service_area": "Greater Springfield",
    "source_url": "https://example.org"
  }
}`

func TestParse_ValidJSON(t *testing.T) {
	st, err := Parse([]byte(validJSON), ".json")
	require.NoError(t, err)

	require.Len(t, st.Volunteer.Opportunities, 1)
	opp := st.Volunteer.Opportunities[0]
	assert.Equal(t, "kitchen-prep", opp.ID)
	assert.Equal(t, ScheduleWeekly, opp.Schedule.Type)
	require.NotNil(t, opp.Requirements.BackgroundCheck)
	assert.False(t, *opp.Requirements.BackgroundCheck)

	require.NotNil(t, st.Donations.Online)
	require.NotNil(t, st.Donations.InKind)
	require.NotNil(t, st.Donations.Vehicle)
	assert.Equal(t, "https://example.org/give", st.Donations.Online.PortalURL)

	assert.Equal(t, 1952, st.Organization.About.Founded)
	assert.Greater(t, st.Organization.YearsOperating(), 70)
}

func TestParse_FormatDetection(t *testing.T) {
	// No extension hint: leading '{' means JSON.
	st, err := Parse([]byte(validJSON), "")
	require.NoError(t, err)
	assert.Equal(t, "Harborlight Mission", st.Organization.Name)
}

func TestParse_YAML(t *testing.T) {
	doc := `
volunteer:
  opportunities:
    - id: sorting
      title: Donation Sorter
      description: Sort incoming donations.
      location: {city: Springfield, facility: Warehouse}
      schedule: {type: flexible, details: Any weekday}
      requirements: {min_age: 16, group_friendly: false}
      contact: {phone: 555-0100, email: volunteer@example.org}
      source_url: https://example.org/volunteer
  contact: {phone: 555-0100, email: volunteer@example.org}
donations:
  online:
    portal_url: https://example.org/give
    modes: [one-time]
    contact: {phone: 555-0101, email: giving@example.org}
  in_kind:
    accepted: [{category: Food, details: Canned goods}]
    drop_off: []
  vehicle: {process: Call us., phone: 555-0103, program_url: https://example.org/vehicles}
organization:
  name: Harborlight Mission
  mission: Feeding our neighbors.
  about: {history: Local roots., founded: 1952}
  contact: {phone: 555-0100, email: info@example.org, hours: 9-5}
  source_url: https://example.org
`
	st, err := Parse([]byte(doc), ".yaml")
	require.NoError(t, err)
	require.Len(t, st.Volunteer.Opportunities, 1)
	assert.Equal(t, ScheduleFlexible, st.Volunteer.Opportunities[0].Schedule.Type)
	assert.Nil(t, st.Volunteer.Opportunities[0].Requirements.BackgroundCheck)
}

func TestParse_MissingTopLevelKey(t *testing.T) {
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(validJSON), &m))

	for _, key := range []string{"volunteer", "donations", "organization"} {
		t.Run(key, func(t *testing.T) {
			mutated := make(map[string]json.RawMessage, len(m))
			for k, v := range m {
				mutated[k] = v
			}
			delete(mutated, key)
			raw, err := json.Marshal(mutated)
			require.NoError(t, err)

			_, err = Parse(raw, ".json")
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestParse_OpportunitiesNotArray(t *testing.T) {
	doc := `{"volunteer": {"opportunities": "nope"}, "donations": {}, "organization": {}}`
	_, err := Parse([]byte(doc), ".json")
	require.Error(t, err)
}

func TestParse_OpportunitiesAbsent(t *testing.T) {
	doc := `{"volunteer": {"contact": {"phone": "555-0100", "email": "v@example.org"}},
	         "donations": {}, "organization": {}}`
	_, err := Parse([]byte(doc), ".json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opportunities")
}

func TestParse_InvalidRecordRejected(t *testing.T) {
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(validJSON), &m))

	// Blank out a required contact phone on the first opportunity.
	vol := m["volunteer"].(map[string]any)
	opp := vol["opportunities"].([]any)[0].(map[string]any)
	opp["contact"].(map[string]any)["phone"] = ""
	raw, err := json.Marshal(m)
	require.NoError(t, err)

	_, err = Parse(raw, ".json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "volunteer")
}

func TestParse_BadScheduleType(t *testing.T) {
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(validJSON), &m))

	vol := m["volunteer"].(map[string]any)
	opp := vol["opportunities"].([]any)[0].(map[string]any)
	opp["schedule"].(map[string]any)["type"] = "monthly"
	raw, err := json.Marshal(m)
	require.NoError(t, err)

	_, err = Parse(raw, ".json")
	require.Error(t, err)
}

func TestParse_DuplicateOpportunityID(t *testing.T) {
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(validJSON), &m))

	vol := m["volunteer"].(map[string]any)
	opps := vol["opportunities"].([]any)
	vol["opportunities"] = append(opps, opps[0])
	raw, err := json.Marshal(m)
	require.NoError(t, err)

	_, err = Parse(raw, ".json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}
