package data

import "time"

// ScheduleType classifies how often a volunteer opportunity runs.
type ScheduleType string

const (
	ScheduleOneTime  ScheduleType = "one-time"
	ScheduleWeekly   ScheduleType = "weekly"
	ScheduleFlexible ScheduleType = "flexible"
	ScheduleOngoing  ScheduleType = "ongoing"
)

// ScheduleTypes lists every valid schedule type, for input validation and help text.
var ScheduleTypes = []ScheduleType{ScheduleOneTime, ScheduleWeekly, ScheduleFlexible, ScheduleOngoing}

// Valid reports whether s is one of the known schedule types.
func (s ScheduleType) Valid() bool {
	for _, t := range ScheduleTypes {
		if s == t {
			return true
		}
	}
	return false
}

// Contact is a phone/email pair. Both fields are always present on records
// that carry one.
type Contact struct {
	Phone string `json:"phone" yaml:"phone" validate:"required"`
	Email string `json:"email" yaml:"email" validate:"required,email"`
}

// Location describes where an opportunity takes place. Address may be empty
// for roving or off-site work.
type Location struct {
	City     string `json:"city" yaml:"city" validate:"required"`
	Facility string `json:"facility" yaml:"facility"`
	Address  string `json:"address,omitempty" yaml:"address"`
}

// Schedule pairs the machine-matchable type with a human-readable detail line.
type Schedule struct {
	Type    ScheduleType `json:"type" yaml:"type" validate:"required,oneof=one-time weekly flexible ongoing"`
	Details string       `json:"details" yaml:"details"`
}

// Requirements captures eligibility constraints for an opportunity.
// BackgroundCheck is a three-state flag: nil means unknown.
type Requirements struct {
	MinAge          int      `json:"min_age" yaml:"min_age" validate:"gte=0"`
	BackgroundCheck *bool    `json:"background_check,omitempty" yaml:"background_check"`
	Skills          []string `json:"skills,omitempty" yaml:"skills"`
	GroupFriendly   bool     `json:"group_friendly" yaml:"group_friendly"`
	MaxGroupSize    int      `json:"max_group_size,omitempty" yaml:"max_group_size"`
}

// Opportunity is one volunteer activity record. Records are built once at
// load time and never mutated.
type Opportunity struct {
	ID           string       `json:"id" yaml:"id" validate:"required"`
	Title        string       `json:"title" yaml:"title" validate:"required"`
	Description  string       `json:"description" yaml:"description"`
	Location     Location     `json:"location" yaml:"location"`
	Schedule     Schedule     `json:"schedule" yaml:"schedule"`
	Requirements Requirements `json:"requirements" yaml:"requirements"`
	Contact      Contact      `json:"contact" yaml:"contact"`
	SignupURL    string       `json:"signup_url,omitempty" yaml:"signup_url"`
	SourceURL    string       `json:"source_url" yaml:"source_url"`
}

// VolunteerSection holds the ordered opportunity list plus the general
// volunteer contact used in summaries and fallback messages.
type VolunteerSection struct {
	Opportunities []Opportunity `json:"opportunities" yaml:"opportunities" validate:"dive"`
	Contact       Contact       `json:"contact" yaml:"contact"`
}

// OnlineDonation describes the monetary-giving portal.
type OnlineDonation struct {
	PortalURL string   `json:"portal_url" yaml:"portal_url" validate:"required,url"`
	Modes     []string `json:"modes" yaml:"modes" validate:"min=1"`
	Notes     string   `json:"notes" yaml:"notes"`
	Contact   Contact  `json:"contact" yaml:"contact"`
}

// AcceptedCategory is one category of in-kind goods, with an optional
// restriction note ("gently used only", etc).
type AcceptedCategory struct {
	Category     string `json:"category" yaml:"category" validate:"required"`
	Details      string `json:"details" yaml:"details"`
	Restrictions string `json:"restrictions,omitempty" yaml:"restrictions"`
}

// DropOffLocation is a site accepting in-kind donations.
type DropOffLocation struct {
	Name    string `json:"name" yaml:"name" validate:"required"`
	Address string `json:"address" yaml:"address"`
	Hours   string `json:"hours" yaml:"hours"`
	Phone   string `json:"phone" yaml:"phone"`
	Email   string `json:"email" yaml:"email"`
}

// InKindDonation describes goods donations: what is accepted, what is not,
// where to bring it, and the handling policies.
type InKindDonation struct {
	Accepted    []AcceptedCategory `json:"accepted" yaml:"accepted" validate:"min=1,dive"`
	NotAccepted []string           `json:"not_accepted" yaml:"not_accepted"`
	DropOff     []DropOffLocation  `json:"drop_off" yaml:"drop_off" validate:"dive"`
	Policies    []string           `json:"policies" yaml:"policies"`
	WishlistURL string             `json:"wishlist_url" yaml:"wishlist_url"`
}

// VehicleDonation describes the vehicle-donation program.
type VehicleDonation struct {
	Process    string `json:"process" yaml:"process" validate:"required"`
	Phone      string `json:"phone" yaml:"phone" validate:"required"`
	ProgramURL string `json:"program_url" yaml:"program_url"`
}

// DonationsSection holds all three donation variants. Each lookup selects
// exactly one; no cross-variant fields leak into a response.
type DonationsSection struct {
	Online  *OnlineDonation  `json:"online" yaml:"online" validate:"required"`
	InKind  *InKindDonation  `json:"in_kind" yaml:"in_kind" validate:"required"`
	Vehicle *VehicleDonation `json:"vehicle" yaml:"vehicle" validate:"required"`
}

// About carries the organization's history text and founding year.
type About struct {
	History string `json:"history" yaml:"history"`
	Founded int    `json:"founded" yaml:"founded" validate:"required,gte=1800"`
}

// Stats are the aggregate impact numbers, reported per year.
type Stats struct {
	PeopleServed    int `json:"people_served" yaml:"people_served"`
	MealsServed     int `json:"meals_served" yaml:"meals_served"`
	NightsOfHousing int `json:"nights_of_housing" yaml:"nights_of_housing"`
	Volunteers      int `json:"volunteers" yaml:"volunteers"`
	VolunteerHours  int `json:"volunteer_hours" yaml:"volunteer_hours"`
}

// Service is one named program with keywords for query matching.
type Service struct {
	Name        string   `json:"name" yaml:"name" validate:"required"`
	Description string   `json:"description" yaml:"description"`
	Keywords    []string `json:"keywords" yaml:"keywords"`
}

// OrgLocation is a physical site. Phone may be empty.
type OrgLocation struct {
	Name    string `json:"name" yaml:"name" validate:"required"`
	Address string `json:"address" yaml:"address" validate:"required"`
	Phone   string `json:"phone,omitempty" yaml:"phone"`
}

// Event is one upcoming event.
type Event struct {
	Name        string `json:"name" yaml:"name" validate:"required"`
	Date        string `json:"date" yaml:"date"`
	Description string `json:"description" yaml:"description"`
	URL         string `json:"url" yaml:"url"`
}

// OrgContact is the organization's main contact block.
type OrgContact struct {
	Phone string `json:"phone" yaml:"phone" validate:"required"`
	Email string `json:"email" yaml:"email" validate:"required,email"`
	Hours string `json:"hours" yaml:"hours"`
}

// OrganizationInfo is the organization-level section: mission, history,
// services, locations, events, statistics, and contact details.
type OrganizationInfo struct {
	Name        string        `json:"name" yaml:"name" validate:"required"`
	Mission     string        `json:"mission" yaml:"mission" validate:"required"`
	About       About         `json:"about" yaml:"about"`
	Stats       Stats         `json:"stats" yaml:"stats"`
	Services    []Service     `json:"services" yaml:"services" validate:"dive"`
	Locations   []OrgLocation `json:"locations" yaml:"locations" validate:"dive"`
	Events      []Event       `json:"events" yaml:"events" validate:"dive"`
	Contact     OrgContact    `json:"contact" yaml:"contact"`
	ServiceArea string        `json:"service_area" yaml:"service_area"`
	SourceURL   string        `json:"source_url" yaml:"source_url" validate:"required,url"`
}

// YearsOperating derives the years-in-operation count from the founding year.
func (o OrganizationInfo) YearsOperating() int {
	y := time.Now().Year() - o.About.Founded
	if y < 0 {
		return 0
	}
	return y
}

// Store is the immutable in-memory snapshot of the data document. It is
// built once at startup and only ever read afterwards, so concurrent
// requests may share it without coordination.
type Store struct {
	Volunteer    VolunteerSection
	Donations    DonationsSection
	Organization OrganizationInfo
}
