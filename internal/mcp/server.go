// Package mcp is the tool-dispatch shell: it registers the three query
// tools with the MCP protocol layer and adapts tool calls onto the filter
// and responder packages. All domain state lives in the immutable data
// store; the handlers themselves are stateless.
package mcp

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"beacon/internal/data"
	"beacon/internal/filter"
	"beacon/internal/logging"
	"beacon/internal/respond"
)

// Server wraps the MCP SDK server around the loaded data store.
type Server struct {
	MCPServer *sdkmcp.Server

	// InstanceID identifies this server process in logs and health checks.
	InstanceID string

	store *data.Store
	log   *slog.Logger
}

// NewServer creates an MCP server exposing the volunteer, donation, and
// organization query tools over the given data store.
func NewServer(store *data.Store) *Server {
	s := &Server{
		InstanceID: uuid.NewString(),
		store:      store,
		log:        logging.New("mcp"),
	}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: "beacon", Version: "dev"},
		nil,
	)
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "search_volunteer_opportunities",
		Description: "Search volunteer opportunities by keyword, city, schedule type, age, group size, or skill. All filters are optional and combine with AND.",
	}, s.handleSearchOpportunities)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "get_donation_info",
		Description: "Get donation information for one giving channel: online, in_kind, or vehicle.",
	}, s.handleGetDonationInfo)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "search_organization_info",
		Description: "Answer free-text questions about the organization: mission, history, services, locations, events, contact details, and impact statistics.",
	}, s.handleSearchOrganization)
}

// --- Tool input/output types ---

type searchOpportunitiesInput struct {
	Keyword       string `json:"keyword,omitempty" jsonschema:"free-text keyword matched against opportunity titles and descriptions"`
	City          string `json:"city,omitempty" jsonschema:"city name or fragment"`
	ScheduleType  string `json:"schedule_type,omitempty" jsonschema:"schedule type (one-time, weekly, flexible, ongoing)"`
	AgeMinimum    *int   `json:"age_minimum,omitempty" jsonschema:"oldest minimum-age requirement to accept; opportunities requiring this age or younger match"`
	GroupFriendly *bool  `json:"group_friendly,omitempty" jsonschema:"restrict to opportunities matching this group-friendly flag"`
	Skill         string `json:"skill,omitempty" jsonschema:"required skill to look for"`
}

type getDonationInfoInput struct {
	Type string `json:"type" jsonschema:"donation channel (online, in_kind, vehicle)"`
}

type getDonationInfoOutput struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type searchOrganizationInput struct {
	Query string `json:"query" jsonschema:"free-text question about the organization"`
}

type searchOrganizationOutput struct {
	Query  string              `json:"query"`
	Blocks []respond.InfoBlock `json:"blocks"`
}

// applyFilter is indirect so tests can inject a fault into the search path.
var applyFilter = filter.Apply

// --- Tool handlers ---

// Each handler recovers panics at its own boundary: a fault in one
// operation degrades to a plain-text apology with a real contact channel
// and must never crash the process or leak a raw fault description.

func (s *Server) handleSearchOpportunities(ctx context.Context, _ *sdkmcp.CallToolRequest, input searchOpportunitiesInput) (res *sdkmcp.CallToolResult, out respond.OpportunityPayload, err error) {
	general := s.store.Volunteer.Contact
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("search_volunteer_opportunities panicked", "panic", r)
			res = apology("searching volunteer opportunities", general)
			out = respond.OpportunityPayload{Opportunities: []data.Opportunity{}, GeneralContact: general}
			err = nil
		}
	}()

	criteria := filter.Criteria{
		Keyword:       input.Keyword,
		City:          input.City,
		MaxAge:        input.AgeMinimum,
		GroupFriendly: input.GroupFriendly,
		Skill:         input.Skill,
	}
	if input.ScheduleType != "" {
		st := data.ScheduleType(input.ScheduleType)
		if !st.Valid() {
			return nil, respond.OpportunityPayload{}, fmt.Errorf("invalid schedule_type %q (valid: one-time, weekly, flexible, ongoing)", input.ScheduleType)
		}
		criteria.ScheduleType = st
	}

	matches := applyFilter(s.store.Volunteer.Opportunities, criteria)
	text, payload := respond.Opportunities(matches, general)
	s.log.Info("opportunity search", "matches", payload.Count)

	return uiResult(text, "opportunity-list"), payload, nil
}

func (s *Server) handleGetDonationInfo(ctx context.Context, _ *sdkmcp.CallToolRequest, input getDonationInfoInput) (res *sdkmcp.CallToolResult, out getDonationInfoOutput, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("get_donation_info panicked", "panic", r)
			res = apology("looking up donation information", s.donationContact())
			out = getDonationInfoOutput{}
			err = nil
		}
	}()

	typ, err := respond.ParseDonationType(input.Type)
	if err != nil {
		return nil, getDonationInfoOutput{}, err
	}

	text := respond.Donation(s.store.Donations, typ)
	s.log.Info("donation lookup", "type", typ)

	return uiResult(text, "donation-info"), getDonationInfoOutput{Type: string(typ), Text: text}, nil
}

func (s *Server) handleSearchOrganization(ctx context.Context, _ *sdkmcp.CallToolRequest, input searchOrganizationInput) (res *sdkmcp.CallToolResult, out searchOrganizationOutput, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("search_organization_info panicked", "panic", r)
			res = apology("looking up organization information", data.Contact{
				Phone: s.store.Organization.Contact.Phone,
				Email: s.store.Organization.Contact.Email,
			})
			out = searchOrganizationOutput{}
			err = nil
		}
	}()

	if input.Query == "" {
		return nil, searchOrganizationOutput{}, fmt.Errorf("query is required")
	}

	text, blocks := respond.Organization(s.store, input.Query)
	s.log.Info("organization search", "blocks", len(blocks))

	return uiResult(text, "info-blocks"), searchOrganizationOutput{Query: input.Query, Blocks: blocks}, nil
}

// donationContact picks the giving contact, falling back to the
// organization's main line.
func (s *Server) donationContact() data.Contact {
	if s.store.Donations.Online != nil {
		return s.store.Donations.Online.Contact
	}
	return data.Contact{
		Phone: s.store.Organization.Contact.Phone,
		Email: s.store.Organization.Contact.Email,
	}
}

// uiResult wraps a text body in a CallToolResult annotated with a rendering
// hint the chat client may use to pick a richer presentation.
func uiResult(text, hint string) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: text}},
		Meta:    sdkmcp.Meta{"beacon/render": hint},
	}
}

// apology is the degraded result for an operation-level fault: a generic
// plain-text apology with a real contact channel, never a raw error.
func apology(activity string, contact data.Contact) *sdkmcp.CallToolResult {
	text := fmt.Sprintf(
		"I'm sorry, something went wrong while %s. Please call %s or email %s and we'll help you directly.",
		activity, contact.Phone, contact.Email)
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: text}},
	}
}
