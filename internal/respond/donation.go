package respond

import (
	"fmt"
	"strings"

	"beacon/internal/data"
)

// DonationType selects one of the three donation-information variants.
type DonationType string

const (
	DonationOnline  DonationType = "online"
	DonationInKind  DonationType = "in_kind"
	DonationVehicle DonationType = "vehicle"
)

// DonationTypes lists every valid donation type, for input validation.
var DonationTypes = []DonationType{DonationOnline, DonationInKind, DonationVehicle}

// ParseDonationType validates a caller-supplied type selector. Unrecognized
// values are rejected here, before any lookup runs.
func ParseDonationType(s string) (DonationType, error) {
	t := DonationType(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range DonationTypes {
		if t == v {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown donation type %q (valid: online, in_kind, vehicle)", s)
}

// Donation renders the section for one donation variant. This is a direct
// keyed lookup: the type selector has already been validated, and exactly
// one variant's fields appear in the output.
func Donation(d data.DonationsSection, t DonationType) string {
	switch t {
	case DonationOnline:
		return onlineDonation(d.Online)
	case DonationInKind:
		return inKindDonation(d.InKind)
	case DonationVehicle:
		return vehicleDonation(d.Vehicle)
	}
	return ""
}

func onlineDonation(o *data.OnlineDonation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Donate online at %s\n\n", o.PortalURL)
	b.WriteString("Ways to give:\n")
	for _, mode := range o.Modes {
		fmt.Fprintf(&b, "  - %s\n", mode)
	}
	if o.Notes != "" {
		fmt.Fprintf(&b, "\n%s\n", o.Notes)
	}
	fmt.Fprintf(&b, "\nQuestions about giving? Call %s or email %s.", o.Contact.Phone, o.Contact.Email)
	return b.String()
}

func inKindDonation(k *data.InKindDonation) string {
	var b strings.Builder
	b.WriteString("We accept these donated goods:\n")
	for _, cat := range k.Accepted {
		fmt.Fprintf(&b, "\n%s: %s", cat.Category, cat.Details)
		if cat.Restrictions != "" {
			fmt.Fprintf(&b, " (note: %s)", cat.Restrictions)
		}
	}
	b.WriteString("\n")

	if len(k.NotAccepted) > 0 {
		b.WriteString("\nWe cannot accept:\n")
		for _, item := range k.NotAccepted {
			fmt.Fprintf(&b, "  - %s\n", item)
		}
	}

	if len(k.DropOff) > 0 {
		b.WriteString("\nDrop-off locations:\n")
		for _, loc := range k.DropOff {
			fmt.Fprintf(&b, "\n%s\n", loc.Name)
			fmt.Fprintf(&b, "  %s\n", loc.Address)
			fmt.Fprintf(&b, "  Hours: %s\n", loc.Hours)
			fmt.Fprintf(&b, "  Phone: %s\n", loc.Phone)
			fmt.Fprintf(&b, "  Email: %s\n", loc.Email)
		}
	}

	if len(k.Policies) > 0 {
		b.WriteString("\nDonation policies:\n")
		for _, p := range k.Policies {
			fmt.Fprintf(&b, "  - %s\n", p)
		}
	}

	if k.WishlistURL != "" {
		fmt.Fprintf(&b, "\nCurrent needs wishlist: %s", k.WishlistURL)
	}
	return strings.TrimRight(b.String(), "\n")
}

func vehicleDonation(v *data.VehicleDonation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Vehicle donations: %s\n\n", v.Process)
	fmt.Fprintf(&b, "Call %s to get started", v.Phone)
	if v.ProgramURL != "" {
		fmt.Fprintf(&b, ", or visit %s", v.ProgramURL)
	}
	b.WriteString(".\n\n")
	b.WriteString("We accept cars, trucks, vans, motorcycles, boats, and RVs, running or not.")
	return b.String()
}
