package handlers

import (
	"github.com/employee7007-droid/construct-deal/internal/models"
	"github.com/employee7007-droid/construct-deal/internal/session"
)

// NavLink is one sidebar entry.
type NavLink struct {
	Label string
	Path  string
}

// navFor builds the sidebar for the session's role. Anonymous visitors see
// only the public marketplace pages.
func navFor(sess session.Session) []NavLink {
	if !sess.IsAuthenticated || sess.User == nil {
		return []NavLink{{Label: "Sign in", Path: "/auth"}}
	}
	links := []NavLink{
		{Label: "Dashboard", Path: "/dashboard"},
		{Label: "RFQs", Path: "/rfqs"},
		{Label: "Vendors", Path: "/vendors"},
		{Label: "Contracts", Path: "/contracts"},
		{Label: "Invoices", Path: "/invoices"},
		{Label: "Disputes", Path: "/disputes"},
	}
	switch sess.User.Role {
	case models.RoleFacilityManager:
		links = append(links,
			NavLink{Label: "Create RFQ", Path: "/rfqs/create"},
			NavLink{Label: "Buildings", Path: "/buildings"},
		)
	case models.RoleOrgOwner:
		links = append(links,
			NavLink{Label: "Create RFQ", Path: "/rfqs/create"},
			NavLink{Label: "Buildings", Path: "/buildings"},
			NavLink{Label: "Organization", Path: "/organization"},
		)
	case models.RoleSuperAdmin:
		links = append(links, NavLink{Label: "Admin", Path: "/admin"})
	}
	return append(links, NavLink{Label: "Account", Path: "/account"})
}
