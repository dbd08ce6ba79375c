package api

import (
	"context"
	"net/http"

	"github.com/employee7007-droid/construct-deal/internal/models"
)

// AdminClient talks to the /admin resource domain. Every call here requires a
// super admin token upstream.
type AdminClient struct {
	c *Client
}

// DashboardStats is the unwrapped data of GET /admin/dashboard.
type DashboardStats struct {
	TotalUsers      int     `json:"totalUsers"`
	TotalVendors    int     `json:"totalVendors"`
	PendingKYC      int     `json:"pendingKyc"`
	OpenRFQs        int     `json:"openRfqs"`
	ActiveContracts int     `json:"activeContracts"`
	OpenDisputes    int     `json:"openDisputes"`
	TotalVolume     float64 `json:"totalVolume"`
}

// UserList is the unwrapped data of GET /admin/users.
type UserList struct {
	Users      []models.User     `json:"users"`
	Pagination models.Pagination `json:"pagination"`
}

// OrganizationList is the unwrapped data of GET /admin/organizations.
type OrganizationList struct {
	Organizations []models.Organization `json:"organizations"`
	Pagination    models.Pagination     `json:"pagination"`
}

// LogEntry is one backend audit log line.
type LogEntry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Actor     string `json:"actor,omitempty"`
	Message   string `json:"message"`
}

// LogList is the unwrapped data of GET /admin/logs.
type LogList struct {
	Logs       []LogEntry        `json:"logs"`
	Pagination models.Pagination `json:"pagination"`
}

// FinancialReport is the unwrapped data of GET /admin/reports/financial.
type FinancialReport struct {
	TotalInvoiced float64            `json:"totalInvoiced"`
	TotalPaid     float64            `json:"totalPaid"`
	Outstanding   float64            `json:"outstanding"`
	ByMonth       map[string]float64 `json:"byMonth,omitempty"`
}

// PlatformSettings is the mutable platform configuration.
type PlatformSettings struct {
	MaintenanceMode   bool    `json:"maintenanceMode"`
	RegistrationOpen  bool    `json:"registrationOpen"`
	PlatformFeeRate   float64 `json:"platformFeeRate"`
	SupportEmail      string  `json:"supportEmail"`
	MaxAttachmentSize int64   `json:"maxAttachmentSize"`
}

func (a *AdminClient) Dashboard(ctx context.Context) (*DashboardStats, error) {
	var out struct {
		Stats DashboardStats `json:"stats"`
	}
	if err := a.c.query(ctx, "/admin/dashboard", nil, []Tag{TagAdmin}, &out); err != nil {
		return nil, err
	}
	return &out.Stats, nil
}

func (a *AdminClient) Users(ctx context.Context, p UserListParams) (*UserList, error) {
	var out UserList
	if err := a.c.query(ctx, "/admin/users", p.Values(), []Tag{TagAdmin}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AdminClient) SuspendUser(ctx context.Context, id, reason string) error {
	body := map[string]string{"reason": reason}
	return a.c.mutate(ctx, http.MethodPost, "/admin/users/"+id+"/suspend", body, nil, TagAdmin)
}

func (a *AdminClient) ActivateUser(ctx context.Context, id string) error {
	return a.c.mutate(ctx, http.MethodPost, "/admin/users/"+id+"/activate", nil, nil, TagAdmin)
}

func (a *AdminClient) Organizations(ctx context.Context, p StatusListParams) (*OrganizationList, error) {
	var out OrganizationList
	if err := a.c.query(ctx, "/admin/organizations", p.Values(), []Tag{TagAdmin, TagOrganization}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AdminClient) Vendors(ctx context.Context, p AdminVendorListParams) (*VendorList, error) {
	var out VendorList
	if err := a.c.query(ctx, "/admin/vendors", p.Values(), []Tag{TagAdmin, TagVendor}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AdminClient) RFQs(ctx context.Context, p StatusListParams) (*RFQList, error) {
	var out RFQList
	if err := a.c.query(ctx, "/admin/rfqs", p.Values(), []Tag{TagAdmin, TagRFQ}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AdminClient) Contracts(ctx context.Context, p StatusListParams) (*ContractList, error) {
	var out ContractList
	if err := a.c.query(ctx, "/admin/contracts", p.Values(), []Tag{TagAdmin, TagContract}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AdminClient) Logs(ctx context.Context, p LogListParams) (*LogList, error) {
	var out LogList
	if err := a.c.query(ctx, "/admin/logs", p.Values(), []Tag{TagAdmin}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AdminClient) FinancialReport(ctx context.Context, p ReportParams) (*FinancialReport, error) {
	var out struct {
		Report FinancialReport `json:"report"`
	}
	if err := a.c.query(ctx, "/admin/reports/financial", p.Values(), []Tag{TagAdmin}, &out); err != nil {
		return nil, err
	}
	return &out.Report, nil
}

func (a *AdminClient) Settings(ctx context.Context) (*PlatformSettings, error) {
	var out struct {
		Settings PlatformSettings `json:"settings"`
	}
	if err := a.c.query(ctx, "/admin/settings", nil, []Tag{TagAdmin}, &out); err != nil {
		return nil, err
	}
	return &out.Settings, nil
}

func (a *AdminClient) UpdateSettings(ctx context.Context, in PlatformSettings) error {
	return a.c.mutate(ctx, http.MethodPut, "/admin/settings", in, nil, TagAdmin)
}
