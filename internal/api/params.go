package api

import (
	"net/url"
	"strconv"
)

// Page carries optional pagination; zero values are omitted from the query
// string, matching the backend's defaulting.
type Page struct {
	Page  int
	Limit int
}

func (p Page) Values() url.Values {
	v := url.Values{}
	p.apply(v)
	return v
}

func (p Page) apply(v url.Values) {
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
}

func setIfPresent(v url.Values, key, val string) {
	if val != "" {
		v.Set(key, val)
	}
}

// RFQListParams filter GET /rfqs. Absent filters are omitted, not sent empty.
type RFQListParams struct {
	Status   string
	Category string
	Building string
	Search   string
	Page
}

func (p RFQListParams) Values() url.Values {
	v := url.Values{}
	setIfPresent(v, "status", p.Status)
	setIfPresent(v, "category", p.Category)
	setIfPresent(v, "building", p.Building)
	setIfPresent(v, "search", p.Search)
	p.apply(v)
	return v
}

// VendorListParams filter GET /vendors.
type VendorListParams struct {
	Category  string
	City      string
	MinRating float64
	Featured  bool
	Page
}

func (p VendorListParams) Values() url.Values {
	v := url.Values{}
	setIfPresent(v, "category", p.Category)
	setIfPresent(v, "city", p.City)
	if p.MinRating > 0 {
		v.Set("minRating", strconv.FormatFloat(p.MinRating, 'f', -1, 64))
	}
	if p.Featured {
		v.Set("featured", "true")
	}
	p.apply(v)
	return v
}

// CategoryListParams filter GET /categories.
type CategoryListParams struct {
	ParentID string
	Search   string
	Page
}

func (p CategoryListParams) Values() url.Values {
	v := url.Values{}
	setIfPresent(v, "parentId", p.ParentID)
	setIfPresent(v, "search", p.Search)
	p.apply(v)
	return v
}

// StatusListParams filter status-paged lists (contracts, disputes, admin views).
type StatusListParams struct {
	Status string
	Search string
	Page
}

func (p StatusListParams) Values() url.Values {
	v := url.Values{}
	setIfPresent(v, "status", p.Status)
	setIfPresent(v, "search", p.Search)
	p.apply(v)
	return v
}

// UserListParams filter GET /admin/users.
type UserListParams struct {
	Role   string
	Search string
	Page
}

func (p UserListParams) Values() url.Values {
	v := url.Values{}
	setIfPresent(v, "role", p.Role)
	setIfPresent(v, "search", p.Search)
	p.apply(v)
	return v
}

// AdminVendorListParams filter GET /admin/vendors.
type AdminVendorListParams struct {
	KYCStatus string
	Search    string
	Page
}

func (p AdminVendorListParams) Values() url.Values {
	v := url.Values{}
	setIfPresent(v, "kycStatus", p.KYCStatus)
	setIfPresent(v, "search", p.Search)
	p.apply(v)
	return v
}

// LogListParams filter GET /admin/logs.
type LogListParams struct {
	Level     string
	StartDate string
	EndDate   string
	Search    string
	Page
}

func (p LogListParams) Values() url.Values {
	v := url.Values{}
	setIfPresent(v, "level", p.Level)
	setIfPresent(v, "startDate", p.StartDate)
	setIfPresent(v, "endDate", p.EndDate)
	setIfPresent(v, "search", p.Search)
	p.apply(v)
	return v
}

// ReportParams filter GET /admin/reports/financial.
type ReportParams struct {
	StartDate  string
	EndDate    string
	ReportType string
}

func (p ReportParams) Values() url.Values {
	v := url.Values{}
	setIfPresent(v, "startDate", p.StartDate)
	setIfPresent(v, "endDate", p.EndDate)
	setIfPresent(v, "reportType", p.ReportType)
	return v
}
