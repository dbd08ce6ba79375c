package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/employee7007-droid/construct-deal/internal/api"
	"github.com/employee7007-droid/construct-deal/internal/models"
)

// AdminHandler serves the back-office pages. The whole group is mounted
// behind the super admin guard.
type AdminHandler struct {
	clients *api.Clients
}

func NewAdminHandler(clients *api.Clients) *AdminHandler {
	return &AdminHandler{clients: clients}
}

func (h *AdminHandler) Register(rg *gin.RouterGroup, adminOnly gin.HandlerFunc) {
	a := rg.Group("/admin", adminOnly)
	a.GET("", h.Dashboard)
	a.GET("/users", h.Users)
	a.POST("/users/:id/suspend", h.SuspendUser)
	a.POST("/users/:id/activate", h.ActivateUser)
	a.GET("/organizations", h.Organizations)
	a.GET("/vendors", h.Vendors)
	a.POST("/vendors/:id/approve", h.ApproveVendor)
	a.POST("/vendors/:id/reject", h.RejectVendor)
	a.GET("/categories", h.Categories)
	a.POST("/categories", h.CreateCategory)
	a.POST("/categories/:id", h.UpdateCategory)
	a.POST("/categories/:id/delete", h.DeleteCategory)
	a.GET("/rfqs", h.RFQs)
	a.GET("/contracts", h.Contracts)
	a.GET("/logs", h.Logs)
	a.GET("/reports/financial", h.FinancialReport)
	a.GET("/settings", h.Settings)
	a.POST("/settings", h.UpdateSettings)
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.clients.Admin.Dashboard(apiCtx(c))
	if err != nil {
		redirectError(c, "/dashboard", err)
		return
	}
	render(c, http.StatusOK, "admin_dashboard.tmpl", gin.H{"Title": "Platform overview", "Stats": stats})
}

func (h *AdminHandler) Users(c *gin.Context) {
	params := api.UserListParams{
		Role:   c.Query("role"),
		Search: c.Query("search"),
		Page:   api.Page{Page: intQuery(c, "page"), Limit: intQuery(c, "limit")},
	}
	list, err := h.clients.Admin.Users(apiCtx(c), params)
	if err != nil {
		redirectError(c, "/admin", err)
		return
	}
	render(c, http.StatusOK, "admin_users.tmpl", gin.H{
		"Title":      "Users",
		"Users":      list.Users,
		"Pagination": list.Pagination,
		"Filters":    params,
	})
}

func (h *AdminHandler) SuspendUser(c *gin.Context) {
	if err := h.clients.Admin.SuspendUser(apiCtx(c), c.Param("id"), c.PostForm("reason")); err != nil {
		redirectError(c, "/admin/users", err)
		return
	}
	redirectNotice(c, "/admin/users", "user suspended")
}

func (h *AdminHandler) ActivateUser(c *gin.Context) {
	if err := h.clients.Admin.ActivateUser(apiCtx(c), c.Param("id")); err != nil {
		redirectError(c, "/admin/users", err)
		return
	}
	redirectNotice(c, "/admin/users", "user activated")
}

func (h *AdminHandler) Organizations(c *gin.Context) {
	params := api.StatusListParams{
		Search: c.Query("search"),
		Page:   api.Page{Page: intQuery(c, "page"), Limit: intQuery(c, "limit")},
	}
	list, err := h.clients.Admin.Organizations(apiCtx(c), params)
	if err != nil {
		redirectError(c, "/admin", err)
		return
	}
	render(c, http.StatusOK, "admin_organizations.tmpl", gin.H{
		"Title":         "Organizations",
		"Organizations": list.Organizations,
		"Pagination":    list.Pagination,
	})
}

func (h *AdminHandler) Vendors(c *gin.Context) {
	params := api.AdminVendorListParams{
		KYCStatus: c.Query("kycStatus"),
		Search:    c.Query("search"),
		Page:      api.Page{Page: intQuery(c, "page"), Limit: intQuery(c, "limit")},
	}
	list, err := h.clients.Admin.Vendors(apiCtx(c), params)
	if err != nil {
		redirectError(c, "/admin", err)
		return
	}
	render(c, http.StatusOK, "admin_vendors.tmpl", gin.H{
		"Title":      "Vendor review",
		"Vendors":    list.Vendors,
		"Pagination": list.Pagination,
		"Filters":    params,
	})
}

func (h *AdminHandler) ApproveVendor(c *gin.Context) {
	if err := h.clients.Vendors.Approve(apiCtx(c), c.Param("id")); err != nil {
		redirectError(c, "/admin/vendors", err)
		return
	}
	redirectNotice(c, "/admin/vendors", "vendor approved")
}

func (h *AdminHandler) RejectVendor(c *gin.Context) {
	if err := h.clients.Vendors.Reject(apiCtx(c), c.Param("id"), c.PostForm("reason")); err != nil {
		redirectError(c, "/admin/vendors", err)
		return
	}
	redirectNotice(c, "/admin/vendors", "vendor rejected")
}

func (h *AdminHandler) Categories(c *gin.Context) {
	tree, err := h.clients.Categories.Tree(apiCtx(c))
	if err != nil {
		redirectError(c, "/admin", err)
		return
	}
	render(c, http.StatusOK, "admin_categories.tmpl", gin.H{
		"Title":      "Categories",
		"Categories": tree,
	})
}

func (h *AdminHandler) CreateCategory(c *gin.Context) {
	in := models.Category{
		Name:     c.PostForm("name"),
		ParentID: c.PostForm("parent_id"),
	}
	if in.Name == "" {
		redirectError(c, "/admin/categories", &api.Error{Message: "category name is required"})
		return
	}
	if _, err := h.clients.Categories.Create(apiCtx(c), in); err != nil {
		redirectError(c, "/admin/categories", err)
		return
	}
	redirectNotice(c, "/admin/categories", "category created")
}

func (h *AdminHandler) UpdateCategory(c *gin.Context) {
	in := models.Category{Name: c.PostForm("name")}
	if in.Name == "" {
		redirectError(c, "/admin/categories", &api.Error{Message: "category name is required"})
		return
	}
	if _, err := h.clients.Categories.Update(apiCtx(c), c.Param("id"), in); err != nil {
		redirectError(c, "/admin/categories", err)
		return
	}
	redirectNotice(c, "/admin/categories", "category renamed")
}

func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	if err := h.clients.Categories.Delete(apiCtx(c), c.Param("id")); err != nil {
		redirectError(c, "/admin/categories", err)
		return
	}
	redirectNotice(c, "/admin/categories", "category deleted")
}

func (h *AdminHandler) RFQs(c *gin.Context) {
	params := api.StatusListParams{
		Status: c.Query("status"),
		Search: c.Query("search"),
		Page:   api.Page{Page: intQuery(c, "page"), Limit: intQuery(c, "limit")},
	}
	list, err := h.clients.Admin.RFQs(apiCtx(c), params)
	if err != nil {
		redirectError(c, "/admin", err)
		return
	}
	render(c, http.StatusOK, "admin_rfqs.tmpl", gin.H{
		"Title":      "All RFQs",
		"RFQs":       list.RFQs,
		"Pagination": list.Pagination,
	})
}

func (h *AdminHandler) Contracts(c *gin.Context) {
	params := api.StatusListParams{
		Status: c.Query("status"),
		Search: c.Query("search"),
		Page:   api.Page{Page: intQuery(c, "page"), Limit: intQuery(c, "limit")},
	}
	list, err := h.clients.Admin.Contracts(apiCtx(c), params)
	if err != nil {
		redirectError(c, "/admin", err)
		return
	}
	render(c, http.StatusOK, "admin_contracts.tmpl", gin.H{
		"Title":      "All contracts",
		"Contracts":  list.Contracts,
		"Pagination": list.Pagination,
	})
}

func (h *AdminHandler) Logs(c *gin.Context) {
	params := api.LogListParams{
		Level:     c.Query("level"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		Search:    c.Query("search"),
		Page:      api.Page{Page: intQuery(c, "page"), Limit: intQuery(c, "limit")},
	}
	list, err := h.clients.Admin.Logs(apiCtx(c), params)
	if err != nil {
		redirectError(c, "/admin", err)
		return
	}
	render(c, http.StatusOK, "admin_logs.tmpl", gin.H{
		"Title":      "Audit logs",
		"Logs":       list.Logs,
		"Pagination": list.Pagination,
		"Filters":    params,
	})
}

func (h *AdminHandler) FinancialReport(c *gin.Context) {
	params := api.ReportParams{
		StartDate:  c.Query("startDate"),
		EndDate:    c.Query("endDate"),
		ReportType: c.Query("reportType"),
	}
	report, err := h.clients.Admin.FinancialReport(apiCtx(c), params)
	if err != nil {
		redirectError(c, "/admin", err)
		return
	}
	render(c, http.StatusOK, "admin_report.tmpl", gin.H{
		"Title":   "Financial report",
		"Report":  report,
		"Filters": params,
	})
}

func (h *AdminHandler) Settings(c *gin.Context) {
	settings, err := h.clients.Admin.Settings(apiCtx(c))
	if err != nil {
		redirectError(c, "/admin", err)
		return
	}
	render(c, http.StatusOK, "admin_settings.tmpl", gin.H{"Title": "Platform settings", "Settings": settings})
}

func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	in := api.PlatformSettings{
		MaintenanceMode:  c.PostForm("maintenance_mode") == "on",
		RegistrationOpen: c.PostForm("registration_open") == "on",
		PlatformFeeRate:  floatForm(c, "platform_fee_rate"),
		SupportEmail:     c.PostForm("support_email"),
	}
	in.MaxAttachmentSize = int64(intForm(c, "max_attachment_size"))
	if err := h.clients.Admin.UpdateSettings(apiCtx(c), in); err != nil {
		redirectError(c, "/admin/settings", err)
		return
	}
	redirectNotice(c, "/admin/settings", "settings saved")
}
