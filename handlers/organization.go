package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/employee7007-droid/construct-deal/internal/api"
	"github.com/employee7007-droid/construct-deal/internal/models"
	"github.com/employee7007-droid/construct-deal/pkg/middleware"
)

// OrganizationHandler serves the organization settings page for owners:
// company details and the preferred vendor list.
type OrganizationHandler struct {
	clients *api.Clients
}

func NewOrganizationHandler(clients *api.Clients) *OrganizationHandler {
	return &OrganizationHandler{clients: clients}
}

func (h *OrganizationHandler) Register(rg *gin.RouterGroup, ownerOnly gin.HandlerFunc) {
	o := rg.Group("/organization", ownerOnly)
	o.GET("", h.Settings)
	o.POST("", h.Update)
	o.POST("/preferred-vendors", h.AddPreferredVendor)
	o.POST("/preferred-vendors/:vendorID/remove", h.RemovePreferredVendor)
}

// orgID resolves the owner's organization from the session.
func orgID(c *gin.Context) string {
	if u := middleware.CurrentSession(c).User; u != nil {
		return u.OrganizationID
	}
	return ""
}

func (h *OrganizationHandler) Settings(c *gin.Context) {
	id := orgID(c)
	if id == "" {
		redirectError(c, "/dashboard", &api.Error{Message: "your account has no organization yet"})
		return
	}
	org, err := h.clients.Organizations.Get(apiCtx(c), id)
	if err != nil {
		redirectError(c, "/dashboard", err)
		return
	}
	render(c, http.StatusOK, "organization.tmpl", gin.H{
		"Title":        "Organization settings",
		"Organization": org,
	})
}

func (h *OrganizationHandler) Update(c *gin.Context) {
	id := orgID(c)
	in := models.Organization{
		Name: c.PostForm("name"),
		City: c.PostForm("city"),
	}
	if in.Name == "" {
		redirectError(c, "/organization", &api.Error{Message: "organization name is required"})
		return
	}
	if _, err := h.clients.Organizations.Update(apiCtx(c), id, in); err != nil {
		redirectError(c, "/organization", err)
		return
	}
	redirectNotice(c, "/organization", "organization updated")
}

func (h *OrganizationHandler) AddPreferredVendor(c *gin.Context) {
	vendorID := c.PostForm("vendor_id")
	if vendorID == "" {
		redirectError(c, "/organization", &api.Error{Message: "choose a vendor to add"})
		return
	}
	if err := h.clients.Organizations.AddPreferredVendor(apiCtx(c), orgID(c), vendorID); err != nil {
		redirectError(c, "/organization", err)
		return
	}
	redirectNotice(c, "/organization", "vendor added to preferred list")
}

func (h *OrganizationHandler) RemovePreferredVendor(c *gin.Context) {
	vendorID := c.Param("vendorID")
	if err := h.clients.Organizations.RemovePreferredVendor(apiCtx(c), orgID(c), vendorID); err != nil {
		redirectError(c, "/organization", err)
		return
	}
	redirectNotice(c, "/organization", "vendor removed from preferred list")
}
