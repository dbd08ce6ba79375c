package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/employee7007-droid/construct-deal/internal/api"
	"github.com/employee7007-droid/construct-deal/internal/models"
	"github.com/employee7007-droid/construct-deal/internal/session"
	"github.com/employee7007-droid/construct-deal/internal/storage"
	"github.com/employee7007-droid/construct-deal/pkg/middleware"
)

// RefreshLeeway is how close to expiry an access token may get before the
// guard renews it ahead of serving a page.
const RefreshLeeway = 2 * time.Minute

// RegisterRoutes mounts every page handler. Public pages (auth, browsing) sit
// outside the auth guard; everything else requires a signed-in session, with
// role guards layered on top where a page is buyer-, vendor- or admin-only.
func RegisterRoutes(r *gin.Engine, clients *api.Clients, store *session.Store, attachments *storage.AttachmentStore) {
	root := r.Group("/")

	requireAuth := middleware.RequireAuth(store, clients.Auth, RefreshLeeway)
	buyerOnly := middleware.RequireRoles(models.RoleFacilityManager, models.RoleOrgOwner)
	vendorOnly := middleware.RequireRoles(models.RoleVendor)
	ownerOnly := middleware.RequireRoles(models.RoleOrgOwner)
	adminOnly := middleware.RequireRoles(models.RoleSuperAdmin)

	NewAuthHandler(clients, store).Register(root)

	authed := root.Group("", requireAuth)
	NewDashboardHandler(clients).Register(authed)
	NewAccountHandler(clients, store).Register(authed)
	NewRFQHandler(clients, attachments).Register(authed, buyerOnly)
	NewBidHandler(clients, attachments).Register(authed, vendorOnly)
	NewVendorHandler(clients, attachments).Register(authed, vendorOnly)
	NewContractHandler(clients).Register(authed, vendorOnly, buyerOnly)
	NewInvoiceHandler(clients).Register(authed, vendorOnly, buyerOnly)
	NewBuildingHandler(clients).Register(authed, buyerOnly)
	NewOrganizationHandler(clients).Register(authed, ownerOnly)
	NewDisputeHandler(clients, attachments).Register(authed, adminOnly)
	NewAdminHandler(clients).Register(authed, adminOnly)

	r.NoRoute(func(c *gin.Context) {
		render(c, http.StatusNotFound, "not_found.tmpl", gin.H{"Title": "Not found"})
	})
}
