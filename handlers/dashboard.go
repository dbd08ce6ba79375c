package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/employee7007-droid/construct-deal/internal/api"
	"github.com/employee7007-droid/construct-deal/internal/models"
	"github.com/employee7007-droid/construct-deal/pkg/logger"
	"github.com/employee7007-droid/construct-deal/pkg/middleware"
)

// DashboardHandler renders the landing page after login: open work counts
// per resource, scoped to what the visitor's role can see.
type DashboardHandler struct {
	clients *api.Clients
}

func NewDashboardHandler(clients *api.Clients) *DashboardHandler {
	return &DashboardHandler{clients: clients}
}

func (h *DashboardHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.Page)
	rg.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/dashboard") })
}

func (h *DashboardHandler) Page(c *gin.Context) {
	ctx := apiCtx(c)
	sess := middleware.CurrentSession(c)

	data := gin.H{
		"Title":               "Dashboard",
		"OpenRFQs":            0,
		"ActiveContracts":     0,
		"PendingInvoices":     0,
		"PendingInvoiceTotal": 0.0,
		"OpenDisputes":        0,
	}

	// each block is best effort; a failing upstream list hides its card
	if rfqs, err := h.clients.RFQs.List(ctx, api.RFQListParams{Status: models.RFQStatusPublished}); err == nil {
		data["OpenRFQs"] = rfqs.Pagination.Total
		data["RecentRFQs"] = head(rfqs.RFQs, 5)
	} else {
		logger.Debugf("dashboard rfqs: %v", err)
	}
	if contracts, err := h.clients.Contracts.List(ctx, api.StatusListParams{Status: models.ContractStatusActive}); err == nil {
		data["ActiveContracts"] = contracts.Pagination.Total
	} else {
		logger.Debugf("dashboard contracts: %v", err)
	}
	if invoices, err := h.clients.Invoices.List(ctx, api.StatusListParams{Status: models.InvoiceStatusSubmitted}); err == nil {
		data["PendingInvoices"] = invoices.Pagination.Total
		var total float64
		for _, inv := range invoices.Invoices {
			total += inv.Amount + inv.TaxAmount
		}
		data["PendingInvoiceTotal"] = total
	} else {
		logger.Debugf("dashboard invoices: %v", err)
	}
	if disputes, err := h.clients.Disputes.List(ctx, api.StatusListParams{Status: models.DisputeStatusOpen}); err == nil {
		data["OpenDisputes"] = disputes.Pagination.Total
	} else {
		logger.Debugf("dashboard disputes: %v", err)
	}

	if sess.Role() == models.RoleSuperAdmin {
		if stats, err := h.clients.Admin.Dashboard(ctx); err == nil {
			data["AdminStats"] = stats
		} else {
			logger.Debugf("dashboard admin stats: %v", err)
		}
	}

	render(c, http.StatusOK, "dashboard.tmpl", data)
}

func head(rfqs []models.RFQ, n int) []models.RFQ {
	if len(rfqs) <= n {
		return rfqs
	}
	return rfqs[:n]
}
