package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/employee7007-droid/construct-deal/internal/api"
	"github.com/employee7007-droid/construct-deal/pkg/logger"
)

// ContractHandler serves contract pages and milestone workflow actions.
type ContractHandler struct {
	clients *api.Clients
}

func NewContractHandler(clients *api.Clients) *ContractHandler {
	return &ContractHandler{clients: clients}
}

func (h *ContractHandler) Register(rg *gin.RouterGroup, vendorOnly, buyerOnly gin.HandlerFunc) {
	ct := rg.Group("/contracts")
	ct.GET("", h.List)
	ct.GET("/:id", h.Detail)
	ct.POST("/:id/accept", vendorOnly, h.Accept)
	ct.POST("/:id/decline", vendorOnly, h.Decline)
	ct.POST("/:id/milestones/:mid/progress", vendorOnly, h.ReportProgress)
	ct.POST("/:id/milestones/:mid/approve", buyerOnly, h.ApproveMilestone)
	ct.POST("/:id/milestones/:mid/reject", buyerOnly, h.RejectMilestone)
}

func (h *ContractHandler) List(c *gin.Context) {
	params := api.StatusListParams{
		Status: c.Query("status"),
		Search: c.Query("search"),
		Page:   api.Page{Page: intQuery(c, "page"), Limit: intQuery(c, "limit")},
	}
	list, err := h.clients.Contracts.List(apiCtx(c), params)
	if err != nil {
		redirectError(c, "/dashboard", err)
		return
	}
	render(c, http.StatusOK, "contract_list.tmpl", gin.H{
		"Title":      "Contracts",
		"Contracts":  list.Contracts,
		"Pagination": list.Pagination,
		"Filters":    params,
	})
}

func (h *ContractHandler) Detail(c *gin.Context) {
	id := c.Param("id")
	ctx := apiCtx(c)
	contract, err := h.clients.Contracts.Get(ctx, id)
	if err != nil {
		if api.IsNotFound(err) {
			render(c, http.StatusNotFound, "not_found.tmpl", gin.H{"Title": "Not found"})
			return
		}
		redirectError(c, "/contracts", err)
		return
	}
	data := gin.H{"Title": contract.RFQTitle, "Contract": contract}
	if invoices, err := h.clients.Invoices.ForContract(ctx, id); err == nil {
		data["Invoices"] = invoices
	} else {
		logger.Debugf("contract %s invoices: %v", id, err)
	}
	render(c, http.StatusOK, "contract_detail.tmpl", data)
}

func (h *ContractHandler) Accept(c *gin.Context) {
	id := c.Param("id")
	if err := h.clients.Contracts.Accept(apiCtx(c), id); err != nil {
		redirectError(c, "/contracts/"+id, err)
		return
	}
	redirectNotice(c, "/contracts/"+id, "contract accepted")
}

func (h *ContractHandler) Decline(c *gin.Context) {
	id := c.Param("id")
	if err := h.clients.Contracts.Decline(apiCtx(c), id, c.PostForm("reason")); err != nil {
		redirectError(c, "/contracts/"+id, err)
		return
	}
	redirectNotice(c, "/contracts", "contract declined")
}

func (h *ContractHandler) ReportProgress(c *gin.Context) {
	id, mid := c.Param("id"), c.Param("mid")
	pct := intForm(c, "percentage")
	if pct < 0 || pct > 100 {
		redirectError(c, "/contracts/"+id, &api.Error{Message: "progress must be between 0 and 100"})
		return
	}
	if err := h.clients.Contracts.ReportProgress(apiCtx(c), id, mid, pct); err != nil {
		redirectError(c, "/contracts/"+id, err)
		return
	}
	redirectNotice(c, "/contracts/"+id, "progress recorded")
}

func (h *ContractHandler) ApproveMilestone(c *gin.Context) {
	id, mid := c.Param("id"), c.Param("mid")
	if err := h.clients.Contracts.ApproveMilestone(apiCtx(c), id, mid); err != nil {
		redirectError(c, "/contracts/"+id, err)
		return
	}
	redirectNotice(c, "/contracts/"+id, "milestone approved")
}

func (h *ContractHandler) RejectMilestone(c *gin.Context) {
	id, mid := c.Param("id"), c.Param("mid")
	if err := h.clients.Contracts.RejectMilestone(apiCtx(c), id, mid, c.PostForm("reason")); err != nil {
		redirectError(c, "/contracts/"+id, err)
		return
	}
	redirectNotice(c, "/contracts/"+id, "milestone sent back")
}
