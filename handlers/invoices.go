package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/employee7007-droid/construct-deal/internal/api"
	"github.com/employee7007-droid/construct-deal/internal/models"
)

// InvoiceHandler serves invoice pages and the approval/payment workflow.
type InvoiceHandler struct {
	clients *api.Clients
}

func NewInvoiceHandler(clients *api.Clients) *InvoiceHandler {
	return &InvoiceHandler{clients: clients}
}

func (h *InvoiceHandler) Register(rg *gin.RouterGroup, vendorOnly, buyerOnly gin.HandlerFunc) {
	inv := rg.Group("/invoices")
	inv.GET("", h.List)
	inv.POST("", vendorOnly, h.Create)
	inv.GET("/:id", h.Detail)
	inv.POST("/:id/approve", buyerOnly, h.Approve)
	inv.POST("/:id/reject", buyerOnly, h.Reject)
	inv.POST("/:id/mark-paid", buyerOnly, h.MarkPaid)
	inv.POST("/:id/process-payment", buyerOnly, h.ProcessPayment)
}

func (h *InvoiceHandler) List(c *gin.Context) {
	params := api.StatusListParams{
		Status: c.Query("status"),
		Search: c.Query("search"),
		Page:   api.Page{Page: intQuery(c, "page"), Limit: intQuery(c, "limit")},
	}
	list, err := h.clients.Invoices.List(apiCtx(c), params)
	if err != nil {
		redirectError(c, "/dashboard", err)
		return
	}
	var total float64
	for _, inv := range list.Invoices {
		total += inv.Amount + inv.TaxAmount
	}
	render(c, http.StatusOK, "invoice_list.tmpl", gin.H{
		"Title":      "Invoices",
		"Invoices":   list.Invoices,
		"Pagination": list.Pagination,
		"Filters":    params,
		"PageTotal":  total,
	})
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	in := models.CreateInvoice{
		ContractID:  c.PostForm("contract_id"),
		MilestoneID: c.PostForm("milestone_id"),
		Amount:      floatForm(c, "amount"),
		TaxAmount:   floatForm(c, "tax_amount"),
		DueDate:     c.PostForm("due_date"),
	}
	back := "/contracts/" + in.ContractID
	if in.ContractID == "" {
		back = "/invoices"
	}
	if in.ContractID == "" || in.Amount <= 0 || in.DueDate == "" {
		redirectError(c, back, &api.Error{Message: "contract, amount and due date are required"})
		return
	}
	invoice, err := h.clients.Invoices.Create(apiCtx(c), in)
	if err != nil {
		redirectError(c, back, err)
		return
	}
	redirectNotice(c, "/invoices/"+invoice.ID, "invoice submitted")
}

func (h *InvoiceHandler) Detail(c *gin.Context) {
	id := c.Param("id")
	invoice, err := h.clients.Invoices.Get(apiCtx(c), id)
	if err != nil {
		if api.IsNotFound(err) {
			render(c, http.StatusNotFound, "not_found.tmpl", gin.H{"Title": "Not found"})
			return
		}
		redirectError(c, "/invoices", err)
		return
	}
	render(c, http.StatusOK, "invoice_detail.tmpl", gin.H{
		"Title":   "Invoice " + invoice.Number,
		"Invoice": invoice,
	})
}

func (h *InvoiceHandler) Approve(c *gin.Context) {
	id := c.Param("id")
	if err := h.clients.Invoices.Approve(apiCtx(c), id); err != nil {
		redirectError(c, "/invoices/"+id, err)
		return
	}
	redirectNotice(c, "/invoices/"+id, "invoice approved")
}

func (h *InvoiceHandler) Reject(c *gin.Context) {
	id := c.Param("id")
	if err := h.clients.Invoices.Reject(apiCtx(c), id, c.PostForm("reason")); err != nil {
		redirectError(c, "/invoices/"+id, err)
		return
	}
	redirectNotice(c, "/invoices/"+id, "invoice rejected")
}

func (h *InvoiceHandler) MarkPaid(c *gin.Context) {
	id := c.Param("id")
	if err := h.clients.Invoices.MarkPaid(apiCtx(c), id, c.PostForm("reference")); err != nil {
		redirectError(c, "/invoices/"+id, err)
		return
	}
	redirectNotice(c, "/invoices/"+id, "payment recorded")
}

func (h *InvoiceHandler) ProcessPayment(c *gin.Context) {
	id := c.Param("id")
	if err := h.clients.Invoices.ProcessPayment(apiCtx(c), id); err != nil {
		redirectError(c, "/invoices/"+id, err)
		return
	}
	redirectNotice(c, "/invoices/"+id, "payment initiated")
}
