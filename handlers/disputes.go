package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/employee7007-droid/construct-deal/internal/api"
	"github.com/employee7007-droid/construct-deal/internal/models"
	"github.com/employee7007-droid/construct-deal/internal/storage"
)

// DisputeHandler serves dispute pages. Anyone on a contract can raise one;
// resolving is an admin action.
type DisputeHandler struct {
	clients     *api.Clients
	attachments *storage.AttachmentStore
}

func NewDisputeHandler(clients *api.Clients, attachments *storage.AttachmentStore) *DisputeHandler {
	return &DisputeHandler{clients: clients, attachments: attachments}
}

func (h *DisputeHandler) Register(rg *gin.RouterGroup, adminOnly gin.HandlerFunc) {
	d := rg.Group("/disputes")
	d.GET("", h.List)
	d.POST("", h.Create)
	d.GET("/:id", h.Detail)
	d.POST("/:id/evidence", h.UploadEvidence)
	d.POST("/:id/resolve", adminOnly, h.Resolve)
}

func (h *DisputeHandler) List(c *gin.Context) {
	params := api.StatusListParams{
		Status: c.Query("status"),
		Search: c.Query("search"),
		Page:   api.Page{Page: intQuery(c, "page"), Limit: intQuery(c, "limit")},
	}
	list, err := h.clients.Disputes.List(apiCtx(c), params)
	if err != nil {
		redirectError(c, "/dashboard", err)
		return
	}
	render(c, http.StatusOK, "dispute_list.tmpl", gin.H{
		"Title":      "Disputes",
		"Disputes":   list.Disputes,
		"Pagination": list.Pagination,
		"Filters":    params,
	})
}

func (h *DisputeHandler) Create(c *gin.Context) {
	in := models.CreateDispute{
		ContractID:  c.PostForm("contract_id"),
		Subject:     c.PostForm("subject"),
		Description: c.PostForm("description"),
	}
	back := "/contracts/" + in.ContractID
	if in.ContractID == "" {
		back = "/disputes"
	}
	if in.ContractID == "" || in.Subject == "" {
		redirectError(c, back, &api.Error{Message: "contract and subject are required"})
		return
	}
	dispute, err := h.clients.Disputes.Create(apiCtx(c), in)
	if err != nil {
		redirectError(c, back, err)
		return
	}
	redirectNotice(c, "/disputes/"+dispute.ID, "dispute raised")
}

func (h *DisputeHandler) Detail(c *gin.Context) {
	id := c.Param("id")
	dispute, err := h.clients.Disputes.Get(apiCtx(c), id)
	if err != nil {
		if api.IsNotFound(err) {
			render(c, http.StatusNotFound, "not_found.tmpl", gin.H{"Title": "Not found"})
			return
		}
		redirectError(c, "/disputes", err)
		return
	}
	render(c, http.StatusOK, "dispute_detail.tmpl", gin.H{
		"Title":   dispute.Subject,
		"Dispute": dispute,
	})
}

func (h *DisputeHandler) UploadEvidence(c *gin.Context) {
	id := c.Param("id")
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		redirectError(c, "/disputes/"+id, &api.Error{Message: "choose a file to upload"})
		return
	}
	defer file.Close()
	rd, err := readUpload(c, h.attachments, "disputes", id, file, header.Filename)
	if err != nil {
		redirectError(c, "/disputes/"+id, err)
		return
	}
	if err := h.clients.Disputes.UploadEvidence(apiCtx(c), id, header.Filename, rd); err != nil {
		redirectError(c, "/disputes/"+id, err)
		return
	}
	redirectNotice(c, "/disputes/"+id, "evidence uploaded")
}

func (h *DisputeHandler) Resolve(c *gin.Context) {
	id := c.Param("id")
	resolution := c.PostForm("resolution")
	if resolution == "" {
		redirectError(c, "/disputes/"+id, &api.Error{Message: "a resolution note is required"})
		return
	}
	if err := h.clients.Disputes.Resolve(apiCtx(c), id, resolution); err != nil {
		redirectError(c, "/disputes/"+id, err)
		return
	}
	redirectNotice(c, "/disputes/"+id, "dispute resolved")
}
