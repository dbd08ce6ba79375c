package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/employee7007-droid/construct-deal/internal/api"
	"github.com/employee7007-droid/construct-deal/internal/models"
	"github.com/employee7007-droid/construct-deal/internal/storage"
)

// BidHandler owns bid submission and withdrawal, both vendor-side actions.
type BidHandler struct {
	clients     *api.Clients
	attachments *storage.AttachmentStore
}

func NewBidHandler(clients *api.Clients, attachments *storage.AttachmentStore) *BidHandler {
	return &BidHandler{clients: clients, attachments: attachments}
}

// Register routes. Submission hangs off the RFQ page; editing and withdrawal
// off the bid.
func (h *BidHandler) Register(rg *gin.RouterGroup, vendorOnly gin.HandlerFunc) {
	rg.POST("/rfqs/:id/bids", vendorOnly, h.Submit)
	rg.GET("/bids/:id/edit", vendorOnly, h.EditPage)
	rg.POST("/bids/:id", vendorOnly, h.Update)
	rg.POST("/bids/:id/withdraw", vendorOnly, h.Withdraw)
	rg.POST("/bids/:id/attachments", vendorOnly, h.UploadAttachment)
}

func (h *BidHandler) Submit(c *gin.Context) {
	rfqID := c.Param("id")
	in := models.SubmitBid{
		TotalAmount:  floatForm(c, "total_amount"),
		TimelineDays: intForm(c, "timeline_days"),
		ValidityDays: intForm(c, "validity_days"),
		Notes:        c.PostForm("notes"),
	}
	if in.TotalAmount <= 0 || in.TimelineDays <= 0 {
		redirectError(c, "/rfqs/"+rfqID, &api.Error{Message: "bid amount and timeline are required"})
		return
	}
	if _, err := h.clients.Bids.Submit(apiCtx(c), rfqID, in); err != nil {
		redirectError(c, "/rfqs/"+rfqID, err)
		return
	}
	redirectNotice(c, "/rfqs/"+rfqID, "bid submitted")
}

// EditPage lets a vendor revise a bid while the RFQ is still open.
func (h *BidHandler) EditPage(c *gin.Context) {
	bid, err := h.clients.Bids.Get(apiCtx(c), c.Param("id"))
	if err != nil {
		redirectError(c, "/rfqs", err)
		return
	}
	render(c, http.StatusOK, "bid_edit.tmpl", gin.H{
		"Title": "Edit bid",
		"Bid":   bid,
	})
}

func (h *BidHandler) Update(c *gin.Context) {
	id := c.Param("id")
	in := models.SubmitBid{
		TotalAmount:  floatForm(c, "total_amount"),
		TimelineDays: intForm(c, "timeline_days"),
		ValidityDays: intForm(c, "validity_days"),
		Notes:        c.PostForm("notes"),
	}
	if in.TotalAmount <= 0 || in.TimelineDays <= 0 {
		redirectError(c, "/bids/"+id+"/edit", &api.Error{Message: "bid amount and timeline are required"})
		return
	}
	bid, err := h.clients.Bids.Update(apiCtx(c), id, in)
	if err != nil {
		redirectError(c, "/bids/"+id+"/edit", err)
		return
	}
	redirectNotice(c, "/rfqs/"+bid.RFQID, "bid updated")
}

func (h *BidHandler) Withdraw(c *gin.Context) {
	id := c.Param("id")
	ctx := apiCtx(c)
	bid, err := h.clients.Bids.Get(ctx, id)
	if err != nil {
		redirectError(c, "/rfqs", err)
		return
	}
	if err := h.clients.Bids.Withdraw(ctx, id); err != nil {
		redirectError(c, "/rfqs/"+bid.RFQID, err)
		return
	}
	redirectNotice(c, "/rfqs/"+bid.RFQID, "bid withdrawn")
}

func (h *BidHandler) UploadAttachment(c *gin.Context) {
	id := c.Param("id")
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		redirectError(c, "/rfqs", &api.Error{Message: "choose a file to upload"})
		return
	}
	defer file.Close()
	ctx := apiCtx(c)
	bid, err := h.clients.Bids.Get(ctx, id)
	if err != nil {
		redirectError(c, "/rfqs", err)
		return
	}
	rd, err := readUpload(c, h.attachments, "bids", id, file, header.Filename)
	if err != nil {
		redirectError(c, "/rfqs/"+bid.RFQID, err)
		return
	}
	if err := h.clients.Bids.UploadAttachment(ctx, id, header.Filename, rd); err != nil {
		redirectError(c, "/rfqs/"+bid.RFQID, err)
		return
	}
	redirectNotice(c, "/rfqs/"+bid.RFQID, "attachment uploaded")
}
