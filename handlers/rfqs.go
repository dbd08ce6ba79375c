package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/employee7007-droid/construct-deal/internal/api"
	"github.com/employee7007-droid/construct-deal/internal/models"
	"github.com/employee7007-droid/construct-deal/internal/storage"
	"github.com/employee7007-droid/construct-deal/pkg/logger"
	"github.com/employee7007-droid/construct-deal/pkg/middleware"
)

// RFQHandler serves the RFQ browsing, authoring and award pages.
type RFQHandler struct {
	clients     *api.Clients
	attachments *storage.AttachmentStore
}

func NewRFQHandler(clients *api.Clients, attachments *storage.AttachmentStore) *RFQHandler {
	return &RFQHandler{clients: clients, attachments: attachments}
}

// Register routes under /rfqs. The create routes carry the buyer-role guard;
// browsing is open to every authenticated user.
func (h *RFQHandler) Register(rg *gin.RouterGroup, buyerOnly gin.HandlerFunc) {
	r := rg.Group("/rfqs")
	r.GET("", h.List)
	r.GET("/create", buyerOnly, h.CreatePage)
	r.POST("/create", buyerOnly, h.Create)
	r.GET("/:id", h.Detail)
	r.POST("/:id/publish", buyerOnly, h.Publish)
	r.POST("/:id/close", buyerOnly, h.Close)
	r.POST("/:id/cancel", buyerOnly, h.Cancel)
	r.POST("/:id/addenda", buyerOnly, h.AddAddendum)
	r.POST("/:id/attachments", buyerOnly, h.UploadAttachment)
	r.POST("/:id/award", buyerOnly, h.Award)
}

func (h *RFQHandler) List(c *gin.Context) {
	params := api.RFQListParams{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Building: c.Query("building"),
		Search:   c.Query("search"),
		Page:     api.Page{Page: intQuery(c, "page"), Limit: intQuery(c, "limit")},
	}
	ctx := apiCtx(c)
	list, err := h.clients.RFQs.List(ctx, params)
	if err != nil {
		redirectError(c, "/dashboard", err)
		return
	}
	data := gin.H{
		"Title":      "RFQs",
		"RFQs":       list.RFQs,
		"Pagination": list.Pagination,
		"Filters":    params,
	}
	// category filter options; non-fatal when unavailable
	if cats, err := h.clients.Categories.Tree(ctx); err == nil {
		data["Categories"] = cats
	} else {
		logger.Debugf("rfq list categories: %v", err)
	}
	render(c, http.StatusOK, "rfq_list.tmpl", data)
}

func (h *RFQHandler) CreatePage(c *gin.Context) {
	ctx := apiCtx(c)
	data := gin.H{"Title": "Create RFQ"}
	if cats, err := h.clients.Categories.Tree(ctx); err == nil {
		data["Categories"] = cats
	}
	if buildings, err := h.clients.Buildings.List(ctx, api.Page{}); err == nil {
		data["Buildings"] = buildings
	}
	render(c, http.StatusOK, "rfq_create.tmpl", data)
}

// Create validates the form, creates the RFQ and, when the visitor chose
// "publish now", immediately publishes the fresh draft before redirecting.
func (h *RFQHandler) Create(c *gin.Context) {
	in, err := parseCreateRFQForm(c)
	if err != nil {
		redirectError(c, "/rfqs/create", err)
		return
	}
	ctx := apiCtx(c)
	rfq, err := h.clients.RFQs.Create(ctx, in)
	if err != nil {
		redirectError(c, "/rfqs/create", err)
		return
	}
	if c.PostForm("action") == "publish" {
		if err := h.clients.RFQs.Publish(ctx, rfq.ID); err != nil {
			// the draft exists; surface the publish failure on its page
			redirectError(c, "/rfqs/"+rfq.ID, err)
			return
		}
	}
	redirectNotice(c, "/rfqs", "RFQ created")
}

func parseCreateRFQForm(c *gin.Context) (models.CreateRFQ, error) {
	in := models.CreateRFQ{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		CategoryID:  c.PostForm("category_id"),
		BuildingID:  c.PostForm("building_id"),
		CloseDate:   c.PostForm("close_date"),
		Visibility:  c.PostForm("visibility"),
	}
	if in.Title == "" || in.CategoryID == "" || in.BuildingID == "" || in.CloseDate == "" {
		return in, &api.Error{Message: "title, category, building and close date are required"}
	}
	in.EstBudgetMin = floatForm(c, "budget_min")
	in.EstBudgetMax = floatForm(c, "budget_max")
	if in.EstBudgetMax > 0 && in.EstBudgetMin > in.EstBudgetMax {
		return in, &api.Error{Message: "minimum budget exceeds maximum"}
	}

	in.EvaluationWeights = models.EvaluationWeights{
		Price:          intForm(c, "weight_price"),
		Timeline:       intForm(c, "weight_timeline"),
		Experience:     intForm(c, "weight_experience"),
		Warranty:       intForm(c, "weight_warranty"),
		Sustainability: intForm(c, "weight_sustainability"),
	}
	if in.EvaluationWeights.Total() != 100 {
		return in, &api.Error{Message: "evaluation weights must add up to 100"}
	}

	descs := c.PostFormArray("boq_description")
	qtys := c.PostFormArray("boq_quantity")
	units := c.PostFormArray("boq_unit")
	specs := c.PostFormArray("boq_specifications")
	for i, d := range descs {
		if d == "" {
			continue
		}
		item := models.BOQItem{Description: d}
		if i < len(qtys) {
			item.Quantity, _ = strconv.ParseFloat(qtys[i], 64)
		}
		if i < len(units) {
			item.Unit = units[i]
		}
		if i < len(specs) {
			item.Specifications = specs[i]
		}
		in.BOQItems = append(in.BOQItems, item)
	}
	if len(in.BOQItems) == 0 {
		return in, &api.Error{Message: "at least one bill of quantities line is required"}
	}
	return in, nil
}

func (h *RFQHandler) Detail(c *gin.Context) {
	id := c.Param("id")
	ctx := apiCtx(c)
	rfq, err := h.clients.RFQs.Get(ctx, id)
	if err != nil {
		if api.IsNotFound(err) {
			render(c, http.StatusNotFound, "not_found.tmpl", gin.H{"Title": "Not found"})
			return
		}
		redirectError(c, "/rfqs", err)
		return
	}
	data := gin.H{"Title": rfq.Title, "RFQ": rfq}

	sess := middleware.CurrentSession(c)
	switch sess.Role() {
	case models.RoleFacilityManager, models.RoleOrgOwner, models.RoleSuperAdmin:
		if bids, err := h.clients.Bids.ForRFQ(ctx, id); err == nil {
			data["Bids"] = bids
		} else {
			logger.Debugf("rfq %s bids: %v", id, err)
		}
		if cmp, err := h.clients.Bids.Comparison(ctx, id); err == nil {
			data["Comparison"] = cmp
		} else {
			logger.Debugf("rfq %s comparison: %v", id, err)
		}
	case models.RoleVendor:
		data["CanBid"] = rfq.Status == models.RFQStatusPublished || rfq.Status == models.RFQStatusActive
	}
	render(c, http.StatusOK, "rfq_detail.tmpl", data)
}

func (h *RFQHandler) Publish(c *gin.Context) {
	id := c.Param("id")
	if err := h.clients.RFQs.Publish(apiCtx(c), id); err != nil {
		redirectError(c, "/rfqs/"+id, err)
		return
	}
	redirectNotice(c, "/rfqs/"+id, "RFQ published")
}

func (h *RFQHandler) Close(c *gin.Context) {
	id := c.Param("id")
	if err := h.clients.RFQs.Close(apiCtx(c), id); err != nil {
		redirectError(c, "/rfqs/"+id, err)
		return
	}
	redirectNotice(c, "/rfqs/"+id, "RFQ closed for bidding")
}

func (h *RFQHandler) Cancel(c *gin.Context) {
	id := c.Param("id")
	if err := h.clients.RFQs.Cancel(apiCtx(c), id, c.PostForm("reason")); err != nil {
		redirectError(c, "/rfqs/"+id, err)
		return
	}
	redirectNotice(c, "/rfqs", "RFQ cancelled")
}

func (h *RFQHandler) AddAddendum(c *gin.Context) {
	id := c.Param("id")
	title := c.PostForm("title")
	if title == "" {
		redirectError(c, "/rfqs/"+id, &api.Error{Message: "addendum title is required"})
		return
	}
	if err := h.clients.RFQs.AddAddendum(apiCtx(c), id, title, c.PostForm("description")); err != nil {
		redirectError(c, "/rfqs/"+id, err)
		return
	}
	redirectNotice(c, "/rfqs/"+id, "addendum published")
}

func (h *RFQHandler) UploadAttachment(c *gin.Context) {
	id := c.Param("id")
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		redirectError(c, "/rfqs/"+id, &api.Error{Message: "choose a file to upload"})
		return
	}
	defer file.Close()
	rd, err := readUpload(c, h.attachments, "rfqs", id, file, header.Filename)
	if err != nil {
		redirectError(c, "/rfqs/"+id, err)
		return
	}
	if err := h.clients.RFQs.UploadAttachment(apiCtx(c), id, header.Filename, rd); err != nil {
		redirectError(c, "/rfqs/"+id, err)
		return
	}
	redirectNotice(c, "/rfqs/"+id, "attachment uploaded")
}

// Award creates a contract from the selected bid.
func (h *RFQHandler) Award(c *gin.Context) {
	id := c.Param("id")
	bidID := c.PostForm("bid_id")
	if bidID == "" {
		redirectError(c, "/rfqs/"+id, &api.Error{Message: "select a bid to award"})
		return
	}
	contract, err := h.clients.Contracts.Award(apiCtx(c), id, bidID)
	if err != nil {
		redirectError(c, "/rfqs/"+id, err)
		return
	}
	redirectNotice(c, "/contracts/"+contract.ID, "contract awarded")
}

func intForm(c *gin.Context, key string) int {
	n, _ := strconv.Atoi(c.PostForm(key))
	return n
}

func floatForm(c *gin.Context, key string) float64 {
	f, _ := strconv.ParseFloat(c.PostForm(key), 64)
	return f
}
