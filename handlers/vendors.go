package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/employee7007-droid/construct-deal/internal/api"
	"github.com/employee7007-droid/construct-deal/internal/models"
	"github.com/employee7007-droid/construct-deal/internal/storage"
	"github.com/employee7007-droid/construct-deal/pkg/logger"
)

// VendorHandler serves the vendor directory and profile pages.
type VendorHandler struct {
	clients     *api.Clients
	attachments *storage.AttachmentStore
}

func NewVendorHandler(clients *api.Clients, attachments *storage.AttachmentStore) *VendorHandler {
	return &VendorHandler{clients: clients, attachments: attachments}
}

func (h *VendorHandler) Register(rg *gin.RouterGroup, vendorOnly gin.HandlerFunc) {
	v := rg.Group("/vendors")
	v.GET("", h.List)
	v.GET("/:id", h.Profile)
	v.POST("/:id/kyc-documents", vendorOnly, h.UploadKYCDocument)
	v.POST("/:id/ratings", h.Rate)
}

func (h *VendorHandler) List(c *gin.Context) {
	params := api.VendorListParams{
		Category:  c.Query("category"),
		City:      c.Query("city"),
		MinRating: floatQuery(c, "minRating"),
		Page:      api.Page{Page: intQuery(c, "page"), Limit: intQuery(c, "limit")},
	}
	if c.Query("featured") == "true" {
		params.Featured = true
	}
	list, err := h.clients.Vendors.List(apiCtx(c), params)
	if err != nil {
		redirectError(c, "/dashboard", err)
		return
	}
	render(c, http.StatusOK, "vendor_list.tmpl", gin.H{
		"Title":      "Vendors",
		"Vendors":    list.Vendors,
		"Pagination": list.Pagination,
		"Filters":    params,
		"Cities":     distinctCities(list),
	})
}

// distinctCities derives the city filter options from the current page.
func distinctCities(list *api.VendorList) []string {
	seen := map[string]struct{}{}
	var cities []string
	for _, v := range list.Vendors {
		if v.City == "" {
			continue
		}
		if _, ok := seen[v.City]; ok {
			continue
		}
		seen[v.City] = struct{}{}
		cities = append(cities, v.City)
	}
	sort.Strings(cities)
	return cities
}

func (h *VendorHandler) Profile(c *gin.Context) {
	id := c.Param("id")
	ctx := apiCtx(c)
	vendor, err := h.clients.Vendors.Get(ctx, id)
	if err != nil {
		if api.IsNotFound(err) {
			render(c, http.StatusNotFound, "not_found.tmpl", gin.H{"Title": "Not found"})
			return
		}
		redirectError(c, "/vendors", err)
		return
	}
	data := gin.H{"Title": vendor.Name, "Vendor": vendor}
	if ratings, err := h.clients.Ratings.ForVendor(ctx, id, api.Page{Limit: 10}); err == nil {
		data["Ratings"] = ratings
	} else {
		logger.Debugf("vendor %s ratings: %v", id, err)
	}
	render(c, http.StatusOK, "vendor_profile.tmpl", data)
}

// Rate posts counterparty feedback from a vendor profile; the contract the
// rating refers to comes from the form.
func (h *VendorHandler) Rate(c *gin.Context) {
	id := c.Param("id")
	in := models.CreateRating{
		ContractID: c.PostForm("contract_id"),
		RateeID:    id,
		Stars:      intForm(c, "stars"),
		Comment:    c.PostForm("comment"),
	}
	if in.ContractID == "" || in.Stars < 1 || in.Stars > 5 {
		redirectError(c, "/vendors/"+id, &api.Error{Message: "a contract and a 1-5 star rating are required"})
		return
	}
	if _, err := h.clients.Ratings.Create(apiCtx(c), in); err != nil {
		redirectError(c, "/vendors/"+id, err)
		return
	}
	redirectNotice(c, "/vendors/"+id, "rating submitted")
}

func (h *VendorHandler) UploadKYCDocument(c *gin.Context) {
	id := c.Param("id")
	file, header, err := c.Request.FormFile("document")
	if err != nil {
		redirectError(c, "/vendors/"+id, &api.Error{Message: "choose a document to upload"})
		return
	}
	defer file.Close()
	rd, err := readUpload(c, h.attachments, "vendors", id, file, header.Filename)
	if err != nil {
		redirectError(c, "/vendors/"+id, err)
		return
	}
	if err := h.clients.Vendors.UploadKYCDocument(apiCtx(c), id, header.Filename, rd); err != nil {
		redirectError(c, "/vendors/"+id, err)
		return
	}
	redirectNotice(c, "/vendors/"+id, "document submitted for review")
}
