package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/employee7007-droid/construct-deal/internal/api"
	"github.com/employee7007-droid/construct-deal/internal/models"
)

// BuildingHandler serves the building register; buyer roles only, the whole
// group carries the guard.
type BuildingHandler struct {
	clients *api.Clients
}

func NewBuildingHandler(clients *api.Clients) *BuildingHandler {
	return &BuildingHandler{clients: clients}
}

func (h *BuildingHandler) Register(rg *gin.RouterGroup, buyerOnly gin.HandlerFunc) {
	b := rg.Group("/buildings", buyerOnly)
	b.GET("", h.List)
	b.POST("", h.Create)
	b.POST("/:id", h.Update)
	b.POST("/:id/delete", h.Delete)
}

func (h *BuildingHandler) List(c *gin.Context) {
	buildings, err := h.clients.Buildings.List(apiCtx(c), api.Page{Page: intQuery(c, "page"), Limit: intQuery(c, "limit")})
	if err != nil {
		redirectError(c, "/dashboard", err)
		return
	}
	render(c, http.StatusOK, "building_list.tmpl", gin.H{
		"Title":     "Buildings",
		"Buildings": buildings,
	})
}

func (h *BuildingHandler) Create(c *gin.Context) {
	in := models.Building{
		Name:    c.PostForm("name"),
		Address: c.PostForm("address"),
		City:    c.PostForm("city"),
		Units:   intForm(c, "units"),
	}
	if in.Name == "" || in.City == "" {
		redirectError(c, "/buildings", &api.Error{Message: "name and city are required"})
		return
	}
	if _, err := h.clients.Buildings.Create(apiCtx(c), in); err != nil {
		redirectError(c, "/buildings", err)
		return
	}
	redirectNotice(c, "/buildings", "building added")
}

func (h *BuildingHandler) Update(c *gin.Context) {
	id := c.Param("id")
	in := models.Building{
		Name:    c.PostForm("name"),
		Address: c.PostForm("address"),
		City:    c.PostForm("city"),
		Units:   intForm(c, "units"),
	}
	if _, err := h.clients.Buildings.Update(apiCtx(c), id, in); err != nil {
		redirectError(c, "/buildings", err)
		return
	}
	redirectNotice(c, "/buildings", "building updated")
}

func (h *BuildingHandler) Delete(c *gin.Context) {
	if err := h.clients.Buildings.Delete(apiCtx(c), c.Param("id")); err != nil {
		redirectError(c, "/buildings", err)
		return
	}
	redirectNotice(c, "/buildings", "building removed")
}
