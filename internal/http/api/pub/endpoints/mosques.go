package endpoints

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/minaret-dev/minaret/internal/db"
	"github.com/minaret-dev/minaret/internal/http/api"
	"github.com/minaret-dev/minaret/internal/http/api/pub/packets"
	"github.com/minaret-dev/minaret/internal/model"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type DirectoryController struct {
	store db.Store
}

func NewDirectoryController(store db.Store) *DirectoryController {
	return &DirectoryController{store: store}
}

// DirectoryModule mounts public mosque discovery endpoints.
func DirectoryModule(store db.Store) api.Module {
	ctl := NewDirectoryController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/mosques", ctl.listMosques)
		c.PUBLIC_GET("/mosques/:id", ctl.getMosque)
	})
}

// GET /api/public/mosques?city=&q=&page=&page_size=
func (d *DirectoryController) listMosques(ctx *gin.Context) (any, *api.APIError) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(ctx.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if err != nil || pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	city := ctx.Query("city")
	search := ctx.Query("q")

	list, total, err := d.store.ListMosques(city, search, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list mosques"}
	}

	mosques := make([]packets.MosqueResponse, 0, len(list))
	for _, it := range list {
		mosques = append(mosques, publicMosqueResponse(it))
	}
	return packets.MosqueListResponse{
		Mosques:  mosques,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GET /api/public/mosques/:id
func (d *DirectoryController) getMosque(ctx *gin.Context) (any, *api.APIError) {
	mosque, apiErr := approvedMosque(d.store, ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	return publicMosqueResponse(mosque), nil
}

// approvedMosque resolves :id to a publicly visible mosque. Unapproved rows
// read as not found so pending registrations never leak.
func approvedMosque(store db.Store, ctx *gin.Context) (model.Mosque, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return model.Mosque{}, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	mosque, err := store.GetMosqueByID(id)
	if err != nil || !mosque.Approved {
		return model.Mosque{}, &api.APIError{Code: http.StatusNotFound, Message: "mosque not found"}
	}
	return mosque, nil
}

func publicMosqueResponse(m model.Mosque) packets.MosqueResponse {
	return packets.MosqueResponse{
		ID:      m.ID,
		Name:    m.Name,
		Address: m.Address,
		City:    m.City,
		Contact: m.Contact,
	}
}
