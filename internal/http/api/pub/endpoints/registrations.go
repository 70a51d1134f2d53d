package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/minaret-dev/minaret/internal/db"
	"github.com/minaret-dev/minaret/internal/http/api"
	"github.com/minaret-dev/minaret/internal/http/api/pub/packets"
)

type RegistrationController struct {
	store db.Store
}

func NewRegistrationController(store db.Store) *RegistrationController {
	return &RegistrationController{store: store}
}

// RegistrationModule mounts the public side of the registration workflow:
// submitting a mosque and polling its status by reference code.
func RegistrationModule(store db.Store) api.Module {
	ctl := NewRegistrationController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_POST("/registrations", ctl.submit)
		c.PUBLIC_GET("/registrations/:reference", ctl.status)
	})
}

// POST /api/public/registrations
func (r *RegistrationController) submit(ctx *gin.Context) (any, *api.APIError) {
	var request packets.SubmitRegistrationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	reference := uuid.NewString()
	created, err := r.store.CreateRegistration(
		reference,
		request.MosqueName,
		request.Address,
		request.City,
		request.Contact,
		request.SubmitterEmail,
	)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not submit registration"}
	}

	log.Info().Str("reference", created.Reference).Str("city", created.City).Msg("mosque registration submitted")
	return packets.RegistrationStatusResponse{
		Reference: created.Reference,
		Status:    created.Status,
		Note:      created.Note,
		MosqueID:  created.MosqueID,
	}, nil
}

// GET /api/public/registrations/:reference
func (r *RegistrationController) status(ctx *gin.Context) (any, *api.APIError) {
	found, err := r.store.GetRegistrationByReference(ctx.Param("reference"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "registration not found"}
	}
	return packets.RegistrationStatusResponse{
		Reference: found.Reference,
		Status:    found.Status,
		Note:      found.Note,
		MosqueID:  found.MosqueID,
	}, nil
}
