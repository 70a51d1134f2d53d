package endpoints

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/minaret-dev/minaret/internal/db"
	"github.com/minaret-dev/minaret/internal/http/api"
	"github.com/minaret-dev/minaret/internal/http/api/admin/control/packets"
	"github.com/minaret-dev/minaret/internal/model"
)

type RegistrationController struct {
	store db.Store
}

func NewRegistrationController(store db.Store) *RegistrationController {
	return &RegistrationController{store: store}
}

func RegistrationModule(store db.Store) api.Module {
	ctl := NewRegistrationController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/registrations", ctl.listPending)
		c.POST("/registrations/:id/review", ctl.review)
	})
}

func (r *RegistrationController) listPending(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	list, err := r.store.ListPendingRegistrations()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list registrations"}
	}

	response := make([]packets.RegistrationResponse, 0, len(list))
	for _, it := range list {
		response = append(response, registrationResponse(it))
	}
	return response, nil
}

// POST /api/admin/registrations/:id/review
func (r *RegistrationController) review(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	var request packets.ReviewRegistrationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	var reviewed model.RegistrationRequest
	if request.Action == "approve" {
		reviewed, err = r.store.ApproveRegistration(id, user.ID, request.Note)
	} else {
		reviewed, err = r.store.RejectRegistration(id, user.ID, request.Note)
	}
	if err != nil {
		return nil, &api.APIError{Code: http.StatusConflict, Message: err.Error()}
	}

	log.Info().
		Int("registration_id", reviewed.ID).
		Str("action", request.Action).
		Int("reviewer", user.ID).
		Msg("registration reviewed")
	return registrationResponse(reviewed), nil
}

func registrationResponse(r model.RegistrationRequest) packets.RegistrationResponse {
	return packets.RegistrationResponse{
		ID:             r.ID,
		Reference:      r.Reference,
		MosqueName:     r.MosqueName,
		Address:        r.Address,
		City:           r.City,
		Contact:        r.Contact,
		SubmitterEmail: r.SubmitterEmail,
		Status:         r.Status,
		Note:           r.Note,
		MosqueID:       r.MosqueID,
		CreatedAt:      r.CreatedAt.Format(time.RFC3339),
	}
}
