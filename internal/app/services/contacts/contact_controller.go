package contacts

import (
	"context"
	"net/http"
	"phonebook-service/internal/app/models"
	"phonebook-service/internal/pkg/constvars"
	"phonebook-service/internal/pkg/dto/requests"
	"phonebook-service/internal/pkg/exceptions"
	"phonebook-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ContactController struct {
	Log            *zap.Logger
	ContactUsecase ContactUsecase
}

func NewContactController(logger *zap.Logger, contactUsecase ContactUsecase) *ContactController {
	return &ContactController{
		Log:            logger,
		ContactUsecase: contactUsecase,
	}
}

func (ctrl *ContactController) ListContacts(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(constvars.ContextUserKey).(*models.User)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	contacts, err := ctrl.ContactUsecase.ListContacts(ctx, user.ID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetContactsSuccess, contacts)
}

func (ctrl *ContactController) GetContactByID(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(constvars.ContextUserKey).(*models.User)
	contactID := chi.URLParam(r, "contactID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	contact, err := ctrl.ContactUsecase.GetContactByID(ctx, user.ID, contactID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetContactSuccess, contact)
}

func (ctrl *ContactController) CreateContact(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(constvars.ContextUserKey).(*models.User)

	request := new(requests.UpsertContact)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	contact, err := ctrl.ContactUsecase.CreateContact(ctx, user.ID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ContactCreatedSuccess, contact)
}

func (ctrl *ContactController) UpdateContact(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(constvars.ContextUserKey).(*models.User)
	contactID := chi.URLParam(r, "contactID")

	request := new(requests.UpsertContact)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	contact, err := ctrl.ContactUsecase.UpdateContact(ctx, user.ID, contactID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ContactUpdatedSuccess, contact)
}

func (ctrl *ContactController) UpdateFavorite(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(constvars.ContextUserKey).(*models.User)
	contactID := chi.URLParam(r, "contactID")

	request := new(requests.UpdateFavorite)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	contact, err := ctrl.ContactUsecase.UpdateFavorite(ctx, user.ID, contactID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ContactUpdatedSuccess, contact)
}

func (ctrl *ContactController) DeleteContact(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(constvars.ContextUserKey).(*models.User)
	contactID := chi.URLParam(r, "contactID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.ContactUsecase.DeleteContact(ctx, user.ID, contactID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ContactDeletedMessage, nil)
}
