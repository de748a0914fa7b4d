package contacts

import (
	"context"
	"phonebook-service/internal/app/models"
	"phonebook-service/internal/pkg/dto/requests"
	"phonebook-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type contactUsecase struct {
	ContactRepository ContactRepository
	Log               *zap.Logger
}

func NewContactUsecase(contactRepository ContactRepository, logger *zap.Logger) ContactUsecase {
	return &contactUsecase{
		ContactRepository: contactRepository,
		Log:               logger,
	}
}

// validateContactID rejects malformed ids before they reach the store. A
// malformed id can never match a document, so it reads as not found.
func validateContactID(contactID string) error {
	if _, err := primitive.ObjectIDFromHex(contactID); err != nil {
		return exceptions.ErrContactIDNotValid(err, contactID)
	}
	return nil
}

func (uc *contactUsecase) ListContacts(ctx context.Context, ownerID string) ([]models.Contact, error) {
	return uc.ContactRepository.FindByOwner(ctx, ownerID)
}

func (uc *contactUsecase) GetContactByID(ctx context.Context, ownerID, contactID string) (*models.Contact, error) {
	if err := validateContactID(contactID); err != nil {
		return nil, err
	}

	contact, err := uc.ContactRepository.FindByIDAndOwner(ctx, contactID, ownerID)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, exceptions.ErrContactNotExist(nil)
	}
	return contact, nil
}

func (uc *contactUsecase) CreateContact(ctx context.Context, ownerID string, request *requests.UpsertContact) (*models.Contact, error) {
	contact := &models.Contact{
		Name:  request.Name,
		Email: request.Email,
		Phone: request.Phone,
		Owner: ownerID,
	}
	if request.Favorite != nil {
		contact.Favorite = *request.Favorite
	}

	contactID, err := uc.ContactRepository.CreateContact(ctx, contact)
	if err != nil {
		return nil, err
	}
	contact.ID = contactID

	uc.Log.Info("contact created",
		zap.String("contact_id", contactID),
		zap.String("owner_id", ownerID),
	)
	return contact, nil
}

func (uc *contactUsecase) UpdateContact(ctx context.Context, ownerID, contactID string, request *requests.UpsertContact) (*models.Contact, error) {
	if err := validateContactID(contactID); err != nil {
		return nil, err
	}

	updateData := map[string]interface{}{
		"name":  request.Name,
		"email": request.Email,
		"phone": request.Phone,
	}
	if request.Favorite != nil {
		updateData["favorite"] = *request.Favorite
	}

	contact, err := uc.ContactRepository.UpdateFields(ctx, contactID, ownerID, updateData)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, exceptions.ErrContactNotExist(nil)
	}
	return contact, nil
}

func (uc *contactUsecase) UpdateFavorite(ctx context.Context, ownerID, contactID string, request *requests.UpdateFavorite) (*models.Contact, error) {
	if request.Favorite == nil {
		return nil, exceptions.ErrMissingFavoriteField(nil)
	}
	if err := validateContactID(contactID); err != nil {
		return nil, err
	}

	contact, err := uc.ContactRepository.UpdateFields(ctx, contactID, ownerID, map[string]interface{}{
		"favorite": *request.Favorite,
	})
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, exceptions.ErrContactNotExist(nil)
	}
	return contact, nil
}

func (uc *contactUsecase) DeleteContact(ctx context.Context, ownerID, contactID string) error {
	if err := validateContactID(contactID); err != nil {
		return err
	}

	deleted, err := uc.ContactRepository.DeleteByIDAndOwner(ctx, contactID, ownerID)
	if err != nil {
		return err
	}
	if !deleted {
		return exceptions.ErrContactNotExist(nil)
	}

	uc.Log.Info("contact deleted",
		zap.String("contact_id", contactID),
		zap.String("owner_id", ownerID),
	)
	return nil
}
