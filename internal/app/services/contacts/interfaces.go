package contacts

import (
	"context"
	"phonebook-service/internal/app/models"
	"phonebook-service/internal/pkg/dto/requests"
)

type ContactUsecase interface {
	ListContacts(ctx context.Context, ownerID string) ([]models.Contact, error)
	GetContactByID(ctx context.Context, ownerID, contactID string) (*models.Contact, error)
	CreateContact(ctx context.Context, ownerID string, request *requests.UpsertContact) (*models.Contact, error)
	UpdateContact(ctx context.Context, ownerID, contactID string, request *requests.UpsertContact) (*models.Contact, error)
	UpdateFavorite(ctx context.Context, ownerID, contactID string, request *requests.UpdateFavorite) (*models.Contact, error)
	DeleteContact(ctx context.Context, ownerID, contactID string) error
}

type ContactRepository interface {
	CreateContact(ctx context.Context, contactModel *models.Contact) (contactID string, err error)
	FindByOwner(ctx context.Context, ownerID string) ([]models.Contact, error)
	FindByIDAndOwner(ctx context.Context, contactID, ownerID string) (*models.Contact, error)
	UpdateFields(ctx context.Context, contactID, ownerID string, updateData map[string]interface{}) (*models.Contact, error)
	DeleteByIDAndOwner(ctx context.Context, contactID, ownerID string) (deleted bool, err error)
}
