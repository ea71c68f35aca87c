package catalogRepo

import "broheal/models"

// CatalogRepository defines persistence for the service and addon catalogue.
type CatalogRepository interface {
	ListActiveServices() ([]models.Service, error)
	GetServiceByID(id string) (*models.Service, error)
	UpsertService(svc *models.Service) error
	ListAddonsByService(serviceID string) ([]models.Addon, error)
	GetAddonByID(id string) (*models.Addon, error)
	UpsertAddon(addon *models.Addon) error
}
