package service

import "soluciones-ferreteras/models"

// PhotoSyncServiceInterface defines the contract for product photo synchronization
type PhotoSyncServiceInterface interface {
	// SyncPhotos downloads new product photos from the Drive folder into the
	// local images directory, optimizing them on the way in.
	SyncPhotos(folderID string) (*models.PhotoSyncResponse, error)
}
