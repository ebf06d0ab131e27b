package service

import "soluciones-ferreteras/models"

// DriveServiceInterface defines the contract for Google Drive operations
type DriveServiceInterface interface {
	ListProductPhotos(folderID string) ([]models.ProductPhoto, error)
	DownloadPhoto(fileID string) ([]byte, error)
}
