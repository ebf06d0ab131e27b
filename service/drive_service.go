package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"soluciones-ferreteras/models"
	"soluciones-ferreteras/utils"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// DriveService handles Google Drive API operations for the product photo folder
type DriveService struct {
	client *drive.Service
}

// NewDriveService creates a new DriveService instance.
// credentialsPath should be the path to the Service Account JSON file.
func NewDriveService(credentialsPath string) (*DriveService, error) {
	ctx := context.Background()

	driveService, err := drive.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &DriveService{client: driveService}, nil
}

// Ensure DriveService implements DriveServiceInterface
var _ DriveServiceInterface = (*DriveService)(nil)

// ListProductPhotos lists all image files in a Google Drive folder whose
// names follow the CODE-N.ext product photo convention. Files that don't
// match are skipped with a warning.
func (ds *DriveService) ListProductPhotos(folderID string) ([]models.ProductPhoto, error) {
	query := fmt.Sprintf("'%s' in parents and trashed=false", folderID)

	var allFiles []*drive.File
	pageToken := ""
	for {
		call := ds.client.Files.List().
			Q(query).
			Fields("nextPageToken, files(id, name, mimeType)")

		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		r, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list files: %w", err)
		}

		allFiles = append(allFiles, r.Files...)
		pageToken = r.NextPageToken

		if pageToken == "" {
			break
		}
	}

	imageMimeTypes := map[string]bool{
		"image/png":  true,
		"image/jpeg": true,
		"image/jpg":  true,
		"image/webp": true,
	}

	var photos []models.ProductPhoto
	for _, file := range allFiles {
		if !imageMimeTypes[strings.ToLower(file.MimeType)] {
			continue
		}

		code, seq, err := utils.ParsePhotoFileName(file.Name)
		if err != nil {
			log.Printf("warning: skipping photo %s: %v", file.Name, err)
			continue
		}

		photos = append(photos, models.ProductPhoto{
			DriveFileID: file.Id,
			FileName:    file.Name,
			ProductCode: code,
			Seq:         seq,
		})
	}

	return photos, nil
}

// DownloadPhoto downloads the raw bytes of one photo by Drive file ID
func (ds *DriveService) DownloadPhoto(fileID string) ([]byte, error) {
	resp, err := ds.client.Files.Get(fileID).Download()
	if err != nil {
		return nil, fmt.Errorf("failed to download file %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", fileID, err)
	}

	return data, nil
}
