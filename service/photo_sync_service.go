package service

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"soluciones-ferreteras/models"
)

// PhotoSyncService downloads product photos from Google Drive into the local
// images directory the catalog serves from. Implements PhotoSyncServiceInterface
type PhotoSyncService struct {
	driveService DriveServiceInterface
	imagesDir    string
}

// NewPhotoSyncService creates a new PhotoSyncService writing into imagesDir
func NewPhotoSyncService(driveService DriveServiceInterface, imagesDir string) *PhotoSyncService {
	return &PhotoSyncService{
		driveService: driveService,
		imagesDir:    imagesDir,
	}
}

// Ensure PhotoSyncService implements PhotoSyncServiceInterface
var _ PhotoSyncServiceInterface = (*PhotoSyncService)(nil)

// SyncPhotos downloads all product photos from the folder, optimizes them and
// saves them as CODE-N.jpg. Photos already on disk are skipped; individual
// failures are collected, not fatal.
func (s *PhotoSyncService) SyncPhotos(folderID string) (*models.PhotoSyncResponse, error) {
	log.Printf("📥 Starting photo sync for folder: %s", folderID)

	if err := os.MkdirAll(s.imagesDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create images directory: %w", err)
	}

	photos, err := s.driveService.ListProductPhotos(folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list product photos from Drive: %w", err)
	}

	log.Printf("📦 Found %d product photos in Drive", len(photos))

	result := &models.PhotoSyncResponse{Total: len(photos)}
	seen := make(map[string]bool)

	for _, photo := range photos {
		// Optimized output is always JPEG
		fileName := fmt.Sprintf("%s-%d.jpg", photo.ProductCode, photo.Seq)
		filePath := filepath.Join(s.imagesDir, fileName)

		if _, err := os.Stat(filePath); err == nil {
			log.Printf("⏭️  Skipping %s (already on disk)", fileName)
			result.Skipped++
			continue
		}
		if seen[fileName] {
			log.Printf("⏭️  Skipping %s (duplicate name in this sync)", fileName)
			result.Skipped++
			continue
		}
		seen[fileName] = true

		data, err := s.driveService.DownloadPhoto(photo.DriveFileID)
		if err != nil {
			msg := fmt.Sprintf("failed to download %s (%s): %v", fileName, photo.DriveFileID, err)
			log.Printf("❌ %s", msg)
			result.Errors = append(result.Errors, msg)
			continue
		}

		optimized, err := OptimizeImage(data, "medium")
		if err != nil {
			msg := fmt.Sprintf("failed to optimize %s (%s): %v", fileName, photo.DriveFileID, err)
			log.Printf("❌ %s", msg)
			result.Errors = append(result.Errors, msg)
			continue
		}

		if err := os.WriteFile(filePath, optimized, 0644); err != nil {
			msg := fmt.Sprintf("failed to save %s: %v", fileName, err)
			log.Printf("❌ %s", msg)
			result.Errors = append(result.Errors, msg)
			continue
		}

		log.Printf("✓ Synced %s", fileName)
		result.Downloaded++
	}

	log.Printf("🎉 Photo sync completed: %d downloaded, %d skipped, %d failed of %d total",
		result.Downloaded, result.Skipped, len(result.Errors), result.Total)
	return result, nil
}
