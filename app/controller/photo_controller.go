package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"soluciones-ferreteras/service"
)

// PhotoController handles administrative product photo synchronization
type PhotoController struct {
	syncService service.PhotoSyncServiceInterface
}

// NewPhotoController creates a new PhotoController. syncService may be nil
// when Drive credentials are not configured.
func NewPhotoController(syncService service.PhotoSyncServiceInterface) *PhotoController {
	return &PhotoController{syncService: syncService}
}

// SyncPhotos handles GET /admin/photos/sync?folderId=...
func (c *PhotoController) SyncPhotos(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !authorizeAdmin(w, r) {
		return
	}

	if c.syncService == nil {
		http.Error(w, "Photo sync is not configured (missing Drive credentials)", http.StatusServiceUnavailable)
		return
	}

	folderID := r.URL.Query().Get("folderId")
	if folderID == "" {
		http.Error(w, "folderId parameter is required", http.StatusBadRequest)
		return
	}

	result, err := c.syncService.SyncPhotos(folderID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to sync photos: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
