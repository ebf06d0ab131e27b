package models

// ProductPhoto represents a product photo found in the Google Drive folder.
// FileName follows the CODE-N.ext convention (e.g. FT2011B-1.jpg).
type ProductPhoto struct {
	DriveFileID string `json:"driveFileId"`
	FileName    string `json:"fileName"`
	ProductCode string `json:"productCode"`
	Seq         int    `json:"seq"`
}

// PhotoSyncResponse represents the result of a Drive photo synchronization
type PhotoSyncResponse struct {
	Total      int      `json:"total"`
	Downloaded int      `json:"downloaded"`
	Skipped    int      `json:"skipped"`
	Errors     []string `json:"errors,omitempty"`
}
