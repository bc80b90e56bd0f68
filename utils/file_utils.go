package utils

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	// Base directory for storing uploaded files
	uploadBaseDir = "uploads"
	// Base URL for serving files
	baseURL = "/uploads"
	// Maximum file size (10MB)
	maxFileSize = 10 * 1024 * 1024
)

var (
	// Allowed image extensions
	allowedImageExts = map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".gif":  true,
	}

	filenameReg = regexp.MustCompile(`[^a-zA-Z0-9.-]`)
)

// cleanFilename removes any potentially dangerous characters from the filename
func cleanFilename(filename string) string {
	filename = filepath.Base(filename)
	return filenameReg.ReplaceAllString(filename, "")
}

// ValidateImageType checks if the file extension is an allowed image format
func ValidateImageType(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExts[ext] {
		return fmt.Errorf("unsupported image format. Allowed formats: jpg, jpeg, png, gif")
	}
	return nil
}

// InitializeStorage creates necessary directories for file storage
func InitializeStorage() error {
	dirs := []string{
		uploadBaseDir,
		filepath.Join(uploadBaseDir, "businesses"),
		filepath.Join(uploadBaseDir, "thumbnails"),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %v", dir, err)
		}
	}

	return nil
}

// SaveBusinessPhoto stores an uploaded business photo plus a thumbnail
// and returns both URLs. Filenames are regenerated from a UUID so
// client-provided names never touch the filesystem.
func SaveBusinessPhoto(fileData []byte, originalFilename string) (photoURL string, thumbnailURL string, err error) {
	if len(fileData) > maxFileSize {
		return "", "", fmt.Errorf("file too large. Maximum size is %d bytes", maxFileSize)
	}

	cleanName := cleanFilename(originalFilename)
	if err := ValidateImageType(cleanName); err != nil {
		return "", "", err
	}

	if err := InitializeStorage(); err != nil {
		return "", "", err
	}

	ext := strings.ToLower(filepath.Ext(cleanName))
	filename := fmt.Sprintf("%s%s", uuid.New().String(), ext)

	fullPath := filepath.Join(uploadBaseDir, "businesses", filename)
	if err := os.WriteFile(fullPath, fileData, 0644); err != nil {
		return "", "", fmt.Errorf("failed to write file: %v", err)
	}

	img, err := imaging.Decode(bytes.NewReader(fileData))
	if err != nil {
		return "", "", fmt.Errorf("failed to decode image: %v", err)
	}

	// Resize to max width of 320px while maintaining aspect ratio
	resized := imaging.Resize(img, 320, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: 85}); err != nil {
		return "", "", fmt.Errorf("failed to encode thumbnail: %v", err)
	}

	thumbFilename := strings.TrimSuffix(filename, ext) + ".jpg"
	thumbPath := filepath.Join(uploadBaseDir, "thumbnails", thumbFilename)
	if err := os.WriteFile(thumbPath, buf.Bytes(), 0644); err != nil {
		return "", "", fmt.Errorf("failed to save thumbnail: %v", err)
	}

	photoURL = fmt.Sprintf("%s/businesses/%s", baseURL, filename)
	thumbnailURL = fmt.Sprintf("%s/thumbnails/%s", baseURL, thumbFilename)
	return photoURL, thumbnailURL, nil
}
