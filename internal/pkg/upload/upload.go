package upload

import (
	"io"
	log "log/slog"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/service"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

const thumbPrefix = "thumb_"

// SaveImage stores an uploaded image under dir with a random filename
// and returns that filename. A fitted thumbnail is written next to it
// on a best-effort basis.
func SaveImage(fileHeader *multipart.FileHeader, dir string) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		return "", service.ErrFileNotSupported
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + ext
	dstPath := filepath.Join(dir, name)

	src, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dstPath)
		return "", err
	}
	if err := dst.Close(); err != nil {
		return "", err
	}

	writeThumbnail(dir, name, dstPath)

	return name, nil
}

func writeThumbnail(dir, name, srcPath string) {
	img, err := imaging.Open(srcPath, imaging.AutoOrientation(true))
	if err != nil {
		log.Warn("thumbnail skipped, cannot decode image", "file", name, "err", err)
		return
	}
	thumb := imaging.Fit(img, 480, 480, imaging.Lanczos)
	if err := imaging.Save(thumb, filepath.Join(dir, thumbPrefix+name)); err != nil {
		log.Warn("thumbnail write failed", "file", name, "err", err)
	}
}

// Remove deletes a stored image and its thumbnail. Missing files are
// not an error.
func Remove(dir, name string) {
	if name == "" {
		return
	}
	// Reject anything that could escape the upload dir.
	if filepath.Base(name) != name {
		return
	}
	if err := os.Remove(filepath.Join(dir, name)); err != nil && !os.IsNotExist(err) {
		log.Warn("upload cleanup failed", "file", name, "err", err)
	}
	if err := os.Remove(filepath.Join(dir, thumbPrefix+name)); err != nil && !os.IsNotExist(err) {
		log.Warn("thumbnail cleanup failed", "file", name, "err", err)
	}
}
