package handlers

import (
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ImageUploader sends a file to the image host and returns its public URL.
// Satisfied by pkg/imagehost.Client.
type ImageUploader interface {
	Upload(filename string, content io.Reader) (string, error)
}

// UploadHandler handles image uploads on behalf of product forms.
type UploadHandler struct {
	uploader ImageUploader
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(uploader ImageUploader) *UploadHandler {
	return &UploadHandler{
		uploader: uploader,
	}
}

// RegisterRoutes registers the upload routes with the Fiber app.
func (h *UploadHandler) RegisterRoutes(router fiber.Router) {
	uploadRoutes := router.Group("/uploads")
	uploadRoutes.Post("/image", h.HandleUploadImage)
}

func isValidImageExtension(filename string) bool {
	allowed := []string{".jpg", ".jpeg", ".png"}
	ext := strings.ToLower(filepath.Ext(filename))
	for _, a := range allowed {
		if ext == a {
			return true
		}
	}
	return false
}

// HandleUploadImage forwards the posted file to the image host and returns
// the resulting public URL. Upload failures do not touch any previously
// stored URL; the caller simply retries with a new file.
func (h *UploadHandler) HandleUploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "A file is required",
			"error":   err.Error(),
		})
	}

	if !isValidImageExtension(fileHeader.Filename) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Unsupported image format. Use .jpg, .jpeg or .png.",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening uploaded file %s: %v", fileHeader.Filename, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not read uploaded file",
			"error":   err.Error(),
		})
	}
	defer file.Close()

	secureURL, err := h.uploader.Upload(fileHeader.Filename, file)
	if err != nil {
		log.Printf("Image upload failed for %s: %v", fileHeader.Filename, err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message": "Failed to upload image.",
		})
	}

	return c.JSON(fiber.Map{
		"message":    "Image uploaded successfully!",
		"secure_url": secureURL,
	})
}
