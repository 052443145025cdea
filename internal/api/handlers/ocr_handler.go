package handlers

import (
	"errors"
	"frescoguard/domain"
	"frescoguard/internal/api/presenters"
	"frescoguard/pkg/ocr"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type (
	OCRHandler interface {
		ScanLabel(c *fiber.Ctx) error
	}

	ocrHandler struct {
		scanner ocr.Scanner
	}
)

func NewOCRHandler(scanner ocr.Scanner) OCRHandler {
	return &ocrHandler{
		scanner: scanner,
	}
}

// readImage accepts a multipart "image" file or a JSON body {"image": "..."}.
func readImage(c *fiber.Ctx) ([]byte, error) {
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		header, err := c.FormFile("image")
		if err != nil {
			return nil, domain.ErrImageNotProvided
		}
		file, err := header.Open()
		if err != nil {
			return nil, err
		}
		defer file.Close()
		return io.ReadAll(file)
	}

	req := new(domain.OCRRequest)
	if err := c.BodyParser(req); err != nil {
		return nil, domain.ErrImageNotProvided
	}
	return []byte(strings.TrimSpace(req.Image)), nil
}

func (h *ocrHandler) ScanLabel(c *fiber.Ctx) error {
	image, err := readImage(c)
	if err != nil {
		if errors.Is(err, domain.ErrImageNotProvided) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageImageNotProvided, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedScanImage, err)
	}

	res, err := h.scanner.Scan(c.Context(), image)
	if err != nil {
		if errors.Is(err, domain.ErrImageNotProvided) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageImageNotProvided, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedScanImage, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"foodName":   res.FoodName,
		"expiryDate": res.ExpiryDate,
		"confidence": res.Confidence,
	}, fiber.StatusOK, "")
}
