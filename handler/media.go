package handler

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"pouchesitaly/config"
	"pouchesitaly/helper"
	"pouchesitaly/utils"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
)

// GenerateSignature signs upload params so the admin UI can upload
// product images straight to Cloudinary without routing bytes
// through this server.
func GenerateSignature(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Forbidden", nil)
	}

	type SigParams struct {
		Folder   string `json:"folder"`
		PublicID string `json:"public_id"`
	}

	var params SigParams
	if err := c.BodyParser(&params); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid params", err)
	}

	timestamp := time.Now().Unix()

	paramMap := map[string]string{
		"timestamp": fmt.Sprintf("%d", timestamp),
	}
	if params.Folder != "" {
		paramMap["folder"] = params.Folder
	}
	if params.PublicID != "" {
		paramMap["public_id"] = params.PublicID
	}

	keys := make([]string, 0, len(paramMap))
	for k := range paramMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// Cloudinary signs raw key=value pairs joined by &, secret appended.
	var stringToSign strings.Builder
	for i, k := range keys {
		if i > 0 {
			stringToSign.WriteString("&")
		}
		stringToSign.WriteString(k)
		stringToSign.WriteString("=")
		stringToSign.WriteString(paramMap[k])
	}
	stringToSign.WriteString(config.Config("CLOUDINARY_API_SECRET"))

	h := sha1.New()
	h.Write([]byte(stringToSign.String()))
	signature := hex.EncodeToString(h.Sum(nil))

	return c.JSON(fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"apiKey":    config.Config("CLOUDINARY_API_KEY"),
		"cloudName": config.Config("CLOUDINARY_CLOUD_NAME"),
	})
}

// UploadProductImage accepts a multipart file and uploads it server
// side, for clients that cannot do a signed direct upload.
func UploadProductImage(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Forbidden", nil)
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing image file", err)
	}

	reader, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot read image file", err)
	}
	defer reader.Close()

	cld := helper.InitCloudinary()
	ctx, cancel := context.WithTimeout(c.Context(), 60*time.Second)
	defer cancel()

	res, err := cld.Upload.Upload(ctx, reader, uploader.UploadParams{
		Folder: "products",
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadGateway, "Upload failed", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"url":      res.SecureURL,
		"publicId": res.PublicID,
	})
}
