package controllers

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"studyabroad-backend/src/models"
	"studyabroad-backend/src/services/extraction"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newUploadApp() *fiber.App {
	app := fiber.New()
	app.Put("/api/auth/profile/upload-pdf", func(c *fiber.Ctx) error {
		c.Locals("userId", "64f1c0ffee0000000000aaaa")
		return UploadProfilePDF(c)
	})
	return app
}

func TestUploadProfilePDFMissingFile(t *testing.T) {
	app := newUploadApp()

	req := httptest.NewRequest("PUT", "/api/auth/profile/upload-pdf", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

// A corrupt document must fail as one processing error and still leave no
// temporary artifact behind.
func TestUploadProfilePDFCleansUpOnFailure(t *testing.T) {
	defer os.RemoveAll("uploads")

	app := newUploadApp()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("profilePdf", "garbage.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("definitely not a pdf"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("PUT", "/api/auth/profile/upload-pdf", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	leftovers, err := filepath.Glob(filepath.Join("uploads", "*.pdf"))
	require.NoError(t, err)
	assert.Empty(t, leftovers, "temporary upload must be removed on failure")
}

// A successful run must remove the temporary upload too, not just the
// failure paths.
func TestUploadProfilePDFCleansUpOnSuccess(t *testing.T) {
	defer os.RemoveAll("uploads")

	origRead, origIngest := readPDFText, ingestCandidate
	defer func() {
		readPDFText = origRead
		ingestCandidate = origIngest
	}()

	sawTempFile := false
	readPDFText = func(path string) (string, error) {
		if _, err := os.Stat(path); err == nil {
			sawTempFile = true
		}
		return "First Name * Anna\nLast Name Smith\n", nil
	}
	ingestCandidate = func(userID string, cand extraction.CandidateProfile) (*models.User, error) {
		id, err := primitive.ObjectIDFromHex(userID)
		require.NoError(t, err)
		require.NotNil(t, cand.FirstName)
		assert.Equal(t, "Anna", *cand.FirstName)
		return &models.User{ID: id, Name: "Anna Smith", Email: "anna@x.com"}, nil
	}

	app := newUploadApp()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("profilePdf", "profile.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4 placeholder"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("PUT", "/api/auth/profile/upload-pdf", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, sawTempFile, "handler must hand the reader a saved file")

	leftovers, err := filepath.Glob(filepath.Join("uploads", "*.pdf"))
	require.NoError(t, err)
	assert.Empty(t, leftovers, "temporary upload must be removed on success")
}
