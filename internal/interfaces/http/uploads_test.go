package http

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uploadsApp expone saveSlotUploads detrás de una ruta de prueba.
func uploadsApp(t *testing.T) *fiber.App {
	t.Helper()
	dir := t.TempDir()
	app := fiber.New()
	app.Post("/upload", func(c *fiber.Ctx) error {
		uploads, err := saveSlotUploads(c, dir)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(uploads)
	})
	return app
}

func TestSaveSlotUploads_SlotsAusentes_NoSonError(t *testing.T) {
	app := uploadsApp(t)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fw, err := w.CreateFormFile("image0", "frente.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("contenido"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"slots image1/image2 sin archivo no deben rechazar la petición")
}

func TestSaveSlotUploads_SinMultipart_NoEsError(t *testing.T) {
	app := uploadsApp(t)

	req := httptest.NewRequest(http.MethodPost, "/upload",
		strings.NewReader("name=Teclado"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"una petición sin form multipart cuenta como sin archivos")
}

func TestSaveSlotUploads_MultipartMalformado_Retorna400(t *testing.T) {
	app := uploadsApp(t)

	// Content-Type declara multipart pero el cuerpo no respeta el boundary.
	req := httptest.NewRequest(http.MethodPost, "/upload",
		strings.NewReader("esto no es un cuerpo multipart"))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=xyz")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode,
		"una parte malformada debe rechazarse, no ignorarse en silencio")
}
