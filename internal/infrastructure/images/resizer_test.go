package images_test

import (
	"context"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/catalogo-admin/internal/domain"
	infraimages "github.com/tu-usuario/catalogo-admin/internal/infrastructure/images"
)

// writeTestPNG escribe una imagen pequeña de prueba en dir con el nombre dado.
func writeTestPNG(t *testing.T, dir, name string, width, height int) {
	t.Helper()
	img := imaging.New(width, height, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	require.NoError(t, imaging.Save(img, filepath.Join(dir, name)))
}

func TestProduceDerivative_GeometriaFija(t *testing.T) {
	srcDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "resized") // no existe aún
	writeTestPNG(t, srcDir, "foto.png", 30, 20)

	r := infraimages.NewResizer(srcDir, outDir)
	name, err := r.ProduceDerivative(context.Background(), "foto.png")
	require.NoError(t, err)

	assert.Equal(t, "foto.png", name, "el derivado conserva el nombre del original")

	out, err := imaging.Open(filepath.Join(outDir, "foto.png"))
	require.NoError(t, err, "el derivado debe existir en el directorio de salida")
	bounds := out.Bounds()
	assert.Equal(t, 1200, bounds.Dx(), "ancho forzado sin conservar proporciones")
	assert.Equal(t, 1486, bounds.Dy(), "alto forzado sin conservar proporciones")
}

func TestProduceDerivative_NoBorraElOriginal(t *testing.T) {
	srcDir := t.TempDir()
	outDir := t.TempDir()
	writeTestPNG(t, srcDir, "foto.png", 10, 10)

	r := infraimages.NewResizer(srcDir, outDir)
	_, err := r.ProduceDerivative(context.Background(), "foto.png")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(srcDir, "foto.png"))
	assert.NoError(t, err, "la subida original debe conservarse")
}

func TestProduceDerivative_ArchivoInexistente_ErrImageProcessing(t *testing.T) {
	r := infraimages.NewResizer(t.TempDir(), t.TempDir())

	_, err := r.ProduceDerivative(context.Background(), "no-existe.png")
	assert.ErrorIs(t, err, domain.ErrImageProcessing)
}

func TestProduceDerivative_ArchivoCorrupto_ErrImageProcessing(t *testing.T) {
	srcDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "rota.png"), []byte("esto no es un PNG"), 0o644))

	r := infraimages.NewResizer(srcDir, t.TempDir())
	_, err := r.ProduceDerivative(context.Background(), "rota.png")
	assert.ErrorIs(t, err, domain.ErrImageProcessing)
}

func TestProduceDerivative_ContextoCancelado(t *testing.T) {
	srcDir := t.TempDir()
	writeTestPNG(t, srcDir, "foto.png", 10, 10)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := infraimages.NewResizer(srcDir, t.TempDir())
	_, err := r.ProduceDerivative(ctx, "foto.png")
	assert.ErrorIs(t, err, context.Canceled)
}
