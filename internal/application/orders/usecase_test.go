package orders_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/catalogo-admin/internal/application/dto"
	"github.com/tu-usuario/catalogo-admin/internal/application/orders"
	"github.com/tu-usuario/catalogo-admin/internal/domain"
	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
	"github.com/tu-usuario/catalogo-admin/pkg/logger"
)

type fakeOrderRepo struct {
	rows map[string]*entity.Order
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) UpdateStatus(id, status string) error {
	o, ok := r.rows[id]
	if !ok {
		return errors.New("pedido inexistente")
	}
	o.Status = status
	return nil
}

func (r *fakeOrderRepo) Delete(id string) error {
	delete(r.rows, id)
	return nil
}

type fakeOrderViews struct {
	detail *dto.OrderDetailDTO
}

func (r *fakeOrderViews) ListProducts(ctx context.Context, limit, offset int) ([]dto.ProductRowDTO, error) {
	return nil, nil
}
func (r *fakeOrderViews) CountProducts(ctx context.Context) (int, error) { return 0, nil }
func (r *fakeOrderViews) GetProductDetail(ctx context.Context, id string) (*dto.ProductDetailDTO, error) {
	return nil, nil
}
func (r *fakeOrderViews) ListCategories(ctx context.Context, limit, offset int) ([]dto.CategoryRowDTO, error) {
	return nil, nil
}
func (r *fakeOrderViews) CountCategories(ctx context.Context) (int, error) { return 0, nil }
func (r *fakeOrderViews) ListOrders(ctx context.Context, limit, offset int) ([]dto.OrderRowDTO, error) {
	return nil, nil
}
func (r *fakeOrderViews) CountOrders(ctx context.Context) (int, error) { return 0, nil }
func (r *fakeOrderViews) GetOrderDetail(ctx context.Context, id string) (*dto.OrderDetailDTO, error) {
	if r.detail != nil && r.detail.ID == id {
		return r.detail, nil
	}
	return nil, nil
}

type fakePDFGenerator struct {
	generated []string
}

func (g *fakePDFGenerator) GenerateOrderPDF(ctx context.Context, order *dto.OrderDetailDTO) ([]byte, error) {
	g.generated = append(g.generated, order.ID)
	return []byte("%PDF-1.4 fake"), nil
}

func newOrderFixture(rows ...*entity.Order) (*orders.UseCase, *fakeOrderRepo, *fakeOrderViews, *fakePDFGenerator) {
	repo := &fakeOrderRepo{rows: map[string]*entity.Order{}}
	for _, o := range rows {
		cp := *o
		repo.rows[o.ID] = &cp
	}
	viewsRepo := &fakeOrderViews{}
	pdf := &fakePDFGenerator{}
	return orders.NewUseCase(repo, viewsRepo, pdf, logger.Nop()), repo, viewsRepo, pdf
}

func TestActualizarEstado_TransicionValida(t *testing.T) {
	uc, repo, _, _ := newOrderFixture(&entity.Order{ID: "o1", Status: entity.OrderPending, OrderDate: time.Now()})

	require.NoError(t, uc.UpdateStatus(context.Background(), "o1", entity.OrderShipped))

	persisted, _ := repo.GetByID("o1")
	assert.Equal(t, entity.OrderShipped, persisted.Status)
}

func TestActualizarEstado_EstadoDesconocido_Rechazado(t *testing.T) {
	uc, repo, _, _ := newOrderFixture(&entity.Order{ID: "o1", Status: entity.OrderPending})

	err := uc.UpdateStatus(context.Background(), "o1", "EnCamino")
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"un estado fuera de la enumeración debe rechazarse")

	persisted, _ := repo.GetByID("o1")
	assert.Equal(t, entity.OrderPending, persisted.Status, "el pedido debe quedar como estaba")
}

func TestActualizarEstado_PedidoInexistente_NotFound(t *testing.T) {
	uc, _, _, _ := newOrderFixture()

	err := uc.UpdateStatus(context.Background(), "no-existe", entity.OrderShipped)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEliminarPedido(t *testing.T) {
	uc, repo, _, _ := newOrderFixture(&entity.Order{ID: "o1", Status: entity.OrderPending})

	require.NoError(t, uc.Delete(context.Background(), "o1"))
	assert.Empty(t, repo.rows)
}

func TestExportarPDF_GeneraDesdeElDetalle(t *testing.T) {
	uc, _, viewsRepo, pdf := newOrderFixture(&entity.Order{ID: "o1", Status: entity.OrderPending})
	viewsRepo.detail = &dto.OrderDetailDTO{ID: "o1", Status: entity.OrderPending}

	out, err := uc.ExportPDF(context.Background(), "o1")
	require.NoError(t, err)

	assert.NotEmpty(t, out)
	assert.Equal(t, []string{"o1"}, pdf.generated)
}

func TestExportarPDF_PedidoInexistente_NotFound(t *testing.T) {
	uc, _, _, _ := newOrderFixture()

	_, err := uc.ExportPDF(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
