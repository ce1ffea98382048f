package orders

import (
	"context"
	"fmt"

	"github.com/tu-usuario/catalogo-admin/internal/application/dto"
	"github.com/tu-usuario/catalogo-admin/internal/domain"
	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
	"github.com/tu-usuario/catalogo-admin/internal/domain/repository"
	"github.com/tu-usuario/catalogo-admin/pkg/logger"
)

// PDFGenerator puerto para la exportación del detalle de pedido a PDF.
type PDFGenerator interface {
	GenerateOrderPDF(ctx context.Context, order *dto.OrderDetailDTO) ([]byte, error)
}

// UseCase mutaciones sobre pedidos: transición de estado y baja, más la
// exportación a PDF del detalle. Un pedido nunca muta Product ni Category.
type UseCase struct {
	repo  repository.OrderRepository
	views repository.CatalogViewRepository
	pdf   PDFGenerator
	log   *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.OrderRepository, views repository.CatalogViewRepository, pdf PDFGenerator, log *logger.Logger) *UseCase {
	return &UseCase{repo: repo, views: views, pdf: pdf, log: log}
}

// UpdateStatus aplica una transición de estado. Estados fuera de la
// enumeración se rechazan y el pedido queda como estaba.
func (uc *UseCase) UpdateStatus(ctx context.Context, id, status string) error {
	if !entity.ValidOrderStatus(status) {
		return fmt.Errorf("%w: estado de pedido %q", domain.ErrInvalidInput, status)
	}
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("%w: pedido %s", domain.ErrNotFound, id)
	}
	if err := uc.repo.UpdateStatus(id, status); err != nil {
		return err
	}
	uc.log.Info().Str("order_id", id).Str("from", existing.Status).Str("to", status).Msg("estado de pedido actualizado")
	return nil
}

// Delete elimina un pedido.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("%w: pedido %s", domain.ErrNotFound, id)
	}
	return uc.repo.Delete(id)
}

// ExportPDF genera el PDF del detalle del pedido (usuario + dirección).
func (uc *UseCase) ExportPDF(ctx context.Context, id string) ([]byte, error) {
	row, err := uc.views.GetOrderDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("%w: pedido %s", domain.ErrNotFound, id)
	}
	return uc.pdf.GenerateOrderPDF(ctx, row)
}
