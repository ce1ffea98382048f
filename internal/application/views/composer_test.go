package views_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/catalogo-admin/internal/application/dto"
	"github.com/tu-usuario/catalogo-admin/internal/application/views"
	"github.com/tu-usuario/catalogo-admin/internal/domain"
)

// fakeViewRepo sirve proyecciones desde slices en memoria aplicando
// limit/offset igual que el SQL real.
type fakeViewRepo struct {
	products []dto.ProductRowDTO
	details  map[string]*dto.ProductDetailDTO
	orders   []dto.OrderRowDTO
	orderDet map[string]*dto.OrderDetailDTO
}

func (r *fakeViewRepo) ListProducts(ctx context.Context, limit, offset int) ([]dto.ProductRowDTO, error) {
	return pageOf(r.products, limit, offset), nil
}

func (r *fakeViewRepo) CountProducts(ctx context.Context) (int, error) {
	return len(r.products), nil
}

func (r *fakeViewRepo) GetProductDetail(ctx context.Context, id string) (*dto.ProductDetailDTO, error) {
	return r.details[id], nil
}

func (r *fakeViewRepo) ListCategories(ctx context.Context, limit, offset int) ([]dto.CategoryRowDTO, error) {
	return nil, nil
}

func (r *fakeViewRepo) CountCategories(ctx context.Context) (int, error) {
	return 0, nil
}

func (r *fakeViewRepo) ListOrders(ctx context.Context, limit, offset int) ([]dto.OrderRowDTO, error) {
	return pageOf(r.orders, limit, offset), nil
}

func (r *fakeViewRepo) CountOrders(ctx context.Context) (int, error) {
	return len(r.orders), nil
}

func (r *fakeViewRepo) GetOrderDetail(ctx context.Context, id string) (*dto.OrderDetailDTO, error) {
	return r.orderDet[id], nil
}

func pageOf[T any](rows []T, limit, offset int) []T {
	if offset >= len(rows) {
		return nil
	}
	end := offset + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end]
}

func productRows(n int) []dto.ProductRowDTO {
	rows := make([]dto.ProductRowDTO, n)
	for i := range rows {
		rows[i] = dto.ProductRowDTO{
			ID:        fmt.Sprintf("p%02d", i),
			Name:      fmt.Sprintf("Producto %d", i),
			CreatedAt: time.Now(),
		}
	}
	return rows
}

func TestListarProductos_TotalPagesRedondeaHaciaArriba(t *testing.T) {
	c := views.NewComposer(&fakeViewRepo{products: productRows(12)})

	out, err := c.ListProducts(context.Background(), 1)
	require.NoError(t, err)

	assert.Len(t, out.Items, dto.ProductsPerPage, "la primera página va completa")
	assert.Equal(t, 1, out.Page.CurrentPage)
	assert.Equal(t, 2, out.Page.TotalPages, "12 productos a 10 por página son 2 páginas")
}

func TestListarProductos_UltimaPaginaParcial(t *testing.T) {
	c := views.NewComposer(&fakeViewRepo{products: productRows(12)})

	out, err := c.ListProducts(context.Background(), 2)
	require.NoError(t, err)

	assert.Len(t, out.Items, 2)
	assert.Equal(t, "p10", out.Items[0].ID, "el orden debe mantenerse entre páginas")
}

func TestListarProductos_PaginaFueraDeRango_FilasVacias(t *testing.T) {
	c := views.NewComposer(&fakeViewRepo{products: productRows(12)})

	out, err := c.ListProducts(context.Background(), 3)
	require.NoError(t, err)

	assert.Empty(t, out.Items, "fuera de rango devuelve página vacía, no error")
	assert.NotNil(t, out.Items, "el JSON debe serializar [] y no null")
	assert.Equal(t, 3, out.Page.CurrentPage)
	assert.Equal(t, 2, out.Page.TotalPages)
}

func TestListarProductos_PaginaInvalida_Default1(t *testing.T) {
	c := views.NewComposer(&fakeViewRepo{products: productRows(3)})

	out, err := c.ListProducts(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Page.CurrentPage, "página < 1 cuenta como página 1")

	out, err = c.ListProducts(context.Background(), -5)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Page.CurrentPage)
}

func TestListarPedidos_PaginaDe4(t *testing.T) {
	orders := make([]dto.OrderRowDTO, 9)
	for i := range orders {
		orders[i] = dto.OrderRowDTO{ID: fmt.Sprintf("o%02d", i), OrderDate: time.Now()}
	}
	c := views.NewComposer(&fakeViewRepo{orders: orders})

	out, err := c.ListOrders(context.Background(), 2)
	require.NoError(t, err)

	assert.Len(t, out.Items, dto.OrdersPerPage)
	assert.Equal(t, "o04", out.Items[0].ID)
	assert.Equal(t, 3, out.Page.TotalPages, "9 pedidos a 4 por página son 3 páginas")
}

func TestDetalleProducto_Inexistente_NotFound(t *testing.T) {
	c := views.NewComposer(&fakeViewRepo{details: map[string]*dto.ProductDetailDTO{}})

	_, err := c.ProductDetail(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDetallePedido_DevuelveUsuarioYDireccion(t *testing.T) {
	det := &dto.OrderDetailDTO{
		ID:     "o1",
		Status: "Pending",
		User:   dto.OrderUserDTO{Email: "cliente@ejemplo.com", Username: "cliente"},
		DeliveryAddress: dto.AddressDTO{
			City: "Bogotá",
		},
	}
	c := views.NewComposer(&fakeViewRepo{orderDet: map[string]*dto.OrderDetailDTO{"o1": det}})

	out, err := c.OrderDetail(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, "cliente@ejemplo.com", out.User.Email)
	assert.Equal(t, "Bogotá", out.DeliveryAddress.City)
}
