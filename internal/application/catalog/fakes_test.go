package catalog_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/tu-usuario/catalogo-admin/internal/application/catalog"
	"github.com/tu-usuario/catalogo-admin/internal/domain"
	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
	"github.com/tu-usuario/catalogo-admin/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los casos de uso de catálogo
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	rows map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{rows: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.rows[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByName(name string) (*entity.Product, error) {
	for _, p := range r.rows {
		if p.Name == name {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	if _, ok := r.rows[p.ID]; !ok {
		return errors.New("producto inexistente")
	}
	cp := *p
	r.rows[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateStatus(id, status string) error {
	p, ok := r.rows[id]
	if !ok {
		return errors.New("producto inexistente")
	}
	p.Status = status
	return nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.rows, id)
	return nil
}

type fakeCategoryRepo struct {
	rows map[string]*entity.Category
	// inyección de fallo: AddItem sobre esta categoría falla
	failAddOn string
}

func newFakeCategoryRepo(categories ...*entity.Category) *fakeCategoryRepo {
	r := &fakeCategoryRepo{rows: map[string]*entity.Category{}}
	for _, c := range categories {
		cp := *c
		r.rows[c.ID] = &cp
	}
	return r
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error {
	cp := *c
	r.rows[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	cp.Items = append([]string(nil), c.Items...)
	return &cp, nil
}

func (r *fakeCategoryRepo) Update(c *entity.Category) error {
	if _, ok := r.rows[c.ID]; !ok {
		return errors.New("categoría inexistente")
	}
	cp := *c
	r.rows[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) Delete(id string) error {
	delete(r.rows, id)
	return nil
}

func (r *fakeCategoryRepo) AddItem(categoryID, productID string) error {
	if categoryID == r.failAddOn {
		return errors.New("fallo inyectado en AddItem")
	}
	c, ok := r.rows[categoryID]
	if !ok {
		return errors.New("categoría inexistente")
	}
	for _, it := range c.Items {
		if it == productID {
			return nil // semántica de conjunto
		}
	}
	c.Items = append(c.Items, productID)
	return nil
}

func (r *fakeCategoryRepo) RemoveItem(categoryID, productID string) error {
	c, ok := r.rows[categoryID]
	if !ok {
		return errors.New("categoría inexistente")
	}
	out := c.Items[:0]
	for _, it := range c.Items {
		if it != productID {
			out = append(out, it)
		}
	}
	c.Items = out
	return nil
}

func (r *fakeCategoryRepo) items(categoryID string) []string {
	if c, ok := r.rows[categoryID]; ok {
		return c.Items
	}
	return nil
}

// fakeTxRunner ejecuta fn con los fakes y, si falla, restaura el estado
// previo (simula el rollback de la transacción real).
type fakeTxRunner struct {
	products   *fakeProductRepo
	categories *fakeCategoryRepo
}

func (t *fakeTxRunner) Run(ctx context.Context, fn func(repository.ProductRepository, repository.CategoryRepository) error) error {
	prodSnap := map[string]*entity.Product{}
	for id, p := range t.products.rows {
		cp := *p
		prodSnap[id] = &cp
	}
	catSnap := map[string]*entity.Category{}
	for id, c := range t.categories.rows {
		cp := *c
		cp.Items = append([]string(nil), c.Items...)
		catSnap[id] = &cp
	}
	if err := fn(t.products, t.categories); err != nil {
		t.products.rows = prodSnap
		t.categories.rows = catSnap
		return err
	}
	return nil
}

// fakeImageProcessor devuelve el mismo nombre de archivo como derivado y
// registra las invocaciones. failOn hace fallar un archivo concreto.
type fakeImageProcessor struct {
	calls  []string
	failOn string
}

func (p *fakeImageProcessor) ProduceDerivative(ctx context.Context, filename string) (string, error) {
	p.calls = append(p.calls, filename)
	if filename == p.failOn {
		return "", fmt.Errorf("%w: archivo %s ilegible", domain.ErrImageProcessing, filename)
	}
	return filename, nil
}

var _ catalog.ImageProcessor = (*fakeImageProcessor)(nil)
var _ catalog.TxRunner = (*fakeTxRunner)(nil)
var _ repository.ProductRepository = (*fakeProductRepo)(nil)
var _ repository.CategoryRepository = (*fakeCategoryRepo)(nil)
