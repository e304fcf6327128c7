package service_test

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/FernandoPZ/POS-AuraCreativa/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// In-memory repository fakes. Tx methods ignore the nil tx the services pass
// when no database is wired.

type stubArticuloRepo struct {
	mu        sync.Mutex
	articulos map[uuid.UUID]*model.Articulo
}

func newStubArticuloRepo(articulos ...*model.Articulo) *stubArticuloRepo {
	r := &stubArticuloRepo{articulos: make(map[uuid.UUID]*model.Articulo)}
	for _, a := range articulos {
		r.articulos[a.ID] = a
	}
	return r
}

func (r *stubArticuloRepo) Create(_ context.Context, a *model.Articulo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.articulos[a.ID] = a
	return nil
}

func (r *stubArticuloRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Articulo, error) {
	return r.find(id)
}

func (r *stubArticuloRepo) FindByCodigo(_ context.Context, codigo string) (*model.Articulo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.articulos {
		if a.CodArticulo == codigo && a.Activo {
			cp := *a
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubArticuloRepo) List(_ context.Context) ([]model.Articulo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Articulo
	for _, a := range r.articulos {
		if a.Activo {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *stubArticuloRepo) Update(_ context.Context, a *model.Articulo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.articulos[a.ID] = a
	return nil
}

func (r *stubArticuloRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.articulos[id]; ok {
		a.Activo = false
	}
	return nil
}

func (r *stubArticuloRepo) FindByProveedorID(_ context.Context, proveedorID uuid.UUID) ([]model.Articulo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Articulo
	for _, a := range r.articulos {
		if a.Activo && a.ProveedorID != nil && *a.ProveedorID == proveedorID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *stubArticuloRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Articulo, error) {
	return r.find(id)
}

func (r *stubArticuloRepo) ConsumirStockTx(_ *gorm.DB, id uuid.UUID, cantidad int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.articulos[id]
	if !ok {
		return false, nil
	}
	if a.StockActual < cantidad {
		return false, nil
	}
	a.StockActual -= cantidad
	return true, nil
}

func (r *stubArticuloRepo) IngresarStockTx(_ *gorm.DB, id uuid.UUID, cantidad int, nuevoCosto decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.articulos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	a.StockActual += cantidad
	a.CostoPromedio = nuevoCosto
	return nil
}

func (r *stubArticuloRepo) ListStockBajo(_ context.Context) ([]model.Articulo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Articulo
	for _, a := range r.articulos {
		if a.Activo && a.StockActual <= a.CantidadMinima {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *stubArticuloRepo) CountStockBajo(ctx context.Context) (int64, error) {
	bajos, _ := r.ListStockBajo(ctx)
	return int64(len(bajos)), nil
}

func (r *stubArticuloRepo) DB() *gorm.DB { return nil }

func (r *stubArticuloRepo) find(id uuid.UUID) (*model.Articulo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.articulos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *stubArticuloRepo) stockDe(id uuid.UUID) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.articulos[id].StockActual
}

func (r *stubArticuloRepo) costoDe(id uuid.UUID) decimal.Decimal {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.articulos[id].CostoPromedio
}

// ───────────────────────────────────────────────────────────────────────────

type stubComboRepo struct {
	combos  map[uuid.UUID]*model.Combo
	recetas map[uuid.UUID][]model.DetalleCombo
}

func newStubComboRepo() *stubComboRepo {
	return &stubComboRepo{
		combos:  make(map[uuid.UUID]*model.Combo),
		recetas: make(map[uuid.UUID][]model.DetalleCombo),
	}
}

func (r *stubComboRepo) Create(_ context.Context, c *model.Combo) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.combos[c.ID] = c
	r.recetas[c.ID] = c.Ingredientes
	return nil
}

func (r *stubComboRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Combo, error) {
	c, ok := r.combos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubComboRepo) List(_ context.Context) ([]model.Combo, error) {
	var out []model.Combo
	for _, c := range r.combos {
		if c.Activo {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubComboRepo) Update(_ context.Context, c *model.Combo) error {
	r.combos[c.ID] = c
	r.recetas[c.ID] = c.Ingredientes
	return nil
}

func (r *stubComboRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	if c, ok := r.combos[id]; ok {
		c.Activo = false
	}
	return nil
}

func (r *stubComboRepo) FindRecetaTx(_ *gorm.DB, comboID uuid.UUID) ([]model.DetalleCombo, error) {
	return r.recetas[comboID], nil
}

// ───────────────────────────────────────────────────────────────────────────

type stubMovimientoRepo struct {
	mu          sync.Mutex
	movimientos []model.MovimientoStock
}

func (r *stubMovimientoRepo) CreateTx(_ *gorm.DB, m *model.MovimientoStock) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.CreatedAt = time.Now()
	r.movimientos = append(r.movimientos, *m)
	return nil
}

func (r *stubMovimientoRepo) ListByArticulo(_ context.Context, articuloID uuid.UUID, _ int) ([]model.MovimientoStock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.MovimientoStock
	for _, m := range r.movimientos {
		if m.ArticuloID == articuloID {
			out = append(out, m)
		}
	}
	return out, nil
}

// ───────────────────────────────────────────────────────────────────────────

type stubVentaRepo struct {
	ventas []*model.Venta
	folio  int
}

func (r *stubVentaRepo) Create(_ context.Context, _ *gorm.DB, v *model.Venta) error {
	r.ventas = append(r.ventas, v)
	return nil
}

func (r *stubVentaRepo) NextFolio(_ *gorm.DB) (int, error) {
	r.folio++
	return r.folio, nil
}

func (r *stubVentaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Venta, error) {
	for _, v := range r.ventas {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubVentaRepo) List(_ context.Context, limit int) ([]model.Venta, error) {
	var out []model.Venta
	for _, v := range r.ventas {
		out = append(out, *v)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *stubVentaRepo) SumTotalDesde(_ context.Context, desde time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, v := range r.ventas {
		if !v.CreatedAt.Before(desde) && v.Estado == "COMPLETADA" {
			total = total.Add(v.Total)
		}
	}
	return total, nil
}

func (r *stubVentaRepo) CountDesde(_ context.Context, desde time.Time) (int64, error) {
	var n int64
	for _, v := range r.ventas {
		if !v.CreatedAt.Before(desde) && v.Estado == "COMPLETADA" {
			n++
		}
	}
	return n, nil
}

func (r *stubVentaRepo) DB() *gorm.DB { return nil }

// ───────────────────────────────────────────────────────────────────────────

type stubPuntoRepo struct {
	puntos map[uuid.UUID]*model.PuntoEntrega
}

func newStubPuntoRepo(puntos ...*model.PuntoEntrega) *stubPuntoRepo {
	r := &stubPuntoRepo{puntos: make(map[uuid.UUID]*model.PuntoEntrega)}
	for _, p := range puntos {
		r.puntos[p.ID] = p
	}
	return r
}

func (r *stubPuntoRepo) Create(_ context.Context, p *model.PuntoEntrega) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.puntos[p.ID] = p
	return nil
}

func (r *stubPuntoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.PuntoEntrega, error) {
	p, ok := r.puntos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubPuntoRepo) List(_ context.Context) ([]model.PuntoEntrega, error) {
	var out []model.PuntoEntrega
	for _, p := range r.puntos {
		if p.Activo {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPuntoRepo) Update(_ context.Context, p *model.PuntoEntrega) error {
	r.puntos[p.ID] = p
	return nil
}

func (r *stubPuntoRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	if p, ok := r.puntos[id]; ok {
		p.Activo = false
	}
	return nil
}

func (r *stubPuntoRepo) ExistsTx(_ *gorm.DB, id uuid.UUID) (bool, error) {
	p, ok := r.puntos[id]
	return ok && p.Activo, nil
}

// ───────────────────────────────────────────────────────────────────────────

type stubEntradaRepo struct {
	entradas []*model.Entrada
}

func (r *stubEntradaRepo) Create(_ context.Context, _ *gorm.DB, e *model.Entrada) error {
	r.entradas = append(r.entradas, e)
	return nil
}

func (r *stubEntradaRepo) List(_ context.Context, limit int) ([]model.Entrada, error) {
	var out []model.Entrada
	for _, e := range r.entradas {
		out = append(out, *e)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *stubEntradaRepo) FindDetalles(_ context.Context, entradaID uuid.UUID) ([]model.DetalleEntrada, error) {
	for _, e := range r.entradas {
		if e.ID == entradaID {
			return e.Detalles, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubEntradaRepo) DB() *gorm.DB { return nil }

// ───────────────────────────────────────────────────────────────────────────

type stubProveedorRepo struct {
	proveedores map[uuid.UUID]*model.Proveedor
}

func newStubProveedorRepo(proveedores ...*model.Proveedor) *stubProveedorRepo {
	r := &stubProveedorRepo{proveedores: make(map[uuid.UUID]*model.Proveedor)}
	for _, p := range proveedores {
		r.proveedores[p.ID] = p
	}
	return r
}

func (r *stubProveedorRepo) Create(_ context.Context, p *model.Proveedor) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.proveedores[p.ID] = p
	return nil
}

func (r *stubProveedorRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Proveedor, error) {
	p, ok := r.proveedores[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProveedorRepo) List(_ context.Context) ([]model.Proveedor, error) {
	var out []model.Proveedor
	for _, p := range r.proveedores {
		if p.Activo {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProveedorRepo) Update(_ context.Context, p *model.Proveedor) error {
	r.proveedores[p.ID] = p
	return nil
}

func (r *stubProveedorRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	if p, ok := r.proveedores[id]; ok {
		p.Activo = false
	}
	return nil
}

// ───────────────────────────────────────────────────────────────────────────

type stubUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
}

func newStubUsuarioRepo(usuarios ...*model.Usuario) *stubUsuarioRepo {
	r := &stubUsuarioRepo{usuarios: make(map[uuid.UUID]*model.Usuario)}
	for _, u := range usuarios {
		r.usuarios[u.ID] = u
	}
	return r
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if strings.EqualFold(u.Email, email) && u.Activo {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	var out []model.Usuario
	for _, u := range r.usuarios {
		if u.Activo {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	if u, ok := r.usuarios[id]; ok {
		u.Activo = false
	}
	return nil
}

// ───────────────────────────────────────────────────────────────────────────

type stubBitacoraRepo struct {
	entradas []model.Bitacora
}

func (r *stubBitacoraRepo) Create(_ context.Context, b *model.Bitacora) error {
	r.entradas = append(r.entradas, *b)
	return nil
}

func (r *stubBitacoraRepo) List(_ context.Context, accion string, page, limit int) ([]model.Bitacora, int64, error) {
	var filtradas []model.Bitacora
	for _, b := range r.entradas {
		if accion == "" || b.Accion == accion {
			filtradas = append(filtradas, b)
		}
	}
	total := int64(len(filtradas))
	desde := (page - 1) * limit
	if desde >= len(filtradas) {
		return nil, total, nil
	}
	hasta := desde + limit
	if hasta > len(filtradas) {
		hasta = len(filtradas)
	}
	return filtradas[desde:hasta], total, nil
}

// ───────────────────────────────────────────────────────────────────────────

type encoladoJob struct {
	Cola    string
	Payload interface{}
}

type stubQueue struct {
	mu   sync.Mutex
	jobs []encoladoJob
	err  error
}

func (q *stubQueue) Enqueue(_ context.Context, cola string, payload interface{}) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.err != nil {
		return q.err
	}
	q.jobs = append(q.jobs, encoladoJob{Cola: cola, Payload: payload})
	return nil
}

func (q *stubQueue) enCola(cola string) []encoladoJob {
	q.mu.Lock()
	defer q.mu.Unlock()
	var out []encoladoJob
	for _, j := range q.jobs {
		if j.Cola == cola {
			out = append(out, j)
		}
	}
	return out
}
