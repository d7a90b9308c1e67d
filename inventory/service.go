package inventory

import (
	"errors"
	"io"
	"optiedge/database"
	"optiedge/export"
	"optiedge/model"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Service is the product store and credential gate over one open database.
// Every operation runs to completion, including the commit, before it returns.
type Service struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewService(db *sqlx.DB) *Service {
	return &Service{db: db, now: time.Now}
}

// Authenticate reports whether username and password match a stored user exactly.
func (s *Service) Authenticate(username, password string) (bool, error) {
	ok, err := database.Authenticate(s.db, username, password)
	if err != nil {
		return false, storageErr("authenticate", err)
	}
	if !ok {
		log.Warn().Str("username", username).Msg("login rejected")
	}
	return ok, nil
}

// Add validates the form and inserts a new product.
func (s *Service) Add(name, price, quantity string) (model.Product, error) {
	in, err := ParseInput(name, price, quantity)
	if err != nil {
		return model.Product{}, err
	}

	p := model.Product{
		Name:      in.Name,
		Price:     in.Price,
		Quantity:  in.Quantity,
		UpdatedAt: s.timestamp(),
	}
	id, err := database.InsertProduct(s.db, p)
	if err != nil {
		return model.Product{}, storageErr("add product", err)
	}
	p.ID = id
	log.Info().Int64("id", id).Str("name", p.Name).Msg("product added")
	return p, nil
}

// Update validates the form and overwrites the product with id.
// ErrNotFound is returned when no row has that id.
func (s *Service) Update(id int64, name, price, quantity string) (model.Product, error) {
	in, err := ParseInput(name, price, quantity)
	if err != nil {
		return model.Product{}, err
	}

	p := model.Product{
		ID:        id,
		Name:      in.Name,
		Price:     in.Price,
		Quantity:  in.Quantity,
		UpdatedAt: s.timestamp(),
	}
	n, err := database.UpdateProduct(s.db, p)
	if err != nil {
		return model.Product{}, storageErr("update product", err)
	}
	if n == 0 {
		log.Warn().Int64("id", id).Msg("update matched no product")
		return model.Product{}, ErrNotFound
	}
	log.Info().Int64("id", id).Msg("product updated")
	return p, nil
}

// Delete removes the product with id. A missing id is not an error; the
// returned bool tells whether a row was removed.
func (s *Service) Delete(id int64) (bool, error) {
	n, err := database.DeleteProduct(s.db, id)
	if err != nil {
		return false, storageErr("delete product", err)
	}
	if n > 0 {
		log.Info().Int64("id", id).Msg("product deleted")
	}
	return n > 0, nil
}

func (s *Service) Get(id int64) (model.Product, error) {
	p, err := database.GetProductByID(s.db, id)
	if err != nil {
		return model.Product{}, storageErr("get product", err)
	}
	if p == nil {
		return model.Product{}, ErrNotFound
	}
	return *p, nil
}

// ListAll returns every product, newest first.
func (s *Service) ListAll() ([]model.Product, error) {
	products, err := database.GetAllProducts(s.db)
	if err != nil {
		return nil, storageErr("list products", err)
	}
	return products, nil
}

// Search matches query case-insensitively against the name and the id text.
// An empty query returns the same rows as ListAll.
func (s *Service) Search(query string) ([]model.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.ListAll()
	}
	products, err := database.SearchProducts(s.db, query)
	if err != nil {
		return nil, storageErr("search products", err)
	}
	return products, nil
}

// Totals recomputes the quantity and value sums from the stored rows.
func (s *Service) Totals() (model.Totals, error) {
	t, err := database.GetProductTotals(s.db)
	if errors.Is(err, database.ErrQuantityOverflow) {
		log.Warn().Msg("total quantity overflows int64")
		return model.Totals{}, ErrTotalOverflow
	}
	if err != nil {
		return model.Totals{}, storageErr("totals", err)
	}
	return t, nil
}

// ExportCSV writes every product to w. ErrNoProducts is returned, and nothing
// is written, when the store is empty.
func (s *Service) ExportCSV(w io.Writer) error {
	products, err := s.ListAll()
	if err != nil {
		return err
	}
	if len(products) == 0 {
		return ErrNoProducts
	}
	return export.WriteProducts(w, products)
}

// ExportProductCSV writes the single product with id to w.
func (s *Service) ExportProductCSV(w io.Writer, id int64) error {
	p, err := s.Get(id)
	if err != nil {
		return err
	}
	return export.WriteProducts(w, []model.Product{p})
}

func (s *Service) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}
