package repo

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/garasindo/sparepart-service/internal/app/catalog/contracts"
	"github.com/garasindo/sparepart-service/internal/app/catalog/domain"
	"github.com/garasindo/sparepart-service/internal/models/m_product"
	"github.com/garasindo/sparepart-service/internal/pkg/clock"
)

// ProductRepo implements ProductRepository for Spanner.
type ProductRepo struct {
	client *spanner.Client
	model  *m_product.Model
	clock  clock.Clock
}

// NewProductRepository creates a new ProductRepo.
func NewProductRepository(client *spanner.Client, clk clock.Clock) contracts.ProductRepository {
	return &ProductRepo{
		client: client,
		model:  m_product.NewModel(),
		clock:  clk,
	}
}

// InsertMut creates a mutation for inserting a new product.
func (r *ProductRepo) InsertMut(product *domain.Product) *spanner.Mutation {
	return r.model.InsertMut(r.domainToData(product))
}

// UpdateMut creates a mutation for updating a product (only dirty fields).
func (r *ProductRepo) UpdateMut(product *domain.Product) *spanner.Mutation {
	changes := product.Changes()
	if !changes.HasChanges() {
		return nil
	}

	updates := make(map[string]interface{})

	if changes.Dirty(domain.FieldName) {
		updates[m_product.Name] = product.Name()
	}

	if changes.Dirty(domain.FieldCategory) {
		updates[m_product.Category] = product.Category()
	}

	if changes.Dirty(domain.FieldPrice) {
		updates[m_product.Price] = product.Price()
		updates[m_product.LastPriceUpdate] = spanner.CommitTimestamp
	}

	if changes.Dirty(domain.FieldTierPrices) {
		updates[m_product.Price3Items] = tierToNull(product.Price3Items())
		updates[m_product.Price5Items] = tierToNull(product.Price5Items())
	}

	if changes.Dirty(domain.FieldStock) {
		updates[m_product.Stock] = product.Stock()
	}

	if len(updates) == 0 {
		return nil
	}

	return r.model.UpdateMut(product.ID(), updates)
}

// RepriceMut creates a mutation applying a bulk-update price. The
// last_price_update column gets the commit timestamp, so every row repriced
// in one pass carries the same instant.
func (r *ProductRepo) RepriceMut(productID string, newPrice int64) *spanner.Mutation {
	return r.model.UpdateMut(productID, map[string]interface{}{
		m_product.Price:           newPrice,
		m_product.LastPriceUpdate: spanner.CommitTimestamp,
	})
}

// StockMut creates a mutation writing an absolute stock value. Checkout
// computes the decremented value from the row it read under the same
// transaction's locks.
func (r *ProductRepo) StockMut(productID string, stock int64) *spanner.Mutation {
	return r.model.UpdateMut(productID, map[string]interface{}{
		m_product.Stock: stock,
	})
}

// GetInTxn retrieves a product inside an open read-write transaction.
func (r *ProductRepo) GetInTxn(ctx context.Context, txn *spanner.ReadWriteTransaction, productID string) (*domain.Product, error) {
	row, err := txn.ReadRow(ctx, m_product.TableName, spanner.Key{productID}, m_product.ReadColumns())
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to read product in transaction: %w", err)
	}

	return r.rowToDomain(row)
}

// ListAllInTxn reads the entire products table inside a read-write
// transaction.
func (r *ProductRepo) ListAllInTxn(ctx context.Context, txn *spanner.ReadWriteTransaction) ([]*domain.Product, error) {
	iter := txn.Read(ctx, m_product.TableName, spanner.AllKeys(), m_product.ReadColumns())
	defer iter.Stop()

	products := make([]*domain.Product, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate products: %w", err)
		}

		product, err := r.rowToDomain(row)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}

// SlugExists checks whether a slug is already taken.
func (r *ProductRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	row, err := r.client.Single().ReadRowUsingIndex(ctx, m_product.TableName, m_product.SlugIndex, spanner.Key{slug}, []string{m_product.Slug})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return row != nil, nil
}

// domainToData converts a domain Product to database Data.
func (r *ProductRepo) domainToData(product *domain.Product) *m_product.Data {
	data := &m_product.Data{
		ProductID:   product.ID(),
		Name:        product.Name(),
		Slug:        product.Slug(),
		Category:    product.Category(),
		Price:       product.Price(),
		Price3Items: tierToNull(product.Price3Items()),
		Price5Items: tierToNull(product.Price5Items()),
		Stock:       product.Stock(),
		CreatedAt:   product.CreatedAt(),
		UpdatedAt:   product.UpdatedAt(),
	}

	if lpu := product.LastPriceUpdate(); lpu != nil {
		data.LastPriceUpdate = spanner.NullTime{Time: *lpu, Valid: true}
	}

	return data
}

// rowToDomain converts a Spanner row to a domain Product.
func (r *ProductRepo) rowToDomain(row *spanner.Row) (*domain.Product, error) {
	var data m_product.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse product: %w", err)
	}

	var lastPriceUpdate *time.Time
	if data.LastPriceUpdate.Valid {
		lastPriceUpdate = &data.LastPriceUpdate.Time
	}

	return domain.ReconstructProduct(
		data.ProductID,
		data.Name,
		data.Slug,
		data.Category,
		data.Price,
		nullToTier(data.Price3Items),
		nullToTier(data.Price5Items),
		data.Stock,
		lastPriceUpdate,
		data.CreatedAt,
		data.UpdatedAt,
		r.clock,
	), nil
}

func tierToNull(v *int64) spanner.NullInt64 {
	if v == nil {
		return spanner.NullInt64{}
	}
	return spanner.NullInt64{Int64: *v, Valid: true}
}

func nullToTier(v spanner.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	val := v.Int64
	return &val
}
