package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/garasindo/sparepart-service/internal/app/catalog/contracts"
	"github.com/garasindo/sparepart-service/internal/app/catalog/domain"
	"github.com/garasindo/sparepart-service/internal/models/m_product"
	"github.com/garasindo/sparepart-service/internal/pkg/query"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ReadModelImpl implements the catalog ReadModel for Spanner.
type ReadModelImpl struct {
	client *spanner.Client
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModelImpl{
		client: client,
	}
}

// GetProductByID retrieves a product DTO by ID.
func (rm *ReadModelImpl) GetProductByID(ctx context.Context, productID string) (*contracts.ProductDTO, error) {
	row, err := rm.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, m_product.ReadColumns())
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to read product: %w", err)
	}

	return rowToDTO(row)
}

// GetProductBySlug retrieves a product DTO by its URL slug.
func (rm *ReadModelImpl) GetProductBySlug(ctx context.Context, slug string) (*contracts.ProductDTO, error) {
	stmt := query.From(m_product.TableName).
		Select(m_product.ReadColumns()...).
		Where(query.Eq(m_product.Slug, slug)).
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read product by slug: %w", err)
	}

	return rowToDTO(row)
}

// ListProducts retrieves a paginated, filtered product listing together with
// the unpaged total count.
func (rm *ReadModelImpl) ListProducts(ctx context.Context, filter *contracts.ListFilter) (*contracts.ListResult, error) {
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	base := query.From(m_product.TableName).Select(m_product.ReadColumns()...)
	if filter.Category != "" {
		base = base.Where(query.Eq(m_product.Category, filter.Category))
	}
	if filter.NamePrefix != "" {
		base = base.Where(query.StartsWith(m_product.Name, filter.NamePrefix))
	}

	stmt := base.
		OrderBy(m_product.CreatedAt, query.Desc).
		Limit(pageSize).
		Offset(filter.Offset).
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	products := make([]*contracts.ProductDTO, 0, pageSize)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate products: %w", err)
		}

		dto, err := rowToDTO(row)
		if err != nil {
			return nil, err
		}
		products = append(products, dto)
	}

	total, err := rm.countProducts(ctx, base)
	if err != nil {
		return nil, err
	}

	return &contracts.ListResult{
		Products:   products,
		TotalCount: total,
	}, nil
}

func (rm *ReadModelImpl) countProducts(ctx context.Context, base *query.Builder) (int64, error) {
	iter := rm.client.Single().Query(ctx, base.Count().Build())
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}

	var count int64
	if err := row.Column(0, &count); err != nil {
		return 0, fmt.Errorf("failed to parse product count: %w", err)
	}
	return count, nil
}

func rowToDTO(row *spanner.Row) (*contracts.ProductDTO, error) {
	var data m_product.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse product: %w", err)
	}

	dto := &contracts.ProductDTO{
		ProductID: data.ProductID,
		Name:      data.Name,
		Slug:      data.Slug,
		Category:  data.Category,
		Price:     data.Price,
		Stock:     data.Stock,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}

	if data.Price3Items.Valid {
		v := data.Price3Items.Int64
		dto.Price3Items = &v
	}
	if data.Price5Items.Valid {
		v := data.Price5Items.Int64
		dto.Price5Items = &v
	}
	if data.LastPriceUpdate.Valid {
		t := data.LastPriceUpdate.Time
		dto.LastPriceUpdate = &t
	}

	return dto, nil
}
