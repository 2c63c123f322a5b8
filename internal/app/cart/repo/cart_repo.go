package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/garasindo/sparepart-service/internal/app/cart/contracts"
	"github.com/garasindo/sparepart-service/internal/app/cart/domain"
	catalogdomain "github.com/garasindo/sparepart-service/internal/app/catalog/domain"
	"github.com/garasindo/sparepart-service/internal/models/m_cart_item"
	"github.com/garasindo/sparepart-service/internal/models/m_product"
)

// CartRepositoryImpl implements the CartRepository interface for Spanner.
type CartRepositoryImpl struct {
	client *spanner.Client
	model  *m_cart_item.Model
}

// NewCartRepository creates a new CartRepository implementation.
func NewCartRepository(client *spanner.Client) contracts.CartRepository {
	return &CartRepositoryImpl{
		client: client,
		model:  m_cart_item.NewModel(),
	}
}

// UpsertMut creates a mutation writing a cart line's quantity.
func (r *CartRepositoryImpl) UpsertMut(item *domain.CartItem) *spanner.Mutation {
	return r.model.UpsertMut(&m_cart_item.Data{
		UserID:    item.UserID(),
		ProductID: item.ProductID(),
		Quantity:  item.Quantity(),
	})
}

// DeleteMut creates a mutation removing one cart line.
func (r *CartRepositoryImpl) DeleteMut(userID, productID string) *spanner.Mutation {
	return r.model.DeleteMut(userID, productID)
}

// ClearMut creates a mutation removing every line of a user's cart.
func (r *CartRepositoryImpl) ClearMut(userID string) *spanner.Mutation {
	return r.model.DeleteAllMut(userID)
}

// GetItem reads one cart line.
func (r *CartRepositoryImpl) GetItem(ctx context.Context, userID, productID string) (*domain.CartItem, error) {
	row, err := r.client.Single().ReadRow(ctx, m_cart_item.TableName, spanner.Key{userID, productID}, m_cart_item.ReadColumns())
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrCartItemNotFound
		}
		return nil, fmt.Errorf("failed to read cart item: %w", err)
	}

	return rowToDomain(row)
}

// GetItemInTxn reads one cart line inside an open read-write transaction.
func (r *CartRepositoryImpl) GetItemInTxn(ctx context.Context, txn *spanner.ReadWriteTransaction, userID, productID string) (*domain.CartItem, error) {
	row, err := txn.ReadRow(ctx, m_cart_item.TableName, spanner.Key{userID, productID}, m_cart_item.ReadColumns())
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrCartItemNotFound
		}
		return nil, fmt.Errorf("failed to read cart item: %w", err)
	}

	return rowToDomain(row)
}

// ListInTxn reads all of a user's cart lines inside an open read-write
// transaction. Checkout uses this so the lines it prices are the lines it
// clears.
func (r *CartRepositoryImpl) ListInTxn(ctx context.Context, txn *spanner.ReadWriteTransaction, userID string) ([]*domain.CartItem, error) {
	iter := txn.Read(ctx, m_cart_item.TableName, spanner.Key{userID}.AsPrefix(), m_cart_item.ReadColumns())
	defer iter.Stop()

	items := make([]*domain.CartItem, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate cart items: %w", err)
		}

		item, err := rowToDomain(row)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// ListLines reads the user's cart joined with the product rows for display.
// Unit prices are tier-resolved per line quantity.
func (r *CartRepositoryImpl) ListLines(ctx context.Context, userID string) ([]*contracts.CartLineDTO, error) {
	stmt := spanner.Statement{
		SQL: fmt.Sprintf(`SELECT c.%s, c.%s, p.%s, p.%s, p.%s, p.%s, p.%s
			FROM %s AS c
			JOIN %s AS p ON p.%s = c.%s
			WHERE c.%s = @userID
			ORDER BY c.%s`,
			m_cart_item.ProductID, m_cart_item.Quantity,
			m_product.Name, m_product.Slug, m_product.Price, m_product.Price3Items, m_product.Price5Items,
			m_cart_item.TableName,
			m_product.TableName, m_product.ProductID, m_cart_item.ProductID,
			m_cart_item.UserID,
			m_cart_item.CreatedAt,
		),
		Params: map[string]interface{}{"userID": userID},
	}

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	lines := make([]*contracts.CartLineDTO, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate cart lines: %w", err)
		}

		var (
			productID, name, slug string
			quantity, price       int64
			price3, price5        spanner.NullInt64
		)
		if err := row.Columns(&productID, &quantity, &name, &slug, &price, &price3, &price5); err != nil {
			return nil, fmt.Errorf("failed to parse cart line: %w", err)
		}

		var p3, p5 *int64
		if price3.Valid {
			p3 = &price3.Int64
		}
		if price5.Valid {
			p5 = &price5.Int64
		}

		unit := catalogdomain.TierUnitPrice(price, p3, p5, quantity)
		lines = append(lines, &contracts.CartLineDTO{
			ProductID: productID,
			Name:      name,
			Slug:      slug,
			Quantity:  quantity,
			UnitPrice: unit,
			Subtotal:  unit * quantity,
		})
	}

	return lines, nil
}

func rowToDomain(row *spanner.Row) (*domain.CartItem, error) {
	var data m_cart_item.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse cart item: %w", err)
	}

	return domain.ReconstructCartItem(data.UserID, data.ProductID, data.Quantity), nil
}
