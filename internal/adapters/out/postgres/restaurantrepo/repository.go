// Package restaurantrepo reads restaurant catalogs. The same lookup serves the
// order side (restaurant.Restaurant) and the approval side (ports.RestaurantCatalog).
package restaurantrepo

import (
	"context"

	"foodordering/internal/core/domain/model/approval"
	"foodordering/internal/core/domain/model/kernel"
	"foodordering/internal/core/domain/model/order"
	"foodordering/internal/core/domain/model/restaurant"
	"foodordering/internal/core/ports"
	"foodordering/internal/pkg/errs"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// catalogRow is one row of the restaurant catalog lookup. Product columns are
// NULL when the restaurant sells none of the requested products.
type catalogRow struct {
	RestaurantID     uuid.UUID
	RestaurantActive bool
	ProductID        *uuid.UUID
	ProductName      *string
	ProductPrice     decimal.NullDecimal
	ProductAvailable *bool
}

type catalogReader struct {
	db      *gorm.DB
	builder sq.StatementBuilderType
}

func newCatalogReader(db *gorm.DB) catalogReader {
	return catalogReader{db: db, builder: sq.StatementBuilder.PlaceholderFormat(sq.Question)}
}

// read returns the restaurant with the requested products it sells, or
// errs.ObjectNotFoundError when the restaurant does not exist.
func (c catalogReader) read(
	ctx context.Context,
	id kernel.RestaurantID,
	productIDs []kernel.ProductID,
) ([]catalogRow, error) {
	ids := make([]string, 0, len(productIDs))
	for _, p := range productIDs {
		ids = append(ids, p.String())
	}

	joinCond, joinArgs, err := sq.And{
		sq.Expr("rp.restaurant_id = r.id"),
		sq.Eq{"rp.product_id": ids},
	}.ToSql()
	if err != nil {
		return nil, err
	}

	statement, args, err := c.builder.
		Select(
			"r.id AS restaurant_id",
			"r.active AS restaurant_active",
			"p.id AS product_id",
			"p.name AS product_name",
			"p.price AS product_price",
			"p.available AS product_available",
		).
		From("restaurants r").
		LeftJoin("restaurant_products rp ON "+joinCond, joinArgs...).
		LeftJoin("products p ON p.id = rp.product_id").
		Where(sq.Eq{"r.id": id.String()}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []catalogRow
	if err = c.db.WithContext(ctx).Raw(statement, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errs.NewObjectNotFoundError("restaurant", id.String())
	}
	return rows, nil
}

// GormRestaurantRepository implements ports.RestaurantRepository.
type GormRestaurantRepository struct {
	reader catalogReader
}

func NewGormRestaurantRepository(db *gorm.DB) *GormRestaurantRepository {
	return &GormRestaurantRepository{reader: newCatalogReader(db)}
}

func (r *GormRestaurantRepository) FindRestaurantInformation(
	ctx context.Context,
	query *restaurant.Restaurant,
) (*restaurant.Restaurant, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := r.reader.read(ctx, query.ID(), query.ProductIDs())
	if err != nil {
		return nil, err
	}

	products := make([]*order.Product, 0, len(rows))
	for _, row := range rows {
		if row.ProductID == nil {
			continue
		}
		price, priceErr := kernel.NewMoney(row.ProductPrice.Decimal)
		if priceErr != nil {
			return nil, priceErr
		}
		p, pErr := order.NewProduct(kernel.ProductID{UUID: mustUUID(*row.ProductID)}, deref(row.ProductName), price)
		if pErr != nil {
			return nil, pErr
		}
		products = append(products, p)
	}

	return restaurant.NewRestaurant(query.ID(), products, rows[0].RestaurantActive)
}

// GormApprovalRestaurantRepository implements ports.ApprovalRestaurantRepository.
type GormApprovalRestaurantRepository struct {
	reader catalogReader
}

func NewGormApprovalRestaurantRepository(db *gorm.DB) *GormApprovalRestaurantRepository {
	return &GormApprovalRestaurantRepository{reader: newCatalogReader(db)}
}

func (r *GormApprovalRestaurantRepository) FindRestaurantInformation(
	ctx context.Context,
	id kernel.RestaurantID,
	productIDs []kernel.ProductID,
) (ports.RestaurantCatalog, error) {
	rows, err := r.reader.read(ctx, id, productIDs)
	if err != nil {
		return ports.RestaurantCatalog{}, err
	}

	catalog := ports.RestaurantCatalog{Active: rows[0].RestaurantActive}
	for _, row := range rows {
		if row.ProductID == nil {
			continue
		}
		price, priceErr := kernel.NewMoney(row.ProductPrice.Decimal)
		if priceErr != nil {
			return ports.RestaurantCatalog{}, priceErr
		}
		available := row.ProductAvailable != nil && *row.ProductAvailable
		p, pErr := approval.NewCatalogProduct(kernel.ProductID{UUID: mustUUID(*row.ProductID)},
			deref(row.ProductName), price, available)
		if pErr != nil {
			return ports.RestaurantCatalog{}, pErr
		}
		catalog.Products = append(catalog.Products, p)
	}
	return catalog, nil
}

// mustUUID converts a uuid scanned from a NOT NULL primary key column.
func mustUUID(id uuid.UUID) kernel.UUID {
	u, _ := kernel.UUIDFromBytes(id[:])
	return u
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
