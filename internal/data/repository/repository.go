package repository

import (
	"context"

	"retail-backend/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Transactor runs fn with repositories bound to a single transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(repos *Repository) error) error
}

type Repository struct {
	User     UserRepository
	Token    TokenRepository
	Session  SessionRepository
	Shop     ShopRepository
	Category CategoryRepository
	Product  ProductRepository
	Contact  ContactRepository
	Order    OrderRepository

	db  database.PgxIface
	log *zap.Logger
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	repos := newRepositories(db, log)
	repos.db = db
	repos.log = log
	return repos
}

func newRepositories(db database.DBTX, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Token:    NewTokenRepository(db, log),
		Session:  NewSessionRepository(db, log),
		Shop:     NewShopRepository(db, log),
		Category: NewCategoryRepository(db, log),
		Product:  NewProductRepository(db, log),
		Contact:  NewContactRepository(db, log),
		Order:    NewOrderRepository(db, log),
	}
}

func (r *Repository) WithinTx(ctx context.Context, fn func(repos *Repository) error) error {
	return database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		return fn(newRepositories(tx, r.log))
	})
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}
