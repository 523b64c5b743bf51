package usecase

import (
	"context"

	"retail-backend/internal/data/entity"
	"retail-backend/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// --- Repository mocks ---

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

type MockTokenRepository struct{ mock.Mock }

func (m *MockTokenRepository) Create(ctx context.Context, token *entity.ConfirmEmailToken) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockTokenRepository) FindByEmailAndKey(ctx context.Context, email, key string) (*entity.ConfirmEmailToken, error) {
	args := m.Called(ctx, email, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ConfirmEmailToken), args.Error(1)
}

func (m *MockTokenRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockSessionRepository struct{ mock.Mock }

func (m *MockSessionRepository) Create(ctx context.Context, session *entity.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *MockSessionRepository) FindValidSession(ctx context.Context, token uuid.UUID) (*entity.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Session), args.Error(1)
}

func (m *MockSessionRepository) Revoke(ctx context.Context, token uuid.UUID) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockSessionRepository) RevokeAllUserSessions(ctx context.Context, userID uuid.UUID, except uuid.UUID) error {
	return m.Called(ctx, userID, except).Error(0)
}

func (m *MockSessionRepository) CleanExpiredSessions(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockShopRepository struct{ mock.Mock }

func (m *MockShopRepository) Upsert(ctx context.Context, shop *entity.Shop) error {
	return m.Called(ctx, shop).Error(0)
}

func (m *MockShopRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Shop, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Shop), args.Error(1)
}

func (m *MockShopRepository) FindActive(ctx context.Context) ([]entity.Shop, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Shop), args.Error(1)
}

func (m *MockShopRepository) UpdateState(ctx context.Context, userID uuid.UUID, state bool) (*entity.Shop, error) {
	args := m.Called(ctx, userID, state)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Shop), args.Error(1)
}

type MockCategoryRepository struct{ mock.Mock }

func (m *MockCategoryRepository) FindAll(ctx context.Context) ([]entity.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Category), args.Error(1)
}

func (m *MockCategoryRepository) Upsert(ctx context.Context, category *entity.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) LinkShop(ctx context.Context, shopID, categoryID int64) error {
	return m.Called(ctx, shopID, categoryID).Error(0)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) UpsertProduct(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) UpsertInfo(ctx context.Context, info *entity.ProductInfo) error {
	return m.Called(ctx, info).Error(0)
}

func (m *MockProductRepository) DeleteStaleInfos(ctx context.Context, shopID int64, keep []int64) (int64, error) {
	args := m.Called(ctx, shopID, keep)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) UpsertParameter(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) ReplaceParameters(ctx context.Context, productInfoID int64, values []repository.ParameterValue) error {
	return m.Called(ctx, productInfoID, values).Error(0)
}

func (m *MockProductRepository) FindInfos(ctx context.Context, filter repository.ProductFilter, offset, limit int) ([]entity.ProductInfoView, error) {
	args := m.Called(ctx, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ProductInfoView), args.Error(1)
}

func (m *MockProductRepository) FindInfosByIDs(ctx context.Context, ids []int64) ([]entity.ProductInfoView, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ProductInfoView), args.Error(1)
}

func (m *MockProductRepository) FindInfoByID(ctx context.Context, id int64) (*entity.ProductInfo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ProductInfo), args.Error(1)
}

type MockContactRepository struct{ mock.Mock }

func (m *MockContactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	return m.Called(ctx, contact).Error(0)
}

func (m *MockContactRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]entity.Contact, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Contact), args.Error(1)
}

func (m *MockContactRepository) FindByIDForUser(ctx context.Context, id int64, userID uuid.UUID) (*entity.Contact, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Contact), args.Error(1)
}

func (m *MockContactRepository) Update(ctx context.Context, contact *entity.Contact) error {
	return m.Called(ctx, contact).Error(0)
}

func (m *MockContactRepository) DeleteByIDs(ctx context.Context, userID uuid.UUID, ids []int64) (int64, error) {
	args := m.Called(ctx, userID, ids)
	return args.Get(0).(int64), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) FindBasket(ctx context.Context, userID uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *MockOrderRepository) GetOrCreateBasket(ctx context.Context, userID uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *MockOrderRepository) UpsertItem(ctx context.Context, orderID, productInfoID int64, quantity int) error {
	return m.Called(ctx, orderID, productInfoID, quantity).Error(0)
}

func (m *MockOrderRepository) UpdateItemQuantity(ctx context.Context, orderID, itemID int64, quantity int) (int64, error) {
	args := m.Called(ctx, orderID, itemID, quantity)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) DeleteItems(ctx context.Context, orderID int64, itemIDs []int64) (int64, error) {
	args := m.Called(ctx, orderID, itemIDs)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) CountItems(ctx context.Context, orderID int64) (int, error) {
	args := m.Called(ctx, orderID)
	return args.Int(0), args.Error(1)
}

func (m *MockOrderRepository) FindByIDForUser(ctx context.Context, id int64, userID uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStateAndContact(ctx context.Context, id int64, state entity.OrderState, contactID int64) error {
	return m.Called(ctx, id, state, contactID).Error(0)
}

func (m *MockOrderRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]entity.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByShop(ctx context.Context, shopID int64) ([]entity.Order, error) {
	args := m.Called(ctx, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Order), args.Error(1)
}

func (m *MockOrderRepository) FindItems(ctx context.Context, orderIDs []int64, shopID *int64) ([]entity.OrderItem, error) {
	args := m.Called(ctx, orderIDs, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.OrderItem), args.Error(1)
}

// --- Collaborators ---

type MockMailer struct{ mock.Mock }

func (m *MockMailer) Send(ctx context.Context, to, subject, body string) error {
	return m.Called(ctx, to, subject, body).Error(0)
}

type MockSource struct{ mock.Mock }

func (m *MockSource) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	args := m.Called(ctx, rawURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// fakeTx runs the callback against the same mocked repositories.
type fakeTx struct {
	repos *repository.Repository
	calls int
}

func (f *fakeTx) WithinTx(ctx context.Context, fn func(repos *repository.Repository) error) error {
	f.calls++
	return fn(f.repos)
}

type mockRepos struct {
	User     *MockUserRepository
	Token    *MockTokenRepository
	Session  *MockSessionRepository
	Shop     *MockShopRepository
	Category *MockCategoryRepository
	Product  *MockProductRepository
	Contact  *MockContactRepository
	Order    *MockOrderRepository
}

func newMockRepos() (*mockRepos, *repository.Repository, *fakeTx) {
	m := &mockRepos{
		User:     new(MockUserRepository),
		Token:    new(MockTokenRepository),
		Session:  new(MockSessionRepository),
		Shop:     new(MockShopRepository),
		Category: new(MockCategoryRepository),
		Product:  new(MockProductRepository),
		Contact:  new(MockContactRepository),
		Order:    new(MockOrderRepository),
	}
	repo := &repository.Repository{
		User:     m.User,
		Token:    m.Token,
		Session:  m.Session,
		Shop:     m.Shop,
		Category: m.Category,
		Product:  m.Product,
		Contact:  m.Contact,
		Order:    m.Order,
	}
	return m, repo, &fakeTx{repos: repo}
}
