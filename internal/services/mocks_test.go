package services

import (
	"context"
	"io"
	"time"

	"ukitchen/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) List(ctx context.Context, filter *models.OrderSearchFilter) ([]*models.Order, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*models.Order), args.Error(1)
}

type MockTableRepository struct {
	mock.Mock
}

func (m *MockTableRepository) Create(ctx context.Context, table *models.Table) error {
	args := m.Called(ctx, table)
	return args.Error(0)
}

func (m *MockTableRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Table, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Table), args.Error(1)
}

func (m *MockTableRepository) Update(ctx context.Context, table *models.Table) error {
	args := m.Called(ctx, table)
	return args.Error(0)
}

func (m *MockTableRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTableRepository) List(ctx context.Context, filter *models.TableSearchFilter) ([]*models.Table, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*models.Table), args.Error(1)
}

func (m *MockTableRepository) SetOccupied(ctx context.Context, id uuid.UUID, occupied bool) error {
	args := m.Called(ctx, id, occupied)
	return args.Error(0)
}

type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) Update(ctx context.Context, employee *models.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEmployeeRepository) List(ctx context.Context, filter *models.EmployeeSearchFilter) ([]*models.Employee, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*models.Employee), args.Error(1)
}

type MockCacheService struct {
	mock.Mock
}

func (m *MockCacheService) GetDish(ctx context.Context, dishID uuid.UUID) (*models.Dish, error) {
	args := m.Called(ctx, dishID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Dish), args.Error(1)
}

func (m *MockCacheService) SetDish(ctx context.Context, dish *models.Dish, ttl time.Duration) error {
	args := m.Called(ctx, dish, ttl)
	return args.Error(0)
}

func (m *MockCacheService) DeleteDish(ctx context.Context, dishID uuid.UUID) error {
	args := m.Called(ctx, dishID)
	return args.Error(0)
}

func (m *MockCacheService) GetDishCatalog(ctx context.Context) ([]*models.Dish, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Dish), args.Error(1)
}

func (m *MockCacheService) SetDishCatalog(ctx context.Context, dishes []*models.Dish, ttl time.Duration) error {
	args := m.Called(ctx, dishes, ttl)
	return args.Error(0)
}

func (m *MockCacheService) InvalidateDishCatalog(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCacheService) GetIngredient(ctx context.Context, ingredientID uuid.UUID) (*models.Ingredient, error) {
	args := m.Called(ctx, ingredientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ingredient), args.Error(1)
}

func (m *MockCacheService) SetIngredient(ctx context.Context, ingredient *models.Ingredient, ttl time.Duration) error {
	args := m.Called(ctx, ingredient, ttl)
	return args.Error(0)
}

func (m *MockCacheService) DeleteIngredient(ctx context.Context, ingredientID uuid.UUID) error {
	args := m.Called(ctx, ingredientID)
	return args.Error(0)
}

func (m *MockCacheService) GetCart(ctx context.Context, clientID uuid.UUID) (models.Cart, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.Cart), args.Error(1)
}

func (m *MockCacheService) SetCart(ctx context.Context, clientID uuid.UUID, cart models.Cart, ttl time.Duration) error {
	args := m.Called(ctx, clientID, cart, ttl)
	return args.Error(0)
}

func (m *MockCacheService) DeleteCart(ctx context.Context, clientID uuid.UUID) error {
	args := m.Called(ctx, clientID)
	return args.Error(0)
}

func (m *MockCacheService) SetString(ctx context.Context, key string, value string, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheService) GetString(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCacheService) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type MockDishService struct {
	mock.Mock
}

func (m *MockDishService) Create(ctx context.Context, dish *models.Dish) error {
	args := m.Called(ctx, dish)
	return args.Error(0)
}

func (m *MockDishService) GetByID(ctx context.Context, id uuid.UUID) (*models.Dish, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Dish), args.Error(1)
}

func (m *MockDishService) Update(ctx context.Context, dish *models.Dish) error {
	args := m.Called(ctx, dish)
	return args.Error(0)
}

func (m *MockDishService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDishService) List(ctx context.Context, filter *models.DishSearchFilter) ([]*models.Dish, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*models.Dish), args.Error(1)
}

func (m *MockDishService) Catalog(ctx context.Context) ([]*models.Dish, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Dish), args.Error(1)
}

func (m *MockDishService) UploadPicture(ctx context.Context, id uuid.UUID, contentType string, reader io.Reader, size int64) (string, error) {
	args := m.Called(ctx, id, contentType, reader, size)
	return args.String(0), args.Error(1)
}

func (m *MockDishService) PictureURL(ctx context.Context, id uuid.UUID) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) Create(ctx context.Context, client *models.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}

func (m *MockClientRepository) Update(ctx context.Context, client *models.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockClientRepository) List(ctx context.Context, limit, offset int) ([]*models.Client, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Client), args.Error(1)
}

type MockBillRepository struct {
	mock.Mock
}

func (m *MockBillRepository) Create(ctx context.Context, bill *models.Bill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *MockBillRepository) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*models.Bill, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bill), args.Error(1)
}

func (m *MockBillRepository) SetPDFObject(ctx context.Context, id uuid.UUID, objectName string) error {
	args := m.Called(ctx, id, objectName)
	return args.Error(0)
}

type MockDishRepository struct {
	mock.Mock
}

func (m *MockDishRepository) Create(ctx context.Context, dish *models.Dish) error {
	args := m.Called(ctx, dish)
	return args.Error(0)
}

func (m *MockDishRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Dish, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Dish), args.Error(1)
}

func (m *MockDishRepository) Update(ctx context.Context, dish *models.Dish) error {
	args := m.Called(ctx, dish)
	return args.Error(0)
}

func (m *MockDishRepository) UpdatePicture(ctx context.Context, id uuid.UUID, objectName string) error {
	args := m.Called(ctx, id, objectName)
	return args.Error(0)
}

func (m *MockDishRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDishRepository) List(ctx context.Context, filter *models.DishSearchFilter) ([]*models.Dish, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Dish), args.Error(1)
}

type MockMinioService struct {
	mock.Mock
}

func (m *MockMinioService) UploadObject(ctx context.Context, bucketName, objectName, contentType string, reader io.Reader, objectSize int64) error {
	args := m.Called(ctx, bucketName, objectName, contentType, reader, objectSize)
	return args.Error(0)
}

func (m *MockMinioService) GetPresignedURL(bucketName, objectName string, expiry time.Duration) (string, error) {
	args := m.Called(bucketName, objectName, expiry)
	return args.String(0), args.Error(1)
}

func (m *MockMinioService) DeleteObject(ctx context.Context, bucketName, objectName string) error {
	args := m.Called(ctx, bucketName, objectName)
	return args.Error(0)
}

func (m *MockMinioService) EnsureBucketExists(ctx context.Context, bucketName string) error {
	args := m.Called(ctx, bucketName)
	return args.Error(0)
}
