package services_test

import (
	"fmt"
	"testing"

	"talad/internal/models"
	"talad/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderRepository is a mock implementation of repositories.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetAll() ([]models.Order, error) {
	args := m.Called()
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByUserID(userID string) ([]models.Order, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) Create(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatus(id string, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

// MockChatRepository is a mock implementation of repositories.ChatRepository
type MockChatRepository struct {
	mock.Mock
}

func (m *MockChatRepository) ListByOrder(orderID string) ([]models.ChatMessage, error) {
	args := m.Called(orderID)
	return args.Get(0).([]models.ChatMessage), args.Error(1)
}

func (m *MockChatRepository) Create(msg *models.ChatMessage) error {
	args := m.Called(msg)
	return args.Error(0)
}

// MockPublisher is a mock implementation of services.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(routingKey string, body []byte) error {
	args := m.Called(routingKey, body)
	return args.Error(0)
}

func shirtProduct() *models.Product {
	return &models.Product{
		ID: "prod-1", Name: "เสื้อยืด", Price: 299, Stock: 100,
		Options: []models.ProductOption{
			{Name: "ขนาด", Values: []models.ProductOptionValue{
				{Value: "S", Price: 0, PriceType: models.PriceTypeAdd, Stock: 10},
				{Value: "M", Price: 50, PriceType: models.PriceTypeAdd, Stock: 2},
			}},
		},
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	mockOrderRepo := new(MockOrderRepository)
	mockProductRepo := new(MockProductRepository)
	mockChatRepo := new(MockChatRepository)
	mockMQ := new(MockPublisher)
	service := services.NewOrderService(mockOrderRepo, mockProductRepo, mockChatRepo, mockMQ)

	mockProductRepo.On("GetByID", "prod-1").Return(shirtProduct(), nil).Once()
	mockOrderRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Once()
	mockMQ.On("Publish", "order.created", mock.Anything).Return(nil).Once()

	order, err := service.CreateOrder(models.Order{
		UserID: "user-1",
		Items: []models.OrderItem{
			{ProductID: "prod-1", Quantity: 2, SelectedOptions: map[string]string{"ขนาด": "M"}},
		},
	})

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 349.0, order.Items[0].UnitPrice) // 299 + 50
	assert.Equal(t, 698.0, order.TotalAmount)
	assert.Equal(t, "เสื้อยืด", order.Items[0].ProductName)
	// The option tree is snapshotted so later product edits cannot change
	// what was agreed at checkout.
	require.Len(t, order.Items[0].OptionSnapshot, 1)
	assert.Equal(t, "ขนาด", order.Items[0].OptionSnapshot[0].Name)

	mockOrderRepo.AssertExpectations(t)
	mockProductRepo.AssertExpectations(t)
	mockMQ.AssertExpectations(t)
}

func TestOrderService_CreateOrder_InsufficientProductStock(t *testing.T) {
	mockOrderRepo := new(MockOrderRepository)
	mockProductRepo := new(MockProductRepository)
	service := services.NewOrderService(mockOrderRepo, mockProductRepo, new(MockChatRepository), new(MockPublisher))

	product := shirtProduct()
	product.Stock = 1
	mockProductRepo.On("GetByID", "prod-1").Return(product, nil).Once()

	_, err := service.CreateOrder(models.Order{
		UserID: "user-1",
		Items:  []models.OrderItem{{ProductID: "prod-1", Quantity: 2}},
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient stock")
	mockOrderRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestOrderService_CreateOrder_InsufficientOptionStock(t *testing.T) {
	mockOrderRepo := new(MockOrderRepository)
	mockProductRepo := new(MockProductRepository)
	service := services.NewOrderService(mockOrderRepo, mockProductRepo, new(MockChatRepository), new(MockPublisher))

	// Product-level stock is plentiful but the selected value only has 2.
	mockProductRepo.On("GetByID", "prod-1").Return(shirtProduct(), nil).Once()

	_, err := service.CreateOrder(models.Order{
		UserID: "user-1",
		Items: []models.OrderItem{
			{ProductID: "prod-1", Quantity: 3, SelectedOptions: map[string]string{"ขนาด": "M"}},
		},
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `insufficient stock for option "ขนาด: M"`)
	mockOrderRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestOrderService_CreateOrder_PublishFailureDoesNotFailOrder(t *testing.T) {
	mockOrderRepo := new(MockOrderRepository)
	mockProductRepo := new(MockProductRepository)
	mockMQ := new(MockPublisher)
	service := services.NewOrderService(mockOrderRepo, mockProductRepo, new(MockChatRepository), mockMQ)

	mockProductRepo.On("GetByID", "prod-1").Return(shirtProduct(), nil).Once()
	mockOrderRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Once()
	mockMQ.On("Publish", "order.created", mock.Anything).Return(fmt.Errorf("broker unavailable")).Once()

	order, err := service.CreateOrder(models.Order{
		UserID: "user-1",
		Items:  []models.OrderItem{{ProductID: "prod-1", Quantity: 1}},
	})
	assert.NoError(t, err)
	assert.NotNil(t, order)
	mockMQ.AssertExpectations(t)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	mockOrderRepo := new(MockOrderRepository)
	mockMQ := new(MockPublisher)
	service := services.NewOrderService(mockOrderRepo, new(MockProductRepository), new(MockChatRepository), mockMQ)

	mockOrderRepo.On("UpdateStatus", "order-1", models.OrderStatusShipped).Return(nil).Once()
	mockMQ.On("Publish", "order.status_updated", mock.Anything).Return(nil).Once()
	err := service.UpdateOrderStatus("order-1", models.OrderStatusShipped)
	assert.NoError(t, err)
	mockOrderRepo.AssertExpectations(t)

	err = service.UpdateOrderStatus("order-1", "teleported")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid order status")
}

func TestOrderService_Chat(t *testing.T) {
	mockOrderRepo := new(MockOrderRepository)
	mockChatRepo := new(MockChatRepository)
	mockMQ := new(MockPublisher)
	service := services.NewOrderService(mockOrderRepo, new(MockProductRepository), mockChatRepo, mockMQ)

	order := &models.Order{ID: "order-1", UserID: "user-1"}

	// Posting to a missing order fails before any write.
	mockOrderRepo.On("GetByID", "order-404").Return(nil, fmt.Errorf("order with ID order-404 not found")).Once()
	_, err := service.PostMessage("order-404", "user-1", "สวัสดีค่ะ")
	assert.Error(t, err)
	mockChatRepo.AssertNotCalled(t, "Create", mock.Anything)

	mockOrderRepo.On("GetByID", "order-1").Return(order, nil).Twice()
	mockChatRepo.On("Create", mock.AnythingOfType("*models.ChatMessage")).Return(nil).Once()
	mockMQ.On("Publish", "order.message", mock.Anything).Return(nil).Once()

	msg, err := service.PostMessage("order-1", "user-1", "สินค้าจะส่งเมื่อไหร่คะ")
	require.NoError(t, err)
	assert.Equal(t, "order-1", msg.OrderID)
	assert.NotEmpty(t, msg.ID)

	expected := []models.ChatMessage{{ID: msg.ID, OrderID: "order-1", SenderID: "user-1", Body: msg.Body}}
	mockChatRepo.On("ListByOrder", "order-1").Return(expected, nil).Once()
	messages, err := service.ListMessages("order-1")
	assert.NoError(t, err)
	assert.Len(t, messages, 1)

	mockOrderRepo.AssertExpectations(t)
	mockChatRepo.AssertExpectations(t)
	mockMQ.AssertExpectations(t)
}
