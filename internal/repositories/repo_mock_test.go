package repositories_test

import (
	"testing"
	"time"

	"talad/internal/models"
	"talad/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The in-memory repositories back development and test setups that run
// without a database. They must honor the same contracts as the GORM
// implementations: ID assignment on create, filter semantics, and the
// "not found" error wording the handlers map to 404s.

func TestMockProductRepository_FilterAndCRUD(t *testing.T) {
	repo := repositories.NewMockProductRepository()

	shirt := &models.Product{Name: "เสื้อยืดคอกลม", Category: "เสื้อผ้า", SellerID: "seller-1", Price: 299}
	bag := &models.Product{Name: "กระเป๋าผ้า", Category: "กระเป๋า", SellerID: "seller-2", Price: 159}
	require.NoError(t, repo.Create(shirt))
	require.NoError(t, repo.Create(bag))
	assert.NotEmpty(t, shirt.ID) // IDs are assigned on create

	all, err := repo.GetAll(repositories.ProductFilter{})
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	byCategory, err := repo.GetAll(repositories.ProductFilter{Category: "เสื้อผ้า"})
	assert.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "เสื้อยืดคอกลม", byCategory[0].Name)

	bySeller, err := repo.GetAll(repositories.ProductFilter{SellerID: "seller-2"})
	assert.NoError(t, err)
	require.Len(t, bySeller, 1)
	assert.Equal(t, "กระเป๋าผ้า", bySeller[0].Name)

	bySearch, err := repo.GetAll(repositories.ProductFilter{Search: "กระเป๋า"})
	assert.NoError(t, err)
	assert.Len(t, bySearch, 1)

	fetched, err := repo.GetByID(shirt.ID)
	require.NoError(t, err)
	assert.Equal(t, shirt.Name, fetched.Name)

	_, err = repo.GetByID("missing")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	shirt.Price = 319
	require.NoError(t, repo.Update(shirt))
	fetched, err = repo.GetByID(shirt.ID)
	require.NoError(t, err)
	assert.Equal(t, 319.0, fetched.Price)

	err = repo.Update(&models.Product{ID: "missing", Name: "ไม่มีอยู่จริง"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found for update")

	require.NoError(t, repo.Delete(bag.ID))
	all, err = repo.GetAll(repositories.ProductFilter{})
	assert.NoError(t, err)
	assert.Len(t, all, 1)

	err = repo.Delete("missing")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found for deletion")
}

func TestMockOrderRepository_CreateAndStatus(t *testing.T) {
	repo := repositories.NewMockOrderRepository()

	order := &models.Order{
		UserID: "user-1",
		Status: models.OrderStatusPending,
		Items: []models.OrderItem{
			{ProductID: "prod-1", ProductName: "เสื้อยืด", Quantity: 2, UnitPrice: 349},
		},
		TotalAmount: 698,
	}
	require.NoError(t, repo.Create(order))
	assert.NotEmpty(t, order.ID)
	assert.False(t, order.CreatedAt.IsZero())

	require.NoError(t, repo.Create(&models.Order{UserID: "user-2", Status: models.OrderStatusPending}))

	all, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := repo.GetByUserID("user-1")
	assert.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, order.ID, mine[0].ID)

	fetched, err := repo.GetByID(order.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Items, 1)
	assert.Equal(t, 698.0, fetched.TotalAmount)

	_, err = repo.GetByID("missing")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	require.NoError(t, repo.UpdateStatus(order.ID, models.OrderStatusPaid))
	fetched, err = repo.GetByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPaid, fetched.Status)

	err = repo.UpdateStatus("missing", models.OrderStatusPaid)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found for status update")
}

func TestMockChatRepository_OrdersMessagesByTime(t *testing.T) {
	repo := repositories.NewMockChatRepository()

	now := time.Now()
	later := &models.ChatMessage{OrderID: "order-1", SenderID: "seller-1", Body: "จัดส่งพรุ่งนี้ครับ", CreatedAt: now}
	earlier := &models.ChatMessage{OrderID: "order-1", SenderID: "user-1", Body: "ส่งของเมื่อไหร่คะ", CreatedAt: now.Add(-time.Minute)}

	// Inserted newest first; listing must come back oldest first.
	require.NoError(t, repo.Create(later))
	require.NoError(t, repo.Create(earlier))
	assert.NotEmpty(t, later.ID)

	messages, err := repo.ListByOrder("order-1")
	assert.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "ส่งของเมื่อไหร่คะ", messages[0].Body)
	assert.Equal(t, "จัดส่งพรุ่งนี้ครับ", messages[1].Body)

	empty, err := repo.ListByOrder("order-2")
	assert.NoError(t, err)
	assert.Empty(t, empty)
}
