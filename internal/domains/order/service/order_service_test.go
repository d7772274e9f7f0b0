package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	couponmodel "cafepos-backend/internal/domains/coupon/model"
	couponrepo "cafepos-backend/internal/domains/coupon/repository"
	couponservice "cafepos-backend/internal/domains/coupon/service"
	inventorymodel "cafepos-backend/internal/domains/inventory/model"
	inventoryrepo "cafepos-backend/internal/domains/inventory/repository"
	inventoryservice "cafepos-backend/internal/domains/inventory/service"
	menumodel "cafepos-backend/internal/domains/menu/model"
	menurepo "cafepos-backend/internal/domains/menu/repository"
	menuservice "cafepos-backend/internal/domains/menu/service"
	"cafepos-backend/internal/domains/order/model"
	"cafepos-backend/internal/domains/order/repository"
	"cafepos-backend/internal/infrastructure/store"
)

var testActor = model.Actor{UserID: "staff-1", UserName: "Minh"}

type fixture struct {
	orders    ServiceInterface
	menu      menuservice.ServiceInterface
	inventory inventoryservice.ServiceInterface
	coupons   couponservice.ServiceInterface
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	s, err := store.New(t.TempDir())
	require.NoError(t, err)

	menuSvc := menuservice.NewMenuService(menurepo.NewStoreRepository(s))
	invSvc := inventoryservice.NewInventoryService(inventoryrepo.NewStoreRepository(s))
	couponSvc := couponservice.NewCouponService(couponrepo.NewStoreRepository(s))
	orderSvc := NewOrderService(repository.NewStoreRepository(s), menuSvc, invSvc, couponSvc)

	return &fixture{orders: orderSvc, menu: menuSvc, inventory: invSvc, coupons: couponSvc}
}

func (f *fixture) addMenuItem(t *testing.T, name string, price int64) *menumodel.MenuItem {
	t.Helper()
	item, err := f.menu.CreateMenuItem(context.Background(), menumodel.CreateMenuItemRequest{
		Name:  name,
		Price: decimal.NewFromInt(price),
	})
	require.NoError(t, err)
	return item
}

func TestCreateOrder_Cash(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	americano := f.addMenuItem(t, "Americano", 4000)
	latte := f.addMenuItem(t, "Latte", 5000)

	order, err := f.orders.CreateOrder(ctx, model.CreateOrderRequest{
		Items: []model.CreateOrderLine{
			{MenuID: americano.ID, Quantity: 2},
			{MenuID: latte.ID, Quantity: 1},
		},
		PaymentMethod: model.PaymentCash,
	}, testActor)
	require.NoError(t, err)

	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(13000)))
	assert.Equal(t, model.StatusCompleted, order.Status)
	assert.Empty(t, order.CouponIDs)
	assert.Equal(t, testActor, order.ServedBy)

	// order number theo ngày, bắt đầu từ 001
	wantPrefix := time.Now().Format("20060102") + "-001"
	assert.Equal(t, wantPrefix, order.OrderNumber)

	second, err := f.orders.CreateOrder(ctx, model.CreateOrderRequest{
		Items:         []model.CreateOrderLine{{MenuID: latte.ID, Quantity: 1}},
		PaymentMethod: model.PaymentCash,
	}, testActor)
	require.NoError(t, err)
	assert.Equal(t, time.Now().Format("20060102")+"-002", second.OrderNumber)
}

func TestCreateOrder_CouponSettlement(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	latte := f.addMenuItem(t, "Latte", 5000)

	coupon, err := f.coupons.CreateCoupon(ctx, couponmodel.CreateCouponRequest{
		Name:   "VIP",
		Amount: decimal.NewFromInt(20000),
	}, couponmodel.Actor{UserID: testActor.UserID, UserName: testActor.UserName})
	require.NoError(t, err)

	order, err := f.orders.CreateOrder(ctx, model.CreateOrderRequest{
		Items:         []model.CreateOrderLine{{MenuID: latte.ID, Quantity: 2}},
		PaymentMethod: model.PaymentCoupon,
		CouponIDs:     []string{coupon.ID},
	}, testActor)
	require.NoError(t, err)

	assert.Equal(t, []string{coupon.ID}, order.CouponIDs)

	got, err := f.coupons.GetCoupon(ctx, coupon.ID)
	require.NoError(t, err)
	assert.True(t, got.Balance.Equal(decimal.NewFromInt(10000)))
}

func TestCreateOrder_CouponInsufficientRejectsOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	latte := f.addMenuItem(t, "Latte", 5000)

	coupon, err := f.coupons.CreateCoupon(ctx, couponmodel.CreateCouponRequest{
		Name:   "SMALL",
		Amount: decimal.NewFromInt(3000),
	}, couponmodel.Actor{UserID: testActor.UserID, UserName: testActor.UserName})
	require.NoError(t, err)

	_, err = f.orders.CreateOrder(ctx, model.CreateOrderRequest{
		Items:         []model.CreateOrderLine{{MenuID: latte.ID, Quantity: 1}},
		PaymentMethod: model.PaymentCoupon,
		CouponIDs:     []string{coupon.ID},
	}, testActor)

	var couponErr *couponmodel.AppError
	require.ErrorAs(t, err, &couponErr)
	assert.Equal(t, couponmodel.ErrCodeCouponInsufficientBalance, couponErr.Code)

	// ledger reject thì order không được ghi
	orders, err := f.orders.ListOrders(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, orders)

	// và coupon không bị trừ
	got, err := f.coupons.GetCoupon(ctx, coupon.ID)
	require.NoError(t, err)
	assert.True(t, got.Balance.Equal(decimal.NewFromInt(3000)))
}

func TestCreateOrder_ConsumesInventory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	latte := f.addMenuItem(t, "Latte", 5000)

	beans, err := f.inventory.CreateItem(ctx, inventorymodel.CreateInventoryItemRequest{
		Name:              "Cà phê hạt",
		Quantity:          10,
		Unit:              "shot",
		LowStockThreshold: 2,
		RelatedMenuIDs:    []string{latte.ID},
	})
	require.NoError(t, err)

	_, err = f.orders.CreateOrder(ctx, model.CreateOrderRequest{
		Items:         []model.CreateOrderLine{{MenuID: latte.ID, Quantity: 3}},
		PaymentMethod: model.PaymentCash,
	}, testActor)
	require.NoError(t, err)

	got, err := f.inventory.GetItem(ctx, beans.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Quantity)
}

func TestCreateOrder_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("empty items", func(t *testing.T) {
		_, err := f.orders.CreateOrder(ctx, model.CreateOrderRequest{
			PaymentMethod: model.PaymentCash,
		}, testActor)
		assert.Error(t, err)
	})

	t.Run("coupon payment without coupons", func(t *testing.T) {
		latte := f.addMenuItem(t, "Latte", 5000)
		_, err := f.orders.CreateOrder(ctx, model.CreateOrderRequest{
			Items:         []model.CreateOrderLine{{MenuID: latte.ID, Quantity: 1}},
			PaymentMethod: model.PaymentCoupon,
		}, testActor)
		assert.Error(t, err)
	})

	t.Run("unknown menu item", func(t *testing.T) {
		_, err := f.orders.CreateOrder(ctx, model.CreateOrderRequest{
			Items:         []model.CreateOrderLine{{MenuID: "missing", Quantity: 1}},
			PaymentMethod: model.PaymentCash,
		}, testActor)
		assert.Error(t, err)
	})
}

func TestCancelOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	latte := f.addMenuItem(t, "Latte", 5000)
	order, err := f.orders.CreateOrder(ctx, model.CreateOrderRequest{
		Items:         []model.CreateOrderLine{{MenuID: latte.ID, Quantity: 1}},
		PaymentMethod: model.PaymentCash,
	}, testActor)
	require.NoError(t, err)

	cancelled, err := f.orders.CancelOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCancelled, cancelled.Status)

	_, err = f.orders.CancelOrder(ctx, order.ID)
	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, model.ErrCodeOrderCancelled, appErr.Code)
}

func TestListOrders_DayFilter(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	latte := f.addMenuItem(t, "Latte", 5000)
	_, err := f.orders.CreateOrder(ctx, model.CreateOrderRequest{
		Items:         []model.CreateOrderLine{{MenuID: latte.ID, Quantity: 1}},
		PaymentMethod: model.PaymentCash,
	}, testActor)
	require.NoError(t, err)

	today := time.Now().Format("2006-01-02")
	orders, err := f.orders.ListOrders(ctx, today)
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	orders, err = f.orders.ListOrders(ctx, "2000-01-01")
	require.NoError(t, err)
	assert.Empty(t, orders)

	_, err = f.orders.ListOrders(ctx, "not-a-date")
	assert.Error(t, err)
}
