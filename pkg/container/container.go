package container

import (
	"context"
	"fmt"

	"cafepos-backend/internal/config"
	"cafepos-backend/internal/infrastructure/auth"
	"cafepos-backend/internal/infrastructure/sheets"
	"cafepos-backend/internal/infrastructure/store"
	"cafepos-backend/pkg/jwt"
	"cafepos-backend/pkg/logger"

	couponHandler "cafepos-backend/internal/domains/coupon/handler"
	couponRepo "cafepos-backend/internal/domains/coupon/repository"
	couponService "cafepos-backend/internal/domains/coupon/service"
	inventoryHandler "cafepos-backend/internal/domains/inventory/handler"
	inventoryRepo "cafepos-backend/internal/domains/inventory/repository"
	inventoryService "cafepos-backend/internal/domains/inventory/service"
	menuHandler "cafepos-backend/internal/domains/menu/handler"
	menuRepo "cafepos-backend/internal/domains/menu/repository"
	menuService "cafepos-backend/internal/domains/menu/service"
	orderHandler "cafepos-backend/internal/domains/order/handler"
	orderRepo "cafepos-backend/internal/domains/order/repository"
	orderService "cafepos-backend/internal/domains/order/service"
	userHandler "cafepos-backend/internal/domains/user/handler"
	userRepo "cafepos-backend/internal/domains/user/repository"
	userService "cafepos-backend/internal/domains/user/service"
	syncHandler "cafepos-backend/internal/sync/handler"
	syncService "cafepos-backend/internal/sync/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa TẤT CẢ dependencies của application.
// Struct này là "root" của dependency graph: config → infrastructure →
// repositories → services → handlers, mọi thứ singleton.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================

	Config     *config.Config
	Store      *store.Store   // local JSON store
	AuthGate   *auth.Gate     // Google credential holder
	Sheets     *sheets.Client // Google Sheets API client
	JWTManager *jwt.Manager

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================

	CouponRepo    couponRepo.CouponRepository
	MenuRepo      menuRepo.MenuRepository
	InventoryRepo inventoryRepo.InventoryRepository
	OrderRepo     orderRepo.OrderRepository
	UserRepo      userRepo.UserRepository

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================

	CouponService    couponService.ServiceInterface
	MenuService      menuService.ServiceInterface
	InventoryService inventoryService.ServiceInterface
	OrderService     orderService.ServiceInterface
	UserService      userService.ServiceInterface
	SyncService      *syncService.SyncService

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================

	CouponHandler    *couponHandler.CouponHandler
	MenuHandler      *menuHandler.MenuHandler
	InventoryHandler *inventoryHandler.InventoryHandler
	OrderHandler     *orderHandler.OrderHandler
	UserHandler      *userHandler.UserHandler
	SyncHandler      *syncHandler.SyncHandler
}

// NewContainer build toàn bộ dependency graph theo thứ tự layer
func NewContainer() (*Container, error) {
	c := &Container{}

	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c.Config = cfg

	// 2. Infrastructure
	s, err := store.New(cfg.Store.DataDir)
	if err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}
	c.Store = s

	c.AuthGate = auth.NewGate(cfg.Auth)
	c.Sheets = sheets.NewClient(cfg.Sheets, c.AuthGate)
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// 3. Repositories
	c.CouponRepo = couponRepo.NewStoreRepository(s)
	c.MenuRepo = menuRepo.NewStoreRepository(s)
	c.InventoryRepo = inventoryRepo.NewStoreRepository(s)
	c.OrderRepo = orderRepo.NewStoreRepository(s)
	c.UserRepo = userRepo.NewStoreRepository(s)

	// 4. Services
	c.CouponService = couponService.NewCouponService(c.CouponRepo)
	c.MenuService = menuService.NewMenuService(c.MenuRepo)
	c.InventoryService = inventoryService.NewInventoryService(c.InventoryRepo)
	c.OrderService = orderService.NewOrderService(c.OrderRepo, c.MenuService, c.InventoryService, c.CouponService)
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)
	c.SyncService = syncService.NewSyncService(s, c.Sheets)

	// 5. Handlers
	c.CouponHandler = couponHandler.NewCouponHandler(c.CouponService)
	c.MenuHandler = menuHandler.NewMenuHandler(c.MenuService)
	c.InventoryHandler = inventoryHandler.NewInventoryHandler(c.InventoryService)
	c.OrderHandler = orderHandler.NewOrderHandler(c.OrderService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.SyncHandler = syncHandler.NewSyncHandler(c.SyncService, c.AuthGate)

	// 6. Bootstrap: máy mới phải login được ngay
	if err := c.UserService.EnsureDefaultAdmin(context.Background(),
		cfg.Auth.BootstrapAdminUser, cfg.Auth.BootstrapAdminPIN); err != nil {
		return nil, fmt.Errorf("bootstrap admin: %w", err)
	}

	logger.Info("container initialized", map[string]interface{}{
		"data_dir":     cfg.Store.DataDir,
		"sync_enabled": cfg.Sync.Enabled,
		"offline_mode": cfg.Auth.OfflineMode,
	})

	return c, nil
}

// Cleanup giải phóng resources khi shutdown.
// Store là plain files nên không có connection phải đóng; giữ hook này
// cho các resource sau này.
func (c *Container) Cleanup() {
	logger.Info("container cleanup completed", nil)
}
