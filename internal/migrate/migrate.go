package migrate

import (
	"context"

	"chatorder-service/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MigrateOptions struct {
	CreateExtensions       bool // pgcrypto for gen_random_uuid()
	CreateChecks           bool // CHECK constraints for statuses/quantities
	CreateIndexes          bool // indexes and UNIQUE beyond GORM tags
	CreateUpdatedAtTrigger bool // updated_at trigger for sessions/orders
	SeedMenu               bool // seed menu_items when the table is empty
}

func DefaultMigrateOptions() MigrateOptions {
	return MigrateOptions{
		CreateExtensions:       true,
		CreateChecks:           true,
		CreateIndexes:          true,
		CreateUpdatedAtTrigger: true,
		SeedMenu:               true,
	}
}

func MigrateChatOrderDB(ctx context.Context, db *gorm.DB, log *zap.Logger, opt MigrateOptions) error {
	log.Info("starting chat-order database migration")

	if opt.CreateExtensions {
		if err := db.WithContext(ctx).Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
			log.Error("failed to enable pgcrypto extension", zap.Error(err))
			return err
		}
	}

	log.Info("creating sessions, menu_items, orders and order_items tables")
	if err := db.WithContext(ctx).AutoMigrate(
		&models.Session{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Error("failed to migrate tables", zap.Error(err))
		return err
	}

	if opt.CreateUpdatedAtTrigger {
		if err := db.WithContext(ctx).Exec(`
CREATE OR REPLACE FUNCTION set_updated_at() RETURNS trigger AS $$
BEGIN NEW.updated_at = now(); RETURN NEW; END; $$ LANGUAGE plpgsql;

DROP TRIGGER IF EXISTS trg_sessions_updated ON sessions;
CREATE TRIGGER trg_sessions_updated
BEFORE UPDATE ON sessions
FOR EACH ROW EXECUTE FUNCTION set_updated_at();

DROP TRIGGER IF EXISTS trg_orders_updated ON orders;
CREATE TRIGGER trg_orders_updated
BEFORE UPDATE ON orders
FOR EACH ROW EXECUTE FUNCTION set_updated_at();
`).Error; err != nil {
			log.Error("failed to create updated_at triggers", zap.Error(err))
			return err
		}
	}

	if opt.CreateChecks {
		// Statuses live in TEXT columns, constrain the allowed set
		if err := db.WithContext(ctx).Exec(`
ALTER TABLE orders
  DROP CONSTRAINT IF EXISTS chk_orders_status_allowed;
ALTER TABLE orders
  ADD CONSTRAINT chk_orders_status_allowed
  CHECK (status IN ('pending','placed','paid','cancelled','scheduled'));
`).Error; err != nil {
			log.Error("failed to create status CHECK", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
ALTER TABLE sessions
  DROP CONSTRAINT IF EXISTS chk_sessions_mode_allowed;
ALTER TABLE sessions
  ADD CONSTRAINT chk_sessions_mode_allowed
  CHECK (mode IN ('main','menu'));
`).Error; err != nil {
			log.Error("failed to create session mode CHECK", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
ALTER TABLE order_items
  DROP CONSTRAINT IF EXISTS chk_order_items_quantity_gt_zero;
ALTER TABLE order_items
  ADD CONSTRAINT chk_order_items_quantity_gt_zero
  CHECK (quantity > 0);
`).Error; err != nil {
			log.Error("failed to create quantity CHECK", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
ALTER TABLE orders
  DROP CONSTRAINT IF EXISTS chk_orders_total_amount_non_negative;
ALTER TABLE orders
  ADD CONSTRAINT chk_orders_total_amount_non_negative
  CHECK (total_amount >= 0);
`).Error; err != nil {
			log.Error("failed to create total_amount CHECK", zap.Error(err))
			return err
		}
	}

	if opt.CreateIndexes {
		// Open-order lookup is always (session_id, status='pending')
		if err := db.WithContext(ctx).Exec(`
CREATE INDEX IF NOT EXISTS idx_orders_session_status ON orders (session_id, status);
`).Error; err != nil {
			log.Error("failed to create orders (session_id, status) index", zap.Error(err))
			return err
		}
	}

	if opt.SeedMenu {
		if err := SeedMenuItems(ctx, db, log); err != nil {
			return err
		}
	}

	log.Info("chat-order database migration completed")
	return nil
}

// SeedMenuItems inserts the default menu once, skipped when any rows exist.
func SeedMenuItems(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.MenuItem{}).Count(&count).Error; err != nil {
		log.Error("failed to count menu items", zap.Error(err))
		return err
	}
	if count > 0 {
		return nil
	}

	items := []models.MenuItem{
		{Name: "Jollof Rice", Description: "Delicious Nigerian jollof rice with chicken", Price: 2500, Category: "Main Course", Available: true},
		{Name: "Fried Rice", Description: "Special fried rice with mixed vegetables and beef", Price: 2800, Category: "Main Course", Available: true},
		{Name: "Pepper Soup", Description: "Spicy pepper soup with fish", Price: 2000, Category: "Soup", Available: true},
		{Name: "Grilled Chicken", Description: "Tender grilled chicken with spices", Price: 3500, Category: "Main Course", Available: true},
		{Name: "Beef Stew", Description: "Rich beef stew with vegetables", Price: 3000, Category: "Main Course", Available: true},
		{Name: "Pounded Yam", Description: "Smooth pounded yam with egusi soup", Price: 2200, Category: "Main Course", Available: true},
		{Name: "Chicken Wings", Description: "Crispy chicken wings (6 pieces)", Price: 1800, Category: "Appetizer", Available: true},
		{Name: "Spring Rolls", Description: "Vegetable spring rolls (4 pieces)", Price: 1500, Category: "Appetizer", Available: true},
		{Name: "Coca Cola", Description: "Cold soft drink", Price: 300, Category: "Beverage", Available: true},
		{Name: "Orange Juice", Description: "Fresh orange juice", Price: 500, Category: "Beverage", Available: true},
	}

	if err := db.WithContext(ctx).Create(&items).Error; err != nil {
		log.Error("failed to seed menu items", zap.Error(err))
		return err
	}

	log.Info("seeded default menu items", zap.Int("count", len(items)))
	return nil
}
