package registry

import (
	"context"
	"fmt"
	"strings"

	"wardrobe/feature/emulator/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Registry reads the emulator's catalog_clothing table. It never writes.
type Registry struct {
	db       *gorm.DB
	emulator string
	logger   *zap.Logger
}

// New returns a registry for the given emulator's schema.
func New(db *gorm.DB, emulator string, logger *zap.Logger) (*Registry, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	if _, err := models.ForEmulator(emulator); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{db: db, emulator: emulator, logger: logger}, nil
}

// Emulator returns the schema the registry reads.
func (r *Registry) Emulator() string {
	return r.emulator
}

// Load returns the classnames unlocking each figure set id, in table order.
// A nil registry yields an empty result.
func (r *Registry) Load(ctx context.Context) (map[string][]string, error) {
	if r == nil {
		return nil, nil
	}

	var rows []models.Clothing
	var err error
	switch r.emulator {
	case "arcturus":
		rows, err = load[models.ArcturusClothing](ctx, r.db)
	case "comet":
		rows, err = load[models.CometClothing](ctx, r.db)
	case "plus", "plusemu":
		rows, err = load[models.PlusClothing](ctx, r.db)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog_clothing: %w", err)
	}

	out := Index(rows)
	r.logger.Debug("Clothing registry loaded",
		zap.String("emulator", r.emulator),
		zap.Int("rows", len(rows)),
		zap.Int("sets", len(out)))
	return out, nil
}

func load[T models.Clothing](ctx context.Context, db *gorm.DB) ([]models.Clothing, error) {
	var rows []T
	if err := db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]models.Clothing, len(rows))
	for i, row := range rows {
		out[i] = row
	}
	return out, nil
}

// Index maps every set id listed by rows to the row classnames.
func Index(rows []models.Clothing) map[string][]string {
	out := make(map[string][]string)
	for _, row := range rows {
		name := strings.TrimSpace(row.Classname())
		if name == "" {
			continue
		}
		for _, id := range strings.Split(row.Sets(), ",") {
			id = strings.TrimSpace(id)
			if id == "" || contains(out[id], name) {
				continue
			}
			out[id] = append(out[id], name)
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
