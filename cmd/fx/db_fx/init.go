package dbfx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/phoebe497/Travel-Recommendation/internal/infra"
)

var Module = fx.Provide(ProvideDatabase)

// ProvideDatabase opens the connection pool and ties its lifetime to the
// fx application.
func ProvideDatabase(lc fx.Lifecycle) (*gorm.DB, error) {
	db, err := infra.OpenPostgres()
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgres(db)
			return nil
		},
	})
	return db, nil
}
