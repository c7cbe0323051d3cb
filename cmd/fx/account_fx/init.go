package accountfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/phoebe497/Travel-Recommendation/internal/repositories"
	"github.com/phoebe497/Travel-Recommendation/internal/services"
)

var Module = fx.Provide(
	provideAccountRepo, provideAccountService,
	providePreferenceRepo, providePreferenceService)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo)
}

func providePreferenceRepo(db *gorm.DB) repositories.PreferenceRepository {
	return repositories.NewPreferenceRepository(db)
}

func providePreferenceService(preferenceRepo repositories.PreferenceRepository) services.PreferenceServiceInterface {
	return services.NewPreferenceService(preferenceRepo)
}
