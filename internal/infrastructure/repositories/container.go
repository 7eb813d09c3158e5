package repositories

import (
	domainRepos "github.com/rios0rios0/depadvice/internal/domain/repositories"
	fsRepo "github.com/rios0rios0/depadvice/internal/infrastructure/repositories/filesystem"
	reportRepo "github.com/rios0rios0/depadvice/internal/infrastructure/repositories/report"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register report registry with all renderers
	if err := container.Provide(func() *ReportRegistry {
		reg := NewReportRegistry()
		reg.Register(reportRepo.NewConsoleReportRepository())
		reg.Register(reportRepo.NewJSONReportRepository())
		reg.Register(reportRepo.NewYAMLReportRepository())
		return reg
	}); err != nil {
		return err
	}

	// Bind the analysis loader
	if err := container.Provide(func() domainRepos.AnalysisRepository {
		return fsRepo.NewAnalysisRepository()
	}); err != nil {
		return err
	}

	return nil
}
