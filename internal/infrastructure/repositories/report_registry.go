package repositories

import (
	"fmt"
	"sort"
	"strings"

	domainRepos "github.com/rios0rios0/depadvice/internal/domain/repositories"
)

// ReportRegistry manages all registered report renderers.
type ReportRegistry struct {
	reports map[string]domainRepos.ReportRepository
}

// NewReportRegistry creates an empty report registry.
func NewReportRegistry() *ReportRegistry {
	return &ReportRegistry{
		reports: make(map[string]domainRepos.ReportRepository),
	}
}

// Register adds a renderer under its name.
func (r *ReportRegistry) Register(report domainRepos.ReportRepository) {
	r.reports[report.Name()] = report
}

// Get returns the renderer for the given format.
func (r *ReportRegistry) Get(name string) (domainRepos.ReportRepository, error) {
	report, ok := r.reports[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown report format: %q (available: %s)", name, strings.Join(r.Names(), ", "))
	}
	return report, nil
}

// All returns every registered renderer, ordered by name.
func (r *ReportRegistry) All() []domainRepos.ReportRepository {
	result := make([]domainRepos.ReportRepository, 0, len(r.reports))
	for _, name := range r.Names() {
		result = append(result, r.reports[name])
	}
	return result
}

// Names returns the registered format names, sorted.
func (r *ReportRegistry) Names() []string {
	names := make([]string, 0, len(r.reports))
	for name := range r.reports {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
