package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rios0rios0/depadvice/internal/domain/entities"
	"github.com/rios0rios0/depadvice/internal/domain/repositories"
)

//nolint:gochecknoglobals // shared terminal styles
var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	projectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	removeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	addStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	changeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	traceStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

const indent = "  "

// ConsoleReportRepository renders the advice as a human-readable summary,
// grouped by what the user has to do.
type ConsoleReportRepository struct{}

var _ repositories.ReportRepository = (*ConsoleReportRepository)(nil)

// NewConsoleReportRepository creates a new ConsoleReportRepository.
func NewConsoleReportRepository() *ConsoleReportRepository {
	return &ConsoleReportRepository{}
}

func (it *ConsoleReportRepository) Name() string { return "console" }

func (it *ConsoleReportRepository) Write(w io.Writer, result *entities.AdviceResult) error {
	_, err := io.WriteString(w, renderConsole(result))
	return err
}

func renderConsole(result *entities.AdviceResult) string {
	projectAdvice := result.ProjectAdvice
	var b strings.Builder

	if projectAdvice.IsEmpty() {
		fmt.Fprintf(&b, "No advice for %s. Looking good!\n", projectStyle.Render(projectAdvice.ProjectPath))
		writeTraces(&b, result.BundledTraces)
		return b.String()
	}

	fmt.Fprintf(&b, "Advice for %s\n", projectStyle.Render(projectAdvice.ProjectPath))

	var removes, adds, changes, processorRemoves, processorOthers []entities.Advice
	for _, a := range projectAdvice.DependencyAdvice {
		switch {
		case a.IsAnnotationProcessor() && a.Kind() == entities.AdviceRemove:
			processorRemoves = append(processorRemoves, a)
		case a.IsAnnotationProcessor():
			processorOthers = append(processorOthers, a)
		case a.Kind() == entities.AdviceRemove:
			removes = append(removes, a)
		case a.Kind() == entities.AdviceAdd:
			adds = append(adds, a)
		default:
			changes = append(changes, a)
		}
	}

	writeSection(&b, "Unused dependencies which should be removed:", removes)
	writeSection(&b, "These transitive dependencies should be declared directly:", adds)
	writeSection(&b, "Existing dependencies which should be modified to be as indicated:", changes)
	writeSection(&b, "Unused annotation processors that should be removed:", processorRemoves)
	writeSection(&b, "Annotation processors that should be declared as indicated:", processorOthers)

	if len(projectAdvice.PluginAdvice) > 0 {
		fmt.Fprintf(&b, "\n%s\n", headingStyle.Render("Plugin advice:"))
		for _, p := range projectAdvice.PluginAdvice {
			fmt.Fprintf(&b, "%s%s: %s\n", indent, p.RedundantPlugin, p.Reason)
		}
	}

	writeTraces(&b, result.BundledTraces)
	return b.String()
}

func writeSection(b *strings.Builder, heading string, advice []entities.Advice) {
	if len(advice) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s\n", headingStyle.Render(heading))
	for _, a := range advice {
		fmt.Fprintf(b, "%s%s\n", indent, adviceLine(a))
	}
}

// adviceLine prints advice the way it would be declared, e.g.
// `api("com.squareup.okio:okio:3.9.0") (was implementation)`.
func adviceLine(a entities.Advice) string {
	gav := a.Coordinates.GAV()
	switch a.Kind() {
	case entities.AdviceRemove:
		return removeStyle.Render(fmt.Sprintf("%s(%q)", a.FromConfiguration, gav))
	case entities.AdviceAdd:
		return addStyle.Render(fmt.Sprintf("%s(%q)", a.ToConfiguration, gav))
	default:
		return changeStyle.Render(fmt.Sprintf("%s(%q) (was %s)", a.ToConfiguration, gav, a.FromConfiguration))
	}
}

func writeTraces(b *strings.Builder, traces []string) {
	if len(traces) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s\n", traceStyle.Render("Advice suppressed by bundles: "+strings.Join(traces, ", ")))
}
