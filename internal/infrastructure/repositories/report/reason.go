package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/rios0rios0/depadvice/internal/domain/entities"
)

// WriteReason renders the explanation of one dependency's verdict.
func WriteReason(w io.Writer, reason entities.Reason) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", projectStyle.Render(reason.Coordinates.GAV()))
	if !reason.IsKnown() {
		fmt.Fprintf(&b, "%sNot declared and never observed in any variant.\n", indent)
		_, err := io.WriteString(w, b.String())
		return err
	}

	fmt.Fprintf(&b, "\n%s\n", headingStyle.Render("Declarations:"))
	if len(reason.Declarations) == 0 {
		fmt.Fprintf(&b, "%s(none)\n", indent)
	}
	for _, d := range reason.Declarations {
		fmt.Fprintf(&b, "%s%s\n", indent, d.ConfigurationName)
	}

	writeUsages(&b, "Usages:", reason.Usages)
	writeUsages(&b, "Annotation processor usages:", reason.ProcessorUsages)

	fmt.Fprintf(&b, "\n%s\n", headingStyle.Render("Advice:"))
	switch {
	case len(reason.Advice) > 0:
		for _, a := range reason.Advice {
			fmt.Fprintf(&b, "%s%s\n", indent, adviceLine(a))
		}
	case reason.SuppressedByBundling:
		fmt.Fprintf(&b, "%s%s\n", indent, traceStyle.Render("(none: suppressed because the dependency is part of a bundle)"))
	default:
		fmt.Fprintf(&b, "%s(none: declarations already match usage)\n", indent)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeUsages(b *strings.Builder, heading string, usages []entities.Usage) {
	if len(usages) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s\n", headingStyle.Render(heading))
	for _, u := range usages {
		line := fmt.Sprintf("%s%s (%s): %s", indent, u.Variant, u.Kind, u.Bucket)
		if len(u.Reasons) > 0 {
			line += traceStyle.Render(" [" + strings.Join(u.Reasons, "; ") + "]")
		}
		fmt.Fprintln(b, line)
	}
}
