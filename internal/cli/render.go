package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/venvx/pkg/errors"
	"github.com/arthur-debert/venvx/pkg/metadata"
	"github.com/arthur-debert/venvx/pkg/style"
)

// Output formats accepted by --format
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// venvSummary is the list row for one environment
type venvSummary struct {
	Name          string   `json:"name" yaml:"name"`
	Package       string   `json:"package,omitempty" yaml:"package,omitempty"`
	Version       string   `json:"version,omitempty" yaml:"version,omitempty"`
	PythonVersion string   `json:"python_version,omitempty" yaml:"python_version,omitempty"`
	Pinned        bool     `json:"pinned" yaml:"pinned"`
	Apps          []string `json:"apps" yaml:"apps"`
	Injected      []string `json:"injected" yaml:"injected"`
	HasMetadata   bool     `json:"has_metadata" yaml:"has_metadata"`
	Unreadable    bool     `json:"unreadable,omitempty" yaml:"unreadable,omitempty"`
}

// packageView is the show-command rendering of one PackageRecord
type packageView struct {
	Package             string   `json:"package" yaml:"package"`
	Spec                string   `json:"spec" yaml:"spec"`
	Version             string   `json:"version" yaml:"version"`
	Suffix              string   `json:"suffix,omitempty" yaml:"suffix,omitempty"`
	Pinned              bool     `json:"pinned" yaml:"pinned"`
	IncludeDependencies bool     `json:"include_dependencies" yaml:"include_dependencies"`
	PipArgs             []string `json:"pip_args" yaml:"pip_args"`
	Apps                []string `json:"apps" yaml:"apps"`
	AppPaths            []string `json:"app_paths" yaml:"app_paths"`
	ManPages            []string `json:"man_pages" yaml:"man_pages"`
}

// venvDetail is the show-command view of one environment
type venvDetail struct {
	Name              string                 `json:"name" yaml:"name"`
	PythonVersion     string                 `json:"python_version,omitempty" yaml:"python_version,omitempty"`
	SourceInterpreter string                 `json:"source_interpreter,omitempty" yaml:"source_interpreter,omitempty"`
	VenvArgs          []string               `json:"venv_args" yaml:"venv_args"`
	MainPackage       packageView            `json:"main_package" yaml:"main_package"`
	Injected          map[string]packageView `json:"injected_packages" yaml:"injected_packages"`
}

func summarize(s *metadata.Store) venvSummary {
	summary := venvSummary{
		Name:        s.Venv().Name,
		Apps:        s.MainPackage.Apps,
		HasMetadata: s.MainPackage.Package != nil,
	}
	if s.MainPackage.Package != nil {
		summary.Package = s.MainPackage.QualifiedName()
		summary.Version = s.MainPackage.PackageVersion
		summary.Pinned = s.MainPackage.Pinned
	}
	if s.PythonVersion != nil {
		summary.PythonVersion = *s.PythonVersion
	}
	for name := range s.InjectedPackages {
		summary.Injected = append(summary.Injected, name)
	}
	sort.Strings(summary.Injected)
	if summary.Apps == nil {
		summary.Apps = []string{}
	}
	if summary.Injected == nil {
		summary.Injected = []string{}
	}
	return summary
}

func viewRecord(r metadata.PackageRecord) packageView {
	view := packageView{
		Version:             r.PackageVersion,
		Suffix:              r.Suffix,
		Pinned:              r.Pinned,
		IncludeDependencies: r.IncludeDependencies,
		PipArgs:             r.PipArgs,
		Apps:                r.Apps,
		ManPages:            r.ManPages,
	}
	if r.Package != nil {
		view.Package = *r.Package
	}
	if r.PackageOrURL != nil {
		view.Spec = *r.PackageOrURL
	}
	for _, p := range r.AppPaths {
		view.AppPaths = append(view.AppPaths, p.String())
	}
	if view.PipArgs == nil {
		view.PipArgs = []string{}
	}
	if view.Apps == nil {
		view.Apps = []string{}
	}
	if view.AppPaths == nil {
		view.AppPaths = []string{}
	}
	if view.ManPages == nil {
		view.ManPages = []string{}
	}
	return view
}

func detail(s *metadata.Store) venvDetail {
	d := venvDetail{
		Name:        s.Venv().Name,
		VenvArgs:    s.VenvArgs,
		MainPackage: viewRecord(s.MainPackage),
		Injected:    map[string]packageView{},
	}
	if s.PythonVersion != nil {
		d.PythonVersion = *s.PythonVersion
	}
	if s.SourceInterpreter != nil {
		d.SourceInterpreter = s.SourceInterpreter.String()
	}
	for name, rec := range s.InjectedPackages {
		d.Injected[name] = viewRecord(rec)
	}
	return d
}

// renderStructured writes v as JSON or YAML
func renderStructured(w io.Writer, format string, v interface{}) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "    ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		defer func() { _ = enc.Close() }()
		return enc.Encode(v)
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown output format %q", format)
	}
}

// renderSummaryLine renders one list row as styled text
func renderSummaryLine(s venvSummary) string {
	if s.Unreadable {
		return fmt.Sprintf("%s  %s",
			style.VenvName.Render(s.Name),
			style.Warning.Render("(unreadable metadata)"))
	}
	if !s.HasMetadata {
		return fmt.Sprintf("%s  %s",
			style.VenvName.Render(s.Name),
			style.Warning.Render("(no metadata)"))
	}

	var b strings.Builder
	b.WriteString(style.VenvName.Render(s.Name))
	b.WriteString("  ")
	b.WriteString(style.PackageSpec.Render(fmt.Sprintf("%s %s", s.Package, s.Version)))
	if s.Pinned {
		b.WriteString("  ")
		b.WriteString(style.Pinned.Render("pinned"))
	}
	if len(s.Apps) > 0 {
		b.WriteString("\n    apps: ")
		b.WriteString(strings.Join(s.Apps, ", "))
	}
	if len(s.Injected) > 0 {
		b.WriteString("\n    injected: ")
		b.WriteString(strings.Join(s.Injected, ", "))
	}
	if s.PythonVersion != "" {
		b.WriteString("\n    ")
		b.WriteString(style.Dim.Render(s.PythonVersion))
	}
	return b.String()
}

// renderDetailText renders the show view as styled text
func renderDetailText(w io.Writer, d venvDetail) {
	fmt.Fprintln(w, style.VenvName.Render(d.Name))

	main := d.MainPackage
	fmt.Fprintf(w, "  package: %s\n",
		style.PackageSpec.Render(fmt.Sprintf("%s %s", main.Package, main.Version)))
	if main.Spec != main.Package && main.Spec != "" {
		fmt.Fprintf(w, "  installed from: %s\n", main.Spec)
	}
	if main.Pinned {
		fmt.Fprintf(w, "  %s\n", style.Pinned.Render("pinned"))
	}
	if len(main.Apps) > 0 {
		fmt.Fprintf(w, "  apps: %s\n", strings.Join(main.Apps, ", "))
	}
	if len(main.ManPages) > 0 {
		fmt.Fprintf(w, "  man pages: %s\n", strings.Join(main.ManPages, ", "))
	}
	if len(main.PipArgs) > 0 {
		fmt.Fprintf(w, "  pip args: %s\n", strings.Join(main.PipArgs, " "))
	}
	if d.PythonVersion != "" {
		fmt.Fprintf(w, "  %s\n", style.Dim.Render(d.PythonVersion))
	}
	if d.SourceInterpreter != "" {
		fmt.Fprintf(w, "  %s\n", style.Dim.Render("interpreter: "+d.SourceInterpreter))
	}
	if len(d.VenvArgs) > 0 {
		fmt.Fprintf(w, "  venv args: %s\n", strings.Join(d.VenvArgs, " "))
	}

	if len(d.Injected) > 0 {
		fmt.Fprintln(w, "  injected:")
		names := make([]string, 0, len(d.Injected))
		for name := range d.Injected {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			rec := d.Injected[name]
			fmt.Fprintf(w, "    %s\n",
				style.PackageSpec.Render(fmt.Sprintf("%s %s", name, rec.Version)))
		}
	}
}
