package metadata

import (
	"maps"
	"slices"
)

// PackageRecord describes one installed package: its identity, the install
// options used, and the entry points it exposes. Records are treated as
// immutable values; mutation happens by replacing the whole record.
//
// Package and PackageOrURL are nil only in a freshly initialized,
// not-yet-populated main record. The man page fields were added in format
// 0.3, Pinned in 0.5; both stay at their zero values for older records.
//
// Fields are declared in the sorted key order the metadata file is
// written with.
type PackageRecord struct {
	AppPaths               []Path            `json:"app_paths"`
	AppPathsOfDependencies map[string][]Path `json:"app_paths_of_dependencies"`
	Apps                   []string          `json:"apps"`
	AppsOfDependencies     []string          `json:"apps_of_dependencies"`
	IncludeApps            bool              `json:"include_apps"`
	IncludeDependencies    bool              `json:"include_dependencies"`
	ManPages               []string          `json:"man_pages"`
	ManPagesOfDependencies []string          `json:"man_pages_of_dependencies"`
	ManPaths               []Path            `json:"man_paths"`
	ManPathsOfDependencies map[string][]Path `json:"man_paths_of_dependencies"`
	Package                *string           `json:"package"`
	PackageOrURL           *string           `json:"package_or_url"`
	PackageVersion         string            `json:"package_version"`
	Pinned                 bool              `json:"pinned"`
	PipArgs                []string          `json:"pip_args"`
	Suffix                 string            `json:"suffix"`
}

// QualifiedName returns the package name with its suffix appended, or the
// empty string for a record whose identity is not yet populated.
func (r PackageRecord) QualifiedName() string {
	if r.Package == nil {
		return ""
	}
	return *r.Package + r.Suffix
}

// Equal reports structural equality of two records
func (r PackageRecord) Equal(other PackageRecord) bool {
	return stringPtrEqual(r.Package, other.Package) &&
		stringPtrEqual(r.PackageOrURL, other.PackageOrURL) &&
		slices.Equal(r.PipArgs, other.PipArgs) &&
		r.IncludeDependencies == other.IncludeDependencies &&
		r.IncludeApps == other.IncludeApps &&
		slices.Equal(r.Apps, other.Apps) &&
		slices.Equal(r.AppPaths, other.AppPaths) &&
		slices.Equal(r.AppsOfDependencies, other.AppsOfDependencies) &&
		pathMapEqual(r.AppPathsOfDependencies, other.AppPathsOfDependencies) &&
		r.PackageVersion == other.PackageVersion &&
		slices.Equal(r.ManPages, other.ManPages) &&
		slices.Equal(r.ManPaths, other.ManPaths) &&
		slices.Equal(r.ManPagesOfDependencies, other.ManPagesOfDependencies) &&
		pathMapEqual(r.ManPathsOfDependencies, other.ManPathsOfDependencies) &&
		r.Suffix == other.Suffix &&
		r.Pinned == other.Pinned
}

// normalized returns a copy with nil collections replaced by empty ones so
// the record always serializes as [] and {} rather than null
func (r PackageRecord) normalized() PackageRecord {
	if r.PipArgs == nil {
		r.PipArgs = []string{}
	}
	if r.Apps == nil {
		r.Apps = []string{}
	}
	if r.AppPaths == nil {
		r.AppPaths = []Path{}
	}
	if r.AppsOfDependencies == nil {
		r.AppsOfDependencies = []string{}
	}
	if r.AppPathsOfDependencies == nil {
		r.AppPathsOfDependencies = map[string][]Path{}
	}
	if r.ManPages == nil {
		r.ManPages = []string{}
	}
	if r.ManPaths == nil {
		r.ManPaths = []Path{}
	}
	if r.ManPagesOfDependencies == nil {
		r.ManPagesOfDependencies = []string{}
	}
	if r.ManPathsOfDependencies == nil {
		r.ManPathsOfDependencies = map[string][]Path{}
	}
	return r
}

func stringPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func pathMapEqual(a, b map[string][]Path) bool {
	return maps.EqualFunc(a, b, slices.Equal[[]Path])
}
