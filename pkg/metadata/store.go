package metadata

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/arthur-debert/venvx/pkg/errors"
	"github.com/arthur-debert/venvx/pkg/logging"
	"github.com/arthur-debert/venvx/pkg/types"
)

// MetadataFileName is the metadata file written into each environment directory
const MetadataFileName = "pipx_metadata.json"

// metadataVersion tracks the on-disk format. Only change this if the file
// format changes.
//
//	0.1 -> original version
//	0.2 -> improve handling of suffixes
//	0.3 -> add man pages fields
//	0.4 -> add source interpreter
//	0.5 -> add pinned
const metadataVersion = "0.5"

// Store holds the metadata for one environment directory. It is bound to
// its directory for life and mutated in place by the install and inject
// workflows, which persist it explicitly with Write.
type Store struct {
	venv types.Venv
	fs   types.FS

	// MainPackage is the package the environment exists for
	MainPackage PackageRecord

	// PythonVersion is the version string reported by the environment's interpreter
	PythonVersion *string

	// SourceInterpreter is the interpreter used to create the environment
	SourceInterpreter *Path

	// VenvArgs are the arguments the environment was created with
	VenvArgs []string

	// InjectedPackages maps qualified package name (name plus suffix) to
	// the record of each package co-installed into this environment
	InjectedPackages map[string]PackageRecord
}

// document is the serialized shape of a Store.
// Field order matches the sorted key order written to disk.
type document struct {
	InjectedPackages  map[string]PackageRecord `json:"injected_packages"`
	MainPackage       PackageRecord            `json:"main_package"`
	Version           string                   `json:"pipx_metadata_version"`
	PythonVersion     *string                  `json:"python_version"`
	SourceInterpreter *Path                    `json:"source_interpreter"`
	VenvArgs          []string                 `json:"venv_args"`
}

// New creates a store for the given environment directory in its default
// state, without reading persisted metadata. Identity fields of the main
// package stay unset until the installer populates them; IncludeApps is
// always true for the main package.
func New(fs types.FS, venv types.Venv) *Store {
	s := &Store{
		venv: venv,
		fs:   fs,
	}
	s.reset()
	return s
}

// Load creates a store and immediately reads its persisted metadata. A
// missing or unreadable file leaves the store in its default state; a
// present-but-invalid file returns the store alongside a fatal error.
func Load(fs types.FS, venv types.Venv) (*Store, error) {
	s := New(fs, venv)
	if err := s.Read(false); err != nil {
		return s, err
	}
	return s, nil
}

// Venv returns the environment directory this store is bound to
func (s *Store) Venv() types.Venv {
	return s.venv
}

// reset returns the store to its post-construction default state
func (s *Store) reset() {
	s.MainPackage = PackageRecord{
		IncludeApps: true,
	}.normalized()
	s.PythonVersion = nil
	s.SourceInterpreter = nil
	s.VenvArgs = []string{}
	s.InjectedPackages = map[string]PackageRecord{}
}

// Read loads the metadata file from the environment directory. An I/O
// failure (missing file, unreadable file) resets the store to its default
// state and is logged only when verbose is set; a file that parses but
// carries an unrecognized version, or does not parse at all, is reported
// as a fatal error and the store is left untouched.
func (s *Store) Read(verbose bool) error {
	logger := logging.GetLogger("metadata")

	data, err := s.fs.ReadFile(s.venv.GetFilePath(MetadataFileName))
	if err != nil {
		s.reset()
		if verbose {
			logger.Warn().
				Err(err).
				Str("venv", s.venv.Name).
				Msgf("Unable to read %s in %s. This may cause operations involving %s to fail or behave incorrectly.",
					MetadataFileName, s.venv.Path, s.venv.Name)
		}
		return nil
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return errors.Wrapf(err, errors.ErrMetadataParse, "%s: cannot parse %s", s.venv.Name, MetadataFileName).
			WithDetail("venv", s.venv.Name)
	}

	if err := s.upcast(&doc); err != nil {
		return err
	}

	s.fromDocument(doc)
	return nil
}

// upcast maps a record written by an older release directly to the current
// shape. Each legacy version is dispatched to exactly the fields it lacks;
// migrations are not chained through intermediate versions.
func (s *Store) upcast(doc *document) error {
	switch doc.Version {
	case metadataVersion:
		// current format
	case "0.4":
		doc.MainPackage.Pinned = false
	case "0.2", "0.3":
		doc.SourceInterpreter = nil
	case "0.1":
		// 0.1 predates the suffix field; a suffixed install shows up only
		// in the directory name
		if doc.MainPackage.Package != nil && *doc.MainPackage.Package != s.venv.Name {
			doc.MainPackage.Suffix = strings.ReplaceAll(s.venv.Name, *doc.MainPackage.Package, "")
		}
		doc.SourceInterpreter = nil
	default:
		return errors.Newf(errors.ErrMetadataVersion,
			"%s: unknown metadata version %s. Perhaps it was installed with a later version of venvx.",
			s.venv.Name, doc.Version).
			WithDetail("venv", s.venv.Name).
			WithDetail("version", doc.Version)
	}
	return nil
}

// fromDocument populates the store from an upcast document
func (s *Store) fromDocument(doc document) {
	s.MainPackage = doc.MainPackage.normalized()

	s.PythonVersion = doc.PythonVersion

	if doc.SourceInterpreter != nil && *doc.SourceInterpreter != "" {
		s.SourceInterpreter = doc.SourceInterpreter
	} else {
		s.SourceInterpreter = nil
	}

	s.VenvArgs = doc.VenvArgs
	if s.VenvArgs == nil {
		s.VenvArgs = []string{}
	}

	s.InjectedPackages = make(map[string]PackageRecord, len(doc.InjectedPackages))
	for name, rec := range doc.InjectedPackages {
		s.InjectedPackages[name+rec.Suffix] = rec.normalized()
	}
}

// document serializes the store's current state
func (s *Store) document() document {
	injected := make(map[string]PackageRecord, len(s.InjectedPackages))
	for name, rec := range s.InjectedPackages {
		injected[name] = rec.normalized()
	}

	venvArgs := s.VenvArgs
	if venvArgs == nil {
		venvArgs = []string{}
	}

	return document{
		InjectedPackages:  injected,
		MainPackage:       s.MainPackage.normalized(),
		Version:           metadataVersion,
		PythonVersion:     s.PythonVersion,
		SourceInterpreter: s.SourceInterpreter,
		VenvArgs:          venvArgs,
	}
}

// validate guards Write against persisting an inconsistent record.
// Reaching this state means the in-memory store was mutated incorrectly by
// its caller, so the failure is fatal rather than recoverable.
func (s *Store) validate() error {
	if s.MainPackage.Package == nil || s.MainPackage.PackageOrURL == nil || !s.MainPackage.IncludeApps {
		logger := logging.GetLogger("metadata")
		logger.Debug().
			Str("venv", s.venv.Name).
			Interface("main_package", s.MainPackage).
			Msg("metadata corrupt")
		return errors.Newf(errors.ErrMetadataCorrupt,
			"internal error: metadata for %s is corrupt, cannot write", s.venv.Name).
			WithDetail("venv", s.venv.Name)
	}
	return nil
}

// Write validates the store and persists it as indented, key-sorted JSON
// to the metadata file in the environment directory. Validation failures
// propagate; I/O failures are logged as a warning and swallowed, since
// metadata is advisory bookkeeping rather than the source of truth for
// installed files.
func (s *Store) Write() error {
	if err := s.validate(); err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(s.document()); err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "%s: cannot serialize metadata", s.venv.Name)
	}

	path := s.venv.GetFilePath(MetadataFileName)
	if err := s.fs.WriteFile(path, buf.Bytes(), 0644); err != nil {
		logger := logging.GetLogger("metadata")
		logger.Warn().
			Err(err).
			Str("venv", s.venv.Name).
			Msgf("Unable to write %s to %s. This may cause future operations involving %s to fail or behave incorrectly.",
				MetadataFileName, s.venv.Path, s.venv.Name)
	}
	return nil
}
