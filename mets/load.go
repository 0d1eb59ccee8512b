package mets

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/viaacode/sipin-meemoo-sip-2-transformator/premis"
)

// SIP bundles the parsed preservation records of one unpacked SIP.
type SIP struct {
	Profile         string
	Package         *premis.Record
	Representations []*premis.Record
}

// Load reads the package manifest at root, the preservation record it
// names, and the records of every representation the structural map
// lists. Representation records load concurrently; their order follows
// the manifest.
//
// Record paths are stamped relative to the parent of root, so storage
// locations keep the SIP directory name.
func Load(root string) (*SIP, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrapf(err, "could not calculate absolute path of %s", root)
	}

	doc, err := ParseFile(filepath.Join(root, ManifestFile))
	if err != nil {
		return nil, err
	}
	if doc.Profile == "" {
		return nil, errors.Errorf("could not determine the SIP profile of %s", root)
	}

	base := filepath.Dir(root)

	pkg, err := loadRecord(root, doc, base)
	if err != nil {
		return nil, err
	}

	reprs := make([]*premis.Record, len(doc.RepresentationRefs))

	var g errgroup.Group
	for i, ref := range doc.RepresentationRefs {
		i, ref := i, ref
		g.Go(func() error {
			dir := filepath.Dir(filepath.Join(root, filepath.FromSlash(ref)))

			rdoc, err := ParseFile(filepath.Join(dir, ManifestFile))
			if err != nil {
				return err
			}

			rec, err := loadRecord(dir, rdoc, base)
			if err != nil {
				return err
			}

			reprs[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &SIP{Profile: doc.Profile, Package: pkg, Representations: reprs}, nil
}

// loadRecord parses and validates the PREMIS record that the manifest of
// dir names, stamping its path relative to base.
func loadRecord(dir string, doc *Document, base string) (rec *premis.Record, err error) {
	if doc.PreservationRef == "" {
		return nil, errors.Errorf("no preservation record named in %s", filepath.Join(dir, ManifestFile))
	}

	loc := filepath.Join(dir, filepath.FromSlash(doc.PreservationRef))

	file, err := os.Open(loc)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open preservation record at %s", loc)
	}
	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = errors.Wrapf(e, "error closing %s", loc)
		}
	}()

	rec = &premis.Record{}
	if err := premis.Parse(file, rec); err != nil {
		return nil, errors.Wrapf(err, "could not parse %s", loc)
	}
	if err := rec.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid preservation record at %s", loc)
	}

	rel, err := filepath.Rel(base, dir)
	if err != nil {
		return nil, errors.Wrapf(err, "could not relativize %s", dir)
	}
	rec.Path = filepath.ToSlash(rel)

	return rec, nil
}
