package mets_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-test/deep"
	"github.com/viaacode/sipin-meemoo-sip-2-transformator/mets"
)

// writeManifest creates dir and drops a METS manifest into it.
func writeManifest(t *testing.T, dir, content string) {
	t.Helper()

	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, mets.ManifestFile), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// newSIPTree lays out an unpacked SIP on disk and returns its root.
func newSIPTree(t *testing.T, base, name string) string {
	t.Helper()

	root := filepath.Join(base, name)
	writeManifest(t, root, testPackageMETS)

	repr := filepath.Join(root, "representations", "representation_1")
	writeManifest(t, repr, testRepresentationMETS)

	data := filepath.Join(repr, "data")
	if err := os.MkdirAll(data, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(data, "archief_001.mxf"), []byte("essence"), 0644); err != nil {
		t.Fatal(err)
	}

	return root
}

func TestLocateRoot(t *testing.T) {
	root := newSIPTree(t, t.TempDir(), "my_sip")

	cases := map[string]string{
		"root itself":        root,
		"metadata dir":       filepath.Join(root, "representations"),
		"representation dir": filepath.Join(root, "representations", "representation_1"),
		"essence file":       filepath.Join(root, "representations", "representation_1", "data", "archief_001.mxf"),
	}

	for name, loc := range cases {
		loc := loc
		t.Run(name, func(t *testing.T) {
			found, err := mets.LocateRoot(loc)
			if err != nil {
				t.Fatal(err)
			}
			if found != root {
				t.Errorf("located %s instead of %s", found, root)
			}
		})
	}
}

func TestLocateRootNotFound(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "just", "some", "dirs")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}

	if root, err := mets.LocateRoot(dir); err == nil {
		t.Errorf("expected no root, but found %s", root)
	}
}

func TestDiscover(t *testing.T) {
	base := t.TempDir()

	alpha := newSIPTree(t, filepath.Join(base, "batch"), "alpha_sip")
	beta := newSIPTree(t, filepath.Join(base, "batch"), "beta_sip")
	if err := os.MkdirAll(filepath.Join(base, "batch", "not_a_sip"), 0755); err != nil {
		t.Fatal(err)
	}

	roots, err := mets.Discover(base)
	if err != nil {
		t.Fatal(err)
	}

	diff := deep.Equal(roots, []string{alpha, beta})
	if diff != nil {
		t.Error(diff)
	}
}

func TestDiscoverSkipsSIPContents(t *testing.T) {
	base := t.TempDir()
	newSIPTree(t, base, "my_sip")

	roots, err := mets.Discover(base)
	if err != nil {
		t.Fatal(err)
	}

	if len(roots) != 1 {
		t.Errorf("representation manifests must not count as roots: %v", roots)
	}
}
