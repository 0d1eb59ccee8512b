package mets_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/viaacode/sipin-meemoo-sip-2-transformator/mets"
)

const testPackagePremis = `<?xml version="1.0" encoding="UTF-8"?>
<premis:premis version="3.0"
    xmlns:premis="http://www.loc.gov/premis/v3"
    xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <premis:object xsi:type="premis:intellectualEntity">
    <premis:objectIdentifier>
      <premis:objectIdentifierType>UUID</premis:objectIdentifierType>
      <premis:objectIdentifierValue>uuid-ie</premis:objectIdentifierValue>
    </premis:objectIdentifier>
  </premis:object>
</premis:premis>`

const testRepresentationPremis = `<?xml version="1.0" encoding="UTF-8"?>
<premis:premis version="3.0"
    xmlns:premis="http://www.loc.gov/premis/v3"
    xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <premis:object xsi:type="premis:representation">
    <premis:objectIdentifier>
      <premis:objectIdentifierType>UUID</premis:objectIdentifierType>
      <premis:objectIdentifierValue>uuid-rep1</premis:objectIdentifierValue>
    </premis:objectIdentifier>
  </premis:object>
</premis:premis>`

// writeRecord drops a preservation record where the manifests of this
// package expect one, creating the metadata directories on the way.
func writeRecord(t *testing.T, dir, content string) {
	t.Helper()

	md := filepath.Join(dir, "metadata", "preservation")
	if err := os.MkdirAll(md, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(md, "premis.xml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// newLoadableSIP builds a complete two representation SIP on disk.
func newLoadableSIP(t *testing.T, base, name string) string {
	t.Helper()

	root := filepath.Join(base, name)
	writeManifest(t, root, testPackageMETS)
	writeRecord(t, root, testPackagePremis)

	for i, repr := range []string{"representation_1", "representation_2"} {
		dir := filepath.Join(root, "representations", repr)
		writeManifest(t, dir, testRepresentationMETS)
		writeRecord(t, dir, strings.Replace(testRepresentationPremis, "uuid-rep1", fmt.Sprintf("uuid-rep%d", i+1), 1))
	}

	return root
}

func TestLoad(t *testing.T) {
	root := newLoadableSIP(t, t.TempDir(), "my_sip")

	sip, err := mets.Load(root)
	if err != nil {
		t.Fatal(err)
	}

	if sip.Profile != "https://data.hetarchief.be/id/sip/2.1/film" {
		t.Errorf("wrong profile %q", sip.Profile)
	}

	if sip.Package.Path != "my_sip" {
		t.Errorf("wrong package record path %q", sip.Package.Path)
	}
	entities := sip.Package.Entities()
	if len(entities) != 1 {
		t.Fatalf("expected one intellectual entity, got %d", len(entities))
	}
	if id, ok := entities[0].UUID(); !ok || id.Value != "uuid-ie" {
		t.Errorf("wrong entity identifier %v", entities[0].Identifiers)
	}

	if len(sip.Representations) != 2 {
		t.Fatalf("expected two representation records, got %d", len(sip.Representations))
	}
	for i, want := range []string{"uuid-rep1", "uuid-rep2"} {
		rec := sip.Representations[i]

		path := fmt.Sprintf("my_sip/representations/representation_%d", i+1)
		if rec.Path != path {
			t.Errorf("wrong record path %q, wanted %q", rec.Path, path)
		}

		reprs := rec.Representations()
		if len(reprs) != 1 {
			t.Fatalf("expected one representation object in %s, got %d", rec.Path, len(reprs))
		}
		if id, ok := reprs[0].UUID(); !ok || id.Value != want {
			t.Errorf("wrong representation identifier %v", reprs[0].Identifiers)
		}
	}
}

func TestLoadRequiresProfile(t *testing.T) {
	root := newLoadableSIP(t, t.TempDir(), "my_sip")

	manifest := strings.Replace(testPackageMETS, `csip:OTHERCONTENTINFORMATIONTYPE="https://data.hetarchief.be/id/sip/2.1/film"`, "", 1)
	writeManifest(t, root, manifest)

	_, err := mets.Load(root)
	if err == nil {
		t.Fatal("expected an error for a package manifest without a profile")
	}
	if !strings.Contains(err.Error(), "profile") {
		t.Errorf("error should mention the missing profile: %s", err)
	}
}

func TestLoadRequiresPreservationRef(t *testing.T) {
	root := newLoadableSIP(t, t.TempDir(), "my_sip")

	manifest := strings.Replace(testPackageMETS, `LOCTYPE="URL"`, `LOCTYPE="HANDLE"`, 1)
	writeManifest(t, root, manifest)

	_, err := mets.Load(root)
	if err == nil {
		t.Fatal("expected an error for a manifest without a preservation record link")
	}
	if !strings.Contains(err.Error(), "no preservation record") {
		t.Errorf("unexpected error: %s", err)
	}
}

func TestLoadMissingRepresentationRecord(t *testing.T) {
	root := newLoadableSIP(t, t.TempDir(), "my_sip")

	record := filepath.Join(root, "representations", "representation_2", "metadata", "preservation", "premis.xml")
	if err := os.Remove(record); err != nil {
		t.Fatal(err)
	}

	if _, err := mets.Load(root); err == nil {
		t.Fatal("expected an error for a missing representation record")
	}
}

func TestLoadRejectsInvalidRecord(t *testing.T) {
	root := newLoadableSIP(t, t.TempDir(), "my_sip")

	record := strings.Replace(testPackagePremis,
		"<premis:objectIdentifier>", "<premis:objectIdentifier-disabled>", 1)
	record = strings.Replace(record,
		"</premis:objectIdentifier>", "</premis:objectIdentifier-disabled>", 1)
	writeRecord(t, root, record)

	_, err := mets.Load(root)
	if err == nil {
		t.Fatal("expected an error for a record whose object has no identifiers")
	}
	if !strings.Contains(err.Error(), "invalid preservation record") {
		t.Errorf("unexpected error: %s", err)
	}
}
