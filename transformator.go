package transformator

import (
	"github.com/viaacode/sipin-meemoo-sip-2-transformator/mets"
	"github.com/viaacode/sipin-meemoo-sip-2-transformator/premis"
	"github.com/viaacode/sipin-meemoo-sip-2-transformator/prov"
	"github.com/viaacode/sipin-meemoo-sip-2-transformator/resolv"
)

// Transform resolves the preservation records of one loaded SIP into a
// normalized provenance graph, stamped with the SIP profile.
func Transform(sip *mets.SIP) (*prov.SIP, error) {
	graph, err := TransformRecords(sip.Package, sip.Representations...)
	if err != nil {
		return nil, err
	}

	graph.Profile = sip.Profile
	return graph, nil
}

// TransformRecords resolves already parsed preservation records, the
// package record first. Use this when the records do not come from an
// unpacked SIP on disk.
func TransformRecords(pkg *premis.Record, reprs ...*premis.Record) (*prov.SIP, error) {
	return resolv.NewTransformer(pkg, reprs...).Transform()
}

// TransformPath locates the SIP holding path, loads its preservation
// records, and transforms them. path may point at the SIP root or at
// anything inside it.
func TransformPath(path string) (*prov.SIP, error) {
	root, err := mets.LocateRoot(path)
	if err != nil {
		return nil, err
	}

	sip, err := mets.Load(root)
	if err != nil {
		return nil, err
	}

	return Transform(sip)
}
