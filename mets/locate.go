package mets

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// ManifestFile is the name of the METS manifest in a SIP or
// representation directory.
const ManifestFile = "METS.xml"

// LocateRoot finds the root directory of the unpacked SIP holding loc.
// The primary use case is finding the package manifest when given the
// location of some file somewhere within the SIP.
func LocateRoot(loc string) (string, error) {
	addr, err := filepath.Abs(loc)
	if err != nil {
		return "", errors.Wrapf(err, "could not calculate absolute path of %s", loc)
	}

	if fi, err := os.Stat(addr); err == nil && !fi.IsDir() {
		addr = filepath.Dir(addr)
	}

	return crawlForRoot(filepath.Join(addr, "_"))
}

// Crawl up the directory hierarchy until we reach a SIP root.
func crawlForRoot(addr string) (string, error) {
	parent := filepath.Dir(addr)

	found, err := isRoot(parent)
	if err != nil {
		return "", errors.Wrap(err, "error detecting SIP root")
	}

	if !found && parent == addr {
		return "", errors.New("no SIP root found crawling up to /")
	}

	if !found {
		return crawlForRoot(parent)
	}

	return parent, nil
}

// isRoot detects whether path holds a package manifest. Representation
// directories keep their own manifest, so a directory directly under
// representations/ does not count.
func isRoot(path string) (bool, error) {
	nf, err := os.Stat(filepath.Join(path, ManifestFile))
	if err != nil && !os.IsNotExist(err) {
		return false, errors.Wrapf(err, "error detecting manifest in %s", path)
	}
	if err != nil || !nf.Mode().IsRegular() {
		return false, nil
	}

	return filepath.Base(filepath.Dir(path)) != "representations", nil
}
