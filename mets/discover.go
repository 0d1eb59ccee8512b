package mets

import (
	"path/filepath"

	"github.com/karrick/godirwalk"
	"github.com/pkg/errors"
)

// Discover walks dir and returns the root of every unpacked SIP found
// below it, in lexical order. Discovery does not descend into the SIPs
// it finds.
func Discover(dir string) ([]string, error) {
	var roots []string

	err := godirwalk.Walk(dir, &godirwalk.Options{
		FollowSymbolicLinks: true,
		Callback: func(ospath string, de *godirwalk.Dirent) error {
			if !de.IsDir() {
				return nil
			}

			found, err := isRoot(ospath)
			if err != nil {
				return err
			}
			if found {
				roots = append(roots, ospath)
				return filepath.SkipDir
			}
			return nil
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "error walking %s", dir)
	}

	return roots, nil
}
