// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package version holds the sclgen version and the compatibility rules between
this build and the catalog files it reads.
*/
package version

import (
	"fmt"

	goversion "github.com/hashicorp/go-version"
)

// Version is overridden at build time via -ldflags.
var Version = "0.1.0"

// SupportedCatalogFormats is the range of catalog envelope "formatVersion"
// values this build understands.
const SupportedCatalogFormats = ">= 1.0, < 2.0"

// CheckCatalogFormat reports an error unless formatVersion lies within
// SupportedCatalogFormats.
func CheckCatalogFormat(formatVersion string) error {
	constraints, err := goversion.NewConstraint(SupportedCatalogFormats)
	if err != nil {
		return err
	}

	v, err := goversion.NewVersion(formatVersion)
	if err != nil {
		return fmt.Errorf("Parsing catalog formatVersion '%s': %s", formatVersion, err)
	}

	if !constraints.Check(v) {
		return fmt.Errorf("Catalog formatVersion %s is not supported (expected %s)", formatVersion, SupportedCatalogFormats)
	}
	return nil
}

// RequireAtLeast reports an error if this build is older than minimum.
func RequireAtLeast(minimum string) error {
	constraint, err := goversion.NewConstraint(">= " + minimum)
	if err != nil {
		return fmt.Errorf("Parsing minimum sclgen version '%s': %s", minimum, err)
	}

	current, err := goversion.NewVersion(Version)
	if err != nil {
		return err
	}

	if !constraint.Check(current) {
		return fmt.Errorf("sclgen version %s does not meet the minimum required version %s", Version, minimum)
	}
	return nil
}
