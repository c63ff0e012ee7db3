// Package manifest reads the HCL manifests that describe extension units.
//
// Every unit may ship a `<simple-name>.hcl` file inside its namespace
// directory. The file is optional for units that are compiled in, and it is
// what the standard discovery strategy enumerates on disk. A manifest carries a
// free-form description and a `settings` object handed to the unit's init
// function:
//
//	description = "Zoom commands"
//	settings = {
//	  default = 100
//	  levels  = [50, 100, 150]
//	}
//
// A Store resolves dotted unit names to manifests across a list of Mounts,
// each mount binding a dotted package name to an fs.FS rooted at that
// package's directory.
package manifest
