// Package index builds the startup file index for the slideshow server.
//
// The index is the addressing scheme for the whole process: position N in
// the sorted collection result always maps to the same absolute path for the
// process lifetime. Files that disappear after startup stay in the index and
// surface as not-found at request time; positions are never renumbered.
//
// Collection walks the media root once, filters by the supported image
// extension set (or accepts everything in all-files mode) and sorts the
// canonical, symlink-resolved path strings lexicographically so two runs
// over an unchanged tree produce identical orderings regardless of
// directory-entry enumeration order.
package index
