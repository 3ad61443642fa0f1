// Package tabs is the registry through which feature modules contribute
// named tabs to groups of the admin UI.
//
// Modules call Register during start-up; renderers later call GetTabGroup
// or GetTab to read each group in placement order. Names are unique per
// group and must match ^[a-z0-9_]+$. A tab's contents may be replaced at
// any time through SetContents, which is how lazily computed views are
// supplied; every other field is fixed at registration.
//
// The registry is an explicit value rather than process-wide state: create
// one with New at start-up and share the pointer with every module.
package tabs
