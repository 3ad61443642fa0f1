// Package modules loads the feature modules that contribute tabs.
//
// A Module registers its tabs into the shared registry. The Loader runs
// modules in a fixed order at start-up and stops at the first failure, since
// a bad registration is a bug in the contributing module.
package modules
