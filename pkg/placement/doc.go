// Package placement defines the ordinal buckets that decide where a tab
// sits within its group: Beginning, Middle and End, in that order.
//
// The package is a namespace of constants plus a comparator. Order exists
// only so that attempts to treat the namespace as a value fail loudly.
package placement
