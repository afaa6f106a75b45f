// Package compose builds the commit message template holding the refs block
// and decides how git commit receives it.
package compose
