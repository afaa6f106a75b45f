// Package extract derives commit references from the branch name and the
// clipboard. The set of extractors is closed: every implementation lives in
// this package and Default returns them in the order their lines appear in
// the refs block.
package extract
