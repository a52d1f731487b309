// Command urlgen expands range and alternation templates into URL lists.
//
//	urlgen expand 'https://example.com/[1-3]/page[01-10]?q={a|b}'
//	urlgen expand --config job.yaml --save --db batches.db
//	urlgen batches list --db batches.db
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
