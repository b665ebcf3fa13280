// Command p256ffcheck runs the field/curve library's known-answer vectors
// and reports pass/fail for each, plus a host diagnostics banner. It is
// the concrete "test-driver expectations" collaborator described by the
// core library's specification: the core itself exposes no CLI.
package main

import (
	"fmt"
	"os"

	"p256ff.dev/selftest"
)

func main() {
	fmt.Println(selftest.HostBanner())

	results := selftest.Run()
	failures := 0
	for _, r := range results {
		if r.Err != nil {
			failures++
			fmt.Printf("FAIL %s: %v\n", r.Name, r.Err)
			continue
		}
		fmt.Printf("ok   %s\n", r.Name)
	}

	digest := selftest.Digest(results)
	fmt.Printf("vector set digest: %x\n", digest)
	fmt.Printf("%d/%d vectors passed\n", len(results)-failures, len(results))

	if failures > 0 {
		os.Exit(1)
	}
}
