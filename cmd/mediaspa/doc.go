// Command mediaspa serves the media client and inspects its route table.
//
//	mediaspa serve
//	mediaspa routes [--json]
//	mediaspa resolve <path or URL> [--json]
//
// Every command reads the route table embedded in the binary
// unless --routes names a TOML document.
package main
