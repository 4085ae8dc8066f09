package main

// _version is the version of snip2img.
//
// Set this at build time with:
//
//	go build -ldflags "-X main._version=1.2.3"
var _version = "dev"
