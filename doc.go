/*
Package carve reduces the width of an image in a content aware manner through
seam carving: it repeatedly locates the connected top-to-bottom path of pixels
with the lowest cumulated edge energy and removes it, shrinking the image by
one column at a time while the important regions are preserved.

The package provides a command line interface supporting local files, URLs,
directories and Unix pipes as image sources. To check the supported commands type:

	$ carve --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"
		"github.com/seamly/carve"
	)

	func main() {
		p := &carve.Processor{
			Seams: 120,
		}

		if _, err := p.Process(in, out); err != nil {
			fmt.Printf("Error carving image: %s", err.Error())
		}
	}
*/
package carve
