/*
Package pixsvg converts raster images into pixel-exact vector SVG documents
by encoding every horizontal run of identical pixels as a <rect> element.
The conversion is lossless for every pixel with a non-zero alpha channel;
fully transparent pixels are simply omitted from the document.

The package provides a command line interface for batch conversions:

	$ pixsvg convert images/

In case you wish to integrate the API in a self constructed environment here
is a simple example:

	package main

	import (
		"context"
		"fmt"

		"github.com/pixsvg/pixsvg"
	)

	func main() {
		p := &pixsvg.Processor{OutputDir: "converted_svgs"}

		outcomes, err := p.ConvertBatch(context.Background(), paths)
		if err != nil {
			fmt.Printf("Error converting the images: %s", err.Error())
		}
		for _, o := range outcomes {
			fmt.Printf("%s: %s\n", o.Input, o.Detail())
		}
	}
*/
package pixsvg
