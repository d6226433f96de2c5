package main

import (
	"fmt"
	"os"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/spanforest/cmd/spanforest/app"
)

func main() {
	err := app.NewSpanforestCommand().Execute()
	klog.Flush()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
