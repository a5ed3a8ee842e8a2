package main

import (
	"github.com/decker502/radial/cmd/radial"
	"github.com/decker502/radial/pkg/embedded"
)

func main() {
	// 初始化嵌入资源，必须在任何资源加载之前
	embedded.Init(assetsFS, dataFS)

	radial.Execute()
}
