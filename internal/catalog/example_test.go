package catalog_test

import (
	"fmt"

	"github.com/steviee/gogify/internal/catalog"
	"github.com/steviee/gogify/internal/gog"
	"github.com/steviee/gogify/internal/platform"
)

func ExampleFormatSize() {
	fmt.Println(catalog.FormatSize(0))
	fmt.Println(catalog.FormatSize(1536))
	fmt.Println(catalog.FormatSize(943718400))
	// Output:
	// 0.0B
	// 1.5KiB
	// 900.0MiB
}

func ExampleBuildRows() {
	str := func(s string) *string { return &s }
	size := int64(943718400)

	installers := []gog.Installer{
		{Name: str("The Witcher 3"), Version: str("4.04"), OS: str("windows"), Language: str("en")},
		{Name: str("The Witcher 3"), Version: str("4.04"), OS: str("linux"), Language: str("en"), TotalSize: &size},
	}

	for _, row := range catalog.BuildRows(installers, catalog.FilterHost, platform.Linux, true) {
		fmt.Println(row.Name, row.Version, row.Platform, row.Lang, row.Size)
	}
	// Output:
	// The Witcher 3 4.04 linux en 900.0MiB
}
