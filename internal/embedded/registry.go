// Package embedded ships corpus assets compiled into the binary and a
// small registry for looking them up by name. The default asset is the KJV
// dataset; release builds regenerate assets/ with the import tooling.
package embedded

import (
	"embed"
	"sort"
	"strings"

	"github.com/FocuswithJustin/CedarBible/core/loader"
)

//go:embed assets/*.json
var assetFS embed.FS

// DefaultName is the asset served when no name is given.
const DefaultName = "kjv"

// Asset returns the embedded asset source for the given name.
func Asset(name string) (loader.AssetSource, bool) {
	data, err := assetFS.ReadFile("assets/" + name + ".json")
	if err != nil {
		return nil, false
	}
	return loader.BytesAsset(data), true
}

// Default returns the default embedded corpus asset.
func Default() loader.AssetSource {
	src, ok := Asset(DefaultName)
	if !ok {
		// The default asset is compiled in; a miss means a broken build.
		panic("embedded: default corpus asset missing")
	}
	return src
}

// Names lists the embedded asset names, sorted.
func Names() []string {
	entries, err := assetFS.ReadDir("assets")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".json"); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
