package assets

import (
	_ "embed"
)

// DefaultConfigYAML contains the embedded default configuration.
//
//go:embed defaults/config.yaml
var DefaultConfigYAML []byte

// BannerArt is the block-letter title drawn when a session starts.
//
//go:embed defaults/banner.txt
var BannerArt string
