//go:build !ocr

package config

// DefaultEngine runs the tesseract executable when the bindings are not
// compiled in.
const DefaultEngine = EngineCommand
