//go:build ocr

package config

// DefaultEngine uses the gosseract bindings compiled in by -tags ocr.
const DefaultEngine = EngineTesseract
