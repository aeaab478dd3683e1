package config

// Version is the tool version reported by `litgo version`.
// Can be overridden at build time using: -ldflags "-X .../internal/config.Version=..."
var Version = "0.1.0"

// ConfigFileName is the optional configuration file looked up in the
// working directory.
const ConfigFileName = "litgo.yaml"

// Directive marks a function for literal overloading.
const Directive = "//litgo:overload"

// BuildTag excludes annotated source files from the normal build; the
// generated siblings take their place.
const BuildTag = "litgo"

// GeneratedSuffix is the default file name suffix for generated siblings:
// example.go becomes example_litgo.go.
const GeneratedSuffix = "_litgo.go"

// GeneratedHeader is the first line of every generated file.
const GeneratedHeader = "// Code generated by litgo. DO NOT EDIT."

// Import paths emitted into rewritten code.
const (
	LitImportPath     = "github.com/funvibe/litgo/pkg/lit"
	TypeStrImportPath = "github.com/funvibe/litgo/pkg/typestr"
)
