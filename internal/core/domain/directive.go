package domain

// Flavor selects the directive syntax understood by the invoking build
// orchestrator.
type Flavor string

const (
	// FlavorCargo renders cargo build-script directives. This is the default.
	FlavorCargo Flavor = "cargo"
	// FlavorPlain renders bare key=value directives for other orchestrators.
	FlavorPlain Flavor = "plain"
)

// DirectiveKind enumerates the directive types rlink can emit.
type DirectiveKind int

const (
	// DirectiveLinkSearch adds a directory to the linker's library search path.
	DirectiveLinkSearch DirectiveKind = iota
	// DirectiveLinkLib links against a dynamic library by name.
	DirectiveLinkLib
	// DirectiveRerunIfChanged tells the orchestrator to re-run the build step
	// only when the named file changes.
	DirectiveRerunIfChanged
)

// Directive is one line of build-orchestrator output.
type Directive struct {
	Kind  DirectiveKind
	Value string
}

// Render formats the directive for the given flavor. Unknown flavors render
// as cargo, keeping emission total over all inputs.
func (d Directive) Render(flavor Flavor) string {
	if flavor == FlavorPlain {
		switch d.Kind {
		case DirectiveLinkSearch:
			return "link-search=" + d.Value
		case DirectiveLinkLib:
			return "link-lib=" + d.Value
		case DirectiveRerunIfChanged:
			return "rerun-if-changed=" + d.Value
		}
		return ""
	}
	switch d.Kind {
	case DirectiveLinkSearch:
		return "cargo:rustc-link-search=" + d.Value
	case DirectiveLinkLib:
		return "cargo:rustc-link-lib=dylib=" + d.Value
	case DirectiveRerunIfChanged:
		return "cargo:rerun-if-changed=" + d.Value
	}
	return ""
}
