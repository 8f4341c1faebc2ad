package models

// OutputDocument is one rendered configuration file of the deployment
// package.
type OutputDocument struct {
	// Name is the file name relative to the package root, e.g.
	// "terraform.tfvars" or "scripts/validate.sh".
	Name string `json:"name"`
	// Content is the rendered text.
	Content string `json:"content"`
	// Executable marks files that should be written with the execute bit
	// set (shell scripts).
	Executable bool `json:"executable,omitempty"`
}
