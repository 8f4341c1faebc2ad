// Package render turns a resolved build configuration into the fixed set
// of deployment package documents.
package render

import (
	"fmt"
	"strings"

	terrasheet "github.com/wabcloud/terrasheet/pkg/terrasheet"
	"github.com/wabcloud/terrasheet/pkg/terrasheet/models"
)

// AllowedLocations is the region set the base-vm module accepts. Only
// consulted when location validation is switched on; by default an
// out-of-enum location renders verbatim and the downstream tool rejects
// it at apply time.
var AllowedLocations = []string{
	"WEST US",
	"WEST US 2",
	"WEST US 3",
	"EAST US",
}

// Options configures rendering.
type Options struct {
	// ValidateLocation rejects locations outside AllowedLocations at
	// generation time instead of passing them through.
	ValidateLocation bool
}

// Package renders the full deployment package for one build
// configuration: the value-bearing terraform.tfvars plus the fixed
// module, variables, outputs, provider, resource, script, and doc files.
func Package(cfg *models.BuildConfig, opts Options) ([]models.OutputDocument, error) {
	if opts.ValidateLocation && !locationAllowed(cfg.Location) {
		return nil, &terrasheet.ValidationError{
			Field:   "location",
			Value:   cfg.Location,
			Allowed: AllowedLocations,
		}
	}

	return []models.OutputDocument{
		{Name: "m-basevm.tf", Content: moduleTF},
		{Name: "variables.tf", Content: variablesTF},
		{Name: "terraform.tfvars", Content: TFVars(cfg)},
		{Name: "outputs.tf", Content: outputsTF},
		{Name: "versions.tf", Content: versionsTF},
		{Name: "data.tf", Content: dataTF},
		{Name: "locals.tf", Content: localsTF},
		{Name: "r-rg.tf", Content: resourceGroupTF},
		{Name: "r-asg.tf", Content: asgTF},
		{Name: "r-nsr.tf", Content: nsrTF},
		{Name: "r-kvlt.tf", Content: keyVaultTF},
		{Name: "scripts/validate.sh", Content: validateScript, Executable: true},
		{Name: "docs/README.md", Content: readme(cfg)},
	}, nil
}

func locationAllowed(location string) bool {
	for _, allowed := range AllowedLocations {
		if strings.EqualFold(location, allowed) {
			return true
		}
	}
	return false
}

// readme renders the package documentation file.
func readme(cfg *models.BuildConfig) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Deployment Package: %s\n\n", cfg.ProjectName)
	fmt.Fprintf(&b, "Generated from the build sheet for application %q (%s).\n\n", cfg.ApplicationName, cfg.Environment)
	fmt.Fprintf(&b, "- Location: %s\n", cfg.Location)
	fmt.Fprintf(&b, "- Application owner: %s\n", cfg.AppOwner)
	fmt.Fprintf(&b, "- Business owner: %s\n", cfg.BusinessOwner)
	fmt.Fprintf(&b, "- Ticket: %s\n", cfg.ServiceNowTicket)
	fmt.Fprintf(&b, "- Virtual machines: %d\n", len(cfg.VMs))
	fmt.Fprintf(&b, "- Security rules: %d\n\n", len(cfg.SecurityRules))

	if len(cfg.VMs) > 0 {
		b.WriteString("## Virtual machines\n\n")
		b.WriteString("| Name | Size | OS |\n|---|---|---|\n")
		for _, vm := range cfg.VMs {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", vm.Name, vm.Size, vm.ImageOS)
		}
		b.WriteString("\n")
	}

	if len(cfg.Defaulted) > 0 {
		b.WriteString("## Defaulted fields\n\n")
		b.WriteString("The following fields had no match in the source workbook and use built-in defaults:\n\n")
		for _, field := range cfg.Defaulted {
			fmt.Fprintf(&b, "- %s\n", field)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Usage\n\n")
	b.WriteString("```\nterraform init\nterraform plan -out tfplan\nterraform apply tfplan\n```\n")
	return b.String()
}
