// Package mapper resolves detected sheet structures onto the fixed build
// configuration schema. Every target field carries an ordered keyword
// candidate list and a literal default; resolution is a total function,
// so the output always has every field populated.
package mapper

// Field declares one scalar target field: where to look, what to match,
// and what to substitute when nothing matches.
type Field struct {
	// Name is the target field name (tfvars naming).
	Name string
	// Sheets lists sheet names searched first, in order. All remaining
	// sheets are searched afterwards, so a preferred sheet only biases
	// resolution, it never excludes data.
	Sheets []string
	// Keywords are candidate source-key fragments, matched
	// case-insensitively as substrings, first hit wins.
	Keywords []string
	// Default is the literal substituted when no key matches.
	Default string
	// Required marks fields whose defaulting is fatal in strict mode.
	Required bool
}

// Schema is the fixed target schema evaluated by the resolver.
type Schema struct {
	Scalars []Field
}

// DefaultSchema returns the built-in build-sheet schema.
func DefaultSchema() Schema {
	return Schema{
		Scalars: []Field{
			{
				Name:     "project_name",
				Keywords: []string{"project name"},
				Default:  "Default Project",
				Required: true,
			},
			{
				Name:     "application_name",
				Keywords: []string{"abbreviated app", "application name", "app name"},
				Default:  "default-app",
				Required: true,
			},
			{
				Name:     "app_description",
				Keywords: []string{"application description", "description"},
				Default:  "No description provided",
			},
			{
				Name:     "app_tier",
				Keywords: []string{"application tier", "app tier"},
				Default:  "Bronze",
			},
			{
				Name:     "app_owner",
				Keywords: []string{"app owner"},
				Default:  "TBD",
				Required: true,
			},
			{
				Name:     "business_owner",
				Keywords: []string{"business owner"},
				Default:  "TBD",
			},
			{
				Name:     "service_now_ticket",
				Keywords: []string{"service now", "snow", "ticket"},
				Default:  "RITM000000",
			},
			{
				Name:     "environment",
				Keywords: []string{"environment"},
				Default:  "DEV",
			},
			{
				Name:     "location",
				Sheets:   []string{"Build_ENV"},
				Keywords: []string{"location", "region"},
				Default:  "WEST US 3",
			},
			{
				Name:     "admin_username",
				Sheets:   []string{"Build_ENV"},
				Keywords: []string{"admin user"},
				Default:  "cisadmin",
			},
		},
	}
}

// VM table and per-row candidate keywords. The table whose header row
// contains any of TableKeywords backs the vm_list field.
var (
	vmTableKeywords = []string{"host", "vm", "server", "machine", "instance"}
	vmNameKeywords  = []string{"hostname", "vm name", "server name", "name"}
	vmSizeKeywords  = []string{"recommended sku", "sku", "vm size", "size", "instance type", "node size"}
	vmOSKeywords    = []string{"os image", "image", "operating system", "os"}
	vmRoleKeywords  = []string{"role"}
	vmPatchKeywords = []string{"patch"}
	vmSnowKeywords  = []string{"service now", "snow", "ticket"}
)

// NSG rule per-row candidate keywords. Rules come from tables on the NSG
// sheet.
var (
	nsgSheetName         = "NSG"
	ruleNameKeywords     = []string{"rule name", "name"}
	rulePriorityKeywords = []string{"priority"}
	ruleDirectionKeys    = []string{"direction"}
	ruleAccessKeywords   = []string{"access"}
	ruleProtocolKeywords = []string{"protocol"}
	ruleSrcPortKeywords  = []string{"source port"}
	ruleDstPortKeywords  = []string{"destination port", "dest port"}
	ruleDescKeywords     = []string{"description"}
)

// Key vault candidate keywords, searched on Build_ENV first.
var (
	kvSheets           = []string{"Build_ENV"}
	kvSKUKeywords      = []string{"sku_name", "sku"}
	kvRetentionKeys    = []string{"soft_delete_retention", "retention"}
	kvPublicAccessKeys = []string{"public_network_access", "public network access"}
)

// subscriptionKeywords drive output directory naming discovery.
var subscriptionKeywords = []string{"subscription"}
