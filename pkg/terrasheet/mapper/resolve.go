package mapper

import (
	"fmt"
	"sort"
	"strings"

	"github.com/wabcloud/terrasheet/pkg/terrasheet/models"
)

// Resolver maps detected workbook structures onto the build configuration
// schema.
type Resolver struct {
	// Schema is the target schema, normally DefaultSchema.
	Schema Schema
	// Strict makes defaulting of required fields an error instead of a
	// silent substitution.
	Strict bool
	// SkipEmptyVMs drops VM table rows with no hostname-like value
	// instead of synthesizing "<app>-NN" names. Off by default so the
	// rendered list length always matches the table's data rows.
	SkipEmptyVMs bool
}

// NewResolver returns a lenient resolver over the given schema.
func NewResolver(schema Schema) *Resolver {
	return &Resolver{Schema: schema}
}

// Map resolves a workbook into a BuildConfig. Resolution is total: every
// schema field ends up populated, from the source when a candidate key
// matched, from its literal default otherwise. The only error condition
// is strict mode rejecting a defaulted required field.
func (r *Resolver) Map(wb *models.WorkbookData) (*models.BuildConfig, error) {
	cfg := &models.BuildConfig{}

	var strictViolations []string
	scalars := make(map[string]string)
	for _, field := range r.Schema.Scalars {
		value, found := r.lookup(wb, field.Sheets, field.Keywords)
		if !found {
			value = field.Default
			cfg.Defaulted = append(cfg.Defaulted, field.Name)
			if field.Required {
				strictViolations = append(strictViolations, field.Name)
			}
		}
		scalars[field.Name] = value
	}

	cfg.ProjectName = scalars["project_name"]
	cfg.ApplicationName = scalars["application_name"]
	cfg.AppDescription = scalars["app_description"]
	cfg.AppTier = scalars["app_tier"]
	cfg.AppOwner = scalars["app_owner"]
	cfg.BusinessOwner = scalars["business_owner"]
	cfg.ServiceNowTicket = scalars["service_now_ticket"]
	cfg.Environment = scalars["environment"]
	cfg.Location = scalars["location"]
	cfg.AdminUsername = scalars["admin_username"]

	if spn, ok := r.lookup(wb, []string{"Build_ENV"}, []string{"spn", "service principal"}); ok {
		cfg.SPN = spn
	} else {
		cfg.SPN = "spn-terraform-" + NormalizeResourceName(cfg.ProjectName)
	}

	if sub, ok := r.lookup(wb, []string{"Build_ENV", "Resources"}, subscriptionKeywords); ok {
		cfg.Subscription = sub
	}

	cfg.KeyVault = r.resolveKeyVault(wb)
	cfg.VMs = r.resolveVMs(wb, cfg.ApplicationName, cfg.ServiceNowTicket)
	cfg.SecurityRules = r.resolveSecurityRules(wb, cfg.ProjectName)

	if r.Strict && len(strictViolations) > 0 {
		return cfg, &MappingError{Fields: strictViolations}
	}
	return cfg, nil
}

// MappingError reports required fields that fell back to their literal
// defaults while strict field resolution was enabled. In lenient mode the
// same condition is only recorded in BuildConfig.Defaulted.
type MappingError struct {
	Fields []string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("strict mode: required fields defaulted: %s", strings.Join(e.Fields, ", "))
}

// lookup searches key/value pairs for the first key containing a
// candidate keyword. Keywords are tried in declared order; for each
// keyword, preferred sheets are scanned first, then every remaining sheet
// in name order so resolution stays deterministic.
func (r *Resolver) lookup(wb *models.WorkbookData, preferred []string, keywords []string) (string, bool) {
	order := sheetOrder(wb, preferred)
	for _, kw := range keywords {
		kwLower := strings.ToLower(kw)
		for _, sheetName := range order {
			for _, pair := range wb.Sheets[sheetName].KeyValues {
				if strings.Contains(strings.ToLower(pair.Key), kwLower) {
					return pair.Value, true
				}
			}
		}
	}
	return "", false
}

// sheetOrder returns preferred sheets that exist, followed by the
// remaining sheet names sorted.
func sheetOrder(wb *models.WorkbookData, preferred []string) []string {
	var order []string
	seen := make(map[string]bool)
	for _, name := range preferred {
		if _, ok := wb.Sheets[name]; ok && !seen[name] {
			order = append(order, name)
			seen[name] = true
		}
	}
	var rest []string
	for name := range wb.Sheets {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}

func (r *Resolver) resolveKeyVault(wb *models.WorkbookData) models.KeyVaultSettings {
	kv := models.KeyVaultSettings{
		SKUName:                 "standard",
		SoftDeleteRetentionDays: 90,
		PublicNetworkAccess:     true,
	}
	if v, ok := r.lookup(wb, kvSheets, kvSKUKeywords); ok {
		kv.SKUName = strings.ToLower(v)
	}
	if v, ok := r.lookup(wb, kvSheets, kvRetentionKeys); ok {
		kv.SoftDeleteRetentionDays = ParseInt(v, kv.SoftDeleteRetentionDays)
	}
	if v, ok := r.lookup(wb, kvSheets, kvPublicAccessKeys); ok {
		kv.PublicNetworkAccess = ParseBool(v, kv.PublicNetworkAccess)
	}
	return kv
}

// resolveVMs locates the VM table (first table whose headers carry a VM
// keyword, Resources sheet first) and maps each data row to a VMInstance.
func (r *Resolver) resolveVMs(wb *models.WorkbookData, appName, snowDefault string) []models.VMInstance {
	table := findTable(wb, []string{"Resources"}, vmTableKeywords)
	if table == nil {
		return nil
	}

	var vms []models.VMInstance
	for i, row := range table.Data {
		name, named := rowValue(table.Headers, row, vmNameKeywords)
		if !named {
			if r.SkipEmptyVMs {
				continue
			}
			name = fmt.Sprintf("%s-%02d", appName, i+1)
		} else {
			name = sanitizeHostname(name)
		}

		size := "Standard_B2s_v2"
		if v, ok := rowValue(table.Headers, row, vmSizeKeywords); ok && looksLikeSKU(v) {
			size = v
		}

		osType := "windows"
		if v, ok := rowValue(table.Headers, row, vmOSKeywords); ok {
			if inferred := inferOSType(v); inferred != "" {
				osType = inferred
			}
		}

		vm := models.VMInstance{
			Name:         name,
			Size:         size,
			ImageOS:      osType,
			ImageURN:     imageURN(osType),
			IPAllocation: "Dynamic",
			OSDiskSize:   128,
			OSDiskType:   "StandardSSD_LRS",
			Role:         "Application",
			PatchOptin:   "NO",
			SnowItem:     snowDefault,
		}
		if v, ok := rowValue(table.Headers, row, []string{"allocation"}); ok {
			vm.IPAllocation = v
		}
		if v, ok := rowValue(table.Headers, row, []string{"disk size"}); ok {
			vm.OSDiskSize = ParseInt(v, vm.OSDiskSize)
		}
		if v, ok := rowValue(table.Headers, row, []string{"disk type"}); ok {
			vm.OSDiskType = v
		}
		if v, ok := rowValue(table.Headers, row, vmRoleKeywords); ok {
			vm.Role = v
		}
		if v, ok := rowValue(table.Headers, row, vmPatchKeywords); ok {
			vm.PatchOptin = strings.ToUpper(v)
		}
		if v, ok := rowValue(table.Headers, row, vmSnowKeywords); ok {
			vm.SnowItem = v
		}
		vms = append(vms, vm)
	}
	return vms
}

// resolveSecurityRules maps every data row of every table on the NSG
// sheet to a SecurityRule. Missing rule sub-fields default per row.
func (r *Resolver) resolveSecurityRules(wb *models.WorkbookData, projectName string) []models.SecurityRule {
	sheet, ok := wb.Sheets[nsgSheetName]
	if !ok {
		return nil
	}

	var rules []models.SecurityRule
	idx := 0
	for _, table := range sheet.Tables {
		for _, row := range table.Data {
			rule := models.SecurityRule{
				Name:                  fmt.Sprintf("rule_%d", idx),
				Priority:              100 + idx*10,
				Direction:             "Inbound",
				Access:                "Allow",
				Protocol:              "Tcp",
				SourcePortRange:       "*",
				DestinationPortRanges: []string{"443"},
				Description:           fmt.Sprintf("Security rule for %s", projectName),
			}
			if v, ok := rowValue(table.Headers, row, ruleNameKeywords); ok {
				rule.Name = v
			}
			if v, ok := rowValue(table.Headers, row, rulePriorityKeywords); ok {
				rule.Priority = ParseInt(v, rule.Priority)
			}
			if v, ok := rowValue(table.Headers, row, ruleDirectionKeys); ok {
				rule.Direction = v
			}
			if v, ok := rowValue(table.Headers, row, ruleAccessKeywords); ok {
				rule.Access = v
			}
			if v, ok := rowValue(table.Headers, row, ruleProtocolKeywords); ok {
				rule.Protocol = v
			}
			if v, ok := rowValue(table.Headers, row, ruleSrcPortKeywords); ok {
				rule.SourcePortRange = v
			}
			if v, ok := rowValue(table.Headers, row, ruleDstPortKeywords); ok {
				rule.DestinationPortRanges = splitPorts(v)
			}
			if v, ok := rowValue(table.Headers, row, ruleDescKeywords); ok {
				rule.Description = v
			}
			rules = append(rules, rule)
			idx++
		}
	}
	return rules
}

// splitPorts splits a comma-separated port list cell.
func splitPorts(v string) []string {
	parts := strings.Split(v, ",")
	var ports []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ports = append(ports, p)
		}
	}
	if len(ports) == 0 {
		return []string{"443"}
	}
	return ports
}

// findTable returns the first table whose headers contain one of the
// keywords, scanning preferred sheets first.
func findTable(wb *models.WorkbookData, preferred []string, keywords []string) *models.DetectedTable {
	for _, sheetName := range sheetOrder(wb, preferred) {
		for i := range wb.Sheets[sheetName].Tables {
			table := &wb.Sheets[sheetName].Tables[i]
			if table.HasHeaderKeyword(keywords) {
				return table
			}
		}
	}
	return nil
}

// rowValue searches a data row's own columns by keyword, in header order
// for determinism.
func rowValue(headers []string, row map[string]string, keywords []string) (string, bool) {
	for _, kw := range keywords {
		kwLower := strings.ToLower(kw)
		for _, header := range headers {
			if !strings.Contains(strings.ToLower(header), kwLower) {
				continue
			}
			if v, ok := row[header]; ok && strings.TrimSpace(v) != "" {
				return strings.TrimSpace(v), true
			}
		}
	}
	return "", false
}
