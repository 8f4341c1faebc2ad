package render

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/wabcloud/terrasheet/pkg/terrasheet/mapper"
	"github.com/wabcloud/terrasheet/pkg/terrasheet/models"
)

// TFVars renders terraform.tfvars from the build configuration. Scalars
// render per their declared type: strings quoted, numbers and booleans
// bare. List fields expand one object per element. Values pass through
// verbatim; nothing here validates them against the provider's grammar.
func TFVars(cfg *models.BuildConfig) string {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	project := mapper.NormalizeResourceName(cfg.ProjectName)
	app := mapper.NormalizeResourceName(cfg.ApplicationName)
	env := mapper.NormalizeResourceName(cfg.Environment)

	body.SetAttributeValue("spn", cty.StringVal(cfg.SPN))
	body.SetAttributeValue("location", cty.StringVal(cfg.Location))
	body.AppendNewline()

	body.SetAttributeValue("resource_group_name", cty.StringVal(fmt.Sprintf("rg-%s-%s", project, env)))
	body.SetAttributeValue("admin_username", cty.StringVal(cfg.AdminUsername))
	body.AppendNewline()

	body.SetAttributeValue("application_security_groups", asgValue(app, env))
	body.AppendNewline()

	body.SetAttributeValue("disk_encryption_set_name", cty.StringVal(fmt.Sprintf("dsk-%s-%s", project, env)))
	body.SetAttributeValue("user_assigned_identity_name", cty.StringVal(fmt.Sprintf("umid-%s-%s", project, env)))
	body.AppendNewline()

	body.SetAttributeValue("key_vault", keyVaultValue(cfg.KeyVault, project, env))
	body.AppendNewline()

	body.SetAttributeValue("network_security_rules", securityRulesValue(cfg.SecurityRules, project, env))
	body.AppendNewline()

	body.SetAttributeValue("vm_list", vmListValue(cfg.VMs))
	body.AppendNewline()

	body.SetAttributeValue("common_tags", commonTagsValue(cfg))

	return string(f.Bytes())
}

func asgValue(app, env string) cty.Value {
	return cty.ObjectVal(map[string]cty.Value{
		"asg_nic": cty.ObjectVal(map[string]cty.Value{
			"name": cty.StringVal(fmt.Sprintf("asg-%s-nic-%s", app, env)),
		}),
		"asg_pe": cty.ObjectVal(map[string]cty.Value{
			"name": cty.StringVal(fmt.Sprintf("asg-%s-pe-%s", app, env)),
		}),
	})
}

func keyVaultValue(kv models.KeyVaultSettings, project, env string) cty.Value {
	return cty.ObjectVal(map[string]cty.Value{
		"name":                       cty.StringVal(fmt.Sprintf("kvlt-%s-%s", project, env)),
		"sku_name":                   cty.StringVal(kv.SKUName),
		"soft_delete_retention_days": cty.NumberIntVal(int64(kv.SoftDeleteRetentionDays)),
		"public_network_access":      cty.BoolVal(kv.PublicNetworkAccess),
		"snet_key":                   cty.StringVal("snet1"),
		"key_name":                   cty.StringVal(fmt.Sprintf("key-%s-%s", project, env)),
	})
}

func securityRulesValue(rules []models.SecurityRule, project, env string) cty.Value {
	ruleVals := make([]cty.Value, 0, len(rules))
	for _, rule := range rules {
		ports := make([]cty.Value, 0, len(rule.DestinationPortRanges))
		for _, p := range rule.DestinationPortRanges {
			ports = append(ports, cty.StringVal(p))
		}
		portList := cty.ListValEmpty(cty.String)
		if len(ports) > 0 {
			portList = cty.ListVal(ports)
		}
		ruleVals = append(ruleVals, cty.ObjectVal(map[string]cty.Value{
			"name":                    cty.StringVal(rule.Name),
			"priority":                cty.NumberIntVal(int64(rule.Priority)),
			"direction":               cty.StringVal(rule.Direction),
			"access":                  cty.StringVal(rule.Access),
			"protocol":                cty.StringVal(rule.Protocol),
			"source_port_range":       cty.StringVal(rule.SourcePortRange),
			"destination_port_ranges": portList,
			"source_asg_keys":         cty.ListVal([]cty.Value{cty.StringVal("asg_nic")}),
			"destination_asg_keys":    cty.ListVal([]cty.Value{cty.StringVal("asg_pe")}),
			"description":             cty.StringVal(rule.Description),
		}))
	}

	rulesVal := cty.EmptyTupleVal
	if len(ruleVals) > 0 {
		rulesVal = cty.TupleVal(ruleVals)
	}
	return cty.ObjectVal(map[string]cty.Value{
		"resource_group_name":         cty.StringVal(fmt.Sprintf("rg-%s-networking", project)),
		"network_security_group_name": cty.StringVal(fmt.Sprintf("nsg-%s-%s", project, env)),
		"rules":                       rulesVal,
	})
}

func vmListValue(vms []models.VMInstance) cty.Value {
	if len(vms) == 0 {
		return cty.EmptyObjectVal
	}
	entries := make(map[string]cty.Value, len(vms))
	for i, vm := range vms {
		entries[fmt.Sprintf("vm%d", i+1)] = cty.ObjectVal(map[string]cty.Value{
			"name":              cty.StringVal(vm.Name),
			"size":              cty.StringVal(vm.Size),
			"zone":              cty.NullVal(cty.Number),
			"image_os":          cty.StringVal(vm.ImageOS),
			"marketplace_image": cty.False,
			"image_urn":         cty.StringVal(vm.ImageURN),
			"ip_allocation":     cty.StringVal(vm.IPAllocation),
			"identity_type":     cty.StringVal("SystemAssigned, UserAssigned"),
			"os_disk_size":      cty.NumberIntVal(int64(vm.OSDiskSize)),
			"os_disk_type":      cty.StringVal(vm.OSDiskType),
			"os_disk_tier":      cty.NullVal(cty.String),
			"snet_key":          cty.StringVal("snet1"),
			"asg_key":           cty.StringVal("asg_nic"),
			"tags": cty.ObjectVal(map[string]cty.Value{
				"role":        cty.StringVal(vm.Role),
				"patch-optin": cty.StringVal(vm.PatchOptin),
				"snow-item":   cty.StringVal(vm.SnowItem),
			}),
		})
	}
	return cty.ObjectVal(entries)
}

func commonTagsValue(cfg *models.BuildConfig) cty.Value {
	return cty.ObjectVal(map[string]cty.Value{
		"shared-service-name": cty.StringVal("NA"),
		"app-name":            cty.StringVal(cfg.ApplicationName),
		"environment":         cty.StringVal(cfg.Environment),
		"app-tier":            cty.StringVal(cfg.AppTier),
		"snow-item":           cty.StringVal(cfg.ServiceNowTicket),
		"it-cost-center":      cty.StringVal("NA"),
		"it-domain":           cty.StringVal("Platform Engineering"),
	})
}
