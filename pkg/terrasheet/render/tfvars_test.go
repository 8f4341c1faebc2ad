package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wabcloud/terrasheet/pkg/terrasheet/models"
)

func configFixture() *models.BuildConfig {
	return &models.BuildConfig{
		ProjectName:      "Payments Platform",
		ApplicationName:  "myapp",
		AppTier:          "Bronze",
		AppOwner:         "Jane Doe",
		ServiceNowTicket: "RITM123456",
		Environment:      "DEV",
		Location:         "here",
		SPN:              "spn-x",
		AdminUsername:    "cisadmin",
		KeyVault: models.KeyVaultSettings{
			SKUName:                 "premium",
			SoftDeleteRetentionDays: 30,
			PublicNetworkAccess:     false,
		},
		VMs: []models.VMInstance{
			{
				Name:         "web01",
				Size:         "Standard_D2s_v5",
				ImageOS:      "linux",
				ImageURN:     "Canonical:0001-com-ubuntu-server-jammy:22_04-lts-gen2:latest",
				IPAllocation: "Dynamic",
				OSDiskSize:   256,
				OSDiskType:   "StandardSSD_LRS",
				Role:         "Web",
				PatchOptin:   "NO",
				SnowItem:     "RITM123456",
			},
			{
				Name:         "myapp-02",
				Size:         "Standard_B2s_v2",
				ImageOS:      "windows",
				ImageURN:     "MicrosoftWindowsServer:WindowsServer:2022-datacenter-g2:latest",
				IPAllocation: "Dynamic",
				OSDiskSize:   128,
				OSDiskType:   "StandardSSD_LRS",
				Role:         "Application",
				PatchOptin:   "NO",
				SnowItem:     "RITM123456",
			},
		},
		SecurityRules: []models.SecurityRule{
			{
				Name:                  "allow_https",
				Priority:              200,
				Direction:             "Inbound",
				Access:                "Allow",
				Protocol:              "Tcp",
				SourcePortRange:       "*",
				DestinationPortRanges: []string{"443", "8443"},
				Description:           "HTTPS in",
			},
		},
	}
}

func TestTFVarsScalars(t *testing.T) {
	out := TFVars(configFixture())

	// spn and location form their own attribute group, so the location
	// value renders with a single space around the equals sign.
	assert.Contains(t, out, `location = "here"`)
	assert.Contains(t, out, `spn      = "spn-x"`)

	assert.Contains(t, out, `resource_group_name = "rg-payments-platform-dev"`)
	assert.Contains(t, out, `admin_username      = "cisadmin"`)
	assert.Contains(t, out, `disk_encryption_set_name    = "dsk-payments-platform-dev"`)
	assert.Contains(t, out, `user_assigned_identity_name = "umid-payments-platform-dev"`)
}

func TestTFVarsKeyVault(t *testing.T) {
	out := TFVars(configFixture())

	// Nested object attributes are equals-aligned, so match with a
	// flexible-whitespace pattern.
	assert.Regexp(t, `sku_name\s+= "premium"`, out)
	assert.Regexp(t, `soft_delete_retention_days\s+= 30`, out)
	assert.Regexp(t, `public_network_access\s+= false`, out)
	assert.Regexp(t, `name\s+= "kvlt-payments-platform-dev"`, out)
}

func TestTFVarsSecurityRules(t *testing.T) {
	out := TFVars(configFixture())

	assert.Regexp(t, `name\s+= "allow_https"`, out)
	assert.Regexp(t, `priority\s+= 200`, out)
	assert.Regexp(t, `direction\s+= "Inbound"`, out)
	assert.Regexp(t, `access\s+= "Allow"`, out)
	assert.Regexp(t, `protocol\s+= "Tcp"`, out)
	assert.Regexp(t, `source_port_range\s+= "\*"`, out)
	assert.Contains(t, out, `"443", "8443"`)
	assert.Regexp(t, `network_security_group_name\s+= "nsg-payments-platform-dev"`, out)
}

func TestTFVarsVMList(t *testing.T) {
	out := TFVars(configFixture())

	assert.Regexp(t, `vm1\s*=\s*\{`, out)
	assert.Regexp(t, `vm2\s*=\s*\{`, out)
	assert.Regexp(t, `name\s+= "web01"`, out)
	assert.Regexp(t, `size\s+= "Standard_D2s_v5"`, out)
	assert.Regexp(t, `image_os\s+= "linux"`, out)
	assert.Regexp(t, `zone\s+= null`, out)
	assert.Regexp(t, `os_disk_size\s+= 256`, out)
	assert.Regexp(t, `"patch-optin"\s+= "NO"`, out)
	assert.Equal(t, 2, strings.Count(out, `identity_type`))
}

func TestTFVarsCommonTags(t *testing.T) {
	out := TFVars(configFixture())

	assert.Regexp(t, `"app-name"\s+= "myapp"`, out)
	assert.Regexp(t, `"app-tier"\s+= "Bronze"`, out)
	assert.Regexp(t, `"snow-item"\s+= "RITM123456"`, out)
	assert.Regexp(t, `environment\s+= "DEV"`, out)
}

func TestTFVarsEmptyCollections(t *testing.T) {
	cfg := configFixture()
	cfg.VMs = nil
	cfg.SecurityRules = nil

	out := TFVars(cfg)

	assert.Regexp(t, `vm_list\s*=\s*\{`, out)
	assert.Regexp(t, `rules\s+= \[\]`, out)
}

func TestTFVarsDeterministic(t *testing.T) {
	a := TFVars(configFixture())
	b := TFVars(configFixture())
	assert.Equal(t, a, b)
}
