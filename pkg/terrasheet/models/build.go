package models

// BuildConfig is the flattened, schema-shaped result document built by the
// field mapper. Every field is always populated: extracted values win,
// declared defaults fill the rest. Immutable once rendering starts.
type BuildConfig struct {
	// ProjectName is the full project name from the overview data.
	ProjectName string `json:"project_name"`
	// ApplicationName is the abbreviated application name used for
	// resource naming.
	ApplicationName string `json:"application_name"`
	// AppDescription is the free-text application description.
	AppDescription string `json:"app_description"`
	// AppTier is the application tier tag (Platinum..Bronze).
	AppTier string `json:"app_tier"`
	// AppOwner is the application owner contact.
	AppOwner string `json:"app_owner"`
	// BusinessOwner is the business owner contact.
	BusinessOwner string `json:"business_owner"`
	// ServiceNowTicket is the change ticket reference (snow-item tag).
	ServiceNowTicket string `json:"service_now_ticket"`
	// Environment is the target environment (DEV, QA, UAT, PROD, DR).
	Environment string `json:"environment"`
	// Location is the Azure region, rendered verbatim into tfvars.
	Location string `json:"location"`
	// Subscription is the discovered subscription identifier, empty when
	// no key matched. Drives output directory naming.
	Subscription string `json:"subscription,omitempty"`
	// AdminUsername is the VM administrator account name.
	AdminUsername string `json:"admin_username"`
	// SPN is the service principal display name.
	SPN string `json:"spn"`
	// KeyVault holds the key vault settings block.
	KeyVault KeyVaultSettings `json:"key_vault"`
	// VMs is the ordered virtual machine list, one entry per data row of
	// the selected VM table.
	VMs []VMInstance `json:"vm_list"`
	// SecurityRules is the ordered NSG rule list.
	SecurityRules []SecurityRule `json:"security_rules"`
	// Defaulted names the schema fields that fell back to their literal
	// default because no source key matched. Feeds strict mode and the
	// run summary; never an error in lenient mode.
	Defaulted []string `json:"defaulted,omitempty"`
}

// KeyVaultSettings holds the key vault block of the build configuration.
type KeyVaultSettings struct {
	// SKUName is the vault SKU (standard or premium).
	SKUName string `json:"sku_name"`
	// SoftDeleteRetentionDays is the soft-delete retention window (7-90).
	SoftDeleteRetentionDays int `json:"soft_delete_retention_days"`
	// PublicNetworkAccess is the coerced boolean for the source's 1/0
	// flag.
	PublicNetworkAccess bool `json:"public_network_access"`
}

// VMInstance represents one virtual machine row from the build sheet.
type VMInstance struct {
	// Name is the VM hostname, or "<app>-NN" when the row has none.
	Name string `json:"name"`
	// Size is the Azure SKU, e.g. Standard_B2s_v2.
	Size string `json:"size"`
	// ImageOS is the OS flag, windows or linux.
	ImageOS string `json:"image_os"`
	// ImageURN is the Azure marketplace urn Publisher:Offer:SKU:Version.
	ImageURN string `json:"image_urn"`
	// IPAllocation is Dynamic or Static.
	IPAllocation string `json:"ip_allocation"`
	// OSDiskSize is the OS disk size in GB.
	OSDiskSize int `json:"os_disk_size"`
	// OSDiskType is the OS disk storage type.
	OSDiskType string `json:"os_disk_type"`
	// Role is the role tag value.
	Role string `json:"role"`
	// PatchOptin is the patch-optin tag value (YES or NO).
	PatchOptin string `json:"patch_optin"`
	// SnowItem is the per-VM ticket reference tag.
	SnowItem string `json:"snow_item"`
}

// SecurityRule represents one network security rule row from the NSG sheet.
type SecurityRule struct {
	// Name is the rule name.
	Name string `json:"name"`
	// Priority is the rule priority, lower evaluated first.
	Priority int `json:"priority"`
	// Direction is Inbound or Outbound, rendered verbatim.
	Direction string `json:"direction"`
	// Access is Allow or Deny.
	Access string `json:"access"`
	// Protocol is Tcp, Udp or *, rendered verbatim.
	Protocol string `json:"protocol"`
	// SourcePortRange is the source port or *.
	SourcePortRange string `json:"source_port_range"`
	// DestinationPortRanges lists destination ports.
	DestinationPortRanges []string `json:"destination_port_ranges"`
	// Description is the free-text rule description.
	Description string `json:"description"`
}
